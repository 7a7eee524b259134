package controller

import (
	"time"

	"github.com/google/uuid"

	"github.com/nerrad567/smarthome-core/internal/device"
)

// EventType identifies what changed.
type EventType string

// Event types emitted by the controller.
const (
	EventDeviceAdded            EventType = "device_added"
	EventDeviceRemoved          EventType = "device_removed"
	EventDevicePowerChanged     EventType = "device_power_changed"
	EventDeviceSettingsAdjusted EventType = "device_settings_adjusted"
)

// Event describes a completed change to the registry.
type Event struct {
	ID       string         `json:"id"`
	Type     EventType      `json:"type"`
	DeviceID int            `json:"device_id"`
	Device   device.Details `json:"device"`

	// Successor is set on removal when another device shares DeviceID and
	// is now the one lookups by that ID reach.
	Successor *device.Details `json:"successor,omitempty"`

	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher receives controller events.
type Publisher interface {
	Publish(ev Event) error
}

// PublisherFunc adapts a function to the Publisher interface.
type PublisherFunc func(ev Event) error

// Publish calls f(ev).
func (f PublisherFunc) Publish(ev Event) error {
	return f(ev)
}

// emit stamps ev with an ID and timestamp and hands it to the publisher,
// if any. DeviceID is taken from ev.Device.
func (c *Controller) emit(ev Event) {
	if c.publisher == nil {
		return
	}

	ev.ID = uuid.New().String()
	ev.DeviceID = ev.Device.ID
	ev.Timestamp = time.Now().UTC()

	if err := c.publisher.Publish(ev); err != nil {
		c.logger.Warn("failed to publish event", "type", ev.Type, "id", ev.DeviceID, "error", err)
	}
}
