package mqtt

import (
	"fmt"
	"strconv"
)

// DefaultTopicPrefix is used when no prefix is configured.
const DefaultTopicPrefix = "smarthome"

// Topics provides builders for smart home MQTT topics.
// Using these helpers ensures consistent topic naming across the codebase.
//
//	topics := mqtt.Topics{Prefix: "smarthome"}
//	topics.DeviceState(3)
//	// Returns: "smarthome/core/device/3/state"
type Topics struct {
	Prefix string
}

func (t Topics) prefix() string {
	if t.Prefix == "" {
		return DefaultTopicPrefix
	}
	return t.Prefix
}

// DeviceState returns the retained state topic for a device.
//
// Example: smarthome/core/device/3/state
func (t Topics) DeviceState(deviceID int) string {
	return fmt.Sprintf("%s/core/device/%s/state", t.prefix(), strconv.Itoa(deviceID))
}

// Event returns the topic for a controller event type.
//
// Example: smarthome/core/event/device_added
func (t Topics) Event(eventType string) string {
	return fmt.Sprintf("%s/core/event/%s", t.prefix(), eventType)
}

// SystemStatus returns the topic for online/offline status.
//
// Example: smarthome/system/status
func (t Topics) SystemStatus() string {
	return fmt.Sprintf("%s/system/status", t.prefix())
}

// AllDeviceStates returns a wildcard matching every device state topic.
//
// Example: smarthome/core/device/+/state
func (t Topics) AllDeviceStates() string {
	return fmt.Sprintf("%s/core/device/+/state", t.prefix())
}

// AllEvents returns a wildcard matching every event topic.
//
// Example: smarthome/core/event/#
func (t Topics) AllEvents() string {
	return fmt.Sprintf("%s/core/event/#", t.prefix())
}
