package controller

import (
	"fmt"
	"iter"
	"slices"

	"github.com/nerrad567/smarthome-core/internal/device"
)

// Outcome messages reported to the caller.
const (
	msgAdded    = "Device added successfully."
	msgRemoved  = "Device removed successfully."
	msgNotFound = "Device not found."
)

// Logger defines the logging interface used by the Controller.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Options configures a Controller.
type Options struct {
	// RejectDuplicateIDs makes AddDevice refuse a device whose ID is
	// already registered. When false, duplicates are admitted and only the
	// first one is reachable by ID.
	RejectDuplicateIDs bool
}

// Controller owns an ordered collection of devices and routes commands to
// them by ID.
type Controller struct {
	devices   []device.Device // Insertion order
	opts      Options
	logger    Logger
	publisher Publisher
}

// New creates an empty controller.
func New(opts Options) *Controller {
	return &Controller{
		opts:   opts,
		logger: noopLogger{},
	}
}

// SetLogger sets the logger for the controller.
func (c *Controller) SetLogger(logger Logger) {
	c.logger = logger
}

// SetPublisher sets where events are sent after each mutation.
// A nil publisher disables events.
func (c *Controller) SetPublisher(p Publisher) {
	c.publisher = p
}

// AddDevice takes ownership of d and appends it to the collection.
// The caller must not use d afterwards.
func (c *Controller) AddDevice(d device.Device) (device.Result, error) {
	if d == nil {
		return device.Result{}, ErrInvalidDevice
	}

	if c.opts.RejectDuplicateIDs && c.indexOf(d.ID()) >= 0 {
		return device.Result{DeviceID: d.ID()}, fmt.Errorf("%w: id %d", ErrDeviceExists, d.ID())
	}

	c.devices = append(c.devices, d)

	res := device.Result{DeviceID: d.ID(), Message: msgAdded}
	c.logger.Info("device added", "id", d.ID(), "name", d.Name(), "kind", d.Kind())
	c.emit(Event{Type: EventDeviceAdded, Device: d.Details(), Message: res.Message})
	return res, nil
}

// RemoveDevice removes the first device with the given ID and releases it.
// Later devices sharing the ID are left in place.
func (c *Controller) RemoveDevice(id int) (device.Result, error) {
	i := c.indexOf(id)
	if i < 0 {
		return c.notFound(id)
	}

	removed := c.devices[i].Details()
	// slices.Delete zeroes the vacated tail slot, dropping the last reference.
	c.devices = slices.Delete(c.devices, i, i+1)

	res := device.Result{DeviceID: id, Message: msgRemoved}
	c.logger.Info("device removed", "id", id, "name", removed.Name)

	ev := Event{Type: EventDeviceRemoved, Device: removed, Message: res.Message}
	if j := c.indexOf(id); j >= 0 {
		successor := c.devices[j].Details()
		ev.Successor = &successor
	}
	c.emit(ev)
	return res, nil
}

// ListDevices returns a details report for every device in insertion order.
func (c *Controller) ListDevices() []device.Details {
	return slices.Collect(c.Devices())
}

// Devices returns a lazy sequence of details reports in insertion order.
// The sequence can be iterated any number of times and does not consume
// controller state.
func (c *Controller) Devices() iter.Seq[device.Details] {
	return func(yield func(device.Details) bool) {
		for _, d := range c.devices {
			if !yield(d.Details()) {
				return
			}
		}
	}
}

// GetDevice returns the details of the first device with the given ID.
func (c *Controller) GetDevice(id int) (device.Details, error) {
	i := c.indexOf(id)
	if i < 0 {
		return device.Details{}, fmt.Errorf("%w: id %d", ErrDeviceNotFound, id)
	}
	return c.devices[i].Details(), nil
}

// ControlDevice switches the first device with the given ID on or off.
func (c *Controller) ControlDevice(id int, turnOn bool) (device.Result, error) {
	i := c.indexOf(id)
	if i < 0 {
		return c.notFound(id)
	}

	d := c.devices[i]
	var res device.Result
	if turnOn {
		res = d.TurnOn()
	} else {
		res = d.TurnOff()
	}

	c.logger.Debug("device power changed", "id", id, "on", turnOn)
	c.emit(Event{Type: EventDevicePowerChanged, Device: d.Details(), Message: res.Message})
	return res, nil
}

// AdjustDeviceSettings passes value to the settings operation of the first
// device with the given ID. Errors from the device, such as
// device.ErrInvalidOption, are returned alongside its result.
func (c *Controller) AdjustDeviceSettings(id int, value int) (device.Result, error) {
	i := c.indexOf(id)
	if i < 0 {
		return c.notFound(id)
	}

	d := c.devices[i]
	res, err := d.AdjustSettings(value)
	if err != nil {
		c.logger.Warn("device settings rejected", "id", id, "value", value, "error", err)
		return res, err
	}

	c.logger.Debug("device settings adjusted", "id", id, "value", value)
	c.emit(Event{Type: EventDeviceSettingsAdjusted, Device: d.Details(), Message: res.Message})
	return res, nil
}

// Count returns the number of devices.
func (c *Controller) Count() int {
	return len(c.devices)
}

// Stats returns controller statistics.
type Stats struct {
	Total  int
	On     int
	ByKind map[device.Kind]int
}

// Stats returns current controller statistics.
func (c *Controller) Stats() Stats {
	stats := Stats{
		Total:  len(c.devices),
		ByKind: make(map[device.Kind]int),
	}

	for _, d := range c.devices {
		stats.ByKind[d.Kind()]++
		if d.Details().On {
			stats.On++
		}
	}

	return stats
}

// indexOf returns the index of the first device with the given ID, or -1.
func (c *Controller) indexOf(id int) int {
	return slices.IndexFunc(c.devices, func(d device.Device) bool {
		return d.ID() == id
	})
}

func (c *Controller) notFound(id int) (device.Result, error) {
	c.logger.Debug("device not found", "id", id)
	return device.Result{DeviceID: id, Message: msgNotFound}, fmt.Errorf("%w: id %d", ErrDeviceNotFound, id)
}
