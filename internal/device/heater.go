package device

import "fmt"

// DefaultTemperature is the target temperature of a new heater in °C.
const DefaultTemperature = 20

// Heater is a heater with a target temperature.
type Heater struct {
	base
	temperature int
}

// NewHeater creates a heater that is switched off.
func NewHeater(id int, name string, temperature int) *Heater {
	return &Heater{
		base:        newBase(id, name),
		temperature: temperature,
	}
}

// Kind returns KindHeater.
func (h *Heater) Kind() Kind { return KindHeater }

// Temperature returns the target temperature in °C.
func (h *Heater) Temperature() int { return h.temperature }

// SetTemperature stores temp as given. Negative values are valid.
func (h *Heater) SetTemperature(temp int) Result {
	h.temperature = temp
	return h.result(fmt.Sprintf("Temperature set to %d°C.", h.temperature))
}

// AdjustSettings sets the temperature. It never fails.
func (h *Heater) AdjustSettings(value int) (Result, error) {
	return h.SetTemperature(value), nil
}

// Details returns the heater's report.
func (h *Heater) Details() Details {
	return h.details(KindHeater, Field{
		Key:   "temperature",
		Label: "Temperature",
		Value: h.temperature,
		Text:  fmt.Sprintf("%d°C", h.temperature),
	})
}
