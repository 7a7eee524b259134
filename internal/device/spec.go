package device

import (
	"strconv"
	"strings"
)

// Spec declares a device to build, as found in the configuration seed list.
// Variant fields that do not apply to Kind are ignored; nil fields take the
// variant default.
type Spec struct {
	ID          int    `yaml:"id"`
	Name        string `yaml:"name"`
	Kind        Kind   `yaml:"kind"`
	Brightness  *int   `yaml:"brightness,omitempty"`
	Speed       *int   `yaml:"speed,omitempty"`
	Temperature *int   `yaml:"temperature,omitempty"`
	Locked      *bool  `yaml:"locked,omitempty"`
	CameraOn    *bool  `yaml:"camera_on,omitempty"`
	On          bool   `yaml:"on,omitempty"`
}

// Build validates s and constructs the device it describes.
func Build(s Spec) (Device, error) {
	if err := ValidateSpec(s); err != nil {
		return nil, err
	}

	var d Device
	switch s.Kind {
	case KindLight:
		d = NewLight(s.ID, s.Name, intOr(s.Brightness, DefaultBrightness))
	case KindFan:
		d = NewFan(s.ID, s.Name, intOr(s.Speed, int(DefaultFanSpeed)))
	case KindHeater:
		d = NewHeater(s.ID, s.Name, intOr(s.Temperature, DefaultTemperature))
	case KindAutomaticDoor:
		door := NewAutomaticDoor(s.ID, s.Name)
		if s.Locked != nil {
			door.locked = *s.Locked
		}
		if s.CameraOn != nil {
			door.cameraOn = *s.CameraOn
		}
		d = door
	}

	if s.On {
		d.TurnOn()
	}
	return d, nil
}

// New constructs a device of the given kind with variant defaults.
func New(kind Kind, id int, name string) (Device, error) {
	return Build(Spec{ID: id, Name: name, Kind: kind})
}

// SettingsPrompt returns the prompt shown before reading a settings value
// for a device of the given kind.
func SettingsPrompt(kind Kind) string {
	switch kind {
	case KindLight:
		return "Enter new brightness level (0-100): "
	case KindFan:
		return "Enter new speed level (0-3): "
	case KindHeater:
		return "Enter new temperature in °C: "
	case KindAutomaticDoor:
		var b strings.Builder
		for _, o := range DoorOptions() {
			b.WriteString(strconv.Itoa(int(o)) + ". " + o.String() + "\n")
		}
		b.WriteString("Enter your choice: ")
		return b.String()
	default:
		return "Enter value: "
	}
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}
