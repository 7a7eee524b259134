package device

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Device is the capability set every smart home appliance implements.
type Device interface {
	// ID returns the identifier assigned at construction.
	ID() int

	// Name returns the display name assigned at construction.
	Name() string

	// Kind returns the variant of the device.
	Kind() Kind

	// TurnOn switches the device on. Calling it twice is a no-op state-wise.
	TurnOn() Result

	// TurnOff switches the device off. Calling it twice is a no-op state-wise.
	TurnOff() Result

	// Details returns a read-only snapshot of the device.
	Details() Details

	// AdjustSettings applies the variant-specific settings change described
	// by value and reports the outcome.
	AdjustSettings(value int) (Result, error)
}

// Kind identifies a device variant.
type Kind string

// Device kinds.
const (
	KindLight         Kind = "light"
	KindFan           Kind = "fan"
	KindHeater        Kind = "heater"
	KindAutomaticDoor Kind = "automatic_door"
)

// AllKinds returns all supported device kinds in menu order.
func AllKinds() []Kind {
	return []Kind{KindLight, KindFan, KindHeater, KindAutomaticDoor}
}

// ParseKind converts a string into a Kind.
// Matching is case-insensitive and accepts "-" or " " in place of "_".
func ParseKind(s string) (Kind, error) {
	normalised := strings.ToLower(strings.TrimSpace(s))
	normalised = strings.NewReplacer("-", "_", " ", "_").Replace(normalised)
	for _, k := range AllKinds() {
		if string(k) == normalised {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// UnmarshalYAML accepts any spelling ParseKind understands, so a seed entry
// may say "Automatic Door" or "automatic-door". Unrecognised values are kept
// verbatim and reported by ValidateSpec with the other configuration errors.
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if parsed, err := ParseKind(s); err == nil {
		*k = parsed
		return nil
	}
	*k = Kind(s)
	return nil
}

// Label returns the human-readable name of the kind.
func (k Kind) Label() string {
	switch k {
	case KindLight:
		return "Light"
	case KindFan:
		return "Fan"
	case KindHeater:
		return "Heater"
	case KindAutomaticDoor:
		return "Automatic Door"
	default:
		return string(k)
	}
}

// Result is the outcome of a state-changing device operation.
type Result struct {
	DeviceID int    `json:"device_id"`
	Message  string `json:"message"`
}

// String returns the result message.
func (r Result) String() string {
	return r.Message
}

// Field is one variant-specific entry in a details report.
type Field struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value any    `json:"value"`
	Text  string `json:"text"`
}

// Details is a read-only report of a device.
// Base fields come first, variant fields follow in a fixed order.
type Details struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Kind   Kind    `json:"kind"`
	On     bool    `json:"on"`
	Fields []Field `json:"fields"`
}

// Field returns the variant field with the given key.
func (d Details) Field(key string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// String renders the report the way the console prints it.
func (d Details) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Device ID: %d, Name: %s, Status: %s", d.ID, d.Name, onOff(d.On))
	for _, f := range d.Fields {
		fmt.Fprintf(&b, "\n%s: %s", f.Label, f.Text)
	}
	return b.String()
}

func onOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}
