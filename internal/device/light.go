package device

import "fmt"

// Brightness bounds and default for lights.
const (
	MinBrightness     = 0
	MaxBrightness     = 100
	DefaultBrightness = 50
)

// Light is a dimmable light.
type Light struct {
	base
	brightness int
}

// NewLight creates a light that is switched off.
// The initial brightness is clamped to [MinBrightness, MaxBrightness].
func NewLight(id int, name string, brightness int) *Light {
	return &Light{
		base:       newBase(id, name),
		brightness: clamp(brightness, MinBrightness, MaxBrightness),
	}
}

// Kind returns KindLight.
func (l *Light) Kind() Kind { return KindLight }

// Brightness returns the brightness in percent.
func (l *Light) Brightness() int { return l.brightness }

// SetBrightness clamps level into range and stores it.
func (l *Light) SetBrightness(level int) Result {
	l.brightness = clamp(level, MinBrightness, MaxBrightness)
	return l.result(fmt.Sprintf("Brightness set to %d%%.", l.brightness))
}

// AdjustSettings sets the brightness. It never fails.
func (l *Light) AdjustSettings(value int) (Result, error) {
	return l.SetBrightness(value), nil
}

// Details returns the light's report.
func (l *Light) Details() Details {
	return l.details(KindLight, Field{
		Key:   "brightness",
		Label: "Brightness",
		Value: l.brightness,
		Text:  fmt.Sprintf("%d%%", l.brightness),
	})
}
