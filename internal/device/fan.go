package device

import (
	"fmt"
	"strconv"
)

// FanSpeed is a fan speed step.
type FanSpeed int

// Fan speed steps.
const (
	FanOff FanSpeed = iota
	FanLow
	FanMedium
	FanHigh
)

// DefaultFanSpeed is the speed of a newly created fan.
const DefaultFanSpeed = FanOff

// String returns the speed name.
func (s FanSpeed) String() string {
	switch s {
	case FanOff:
		return "OFF"
	case FanLow:
		return "LOW"
	case FanMedium:
		return "MEDIUM"
	case FanHigh:
		return "HIGH"
	default:
		return "FanSpeed(" + strconv.Itoa(int(s)) + ")"
	}
}

// Fan is a fan with four speed steps.
type Fan struct {
	base
	speed FanSpeed
}

// NewFan creates a fan that is switched off.
// The initial speed is clamped to [FanOff, FanHigh].
func NewFan(id int, name string, speed int) *Fan {
	return &Fan{
		base:  newBase(id, name),
		speed: FanSpeed(clamp(speed, int(FanOff), int(FanHigh))),
	}
}

// Kind returns KindFan.
func (f *Fan) Kind() Kind { return KindFan }

// Speed returns the current speed step.
func (f *Fan) Speed() FanSpeed { return f.speed }

// SetSpeed clamps level into range and stores it.
func (f *Fan) SetSpeed(level int) Result {
	f.speed = FanSpeed(clamp(level, int(FanOff), int(FanHigh)))
	return f.result(fmt.Sprintf("Speed set to %d (%s).", int(f.speed), f.speed))
}

// AdjustSettings sets the speed. It never fails.
func (f *Fan) AdjustSettings(value int) (Result, error) {
	return f.SetSpeed(value), nil
}

// Details returns the fan's report.
func (f *Fan) Details() Details {
	return f.details(KindFan, Field{
		Key:   "speed",
		Label: "Speed",
		Value: int(f.speed),
		Text:  strconv.Itoa(int(f.speed)),
	})
}
