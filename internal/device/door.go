package device

import (
	"fmt"
	"strconv"
)

// DoorOption is a settings choice for an AutomaticDoor.
type DoorOption int

// Door options, numbered as they appear in the settings menu.
const (
	DoorLock DoorOption = iota + 1
	DoorUnlock
	DoorCameraOn
	DoorCameraOff
)

// DoorOptions returns all door options in menu order.
func DoorOptions() []DoorOption {
	return []DoorOption{DoorLock, DoorUnlock, DoorCameraOn, DoorCameraOff}
}

// String returns the menu label of the option.
func (o DoorOption) String() string {
	switch o {
	case DoorLock:
		return "Lock Door"
	case DoorUnlock:
		return "Unlock Door"
	case DoorCameraOn:
		return "Turn ON Camera"
	case DoorCameraOff:
		return "Turn OFF Camera"
	default:
		return "DoorOption(" + strconv.Itoa(int(o)) + ")"
	}
}

// invalidOptionMessage is reported when a door option is not recognised.
const invalidOptionMessage = "Invalid option!"

// AutomaticDoor is a lockable door with a CCTV camera.
// The lock and the camera are independent.
type AutomaticDoor struct {
	base
	locked   bool
	cameraOn bool
}

// NewAutomaticDoor creates a door that is locked with its camera off.
func NewAutomaticDoor(id int, name string) *AutomaticDoor {
	return &AutomaticDoor{
		base:   newBase(id, name),
		locked: true,
	}
}

// Kind returns KindAutomaticDoor.
func (d *AutomaticDoor) Kind() Kind { return KindAutomaticDoor }

// Locked reports whether the door is locked.
func (d *AutomaticDoor) Locked() bool { return d.locked }

// CameraOn reports whether the CCTV camera is on.
func (d *AutomaticDoor) CameraOn() bool { return d.cameraOn }

// Lock locks the door.
func (d *AutomaticDoor) Lock() Result {
	d.locked = true
	return d.result(fmt.Sprintf("%s is locked.", d.name))
}

// Unlock unlocks the door.
func (d *AutomaticDoor) Unlock() Result {
	d.locked = false
	return d.result(fmt.Sprintf("%s is unlocked.", d.name))
}

// SetCamera switches the CCTV camera on or off.
func (d *AutomaticDoor) SetCamera(on bool) Result {
	d.cameraOn = on
	return d.result(fmt.Sprintf("CCTV Camera is now %s.", onOff(on)))
}

// AdjustSettings applies a DoorOption. Unknown options return
// ErrInvalidOption and leave the door unchanged.
func (d *AutomaticDoor) AdjustSettings(value int) (Result, error) {
	switch DoorOption(value) {
	case DoorLock:
		return d.Lock(), nil
	case DoorUnlock:
		return d.Unlock(), nil
	case DoorCameraOn:
		return d.SetCamera(true), nil
	case DoorCameraOff:
		return d.SetCamera(false), nil
	default:
		return d.result(invalidOptionMessage), fmt.Errorf("%w: %d", ErrInvalidOption, value)
	}
}

// Details returns the door's report.
func (d *AutomaticDoor) Details() Details {
	lockText := "Unlocked"
	if d.locked {
		lockText = "Locked"
	}
	return d.details(KindAutomaticDoor,
		Field{Key: "locked", Label: "Door Status", Value: d.locked, Text: lockText},
		Field{Key: "camera_on", Label: "CCTV Status", Value: d.cameraOn, Text: onOff(d.cameraOn)},
	)
}
