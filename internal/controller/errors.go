package controller

import "errors"

// Domain errors for the controller package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, controller.ErrDeviceNotFound) {
//	    // handle not found case
//	}
var (
	// ErrDeviceNotFound is returned when no device has the requested ID.
	ErrDeviceNotFound = errors.New("device: not found")

	// ErrDeviceExists is returned when adding a device whose ID is already
	// registered and duplicate rejection is enabled.
	ErrDeviceExists = errors.New("device: already exists")

	// ErrInvalidDevice is returned when adding a nil device.
	ErrInvalidDevice = errors.New("device: invalid")
)
