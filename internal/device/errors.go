package device

import "errors"

// Domain errors for the device package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, device.ErrInvalidOption) {
//	    // tell the user the choice was not recognised
//	}
var (
	// ErrInvalidOption is returned when an AutomaticDoor receives a settings
	// option it does not recognise. The device state is left unchanged.
	ErrInvalidOption = errors.New("device: invalid option")

	// ErrInvalidKind is returned when a device kind is not recognised.
	ErrInvalidKind = errors.New("device: invalid kind")

	// ErrInvalidName is returned when a device name is empty or too long.
	ErrInvalidName = errors.New("device: invalid name")
)
