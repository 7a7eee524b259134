// Package device provides the device abstraction for the smart home core.
//
// Every controllable appliance in a home implements the Device interface:
// a common lifecycle (power on/off, a details report) plus one
// variant-specific settings operation. Four variants exist today:
//
//   - Light: brightness 0-100 %
//   - Fan: speed 0-3 (OFF, LOW, MEDIUM, HIGH)
//   - Heater: target temperature in °C, unconstrained
//   - AutomaticDoor: door lock plus a CCTV camera
//
// # Architecture
//
//	┌──────────────────────────────────────────────────────────┐
//	│                       Device (interface)                  │
//	│  ID · Name · Kind · TurnOn · TurnOff · Details ·          │
//	│  AdjustSettings                                           │
//	└──────────────────────────────────────────────────────────┘
//	        ▲             ▲              ▲               ▲
//	   ┌────┴───┐    ┌────┴───┐    ┌─────┴────┐   ┌──────┴───────┐
//	   │ Light  │    │  Fan   │    │  Heater  │   │ AutomaticDoor│
//	   └────┬───┘    └────┬───┘    └─────┬────┘   └──────┬───────┘
//	        └─────────────┴──── base ────┴───────────────┘
//	                 (id, name, power state)
//
// Settings adjustment is a pure state transition: it takes an already-parsed
// integer and returns a Result describing what happened. Reading input and
// printing output is the caller's job.
//
// Out-of-range brightness and speed values are clamped into range, never
// rejected. An unknown AutomaticDoor option leaves the door untouched and
// returns ErrInvalidOption.
//
// # Usage
//
//	lamp := device.NewLight(1, "desk-lamp", device.DefaultBrightness)
//	lamp.TurnOn()
//	res, _ := lamp.AdjustSettings(150) // brightness clamped to 100
//	fmt.Println(res.Message)           // "Brightness set to 100%."
//	fmt.Println(lamp.Details())
//
// # Thread Safety
//
// Devices are not safe for concurrent use. They are owned and mutated by a
// single controller.
package device
