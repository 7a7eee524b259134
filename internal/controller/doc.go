// Package controller provides the smart home controller.
//
// The Controller is the sole owner of a home's devices. Callers hand it a
// fully constructed device.Device and from then on address the device only by
// its integer ID. No device pointer is ever handed back out: reads return
// device.Details snapshots, so nothing outside the controller can observe or
// mutate a device after it has been removed.
//
// # Lookup Policy
//
// Every ID-keyed operation scans the devices in insertion order and acts on
// the first match. A missing ID is reported as ErrDeviceNotFound; it is never
// fatal and leaves the registry untouched.
//
// Duplicate IDs are admitted by default. Because lookups stop at the first
// match, a later device with the same ID is unreachable until the earlier one
// is removed. Set Options.RejectDuplicateIDs to refuse them instead.
//
// # Events
//
// After every successful mutation the controller hands an Event to its
// Publisher, if one is set. Publishing is best-effort: a failure is logged
// and does not change the outcome of the operation.
//
// # Usage
//
//	ctrl := controller.New(controller.Options{})
//	ctrl.SetLogger(log)
//
//	ctrl.AddDevice(device.NewLight(1, "desk-lamp", device.DefaultBrightness))
//	if _, err := ctrl.ControlDevice(1, true); errors.Is(err, controller.ErrDeviceNotFound) {
//	    // report and carry on
//	}
//	for d := range ctrl.Devices() {
//	    fmt.Println(d)
//	}
//
// # Thread Safety
//
// The Controller is not safe for concurrent use. All calls are expected to
// come from a single goroutine.
package controller
