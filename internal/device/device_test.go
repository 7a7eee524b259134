package device

import (
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// allVariants returns one freshly constructed device of every kind.
func allVariants() []Device {
	return []Device{
		NewLight(1, "lamp", DefaultBrightness),
		NewFan(2, "ceiling-fan", int(DefaultFanSpeed)),
		NewHeater(3, "radiator", DefaultTemperature),
		NewAutomaticDoor(4, "front-door"),
	}
}

func TestTurnOnTurnOff(t *testing.T) {
	for _, d := range allVariants() {
		t.Run(string(d.Kind()), func(t *testing.T) {
			if d.Details().On {
				t.Fatal("new device should be off")
			}

			res := d.TurnOn()
			if !d.Details().On {
				t.Error("Details().On = false after TurnOn, want true")
			}
			if want := d.Name() + " is now ON."; res.Message != want {
				t.Errorf("TurnOn() message = %q, want %q", res.Message, want)
			}
			if res.DeviceID != d.ID() {
				t.Errorf("TurnOn() DeviceID = %d, want %d", res.DeviceID, d.ID())
			}

			// Idempotent
			d.TurnOn()
			if !d.Details().On {
				t.Error("second TurnOn changed power state")
			}

			res = d.TurnOff()
			if d.Details().On {
				t.Error("Details().On = true after TurnOff, want false")
			}
			if want := d.Name() + " is now OFF."; res.Message != want {
				t.Errorf("TurnOff() message = %q, want %q", res.Message, want)
			}
			d.TurnOff()
			if d.Details().On {
				t.Error("second TurnOff changed power state")
			}
		})
	}
}

func TestLight_AdjustSettingsClamps(t *testing.T) {
	tests := []struct {
		input int
		want  int
	}{
		{-5, 0},
		{0, 0},
		{42, 42},
		{100, 100},
		{150, 100},
	}

	for _, tt := range tests {
		l := NewLight(1, "lamp", DefaultBrightness)
		res, err := l.AdjustSettings(tt.input)
		if err != nil {
			t.Fatalf("AdjustSettings(%d) error = %v", tt.input, err)
		}
		if l.Brightness() != tt.want {
			t.Errorf("AdjustSettings(%d) brightness = %d, want %d", tt.input, l.Brightness(), tt.want)
		}
		if !strings.Contains(res.Message, "Brightness set to") {
			t.Errorf("AdjustSettings(%d) message = %q", tt.input, res.Message)
		}
	}
}

func TestNewLight_ClampsInitialBrightness(t *testing.T) {
	if got := NewLight(1, "lamp", 250).Brightness(); got != MaxBrightness {
		t.Errorf("Brightness() = %d, want %d", got, MaxBrightness)
	}
	if got := NewLight(1, "lamp", -1).Brightness(); got != MinBrightness {
		t.Errorf("Brightness() = %d, want %d", got, MinBrightness)
	}
}

func TestFan_AdjustSettingsClamps(t *testing.T) {
	tests := []struct {
		input   int
		want    FanSpeed
		message string
	}{
		{-1, FanOff, "Speed set to 0 (OFF)."},
		{1, FanLow, "Speed set to 1 (LOW)."},
		{2, FanMedium, "Speed set to 2 (MEDIUM)."},
		{3, FanHigh, "Speed set to 3 (HIGH)."},
		{9, FanHigh, "Speed set to 3 (HIGH)."},
	}

	for _, tt := range tests {
		f := NewFan(2, "fan", int(DefaultFanSpeed))
		res, err := f.AdjustSettings(tt.input)
		if err != nil {
			t.Fatalf("AdjustSettings(%d) error = %v", tt.input, err)
		}
		if f.Speed() != tt.want {
			t.Errorf("AdjustSettings(%d) speed = %v, want %v", tt.input, f.Speed(), tt.want)
		}
		if res.Message != tt.message {
			t.Errorf("AdjustSettings(%d) message = %q, want %q", tt.input, res.Message, tt.message)
		}
	}
}

func TestFanSpeed_String(t *testing.T) {
	if got := FanSpeed(7).String(); got != "FanSpeed(7)" {
		t.Errorf("String() = %q, want %q", got, "FanSpeed(7)")
	}
}

func TestHeater_AdjustSettingsStoresVerbatim(t *testing.T) {
	for _, input := range []int{-10, 0, 21, 500} {
		h := NewHeater(3, "radiator", DefaultTemperature)
		res, err := h.AdjustSettings(input)
		if err != nil {
			t.Fatalf("AdjustSettings(%d) error = %v", input, err)
		}
		if h.Temperature() != input {
			t.Errorf("AdjustSettings(%d) temperature = %d, want %d", input, h.Temperature(), input)
		}
		if !strings.HasPrefix(res.Message, "Temperature set to") {
			t.Errorf("AdjustSettings(%d) message = %q", input, res.Message)
		}
	}
}

func TestAutomaticDoor_Defaults(t *testing.T) {
	d := NewAutomaticDoor(4, "front-door")
	if !d.Locked() {
		t.Error("new door should be locked")
	}
	if d.CameraOn() {
		t.Error("new door should have camera off")
	}
}

func TestAutomaticDoor_AdjustSettings(t *testing.T) {
	tests := []struct {
		name       string
		option     int
		wantLocked bool
		wantCamera bool
		message    string
	}{
		{"unlock", int(DoorUnlock), false, false, "front-door is unlocked."},
		{"lock", int(DoorLock), true, false, "front-door is locked."},
		{"camera on", int(DoorCameraOn), true, true, "CCTV Camera is now ON."},
		{"camera off", int(DoorCameraOff), true, false, "CCTV Camera is now OFF."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewAutomaticDoor(4, "front-door")
			if tt.option == int(DoorLock) || tt.option == int(DoorCameraOff) {
				// Start from the opposite state so the change is observable.
				d.Unlock()
				d.SetCamera(true)
				tt.wantLocked = tt.option == int(DoorLock)
				tt.wantCamera = tt.option != int(DoorCameraOff)
			}

			res, err := d.AdjustSettings(tt.option)
			if err != nil {
				t.Fatalf("AdjustSettings(%d) error = %v", tt.option, err)
			}
			if d.Locked() != tt.wantLocked {
				t.Errorf("Locked() = %v, want %v", d.Locked(), tt.wantLocked)
			}
			if d.CameraOn() != tt.wantCamera {
				t.Errorf("CameraOn() = %v, want %v", d.CameraOn(), tt.wantCamera)
			}
			if res.Message != tt.message {
				t.Errorf("message = %q, want %q", res.Message, tt.message)
			}
		})
	}
}

func TestAutomaticDoor_InvalidOptionLeavesStateUnchanged(t *testing.T) {
	for _, option := range []int{0, 5, -1, 99} {
		d := NewAutomaticDoor(4, "front-door")
		d.SetCamera(true)
		before := d.Details()

		res, err := d.AdjustSettings(option)
		if !errors.Is(err, ErrInvalidOption) {
			t.Errorf("AdjustSettings(%d) error = %v, want ErrInvalidOption", option, err)
		}
		if res.Message != "Invalid option!" {
			t.Errorf("AdjustSettings(%d) message = %q, want %q", option, res.Message, "Invalid option!")
		}
		if d.Details().String() != before.String() {
			t.Errorf("AdjustSettings(%d) mutated state: %s", option, d.Details())
		}
	}
}

func TestDetails_FieldOrderAndText(t *testing.T) {
	tests := []struct {
		device Device
		want   string
	}{
		{
			NewLight(1, "lamp", 42),
			"Device ID: 1, Name: lamp, Status: OFF\nBrightness: 42%",
		},
		{
			NewFan(2, "fan", 2),
			"Device ID: 2, Name: fan, Status: OFF\nSpeed: 2",
		},
		{
			NewHeater(3, "radiator", -4),
			"Device ID: 3, Name: radiator, Status: OFF\nTemperature: -4°C",
		},
		{
			NewAutomaticDoor(4, "front-door"),
			"Device ID: 4, Name: front-door, Status: OFF\nDoor Status: Locked\nCCTV Status: OFF",
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.device.Kind()), func(t *testing.T) {
			if got := tt.device.Details().String(); got != tt.want {
				t.Errorf("Details().String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetails_Field(t *testing.T) {
	d := NewAutomaticDoor(4, "front-door").Details()

	f, ok := d.Field("camera_on")
	if !ok {
		t.Fatal("Field(camera_on) not found")
	}
	if f.Value != false {
		t.Errorf("camera_on value = %v, want false", f.Value)
	}

	if _, ok := d.Field("brightness"); ok {
		t.Error("door should not report a brightness field")
	}
}

func TestDetails_DoesNotAliasDevice(t *testing.T) {
	l := NewLight(1, "lamp", 10)
	snapshot := l.Details()
	l.SetBrightness(90)

	f, _ := snapshot.Field("brightness")
	if f.Value != 10 {
		t.Errorf("snapshot brightness = %v, want 10", f.Value)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"light", KindLight, false},
		{"FAN", KindFan, false},
		{" heater ", KindHeater, false},
		{"automatic-door", KindAutomaticDoor, false},
		{"Automatic Door", KindAutomaticDoor, false},
		{"toaster", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, ErrInvalidKind) {
			t.Errorf("ParseKind(%q) error = %v, want ErrInvalidKind", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestKind_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"kind: light", KindLight},
		{"kind: Automatic Door", KindAutomaticDoor},
		{"kind: automatic-door", KindAutomaticDoor},
		{"kind: HEATER", KindHeater},
		{"kind: toaster", Kind("toaster")},
	}

	for _, tt := range tests {
		var spec Spec
		if err := yaml.Unmarshal([]byte(tt.input), &spec); err != nil {
			t.Errorf("Unmarshal(%q) error = %v", tt.input, err)
			continue
		}
		if spec.Kind != tt.want {
			t.Errorf("Unmarshal(%q) kind = %q, want %q", tt.input, spec.Kind, tt.want)
		}
	}

	// The unrecognised kind survives decoding and fails validation.
	var spec Spec
	if err := yaml.Unmarshal([]byte("id: 1\nname: x\nkind: toaster"), &spec); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if err := ValidateSpec(spec); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("ValidateSpec() error = %v, want ErrInvalidKind", err)
	}
}

func TestKind_Label(t *testing.T) {
	if got := KindAutomaticDoor.Label(); got != "Automatic Door" {
		t.Errorf("Label() = %q, want %q", got, "Automatic Door")
	}
}
