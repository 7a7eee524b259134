package device

import "fmt"

// base holds the state shared by every variant. It is embedded, not
// exposed, so power can only change through TurnOn and TurnOff.
type base struct {
	id   int
	name string
	on   bool
}

func newBase(id int, name string) base {
	return base{id: id, name: name}
}

// ID returns the device identifier.
func (b *base) ID() int { return b.id }

// Name returns the device display name.
func (b *base) Name() string { return b.name }

// PoweredOn reports whether the device is switched on.
func (b *base) PoweredOn() bool { return b.on }

// TurnOn switches the device on.
func (b *base) TurnOn() Result {
	b.on = true
	return b.result(fmt.Sprintf("%s is now ON.", b.name))
}

// TurnOff switches the device off.
func (b *base) TurnOff() Result {
	b.on = false
	return b.result(fmt.Sprintf("%s is now OFF.", b.name))
}

func (b *base) result(msg string) Result {
	return Result{DeviceID: b.id, Message: msg}
}

func (b *base) details(kind Kind, fields ...Field) Details {
	return Details{
		ID:     b.id,
		Name:   b.name,
		Kind:   kind,
		On:     b.on,
		Fields: fields,
	}
}

// clamp constrains v to [lo, hi].
func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
