package device

import (
	"fmt"
	"strings"
)

// maxNameLength is the longest accepted device name.
const maxNameLength = 100

// Pre-computed validation set for O(1) kind lookups.
var validKinds map[Kind]struct{}

func init() {
	validKinds = make(map[Kind]struct{}, len(AllKinds()))
	for _, k := range AllKinds() {
		validKinds[k] = struct{}{}
	}
}

// ValidateSpec checks that a Spec describes a device that can be built.
// Any integer is a valid ID, negative ones included.
// Returns an error describing the first validation failure found.
func ValidateSpec(s Spec) error {
	if err := ValidateName(s.Name); err != nil {
		return err
	}
	if !IsValidKind(s.Kind) {
		return fmt.Errorf("%w: %q", ErrInvalidKind, s.Kind)
	}
	return nil
}

// ValidateName checks that a device name is non-empty and not too long.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidName)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidName, maxNameLength)
	}
	return nil
}

// IsValidKind reports whether k is a known device kind.
func IsValidKind(k Kind) bool {
	_, ok := validKinds[k]
	return ok
}
