package cast

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every *RangeError.
var ErrOutOfRange = errors.New("cast: value out of range")

// RangeError reports a value that has no representation in the target domain.
type RangeError struct {
	Value  any
	Source Domain
	Target Domain
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("cast: %v (%s) cannot be represented as %s", e.Value, e.Source, e.Target)
}

// Is makes errors.Is(err, ErrOutOfRange) hold.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
