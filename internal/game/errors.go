package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidShotValue      = errors.New("shot must be between 0 and 10 pins")
	ErrInvalidFrameShotCount = errors.New("frame must be a single strike or exactly two shots")
	ErrInvalidFrameSum       = errors.New("frame cannot knock down more than 10 pins")
	ErrInvalidTenthFrame     = errors.New("tenth frame has a third shot only after a strike or spare")
	ErrInvalidGame           = errors.New("game must have exactly 10 frames with the tenth last")
)

// ValidationError reports which rule a set of shots broke. Rule is one of the
// ErrInvalid* values above and is matched with errors.Is, as is every rule in
// Also.
type ValidationError struct {
	Rule  error
	Also  []error // Further rules the same shots break
	Shots []int
	Final bool
}

func (e *ValidationError) Error() string {
	if e.Final {
		return fmt.Sprintf("tenth frame %v: %v", e.Shots, e.Rule)
	}
	return fmt.Sprintf("frame %v: %v", e.Shots, e.Rule)
}

func (e *ValidationError) Unwrap() []error {
	return append([]error{e.Rule}, e.Also...)
}

func invalid(rule error, shots []int, final bool) *ValidationError {
	return &ValidationError{Rule: rule, Shots: shots, Final: final}
}
