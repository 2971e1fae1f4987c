package period

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrEndBeforeStart    = errors.New("end before start")
	ErrPrecisionMismatch = errors.New("precision does not match")
	ErrInvalidPrecision  = errors.New("invalid precision")
)

// RangeError reports a period whose rounded end precedes its rounded start.
type RangeError struct {
	Start, End time.Time
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("period: end time %s is before start time %s",
		FormatTime(e.End), FormatTime(e.Start))
}

func (e *RangeError) Unwrap() error { return ErrEndBeforeStart }

// MismatchError reports a binary operation between periods of different
// precisions.
type MismatchError struct {
	Left, Right Precision
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("period: %s: %s != %s", ErrPrecisionMismatch, e.Left, e.Right)
}

func (e *MismatchError) Unwrap() error { return ErrPrecisionMismatch }

func checkPrecision(a, b Period) error {
	if a.precision == b.precision {
		return nil
	}
	return &MismatchError{Left: a.precision, Right: b.precision}
}
