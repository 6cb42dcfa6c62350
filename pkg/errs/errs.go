// Package errs declares error types used across the editor core. All the
// types have errors.Is/As-friendly value semantics and messages that identify
// the offending argument.
package errs

import "fmt"

// OutOfRange encodes an error where a value is out of its valid range. It is
// returned for programmatic API misuse, such as assigning a selection whose
// offsets exceed the document length. Offsets arriving from the platform
// input channel are clamped instead of reported, since that channel is not a
// programming-contract boundary.
type OutOfRange struct {
	What      string
	ValidLow  int
	ValidHigh int
	Actual    int
}

// Error implements the error interface.
func (e OutOfRange) Error() string {
	if e.ValidHigh < e.ValidLow {
		return fmt.Sprintf("out of range: %s has no valid value, but is %d",
			e.What, e.Actual)
	}
	return fmt.Sprintf("out of range: %s must be from %d to %d, but is %d",
		e.What, e.ValidLow, e.ValidHigh, e.Actual)
}
