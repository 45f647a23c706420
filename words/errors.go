package words

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocationFailure is returned when a word buffer cannot be obtained.
	ErrAllocationFailure = errors.New("allocation failure")

	// ErrOutOfRange is returned when a bit index or cursor lies outside the bit array.
	ErrOutOfRange = errors.New("index out of range")

	// ErrSizeMismatch is returned when operands or buffers do not share a size.
	ErrSizeMismatch = errors.New("size mismatch")
)

// AllocError describes a failed allocation of Bits bits.
//
// It matches ErrAllocationFailure with errors.Is. The underlying
// error (if any) can be accessed via errors.Unwrap.
type AllocError struct {
	Bits  int
	cause error
}

// NewAllocError returns an *AllocError for numBits caused by cause (may be nil).
func NewAllocError(numBits int, cause error) *AllocError {
	return &AllocError{Bits: numBits, cause: cause}
}

func (e *AllocError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("allocation failure: %d bits: %v", e.Bits, e.cause)
	}
	return fmt.Sprintf("allocation failure: %d bits", e.Bits)
}

func (e *AllocError) Is(target error) bool { return target == ErrAllocationFailure }

func (e *AllocError) Unwrap() error { return e.cause }

// RangeError describes an index outside [0, Limit).
type RangeError struct {
	Index int
	Limit int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("index out of range: %d not in [0, %d)", e.Index, e.Limit)
}

func (e *RangeError) Is(target error) bool { return target == ErrOutOfRange }

// SizeError describes an operand whose size differs from the expected one.
// Unit is "bits" or "words".
type SizeError struct {
	Expected int
	Actual   int
	Unit     string
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("size mismatch: expected %d %s, got %d", e.Expected, e.Unit, e.Actual)
}

func (e *SizeError) Is(target error) bool { return target == ErrSizeMismatch }
