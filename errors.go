package bitarray

import (
	"errors"
	"fmt"

	"github.com/hupe1980/bitarray/internal/resource"
	"github.com/hupe1980/bitarray/words"
)

var (
	// ErrAllocationFailure is returned when a word buffer cannot be obtained,
	// either because the size is invalid or because a Budget refused it.
	ErrAllocationFailure = words.ErrAllocationFailure

	// ErrOutOfRange is returned when a bit index or cursor lies outside the bitset.
	ErrOutOfRange = words.ErrOutOfRange

	// ErrSizeMismatch is returned by binary operations between bitsets of
	// different length, and when an adopted buffer is too short.
	ErrSizeMismatch = words.ErrSizeMismatch

	// ErrInvalidSlot is returned when a BitsetArray slot index is out of bounds.
	ErrInvalidSlot = errors.New("invalid slot")

	// ErrBudgetExceeded is the cause of an allocation refused by a Budget.
	ErrBudgetExceeded = resource.ErrBudgetExceeded
)

type (
	// AllocError describes a failed allocation. It matches ErrAllocationFailure.
	AllocError = words.AllocError

	// RangeError describes an index outside [0, Limit). It matches ErrOutOfRange.
	RangeError = words.RangeError

	// SizeError describes mismatched operand sizes. It matches ErrSizeMismatch.
	SizeError = words.SizeError
)

// SlotError describes a slot index outside [0, Count).
type SlotError struct {
	Slot  int
	Count int
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("invalid slot: %d not in [0, %d)", e.Slot, e.Count)
}

func (e *SlotError) Is(target error) bool { return target == ErrInvalidSlot }
