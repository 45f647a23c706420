package bitarray

import "github.com/hupe1980/bitarray/internal/resource"

// Budget limits the total number of words held by owning bitsets and arrays
// that were created with WithBudget. It is safe for concurrent use and may be
// shared across any number of containers.
type Budget = resource.Budget

// NewBudget creates a Budget of limitWords words (8 bytes each).
// If limitWords <= 0 usage is tracked but never refused.
func NewBudget(limitWords int64) *Budget {
	return resource.NewBudget(limitWords)
}
