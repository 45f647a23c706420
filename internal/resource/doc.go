// Package resource implements the word budget shared by bitset allocations.
//
// Acquisition is fail-fast: a Budget backed by a weighted semaphore either
// reserves the requested words immediately or returns ErrBudgetExceeded.
// Callers pair every successful Acquire with exactly one Release.
//
//	b := resource.NewBudget(1 << 20) // 1M words = 8 MiB
//	if err := b.Acquire(n); err != nil {
//	    // refuse the allocation
//	}
//	defer b.Release(n)
//
// All methods handle a nil *Budget gracefully; they become no-ops, so an
// unconfigured budget needs no nil checks at call sites.
package resource
