package resource

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// WordBytes is the size of one accounted word.
const WordBytes = 8

// ErrBudgetExceeded is returned when an acquisition would exceed the limit.
var ErrBudgetExceeded = errors.New("word budget exceeded")

// Budget tracks and optionally limits the number of words held by bitset buffers.
//
// A Budget is safe for concurrent use and may be shared by any number of
// containers. All methods are no-ops on a nil *Budget.
type Budget struct {
	limit int64
	sem   *semaphore.Weighted // nil if unlimited
	used  atomic.Int64
	peak  atomic.Int64
}

// NewBudget creates a budget of limitWords words. If limitWords <= 0 usage is
// tracked but never refused.
func NewBudget(limitWords int64) *Budget {
	b := &Budget{}
	if limitWords > 0 {
		b.limit = limitWords
		b.sem = semaphore.NewWeighted(limitWords)
	}
	return b
}

// Acquire reserves n words. It never blocks: if the limit would be exceeded
// it returns ErrBudgetExceeded and reserves nothing.
func (b *Budget) Acquire(n int) error {
	if b == nil || n <= 0 {
		return nil
	}

	if b.sem != nil && !b.sem.TryAcquire(int64(n)) {
		return ErrBudgetExceeded
	}

	b.track(n)
	return nil
}

// Wait reserves n words, blocking until enough words are released or ctx is
// done. A request larger than the whole limit can never succeed and fails
// with ErrBudgetExceeded immediately. Like Acquire, a nil budget or n <= 0
// reserves nothing and returns nil without consulting ctx.
func (b *Budget) Wait(ctx context.Context, n int) error {
	if b == nil || n <= 0 {
		return nil
	}

	if b.sem != nil {
		if int64(n) > b.limit {
			return ErrBudgetExceeded
		}
		if err := b.sem.Acquire(ctx, int64(n)); err != nil {
			return err
		}
	}

	b.track(n)
	return nil
}

func (b *Budget) track(n int) {
	used := b.used.Add(int64(n))
	for {
		peak := b.peak.Load()
		if used <= peak || b.peak.CompareAndSwap(peak, used) {
			return
		}
	}
}

// Release returns n previously acquired words.
func (b *Budget) Release(n int) {
	if b == nil || n <= 0 {
		return
	}

	if b.sem != nil {
		b.sem.Release(int64(n))
	}
	b.used.Add(-int64(n))
}

// InUse returns the number of words currently reserved.
func (b *Budget) InUse() int64 {
	if b == nil {
		return 0
	}
	return b.used.Load()
}

// Peak returns the highest number of words reserved at once.
func (b *Budget) Peak() int64 {
	if b == nil {
		return 0
	}
	return b.peak.Load()
}

// Limit returns the configured limit in words (0 if unlimited).
func (b *Budget) Limit() int64 {
	if b == nil {
		return 0
	}
	return b.limit
}

// Available returns the words that can still be acquired, or -1 if unlimited.
func (b *Budget) Available() int64 {
	if b == nil || b.limit == 0 {
		return -1
	}
	return b.limit - b.used.Load()
}
