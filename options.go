package bitarray

import (
	"math"

	"github.com/hupe1980/bitarray/words"
)

type options struct {
	logger           *Logger
	budget           *Budget
	metricsCollector MetricsCollector
}

// Option configures owning constructors (New, NewArray, Clone, FromRoaring).
type Option func(*options)

// WithLogger configures the logger used for allocation and release events.
//
// If nil is passed, NoopLogger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithBudget accounts every owned buffer against b. An allocation the budget
// cannot satisfy fails with ErrAllocationFailure wrapping ErrBudgetExceeded.
//
// A nil budget disables accounting.
func WithBudget(b *Budget) Option {
	return func(o *options) {
		o.budget = b
	}
}

// WithMetricsCollector configures a metrics collector for buffer allocations.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

func applyOptions(optFns []Option) *options {
	o := &options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(o)
	}
	return o
}

// allocate reserves and allocates n words for numBits logical bits.
// The reservation is undone if the allocation itself fails.
func (o *options) allocate(numBits, n int) ([]uint64, error) {
	return o.allocateFrom(numBits, n, o.budget.Acquire, nil)
}

// allocateFrom is allocate with a custom budget reservation and an optional
// source of recycled buffers. A recycled buffer of the right length is
// cleared and reused.
func (o *options) allocateFrom(numBits, n int, acquire func(int) error, take func() []uint64) ([]uint64, error) {
	buf, err := o.tryAllocate(numBits, n, acquire, take)
	o.logger.LogAlloc(numBits, n, err)
	o.metricsCollector.RecordAlloc(n, err)
	return buf, err
}

func (o *options) tryAllocate(numBits, n int, acquire func(int) error, take func() []uint64) ([]uint64, error) {
	if numBits < 0 || n < 0 || n > math.MaxInt/8 {
		return nil, words.NewAllocError(numBits, nil)
	}
	if err := acquire(n); err != nil {
		return nil, words.NewAllocError(numBits, err)
	}
	if take != nil {
		if buf := take(); buf != nil && len(buf) == n {
			clear(buf)
			return buf, nil
		}
	}
	return make([]uint64, n), nil
}

// release returns n words to the budget.
func (o *options) release(n int) {
	o.budget.Release(n)
	o.logger.LogRelease(n)
	o.metricsCollector.RecordRelease(n)
}
