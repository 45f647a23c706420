package bitarray

import (
	"context"
	"sync"

	"github.com/hupe1980/bitarray/words"
)

// Pool hands out owned bitsets of one fixed size and recycles their buffers.
//
// A bitset obtained from Get behaves like one from New: it starts clear, its
// words count against the pool's Budget while it is live, and Release returns
// them. Release also hands the buffer back to the pool, so the next Get can
// skip the allocation. A released bitset must not be used again.
//
// Pool is safe for concurrent use; the bitsets it returns are not.
type Pool struct {
	numBits int
	opts    *options
	bufs    sync.Pool
}

// NewPool creates a pool of numBits-bit bitsets. The options apply to every
// bitset the pool hands out.
func NewPool(numBits int, opts ...Option) (*Pool, error) {
	if numBits < 0 {
		return nil, words.NewAllocError(numBits, nil)
	}
	return &Pool{
		numBits: numBits,
		opts:    applyOptions(opts),
	}, nil
}

// Len returns the bit count of the bitsets handed out by p.
func (p *Pool) Len() int { return p.numBits }

// Get returns a clear owned bitset, reusing a recycled buffer when one is
// available. It fails immediately if the budget is exhausted.
func (p *Pool) Get() (*Bitset, error) {
	return p.get(p.opts.budget.Acquire)
}

// GetContext is like Get but waits for budget words to be released instead of
// failing. It returns an AllocError wrapping ctx.Err() if ctx ends first.
func (p *Pool) GetContext(ctx context.Context) (*Bitset, error) {
	return p.get(func(n int) error {
		return p.opts.budget.Wait(ctx, n)
	})
}

func (p *Pool) get(acquire func(int) error) (*Bitset, error) {
	buf, err := p.opts.allocateFrom(p.numBits, words.ArraySize(p.numBits), acquire, p.take)
	if err != nil {
		return nil, err
	}
	return &Bitset{
		numBits: p.numBits,
		store:   &ownedStorage{buf: buf, opts: p.opts, recycle: p.put},
	}, nil
}

func (p *Pool) take() []uint64 {
	if v, ok := p.bufs.Get().(*[]uint64); ok {
		return *v
	}
	return nil
}

func (p *Pool) put(buf []uint64) {
	p.bufs.Put(&buf)
}
