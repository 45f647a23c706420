package bitarray

import (
	"math"

	"github.com/hupe1980/bitarray/words"
)

// BitsetArray packs count bitsets of identical width into one contiguous
// allocation. Slot i occupies words [i*stride, (i+1)*stride).
//
// The per-slot bit width requested at construction is stored once and used
// by every per-slot query, so padding introduced by rounding up to whole
// words never counts as members.
//
// BitsetArray is not safe for concurrent use.
type BitsetArray struct {
	noCopy noCopy

	bitsPerSlot int
	stride      int
	count       int
	buf         []uint64
	opts        *options
}

// NewArray allocates count zeroed bitsets of bitsPerSlot bits each.
func NewArray(bitsPerSlot, count int, opts ...Option) (*BitsetArray, error) {
	o := applyOptions(opts)
	stride := words.ArraySize(bitsPerSlot)

	total := -1
	switch {
	case bitsPerSlot < 0 || count < 0:
	case count == 0 || stride <= math.MaxInt/count:
		total = stride * count
	}

	buf, err := o.allocate(bitsPerSlot, total)
	if err != nil {
		return nil, err
	}
	return &BitsetArray{
		bitsPerSlot: bitsPerSlot,
		stride:      stride,
		count:       count,
		buf:         buf,
		opts:        o,
	}, nil
}

// Len returns the number of slots.
func (a *BitsetArray) Len() int {
	return a.count
}

// BitsPerSlot returns the logical width of every slot.
func (a *BitsetArray) BitsPerSlot() int {
	return a.bitsPerSlot
}

// StrideWords returns the number of words per slot.
func (a *BitsetArray) StrideWords() int {
	return a.stride
}

func (a *BitsetArray) checkSlot(i int) error {
	if i < 0 || i >= a.count {
		return &SlotError{Slot: i, Count: a.count}
	}
	return nil
}

// Data returns the words of slot i. The slice aliases the array and its
// capacity ends at the slot boundary, so appends cannot spill into slot i+1.
func (a *BitsetArray) Data(i int) ([]uint64, error) {
	if err := a.checkSlot(i); err != nil {
		return nil, err
	}
	lo, hi := i*a.stride, (i+1)*a.stride
	return a.buf[lo:hi:hi], nil
}

// Slot returns a Bitset borrowing slot i. It stays valid until the array is
// released.
func (a *BitsetArray) Slot(i int) (*Bitset, error) {
	data, err := a.Data(i)
	if err != nil {
		return nil, err
	}
	return Wrap(data, a.bitsPerSlot)
}

// SetAll sets every bit of every slot. Each slot's padding stays clear.
func (a *BitsetArray) SetAll() {
	for i := 0; i < a.count; i++ {
		lo := i * a.stride
		words.SetAll(a.buf[lo:lo+a.stride], a.bitsPerSlot)
	}
}

// ClearAll clears every slot.
func (a *BitsetArray) ClearAll() {
	clear(a.buf)
}

// Set sets bit key of slot i.
func (a *BitsetArray) Set(i, key int) error {
	data, err := a.Data(i)
	if err != nil {
		return err
	}
	return words.Set(data, a.bitsPerSlot, key)
}

// Get reports whether bit key of slot i is set.
func (a *BitsetArray) Get(i, key int) (bool, error) {
	data, err := a.Data(i)
	if err != nil {
		return false, err
	}
	return words.Get(data, a.bitsPerSlot, key)
}

// Clear clears bit key of slot i.
func (a *BitsetArray) Clear(i, key int) error {
	data, err := a.Data(i)
	if err != nil {
		return err
	}
	return words.Clear(data, a.bitsPerSlot, key)
}

// Count returns the number of set bits in slot i.
func (a *BitsetArray) Count(i int) (int, error) {
	data, err := a.Data(i)
	if err != nil {
		return 0, err
	}
	return words.Count(data, a.bitsPerSlot), nil
}

// Keys enumerates slot i like Bitset.Keys.
func (a *BitsetArray) Keys(i int, cursor *Cursor, maxNum int) ([]int, error) {
	data, err := a.Data(i)
	if err != nil {
		return nil, err
	}
	return words.Keys(data, a.bitsPerSlot, cursor, maxNum)
}

// Release returns the buffer to its budget. Slots obtained from Slot or Data
// must not be used afterwards. Calling Release more than once is a no-op.
func (a *BitsetArray) Release() {
	if a.buf == nil {
		return
	}
	n := len(a.buf)
	a.buf = nil
	a.count = 0
	a.opts.release(n)
}
