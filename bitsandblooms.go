package bitarray

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/bitarray/words"
)

// ToBitSet returns a bits-and-blooms copy of b with length Len().
//
// Both types store bit i in word i/64 at position i%64, so the conversion is a
// word copy with the padding cleared.
func (b *Bitset) ToBitSet() *bitset.BitSet {
	src := b.buf()
	dst := make([]uint64, len(src))
	copy(dst, src)
	if n := len(dst); n > 0 && b.Len()%words.WordBits != 0 {
		dst[n-1] &= 1<<(uint(b.Len())%words.WordBits) - 1
	}
	return bitset.FromWithLength(uint(b.Len()), dst)
}

// FromBitSet creates an owning bitset of numBits bits holding every member of
// bs. A member at or above numBits fails with ErrOutOfRange.
func FromBitSet(bs *bitset.BitSet, numBits int, opts ...Option) (*Bitset, error) {
	if numBits >= 0 {
		if k, ok := bs.NextSet(uint(numBits)); ok {
			return nil, fmt.Errorf("%w: bit %d does not fit %d bits", ErrOutOfRange, k, numBits)
		}
	}
	b, err := New(numBits, opts...)
	if err != nil {
		return nil, err
	}
	src := bs.Words()
	dst := b.buf()
	copy(dst, src[:min(len(src), len(dst))])
	return b, nil
}

// OrBitSet sets every member of bs in b. A member at or above Len() fails with
// ErrOutOfRange and leaves b unchanged.
func (b *Bitset) OrBitSet(bs *bitset.BitSet) error {
	if k, ok := bs.NextSet(uint(b.Len())); ok {
		return fmt.Errorf("%w: bit %d does not fit %d bits", ErrOutOfRange, k, b.Len())
	}
	src := bs.Words()
	dst := b.buf()
	for i := range min(len(src), len(dst)) {
		dst[i] |= src[i]
	}
	return nil
}
