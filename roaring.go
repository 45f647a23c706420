package bitarray

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/bitarray/words"
)

// ToRoaring returns a new roaring bitmap holding the set bits of b.
// Members above math.MaxUint32 cannot be represented and yield ErrOutOfRange.
func (b *Bitset) ToRoaring() (*roaring.Bitmap, error) {
	rb := roaring.New()

	batch := make([]uint32, 0, 256)
	var err error
	b.ForEach(func(k int) bool {
		if uint64(k) > math.MaxUint32 {
			err = fmt.Errorf("%w: bit %d exceeds the 32-bit roaring domain", ErrOutOfRange, k)
			return false
		}
		batch = append(batch, uint32(k))
		if len(batch) == cap(batch) {
			rb.AddMany(batch)
			batch = batch[:0]
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	rb.AddMany(batch)
	return rb, nil
}

// FromRoaring creates an owning bitset of numBits bits holding the members
// of rb. Members >= numBits yield ErrOutOfRange.
func FromRoaring(rb *roaring.Bitmap, numBits int, opts ...Option) (*Bitset, error) {
	if err := checkRoaringDomain(rb, numBits); err != nil {
		return nil, err
	}
	b, err := New(numBits, opts...)
	if err != nil {
		return nil, err
	}
	orRoaring(b.buf(), b.numBits, rb)
	return b, nil
}

// OrRoaring adds every member of rb. Members >= Len() yield ErrOutOfRange
// and leave b unchanged.
func (b *Bitset) OrRoaring(rb *roaring.Bitmap) error {
	if err := checkRoaringDomain(rb, b.numBits); err != nil {
		return err
	}
	orRoaring(b.buf(), b.numBits, rb)
	return nil
}

// AndRoaring keeps only bits that are members of rb.
func (b *Bitset) AndRoaring(rb *roaring.Bitmap) {
	buf := b.buf()
	words.ForEach(buf, b.numBits, func(k int) bool {
		if uint64(k) > math.MaxUint32 || !rb.Contains(uint32(k)) {
			_ = words.Clear(buf, b.numBits, k)
		}
		return true
	})
}

// ExcludeRoaring clears every bit that is a member of rb. Members outside
// the bitset are ignored.
func (b *Bitset) ExcludeRoaring(rb *roaring.Bitmap) {
	buf := b.buf()
	it := rb.Iterator()
	for it.HasNext() {
		k := int(it.Next())
		if k >= b.numBits {
			return
		}
		_ = words.Clear(buf, b.numBits, k)
	}
}

func checkRoaringDomain(rb *roaring.Bitmap, numBits int) error {
	if rb.IsEmpty() {
		return nil
	}
	if maxKey := int(rb.Maximum()); maxKey >= numBits {
		return &RangeError{Index: maxKey, Limit: numBits}
	}
	return nil
}

// orRoaring sets every member of rb; the caller has checked the domain.
func orRoaring(buf []uint64, numBits int, rb *roaring.Bitmap) {
	it := rb.Iterator()
	for it.HasNext() {
		_ = words.Set(buf, numBits, int(it.Next()))
	}
}
