package bitarray

import (
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/bitarray/words"
)

// Cursor is a resumable position for paginated enumeration with Keys.
// The zero Cursor starts at bit 0.
type Cursor = words.Cursor

// Bitset is a fixed-size packed bit array.
//
// A Bitset either owns its buffer (New, Clone, FromRoaring) or borrows one
// supplied by the caller (Wrap, BitsetArray.Slot). Owned buffers are accounted
// against the configured Budget until Release; borrowed buffers are never
// released by the Bitset, and the caller must keep them alive for as long as
// the Bitset is used.
//
// The zero value is an empty bitset with no buffer.
//
// Bitset is not safe for concurrent use. Copying a Bitset value would alias
// its buffer; use Clone for an independent copy.
type Bitset struct {
	noCopy noCopy

	numBits int
	store   storage
}

// New creates an owning bitset of numBits bits, all clear.
func New(numBits int, opts ...Option) (*Bitset, error) {
	o := applyOptions(opts)
	buf, err := o.allocate(numBits, words.ArraySize(numBits))
	if err != nil {
		return nil, err
	}
	return &Bitset{
		numBits: numBits,
		store:   &ownedStorage{buf: buf, opts: o},
	}, nil
}

// Wrap creates a bitset of numBits bits that borrows buf.
//
// buf must hold at least ArraySize(numBits) words; the bitset views exactly
// that prefix. Writes through the bitset are visible in buf and vice versa.
// Padding bits already set in buf are ignored by every query.
func Wrap(buf []uint64, numBits int) (*Bitset, error) {
	if numBits < 0 {
		return nil, &RangeError{Index: numBits, Limit: 0}
	}
	n := words.ArraySize(numBits)
	if len(buf) < n {
		return nil, &SizeError{Expected: n, Actual: len(buf), Unit: "words"}
	}
	return &Bitset{
		numBits: numBits,
		store:   &borrowedStorage{buf: buf[:n:n]},
	}, nil
}

func (b *Bitset) buf() []uint64 {
	if b == nil || b.store == nil {
		return nil
	}
	return b.store.words()
}

// Len returns the number of logical bits.
func (b *Bitset) Len() int {
	if b == nil {
		return 0
	}
	return b.numBits
}

// ArraySize returns the number of words backing the bitset.
func (b *Bitset) ArraySize() int {
	return words.ArraySize(b.Len())
}

// Words returns the backing words. The slice aliases the bitset's storage.
func (b *Bitset) Words() []uint64 {
	return b.buf()
}

// Owned reports whether the bitset owns its buffer.
func (b *Bitset) Owned() bool {
	return b != nil && b.store != nil && b.store.owned()
}

// Set sets bit key.
func (b *Bitset) Set(key int) error {
	return words.Set(b.buf(), b.numBits, key)
}

// Get reports whether bit key is set.
func (b *Bitset) Get(key int) (bool, error) {
	return words.Get(b.buf(), b.numBits, key)
}

// Clear clears bit key.
func (b *Bitset) Clear(key int) error {
	return words.Clear(b.buf(), b.numBits, key)
}

// SetAll sets every bit.
func (b *Bitset) SetAll() {
	words.SetAll(b.buf(), b.numBits)
}

// ClearAll clears every bit.
func (b *Bitset) ClearAll() {
	words.ClearAll(b.buf(), b.numBits)
}

// IsAllSet reports whether every bit is set.
func (b *Bitset) IsAllSet() bool {
	return words.IsAllSet(b.buf(), b.numBits)
}

// IsAllClear reports whether no bit is set.
func (b *Bitset) IsAllClear() bool {
	return words.IsAllClear(b.buf(), b.numBits)
}

// Count returns the number of set bits.
func (b *Bitset) Count() int {
	return words.Count(b.buf(), b.numBits)
}

// Keys returns set bit indices in ascending order, resuming from cursor.
// See words.Keys for the cursor contract. A nil cursor scans everything from
// bit 0; maxNum <= 0 means unbounded.
func (b *Bitset) Keys(cursor *Cursor, maxNum int) ([]int, error) {
	return words.Keys(b.buf(), b.numBits, cursor, maxNum)
}

// NextSet returns the first set bit at or after from.
func (b *Bitset) NextSet(from int) (int, bool) {
	return words.NextSet(b.buf(), b.numBits, from)
}

// ForEach calls fn for each set bit in ascending order until fn returns false.
func (b *Bitset) ForEach(fn func(key int) bool) {
	words.ForEach(b.buf(), b.numBits, fn)
}

func (b *Bitset) sameSize(other *Bitset) error {
	if other.Len() != b.Len() {
		return &SizeError{Expected: b.Len(), Actual: other.Len(), Unit: "bits"}
	}
	return nil
}

// And keeps only bits also set in other (intersection).
func (b *Bitset) And(other *Bitset) error {
	if err := b.sameSize(other); err != nil {
		return err
	}
	return words.And(b.buf(), other.buf(), b.numBits)
}

// Or adds every bit set in other (union).
func (b *Bitset) Or(other *Bitset) error {
	if err := b.sameSize(other); err != nil {
		return err
	}
	return words.Or(b.buf(), other.buf(), b.numBits)
}

// Exclude clears every bit set in other (difference).
func (b *Bitset) Exclude(other *Bitset) error {
	if err := b.sameSize(other); err != nil {
		return err
	}
	return words.Exclude(b.buf(), other.buf(), b.numBits)
}

// Equal reports whether both bitsets have the same length and the same bits.
func (b *Bitset) Equal(other *Bitset) bool {
	if b.sameSize(other) != nil {
		return false
	}
	return words.Equal(b.buf(), other.buf(), b.numBits)
}

// CopyFrom overwrites b with the contents of other.
func (b *Bitset) CopyFrom(other *Bitset) error {
	if err := b.sameSize(other); err != nil {
		return err
	}
	return words.Copy(b.buf(), other.buf(), b.numBits)
}

// Clone returns an owning deep copy of b, regardless of whether b owns its
// buffer.
func (b *Bitset) Clone(opts ...Option) (*Bitset, error) {
	c, err := New(b.Len(), opts...)
	if err != nil {
		return nil, err
	}
	if err := c.CopyFrom(b); err != nil {
		c.Release()
		return nil, err
	}
	return c, nil
}

// Release gives up the buffer. An owned buffer is returned to its budget; a
// borrowed buffer is left untouched. The bitset is empty afterwards. Calling
// Release more than once is a no-op.
func (b *Bitset) Release() {
	if b == nil {
		return
	}
	if b.store != nil {
		b.store.release()
	}
	b.store = nil
	b.numBits = 0
}

// Dump writes every bit as "len: b0 b1 ... \n" for debugging.
func (b *Bitset) Dump(w io.Writer) error {
	return words.Dump(w, b.buf(), b.numBits)
}

// String returns the set bits as "{k1 k2 ...}".
func (b *Bitset) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	b.ForEach(func(k int) bool {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(strconv.Itoa(k))
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}
