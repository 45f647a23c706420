package words

import "math/bits"

// Cursor is a resumable bit offset for paginated enumeration.
//
// The zero Cursor starts at bit 0. Keys advances a cursor to one past the last
// returned index, or to End(numBits) once the scan reaches the end of the
// array. Any value greater than numBits is exhausted.
type Cursor int

// End returns the sentinel cursor for an exhausted numBits array.
func End(numBits int) Cursor {
	return Cursor(numBits + 1)
}

// Exhausted reports whether c has run past a numBits array.
func (c Cursor) Exhausted(numBits int) bool {
	return int(c) > numBits
}

// Keys returns set bit indices in ascending order.
//
// A nil cursor scans from bit 0 and records nothing. A non-nil cursor selects
// the start bit and is updated on return: to lastReturned+1 if maxNum cut the
// scan short, to End(numBits) otherwise. A cursor already past numBits yields
// no keys and is left untouched. maxNum <= 0 means unbounded.
//
// Words that are entirely zero are skipped without inspecting their bits.
func Keys(buf []uint64, numBits int, cursor *Cursor, maxNum int) ([]int, error) {
	mustHold(buf, numBits)

	start := 0
	if cursor != nil {
		c := int(*cursor)
		if c < 0 {
			return nil, &RangeError{Index: c, Limit: numBits}
		}
		if c > numBits {
			return nil, nil
		}
		start = c
	}

	var keys []int
	next := End(numBits)
	n := ArraySize(numBits)
	first := start >> log2WordBits

scan:
	for wi := first; wi < n; wi++ {
		w := buf[wi]
		if wi == n-1 {
			w &= tailMask(numBits)
		}
		if wi == first {
			w &= allBits << (uint(start) & offsetMask)
		}
		for w != 0 {
			key := wi<<log2WordBits + bits.TrailingZeros64(w)
			keys = append(keys, key)
			w &= w - 1
			if maxNum > 0 && len(keys) >= maxNum {
				next = Cursor(key + 1)
				break scan
			}
		}
	}

	if cursor != nil {
		*cursor = next
	}
	return keys, nil
}

// NextSet returns the first set bit at or after from, or (-1, false) if none.
func NextSet(buf []uint64, numBits, from int) (int, bool) {
	mustHold(buf, numBits)
	if from < 0 {
		from = 0
	}
	if from >= numBits {
		return -1, false
	}

	n := ArraySize(numBits)
	wi := from >> log2WordBits
	w := buf[wi] & (allBits << (uint(from) & offsetMask))
	for {
		if wi == n-1 {
			w &= tailMask(numBits)
		}
		if w != 0 {
			return wi<<log2WordBits + bits.TrailingZeros64(w), true
		}
		wi++
		if wi >= n {
			return -1, false
		}
		w = buf[wi]
	}
}

// ForEach calls fn for every set bit in ascending order until fn returns false.
func ForEach(buf []uint64, numBits int, fn func(key int) bool) {
	mustHold(buf, numBits)
	n := ArraySize(numBits)
	for wi := 0; wi < n; wi++ {
		w := buf[wi]
		if w == 0 {
			continue
		}
		if wi == n-1 {
			w &= tailMask(numBits)
		}
		for w != 0 {
			if !fn(wi<<log2WordBits + bits.TrailingZeros64(w)) {
				return
			}
			w &= w - 1
		}
	}
}
