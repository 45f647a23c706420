package words

import (
	"math/bits"

	"github.com/hupe1980/bitarray/internal/kernel"
)

// SetAll sets every logical bit. Interior words are bulk-filled; the final
// word receives exactly the logical mask so padding stays 0.
func SetAll(buf []uint64, numBits int) {
	mustHold(buf, numBits)
	n := ArraySize(numBits)
	if n == 0 {
		return
	}
	kernel.Fill(buf[:n-1], allBits)
	buf[n-1] = tailMask(numBits)
}

// ClearAll zeroes every word, padding included.
func ClearAll(buf []uint64, numBits int) {
	mustHold(buf, numBits)
	kernel.Fill(buf[:ArraySize(numBits)], 0)
}

// IsAllSet reports whether every logical bit is 1. Interior words are
// compared as whole words, then the final word under the logical mask.
// An empty array is trivially all set.
func IsAllSet(buf []uint64, numBits int) bool {
	mustHold(buf, numBits)
	n := ArraySize(numBits)
	if n == 0 {
		return true
	}
	if !kernel.IsOnes(buf[:n-1]) {
		return false
	}
	tail := tailMask(numBits)
	return buf[n-1]&tail == tail
}

// IsAllClear reports whether every logical bit is 0.
//
// Interior words are tested word-at-a-time. The final word is masked, so
// padding left dirty by a foreign buffer does not produce a false negative.
func IsAllClear(buf []uint64, numBits int) bool {
	mustHold(buf, numBits)
	n := ArraySize(numBits)
	if n == 0 {
		return true
	}
	return kernel.IsZero(buf[:n-1]) && buf[n-1]&tailMask(numBits) == 0
}

// Count returns the number of set logical bits.
func Count(buf []uint64, numBits int) int {
	mustHold(buf, numBits)
	n := ArraySize(numBits)
	if n == 0 {
		return 0
	}
	return kernel.Popcount(buf[:n-1]) + bits.OnesCount64(buf[n-1]&tailMask(numBits))
}

func checkPair(dst, src []uint64, numBits int) (int, error) {
	if err := checkBuf(dst, numBits); err != nil {
		return 0, err
	}
	if err := checkBuf(src, numBits); err != nil {
		return 0, err
	}
	return ArraySize(numBits), nil
}

// And performs dst &= src over ArraySize(numBits) words.
func And(dst, src []uint64, numBits int) error {
	n, err := checkPair(dst, src, numBits)
	if err != nil {
		return err
	}
	kernel.And(dst[:n], src[:n])
	return nil
}

// Or performs dst |= src over ArraySize(numBits) words. Padding of dst is
// cleared afterwards.
func Or(dst, src []uint64, numBits int) error {
	n, err := checkPair(dst, src, numBits)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	kernel.Or(dst[:n], src[:n])
	dst[n-1] &= tailMask(numBits)
	return nil
}

// Exclude performs dst &^= src (set difference) over ArraySize(numBits) words.
func Exclude(dst, src []uint64, numBits int) error {
	n, err := checkPair(dst, src, numBits)
	if err != nil {
		return err
	}
	kernel.AndNot(dst[:n], src[:n])
	return nil
}

// Equal reports whether a and b hold the same logical bits. Interior words
// are compared whole; the final word is compared under the logical mask.
func Equal(a, b []uint64, numBits int) bool {
	mustHold(a, numBits)
	mustHold(b, numBits)
	n := ArraySize(numBits)
	if n == 0 {
		return true
	}
	if !kernel.Equal(a[:n-1], b[:n-1]) {
		return false
	}
	tail := tailMask(numBits)
	return a[n-1]&tail == b[n-1]&tail
}

// Copy copies ArraySize(numBits) words from src into dst. Padding of dst is
// cleared afterwards.
func Copy(dst, src []uint64, numBits int) error {
	n, err := checkPair(dst, src, numBits)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	copy(dst[:n], src[:n])
	dst[n-1] &= tailMask(numBits)
	return nil
}
