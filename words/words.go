package words

import "math"

const (
	// WordBits is the number of bits per word.
	WordBits = 64

	log2WordBits = 6
	offsetMask   = WordBits - 1
	allBits      = ^uint64(0)

	// maxWords bounds a single buffer so its byte size fits in an int.
	maxWords = math.MaxInt / 8
)

// ArraySize returns the number of words needed to hold numBits bits:
// numBits/64 rounded up. Negative sizes yield 0.
func ArraySize(numBits int) int {
	if numBits <= 0 {
		return 0
	}
	n := numBits >> log2WordBits
	if numBits&offsetMask != 0 {
		n++
	}
	return n
}

// Allocate returns a zeroed buffer of ArraySize(numBits) words.
func Allocate(numBits int) ([]uint64, error) {
	if numBits < 0 {
		return nil, NewAllocError(numBits, nil)
	}
	n := ArraySize(numBits)
	if n > maxWords {
		return nil, NewAllocError(numBits, nil)
	}
	return make([]uint64, n), nil
}

// locate maps a bit index to its word index and in-word mask.
func locate(key int) (word int, mask uint64) {
	return key >> log2WordBits, uint64(1) << (uint(key) & offsetMask)
}

// tailMask returns the mask of logical bits in the final word of a numBits array.
func tailMask(numBits int) uint64 {
	r := uint(numBits) & offsetMask
	if r == 0 {
		return allBits
	}
	return uint64(1)<<r - 1
}

func checkKey(numBits, key int) error {
	if key < 0 || key >= numBits {
		return &RangeError{Index: key, Limit: numBits}
	}
	return nil
}

func checkBuf(buf []uint64, numBits int) error {
	if n := ArraySize(numBits); len(buf) < n {
		return &SizeError{Expected: n, Actual: len(buf), Unit: "words"}
	}
	return nil
}

func mustHold(buf []uint64, numBits int) {
	if err := checkBuf(buf, numBits); err != nil {
		panic(err)
	}
}

// Set sets bit key.
func Set(buf []uint64, numBits, key int) error {
	if err := checkKey(numBits, key); err != nil {
		return err
	}
	if err := checkBuf(buf, numBits); err != nil {
		return err
	}
	w, m := locate(key)
	buf[w] |= m
	return nil
}

// Clear clears bit key.
func Clear(buf []uint64, numBits, key int) error {
	if err := checkKey(numBits, key); err != nil {
		return err
	}
	if err := checkBuf(buf, numBits); err != nil {
		return err
	}
	w, m := locate(key)
	buf[w] &^= m
	return nil
}

// Get reports whether bit key is set.
func Get(buf []uint64, numBits, key int) (bool, error) {
	if err := checkKey(numBits, key); err != nil {
		return false, err
	}
	if err := checkBuf(buf, numBits); err != nil {
		return false, err
	}
	w, m := locate(key)
	return buf[w]&m != 0, nil
}
