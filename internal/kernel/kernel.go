package kernel

import "math/bits"

// Function pointers swapped by use(). Scalar versions are the default.
var (
	kernelAnd      = andScalar
	kernelAndNot   = andNotScalar
	kernelOr       = orScalar
	kernelPopcount = popcountScalar
	kernelFill     = fillScalar
	kernelIsZero   = isZeroScalar
	kernelIsOnes   = isOnesScalar
	kernelEqual    = equalScalar
)

func use(impl Impl) {
	active = impl
	switch impl {
	case Unrolled:
		kernelAnd = andUnrolled
		kernelAndNot = andNotUnrolled
		kernelOr = orUnrolled
		kernelPopcount = popcountUnrolled
		kernelFill = fillUnrolled
		kernelIsZero = isZeroUnrolled
		kernelIsOnes = isOnesUnrolled
		kernelEqual = equalUnrolled
	default:
		kernelAnd = andScalar
		kernelAndNot = andNotScalar
		kernelOr = orScalar
		kernelPopcount = popcountScalar
		kernelFill = fillScalar
		kernelIsZero = isZeroScalar
		kernelIsOnes = isOnesScalar
		kernelEqual = equalScalar
	}
}

// Use switches to impl regardless of CPU support and returns a function that
// restores the previous selection. Both implementations are pure Go, so this
// is always safe; it exists for tests and benchmarks.
func Use(impl Impl) (restore func()) {
	prev := active
	use(impl)
	return func() { use(prev) }
}

// And performs dst[i] &= src[i].
func And(dst, src []uint64) { kernelAnd(dst, src) }

// AndNot performs dst[i] &^= src[i].
func AndNot(dst, src []uint64) { kernelAndNot(dst, src) }

// Or performs dst[i] |= src[i].
func Or(dst, src []uint64) { kernelOr(dst, src) }

// Popcount counts all set bits across words.
func Popcount(words []uint64) int { return kernelPopcount(words) }

// Fill stores v into every word.
func Fill(dst []uint64, v uint64) { kernelFill(dst, v) }

// IsZero reports whether every word is 0.
func IsZero(words []uint64) bool { return kernelIsZero(words) }

// IsOnes reports whether every word is all ones.
func IsOnes(words []uint64) bool { return kernelIsOnes(words) }

// Equal reports whether a[i] == b[i] for every i < len(a).
func Equal(a, b []uint64) bool { return kernelEqual(a, b) }

func andScalar(dst, src []uint64) {
	for i := range dst {
		dst[i] &= src[i]
	}
}

func andNotScalar(dst, src []uint64) {
	for i := range dst {
		dst[i] &^= src[i]
	}
}

func orScalar(dst, src []uint64) {
	for i := range dst {
		dst[i] |= src[i]
	}
}

func popcountScalar(words []uint64) int {
	count := 0
	for _, w := range words {
		count += bits.OnesCount64(w)
	}
	return count
}

func fillScalar(dst []uint64, v uint64) {
	for i := range dst {
		dst[i] = v
	}
}

func isZeroScalar(words []uint64) bool {
	for _, w := range words {
		if w != 0 {
			return false
		}
	}
	return true
}

func isOnesScalar(words []uint64) bool {
	for _, w := range words {
		if w != ^uint64(0) {
			return false
		}
	}
	return true
}

func equalScalar(a, b []uint64) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func andUnrolled(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &= src[i]
		dst[i+1] &= src[i+1]
		dst[i+2] &= src[i+2]
		dst[i+3] &= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &= src[i]
	}
}

func andNotUnrolled(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &^= src[i]
		dst[i+1] &^= src[i+1]
		dst[i+2] &^= src[i+2]
		dst[i+3] &^= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &^= src[i]
	}
}

func orUnrolled(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] |= src[i]
		dst[i+1] |= src[i+1]
		dst[i+2] |= src[i+2]
		dst[i+3] |= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] |= src[i]
	}
}

func popcountUnrolled(words []uint64) int {
	count := 0
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += bits.OnesCount64(words[i])
		count += bits.OnesCount64(words[i+1])
		count += bits.OnesCount64(words[i+2])
		count += bits.OnesCount64(words[i+3])
	}
	for ; i < len(words); i++ {
		count += bits.OnesCount64(words[i])
	}
	return count
}

func fillUnrolled(dst []uint64, v uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] = v
		dst[i+1] = v
		dst[i+2] = v
		dst[i+3] = v
	}
	for ; i < len(dst); i++ {
		dst[i] = v
	}
}

func isZeroUnrolled(words []uint64) bool {
	i := 0
	for ; i+4 <= len(words); i += 4 {
		if words[i]|words[i+1]|words[i+2]|words[i+3] != 0 {
			return false
		}
	}
	for ; i < len(words); i++ {
		if words[i] != 0 {
			return false
		}
	}
	return true
}

func isOnesUnrolled(words []uint64) bool {
	i := 0
	for ; i+4 <= len(words); i += 4 {
		if words[i]&words[i+1]&words[i+2]&words[i+3] != ^uint64(0) {
			return false
		}
	}
	for ; i < len(words); i++ {
		if words[i] != ^uint64(0) {
			return false
		}
	}
	return true
}

func equalUnrolled(a, b []uint64) bool {
	i := 0
	for ; i+4 <= len(a); i += 4 {
		if (a[i]^b[i])|(a[i+1]^b[i+1])|(a[i+2]^b[i+2])|(a[i+3]^b[i+3]) != 0 {
			return false
		}
	}
	for ; i < len(a); i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
