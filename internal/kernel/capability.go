package kernel

import (
	"os"
	"strings"
)

// Impl identifies a kernel implementation.
type Impl uint8

const (
	// Scalar processes one word per iteration.
	Scalar Impl = iota
	// Unrolled processes four words per iteration.
	Unrolled
)

// String returns the string representation of an Impl.
func (i Impl) String() string {
	switch i {
	case Scalar:
		return "scalar"
	case Unrolled:
		return "unrolled"
	default:
		return "unknown"
	}
}

// ParseImpl parses a string into an Impl value.
func ParseImpl(s string) (Impl, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar", "generic":
		return Scalar, true
	case "unrolled":
		return Unrolled, true
	default:
		return Scalar, false
	}
}

// EnvOverride is the environment variable consulted at init.
const EnvOverride = "BITARRAY_KERNEL"

var (
	active      Impl
	hasOverride bool

	// set by platform-specific init
	hasPopcount bool
)

func initCapabilities() {
	if override := os.Getenv(EnvOverride); override != "" {
		if impl, ok := ParseImpl(override); ok && isAvailable(impl) {
			hasOverride = true
			use(impl)
			return
		}
	}
	use(selectBest())
}

func isAvailable(impl Impl) bool {
	switch impl {
	case Scalar:
		return true
	case Unrolled:
		return hasPopcount
	default:
		return false
	}
}

func selectBest() Impl {
	if hasPopcount {
		return Unrolled
	}
	return Scalar
}

// Active returns the implementation currently in use.
func Active() Impl {
	return active
}

// IsOverridden returns true if BITARRAY_KERNEL selected the implementation.
func IsOverridden() bool {
	return hasOverride
}

// HasPopcount reports whether the CPU has a native population count.
func HasPopcount() bool {
	return hasPopcount
}
