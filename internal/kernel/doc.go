// Package kernel provides the whole-slice word loops used by the bit algebra.
//
// Two implementations exist:
//   - scalar: one word per iteration
//   - unrolled: four words per iteration
//
// Both are pure Go; math/bits.OnesCount64 compiles to the native instruction
// on either path. The CPU flag (POPCNT on amd64, ASIMD on arm64) is only a
// heuristic: a CPU that has it is assumed to have the wide issue that makes
// the unrolled loop pay off, and one without it gets the scalar loop. No
// other code path depends on the flag.
//
// The selection happens once at init. BITARRAY_KERNEL=scalar|unrolled
// overrides it; an unknown or unsupported value falls back to auto-detection.
//
// All kernels assume len(src) >= len(dst). Callers in package words enforce
// that before dispatching.
package kernel
