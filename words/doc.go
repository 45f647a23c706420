// Package words implements the stateless bit algebra over packed uint64 words.
//
// Every function takes the caller's buffer and the logical bit count
// explicitly; nothing is cached between calls. Bit i lives in word i>>6 at
// offset i&63. A buffer for n bits holds ArraySize(n) words; the bits of the
// final word at or beyond n are padding.
//
// # Padding
//
// Padding never leaks into a result. SetAll writes the final word as the exact
// logical mask, Or and Copy re-mask the final word, and every query (Count,
// IsAllSet, IsAllClear, Equal, Keys) masks the final word before inspecting
// it. A buffer adopted from elsewhere may therefore carry arbitrary padding
// without producing wrong answers.
//
// # Preconditions
//
// Bit indices are checked and reported as *RangeError (errors.Is
// ErrOutOfRange). Binary operations report operands shorter than
// ArraySize(n) as *SizeError (errors.Is ErrSizeMismatch). Single-buffer bulk
// operations that return no error panic with a *SizeError when handed a
// buffer shorter than ArraySize(n), the same way slice indexing would.
//
// # Concurrency
//
// Nothing here synchronizes. Concurrent use of one buffer, even a Count racing
// a Set, is a data race; callers hold an external lock spanning each logical
// operation.
package words
