package bitarray

// storage is the buffer behind a Bitset. It has exactly two variants:
// ownedStorage, which the Bitset allocated and must release exactly once, and
// borrowedStorage, which belongs to someone else and is never released.
type storage interface {
	words() []uint64
	owned() bool
	release()
}

type ownedStorage struct {
	buf  []uint64
	opts *options

	// recycle, if set, receives the buffer after its words are returned to
	// the budget.
	recycle func([]uint64)
}

func (s *ownedStorage) words() []uint64 { return s.buf }
func (s *ownedStorage) owned() bool     { return true }

func (s *ownedStorage) release() {
	if s.buf == nil {
		return
	}
	buf := s.buf
	s.buf = nil
	s.opts.release(len(buf))
	if s.recycle != nil {
		s.recycle(buf)
	}
}

type borrowedStorage struct {
	buf []uint64
}

func (s *borrowedStorage) words() []uint64 { return s.buf }
func (s *borrowedStorage) owned() bool     { return false }

// release only detaches; the caller's slice is left untouched.
func (s *borrowedStorage) release() { s.buf = nil }

// noCopy may be embedded into structs which must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
