// Package bitarray provides dense, fixed-size bitsets for marking and set
// algebra over a contiguous integer key space, one bit per key.
//
// It is a building block for graph and index structures: visited-node
// marking during traversal, adjacency or membership sets, filter results.
//
// # Bitset
//
//	visited, _ := bitarray.New(numNodes)
//	defer visited.Release()
//
//	_ = visited.Set(42)
//	seen, _ := visited.Get(42)
//
// A Bitset owns its buffer (New, Clone, FromRoaring) or borrows one (Wrap).
// Only owned buffers are accounted and released; a borrowed buffer must
// outlive the Bitset wrapping it.
//
// # Set Algebra
//
// And, Or and Exclude combine bitsets of equal length in place:
//
//	a.And(b)     // a = a ∩ b
//	a.Or(b)      // a = a ∪ b
//	a.Exclude(b) // a = a \ b
//
// Operands of different length fail with ErrSizeMismatch.
//
// # Paginated Enumeration
//
// Keys walks set bits in ascending order and can resume from a Cursor:
//
//	var cur bitarray.Cursor
//	for !cur.Exhausted(b.Len()) {
//	    page, _ := b.Keys(&cur, 1024)
//	    process(page)
//	}
//
// # BitsetArray
//
// BitsetArray stores many same-width bitsets in a single allocation, for
// example one neighbor set per node:
//
//	adj, _ := bitarray.NewArray(numNodes, numNodes)
//	_ = adj.Set(from, to)
//	degree, _ := adj.Count(from)
//
// # Memory Budget
//
// WithBudget accounts owned buffers against a shared word limit; an
// allocation the budget refuses fails with ErrAllocationFailure:
//
//	budget := bitarray.NewBudget(1 << 20) // 8 MiB
//	b, err := bitarray.New(n, bitarray.WithBudget(budget))
//
// # Pooling and Interop
//
// A Pool recycles scratch bitsets of one size across traversals; Release
// hands the buffer back:
//
//	pool, _ := bitarray.NewPool(numNodes)
//	visited, _ := pool.Get()
//	defer visited.Release()
//
// ToRoaring/FromRoaring and ToBitSet/FromBitSet convert to and from
// github.com/RoaringBitmap/roaring/v2 and github.com/bits-and-blooms/bitset.
//
// # Errors
//
// Misuse is reported, never silently applied:
//   - ErrOutOfRange: bit index or cursor outside the bitset
//   - ErrSizeMismatch: operands of different length
//   - ErrInvalidSlot: BitsetArray slot out of bounds
//   - ErrAllocationFailure: invalid size or budget exhausted
//
// # Thread Safety
//
// Bitset and BitsetArray perform no synchronization. Concurrent access to one
// instance, including a read racing a write, must be guarded by the caller.
// Budget and Pool are safe for concurrent use.
package bitarray
