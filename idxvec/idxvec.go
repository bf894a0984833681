// Package idxvec implements a small index list: an inline 4-slot buffer
// that spills to a heap-allocated slice on the 5th push. It backs the
// per-key row lists used while building hash tables
// (joins' chained and open-addressing tables) where most keys are unique or near-unique and a
// full slice allocation per key would dominate build cost.
package idxvec

// InlineCapacity is the number of row indices stored without a heap
// allocation.
const InlineCapacity = 4

// Small is a per-key list of row indices (uint32). The zero value is an
// empty, ready-to-use list.
type Small struct {
	inline [InlineCapacity]uint32
	n      int
	spill  []uint32
}

// Push appends a row index, spilling to a heap slice on the 5th element.
func (s *Small) Push(idx uint32) {
	if s.spill != nil {
		s.spill = append(s.spill, idx)
		s.n++
		return
	}
	if s.n < InlineCapacity {
		s.inline[s.n] = idx
		s.n++
		return
	}
	// 5th push: migrate to heap storage.
	s.spill = make([]uint32, InlineCapacity, InlineCapacity*2+1)
	copy(s.spill, s.inline[:])
	s.spill = append(s.spill, idx)
	s.n++
}

// Len returns the number of indices pushed.
func (s *Small) Len() int {
	return s.n
}

// At returns the i-th index pushed, in push order.
func (s *Small) At(i int) uint32 {
	if s.spill != nil {
		return s.spill[i]
	}
	return s.inline[i]
}

// Each calls fn once per stored index, in push order.
func (s *Small) Each(fn func(idx uint32)) {
	if s.spill != nil {
		for _, idx := range s.spill {
			fn(idx)
		}
		return
	}
	for i := 0; i < s.n; i++ {
		fn(s.inline[i])
	}
}

// AppendTo appends every stored index to dst and returns the extended slice.
func (s *Small) AppendTo(dst []uint32) []uint32 {
	if s.spill != nil {
		return append(dst, s.spill...)
	}
	return append(dst, s.inline[:s.n]...)
}

// Spilled reports whether this list has moved its storage to the heap.
func (s *Small) Spilled() bool {
	return s.spill != nil
}

// Reset empties the list, ready for reuse.
func (s *Small) Reset() {
	s.n = 0
	s.spill = nil
}
