// Package groupby implements group-id assignment: mapping each row's key
// to a dense, first-occurrence-ordered group id via an open-addressing
// hash table.
//
// The table itself (power-of-two bucket count, linear probing, collision
// resolved by re-checking the stored key before accepting a match) follows
// the same open-addressing shape joins uses for its hash-join build side
// and is grounded on this module's idxvec.Small-backed per-bucket row
// lists pattern, generalized here to a single dense group id per bucket
// instead of a row-index list.
package groupby

import "github.com/vectorframe/corekernel/hashing"

const maxLoadFactorNum = 1 // table is sized up front to keep load factor <= 1/2
const maxLoadFactorDen = 2

type i64Table struct {
	keys     []int64
	groupIDs []int32
	occupied []bool
	mask     uint64
}

func newI64Table(expectedRows int) *i64Table {
	size := nextPow2(expectedRows*maxLoadFactorDen/maxLoadFactorNum + 1)
	if size < 8 {
		size = 8
	}
	return &i64Table{
		keys:     make([]int64, size),
		groupIDs: make([]int32, size),
		occupied: make([]bool, size),
		mask:     uint64(size - 1),
	}
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// lookupOrInsert returns the existing group id for key, or inserts it with
// newGroupID and returns (newGroupID, true) if key was not present.
func (t *i64Table) lookupOrInsert(key int64, newGroupID int32) (int32, bool) {
	idx := hashing.FastInt64(uint64(key)) & t.mask
	for {
		if !t.occupied[idx] {
			t.occupied[idx] = true
			t.keys[idx] = key
			t.groupIDs[idx] = newGroupID
			return newGroupID, true
		}
		if t.keys[idx] == key {
			return t.groupIDs[idx], false
		}
		idx = (idx + 1) & t.mask
	}
}

// GroupByI64 assigns each row in keys a dense group id, 0-based in the
// order each distinct key is first seen, and returns the id vector plus
// the number of distinct groups.
func GroupByI64(keys []int64) (groupIDs []int32, numGroups int) {
	n := len(keys)
	table := newI64Table(n)
	groupIDs = make([]int32, n)
	next := int32(0)
	for i, k := range keys {
		id, inserted := table.lookupOrInsert(k, next)
		groupIDs[i] = id
		if inserted {
			next++
		}
	}
	return groupIDs, int(next)
}

// GroupByI64Extended is GroupByI64 plus, per group, the row index where
// that group's key first appeared and the total row count belonging to
// that group.
func GroupByI64Extended(keys []int64) (groupIDs []int32, firstRowIdx []int32, groupCounts []int32, numGroups int) {
	n := len(keys)
	table := newI64Table(n)
	groupIDs = make([]int32, n)
	next := int32(0)
	for i, k := range keys {
		id, inserted := table.lookupOrInsert(k, next)
		groupIDs[i] = id
		if inserted {
			firstRowIdx = append(firstRowIdx, int32(i))
			groupCounts = append(groupCounts, 0)
			next++
		}
		groupCounts[id]++
	}
	return groupIDs, firstRowIdx, groupCounts, int(next)
}

// Keys reconstructs the distinct key per group id, in first-occurrence
// order, from the original key column and the group ids GroupByI64
// produced for it.
func Keys(originalKeys []int64, groupIDs []int32, numGroups int) []int64 {
	out := make([]int64, numGroups)
	seen := make([]bool, numGroups)
	filled := 0
	for i, id := range groupIDs {
		if !seen[id] {
			out[id] = originalKeys[i]
			seen[id] = true
			filled++
			if filled == numGroups {
				break
			}
		}
	}
	return out
}

// SumResult is the fused group-by-sum output: the distinct keys in
// first-occurrence order and the per-group sum of values.
type SumResult struct {
	Keys      []int64
	Sums      []float64
	NumGroups int
}

// SumI64KeyF64Value builds group ids with GroupByI64, then accumulates
// per-group sums in a second pass over values, all in one call.
func SumI64KeyF64Value(keys []int64, values []float64) SumResult {
	n := len(keys)
	groupIDs, numGroups := GroupByI64(keys)
	sums := make([]float64, numGroups)
	for i := 0; i < n; i++ {
		sums[groupIDs[i]] += values[i]
	}
	return SumResult{Keys: Keys(keys, groupIDs, numGroups), Sums: sums, NumGroups: numGroups}
}

// MultiAggResult is the fused group-by output for sum/min/max/count in one
// call.
type MultiAggResult struct {
	Keys      []int64
	Sums      []float64
	Mins      []float64
	Maxs      []float64
	Counts    []int64
	NumGroups int
}

// MultiAggI64KeyF64Value builds group ids with GroupByI64Extended, then
// accumulates sum, min, max, and count per group in one further pass over
// values. Mins/maxs are seeded from the
// first value seen for each group rather than type extremes, since the
// first occurrence is already known from GroupByI64Extended.
func MultiAggI64KeyF64Value(keys []int64, values []float64) MultiAggResult {
	groupIDs, firstRowIdx, _, numGroups := GroupByI64Extended(keys)
	sums := make([]float64, numGroups)
	mins := make([]float64, numGroups)
	maxs := make([]float64, numGroups)
	counts := make([]int64, numGroups)
	for g := 0; g < numGroups; g++ {
		v := values[firstRowIdx[g]]
		mins[g] = v
		maxs[g] = v
	}
	for i, id := range groupIDs {
		v := values[i]
		sums[id] += v
		if v < mins[id] {
			mins[id] = v
		}
		if v > maxs[id] {
			maxs[id] = v
		}
		counts[id]++
	}
	return MultiAggResult{
		Keys:      Keys(keys, groupIDs, numGroups),
		Sums:      sums,
		Mins:      mins,
		Maxs:      maxs,
		Counts:    counts,
		NumGroups: numGroups,
	}
}
