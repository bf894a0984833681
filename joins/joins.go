// Package joins implements join kernels: hash join (inner and left, with
// chained and open-addressing build variants, a cardinality estimator for
// table sizing, and a parallel radix-partitioned build/probe path) and
// sort-merge join.
//
// The chained hash table (a per-bucket idxvec.Small row list) is the
// classic bucket-chaining design; it is grounded here on groupby's
// open-addressing table for the alternate build variant, generalized from
// "one group id per key" to "one row-index list per key" since a join's
// right side can have duplicate keys that groupby's first-occurrence
// semantics would otherwise collapse. The radix-partitioned parallel build
// mirrors sorting's histogram-bucket-then-scatter shape, partitioning rows
// by a hash digit instead of sorting by key.
package joins

import (
	"github.com/vectorframe/corekernel/hashing"
	"github.com/vectorframe/corekernel/idxvec"
	"github.com/vectorframe/corekernel/sorting"
	"github.com/vectorframe/corekernel/workerpool"
)

const (
	cardinalitySampleSize  = 256
	cardinalityBuckets     = 512
	targetChainLength      = 1.5
	tableSizeMinMultiplier = 4
	tableSizeMaxMultiplier = 16

	radixPartitionBits  = 8
	radixPartitionCount = 1 << radixPartitionBits
	parallelJoinMinRows = 50000
)

// EstimateTableSize samples up to cardinalitySampleSize keys from
// rightKeys into cardinalityBuckets hash buckets, extrapolates the
// distinct-key ratio, and returns a chained-table bucket count sized so
// the expected chain length is about targetChainLength, clamped to between
// len(rightKeys)/tableSizeMaxMultiplier and len(rightKeys)/tableSizeMinMultiplier
// buckets (at least 1), then rounded up to a power of two.
func EstimateTableSize(rightKeys []int64) int {
	n := len(rightKeys)
	if n == 0 {
		return 1
	}
	sampleN := n
	if sampleN > cardinalitySampleSize {
		sampleN = cardinalitySampleSize
	}
	var seen [cardinalityBuckets]bool
	distinctInSample := 0
	step := n / sampleN
	if step < 1 {
		step = 1
	}
	for i, count := 0, 0; i < n && count < sampleN; i, count = i+step, count+1 {
		bucket := hashing.FastInt64(uint64(rightKeys[i])) % cardinalityBuckets
		if !seen[bucket] {
			seen[bucket] = true
			distinctInSample++
		}
	}
	distinctRatio := float64(distinctInSample) / float64(sampleN)
	estimatedDistinct := distinctRatio * float64(n)
	if estimatedDistinct < 1 {
		estimatedDistinct = 1
	}
	size := int(estimatedDistinct / targetChainLength)
	minSize := n / tableSizeMaxMultiplier
	maxSize := n / tableSizeMinMultiplier
	if maxSize < 1 {
		maxSize = 1
	}
	if size < minSize {
		size = minSize
	}
	if size > maxSize {
		size = maxSize
	}
	return nextPow2(size)
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	if p < 1 {
		p = 1
	}
	return p
}

// chainedTable is a hash table over rightKeys built with bucket-chaining:
// buckets[b] is the row-index list of every right row hashing to bucket b,
// in insertion order. A bucket's list mixes rows from distinct keys that
// collide on the same bucket, so each() re-checks the stored key per row.
// Most buckets hold a handful of rows, so the per-bucket list is an
// idxvec.Small rather than a separately heap-allocated slice.
type chainedTable struct {
	keys    []int64
	buckets []idxvec.Small
	mask    uint64
}

func buildChainedTable(rightKeys []int64) *chainedTable {
	size := EstimateTableSize(rightKeys)
	t := &chainedTable{keys: rightKeys, buckets: make([]idxvec.Small, size), mask: uint64(size - 1)}
	for i, k := range rightKeys {
		b := hashing.FastInt64(uint64(k)) & t.mask
		t.buckets[b].Push(uint32(i))
	}
	return t
}

func (t *chainedTable) each(key int64, visit func(rightRow int32)) {
	b := hashing.FastInt64(uint64(key)) & t.mask
	t.buckets[b].Each(func(row uint32) {
		if t.keys[row] == key {
			visit(int32(row))
		}
	})
}

// InnerJoinChained returns, for every (l, r) pair where leftKeys[l] ==
// rightKeys[r], the matching left and right row indices, in left-row
// order and then right-chain order within a left row.
func InnerJoinChained(leftKeys, rightKeys []int64) (leftIdx, rightIdx []int32) {
	table := buildChainedTable(rightKeys)
	for l, k := range leftKeys {
		table.each(k, func(r int32) {
			leftIdx = append(leftIdx, int32(l))
			rightIdx = append(rightIdx, r)
		})
	}
	return leftIdx, rightIdx
}

// LeftJoinChained extends InnerJoinChained with one (l, -1) row for every
// left row that matched nothing.
func LeftJoinChained(leftKeys, rightKeys []int64) (leftIdx, rightIdx []int32) {
	table := buildChainedTable(rightKeys)
	for l, k := range leftKeys {
		matched := false
		table.each(k, func(r int32) {
			leftIdx = append(leftIdx, int32(l))
			rightIdx = append(rightIdx, r)
			matched = true
		})
		if !matched {
			leftIdx = append(leftIdx, int32(l))
			rightIdx = append(rightIdx, -1)
		}
	}
	return leftIdx, rightIdx
}

// openTable is the open-addressing build variant: kept at load factor
// <= 50% (one key per slot; duplicate right-side keys sharing a slot are
// held in that slot's idxvec.Small row list, since open addressing gives
// one slot per distinct key rather than one slot per row).
type openTable struct {
	keys     []int64
	rows     []idxvec.Small
	occupied []bool
	mask     uint64
}

func buildOpenTable(rightKeys []int64) *openTable {
	size := nextPow2(len(rightKeys)*2 + 1)
	if size < 8 {
		size = 8
	}
	t := &openTable{
		keys:     make([]int64, size),
		rows:     make([]idxvec.Small, size),
		occupied: make([]bool, size),
		mask:     uint64(size - 1),
	}
	for i, k := range rightKeys {
		idx := hashing.FastInt64(uint64(k)) & t.mask
		for t.occupied[idx] && t.keys[idx] != k {
			idx = (idx + 1) & t.mask
		}
		if !t.occupied[idx] {
			t.occupied[idx] = true
			t.keys[idx] = k
		}
		t.rows[idx].Push(uint32(i))
	}
	return t
}

func (t *openTable) each(key int64, visit func(rightRow int32)) {
	idx := hashing.FastInt64(uint64(key)) & t.mask
	for t.occupied[idx] {
		if t.keys[idx] == key {
			t.rows[idx].Each(func(row uint32) { visit(int32(row)) })
			return
		}
		idx = (idx + 1) & t.mask
	}
}

// InnerJoinOpenAddressing is InnerJoinChained's open-addressing-table
// counterpart, producing identical (unordered within a key's matches)
// results via a two-pass count-then-fill: the first pass counts total
// output rows so the second pass can allocate exact-sized slices instead
// of growing them.
func InnerJoinOpenAddressing(leftKeys, rightKeys []int64) (leftIdx, rightIdx []int32) {
	table := buildOpenTable(rightKeys)
	total := 0
	for _, k := range leftKeys {
		table.each(k, func(int32) { total++ })
	}
	leftIdx = make([]int32, 0, total)
	rightIdx = make([]int32, 0, total)
	for l, k := range leftKeys {
		table.each(k, func(r int32) {
			leftIdx = append(leftIdx, int32(l))
			rightIdx = append(rightIdx, r)
		})
	}
	return leftIdx, rightIdx
}

// ParallelRadixJoin partitions both sides by a radixPartitionBits-wide
// hash digit, then runs an independent chained inner join per partition in
// parallel, merging each worker's private output buffers by block copy.
func ParallelRadixJoin(leftKeys, rightKeys []int64) (leftIdx, rightIdx []int32) {
	if len(leftKeys) < parallelJoinMinRows {
		return InnerJoinChained(leftKeys, rightKeys)
	}

	leftPartitions := partitionByDigit(leftKeys)
	rightPartitions := partitionByDigit(rightKeys)

	leftOut := make([][]int32, radixPartitionCount)
	rightOut := make([][]int32, radixPartitionCount)

	pool := workerpool.Default()
	pool.ParallelFor(radixPartitionCount, func(start, end int) {
		for p := start; p < end; p++ {
			lRows := leftPartitions[p]
			rRows := rightPartitions[p]
			if len(lRows) == 0 || len(rRows) == 0 {
				continue
			}
			lKeys := make([]int64, len(lRows))
			for i, row := range lRows {
				lKeys[i] = leftKeys[row]
			}
			rKeys := make([]int64, len(rRows))
			for i, row := range rRows {
				rKeys[i] = rightKeys[row]
			}
			li, ri := InnerJoinChained(lKeys, rKeys)
			mappedL := make([]int32, len(li))
			mappedR := make([]int32, len(ri))
			for i := range li {
				mappedL[i] = lRows[li[i]]
				mappedR[i] = rRows[ri[i]]
			}
			leftOut[p] = mappedL
			rightOut[p] = mappedR
		}
	}, 1)

	for p := 0; p < radixPartitionCount; p++ {
		leftIdx = append(leftIdx, leftOut[p]...)
		rightIdx = append(rightIdx, rightOut[p]...)
	}
	return leftIdx, rightIdx
}

func partitionByDigit(keys []int64) [radixPartitionCount][]int32 {
	var partitions [radixPartitionCount][]int32
	for i, k := range keys {
		digit := hashing.FastInt64(uint64(k)) & (radixPartitionCount - 1)
		partitions[digit] = append(partitions[digit], int32(i))
	}
	return partitions
}

// SortMergeInnerJoin performs an inner join by sorting (or reusing
// already-sorted) indices on both sides, then merging with a two-cursor
// scan that expands equal-key runs into their Cartesian product. It
// detects pre-sorted input via sorting.IsSortedI64 to skip the sort
// entirely when possible.
func SortMergeInnerJoin(leftKeys, rightKeys []int64) (leftIdx, rightIdx []int32) {
	leftOrder := sortedOrder(leftKeys)
	rightOrder := sortedOrder(rightKeys)

	i, j := 0, 0
	for i < len(leftOrder) && j < len(rightOrder) {
		li := leftOrder[i]
		rj := rightOrder[j]
		lk := leftKeys[li]
		rk := rightKeys[rj]
		switch {
		case lk < rk:
			i++
		case lk > rk:
			j++
		default:
			iEnd := i
			for iEnd < len(leftOrder) && leftKeys[leftOrder[iEnd]] == lk {
				iEnd++
			}
			jEnd := j
			for jEnd < len(rightOrder) && rightKeys[rightOrder[jEnd]] == rk {
				jEnd++
			}
			for a := i; a < iEnd; a++ {
				for b := j; b < jEnd; b++ {
					leftIdx = append(leftIdx, leftOrder[a])
					rightIdx = append(rightIdx, rightOrder[b])
				}
			}
			i = iEnd
			j = jEnd
		}
	}
	return leftIdx, rightIdx
}

func sortedOrder(keys []int64) []int32 {
	if sorting.IsSortedI64(keys) {
		order := make([]int32, len(keys))
		for i := range order {
			order[i] = int32(i)
		}
		return order
	}
	return sorting.ArgsortI64(keys)
}
