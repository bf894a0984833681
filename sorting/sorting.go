// Package sorting implements argsort kernels: an LSD radix sort for 64-bit
// keys, a comparison-sort fallback for other widths, and sortedness
// detection.
//
// The radix pass shape (8-bit digit, 256-bucket histogram, prefix-sum
// offsets, then scatter) is grounded on go-highway's
// hwy/contrib/sort/radix_base.go BaseRadixPass/BaseRadixPassSigned; this
// package keeps the histogram-then-scatter structure but operates over an
// int32 index vector alongside the keys (an argsort) rather than sorting
// the keys in place. The float key-to-sortable-uint64 transform (sign-bit
// flip for non-negatives, all-bits flip for negatives) is grounded on
// radix_float_base.go's BaseFloatToSortable.
package sorting

import (
	"math"
	"sort"

	"github.com/vectorframe/corekernel/workerpool"
)

const (
	radixBits    = 8
	radixBuckets = 1 << radixBits
	radixMask    = radixBuckets - 1
	radixPasses  = 64 / radixBits

	parallelSortThreshold = 100_000
)

// ArgsortI64 returns the indices that would sort data ascending, using
// LSD radix sort over the sign-flipped unsigned representation (so
// negative keys sort before positive ones).
func ArgsortI64(data []int64) []int32 {
	n := len(data)
	keys := make([]uint64, n)
	for i, v := range data {
		keys[i] = uint64(v) ^ (1 << 63)
	}
	return radixArgsort(keys)
}

// ArgsortF64 returns the indices that would sort data ascending, using LSD
// radix sort over a monotonic unsigned transform of the IEEE-754 bits.
func ArgsortF64(data []float64) []int32 {
	n := len(data)
	keys := make([]uint64, n)
	for i, v := range data {
		keys[i] = floatSortableKey(math.Float64bits(v))
	}
	return radixArgsort(keys)
}

// floatSortableKey maps a float64's raw bit pattern to a uint64 whose
// ordinary unsigned ordering matches the float's ordering: flip the sign
// bit for non-negative floats, flip every bit for negative floats.
func floatSortableKey(bits uint64) uint64 {
	if bits&(1<<63) == 0 {
		return bits | (1 << 63)
	}
	return ^bits
}

// ArgsortDescendingI64 returns the indices that would sort data
// descending.
func ArgsortDescendingI64(data []int64) []int32 {
	idx := ArgsortI64(data)
	reverse(idx)
	return idx
}

func reverse(idx []int32) {
	for i, j := 0, len(idx)-1; i < j; i, j = i+1, j-1 {
		idx[i], idx[j] = idx[j], idx[i]
	}
}

// radixArgsort sorts the synthetic index vector [0, n) by keys using
// radixPasses 8-bit LSD passes over a ping-ponged shadow index buffer,
// returning the stable permutation.
func radixArgsort(keys []uint64) []int32 {
	n := len(keys)
	idx := make([]int32, n)
	for i := range idx {
		idx[i] = int32(i)
	}
	if n < 2 {
		return idx
	}
	shadow := make([]int32, n)
	src, dst := idx, shadow
	for pass := 0; pass < radixPasses; pass++ {
		shift := uint(pass * radixBits)
		var count [radixBuckets]int
		for _, id := range src {
			digit := int((keys[id] >> shift) & radixMask)
			count[digit]++
		}
		offset := 0
		for b := 0; b < radixBuckets; b++ {
			c := count[b]
			count[b] = offset
			offset += c
		}
		for _, id := range src {
			digit := int((keys[id] >> shift) & radixMask)
			dst[count[digit]] = id
			count[digit]++
		}
		src, dst = dst, src
	}
	return src
}

// Comparable is the set of element types the comparison-sort fallback
// operates on, for widths the radix path does not cover directly.
type Comparable interface {
	~int32 | ~float32
}

// ArgsortGeneric returns the indices that would sort data ascending using
// a comparison sort, with a parallel chunk-sort-then-merge strategy once n
// crosses parallelSortThreshold.
func ArgsortGeneric[T Comparable](data []T) []int32 {
	n := len(data)
	idx := make([]int32, n)
	for i := range idx {
		idx[i] = int32(i)
	}
	if n < 2 {
		return idx
	}
	if n < parallelSortThreshold {
		sortIndices(idx, data)
		return idx
	}
	return parallelSortThenMerge(idx, data)
}

func sortIndices[T Comparable](idx []int32, data []T) {
	sort.Slice(idx, func(i, j int) bool { return data[idx[i]] < data[idx[j]] })
}

// parallelSortThenMerge splits idx into per-worker chunks, sorts each
// chunk independently in parallel, then repeatedly merges adjacent sorted
// runs until one remains.
func parallelSortThenMerge[T Comparable](idx []int32, data []T) []int32 {
	pool := workerpool.Default()
	numWorkers := pool.NumWorkers(len(idx))
	if numWorkers < 2 {
		sortIndices(idx, data)
		return idx
	}
	chunkSize := (len(idx) + numWorkers - 1) / numWorkers
	type run struct{ start, end int }
	var runs []run
	for start := 0; start < len(idx); start += chunkSize {
		end := start + chunkSize
		if end > len(idx) {
			end = len(idx)
		}
		runs = append(runs, run{start, end})
	}
	pool.ParallelFor(len(runs), func(start, end int) {
		for i := start; i < end; i++ {
			r := runs[i]
			sortIndices(idx[r.start:r.end], data)
		}
	}, 1)

	for len(runs) > 1 {
		var merged []int32
		var nextRuns []run
		var nextMerged []int32
		i := 0
		for i+1 < len(runs) {
			a, b := runs[i], runs[i+1]
			m := mergeRuns(idx[a.start:a.end], idx[b.start:b.end], data)
			start := len(nextMerged)
			nextMerged = append(nextMerged, m...)
			nextRuns = append(nextRuns, run{start, start + len(m)})
			i += 2
		}
		if i < len(runs) {
			r := runs[i]
			start := len(nextMerged)
			nextMerged = append(nextMerged, idx[r.start:r.end]...)
			nextRuns = append(nextRuns, run{start, start + (r.end - r.start)})
		}
		merged = nextMerged
		copy(idx, merged)
		runs = nextRuns
	}
	return idx
}

func mergeRuns[T Comparable](a, b []int32, data []T) []int32 {
	out := make([]int32, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if data[a[i]] <= data[b[j]] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// IsSortedI64 reports whether data is sorted ascending, comparing
// adjacent pairs and returning false at the first descending pair without
// scanning the remainder.
func IsSortedI64(data []int64) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

// IsSortedU32 reports whether data is sorted ascending.
func IsSortedU32(data []uint32) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}
