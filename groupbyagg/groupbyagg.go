// Package groupbyagg implements scatter aggregation over an
// already-assigned group id vector (groupby's output): summing, min-ing, or
// max-ing a value column into per-group accumulators.
//
// Four execution strategies exist because no single one is fastest across
// the whole range of row counts and group cardinalities: a plain
// sequential scatter, a sorted-input fast path that sums contiguous runs
// instead of touching a shared accumulator array per row, a
// radix-bucket-then-contiguous path for when group ids are small and dense
// but input order is not already sorted, and a parallel scatter with
// thread-local accumulators merged at the end. OptimalSumByGroup is the
// dispatcher choosing among them by fixed thresholds. The
// thread-local-accumulator-then-merge shape is grounded on go-highway's
// contrib/sort radix histogram (per-bucket counts computed locally, then
// combined) generalized from bucket counts to bucket sums.
package groupbyagg

import (
	"math"

	"github.com/vectorframe/corekernel/sorting"
	"github.com/vectorframe/corekernel/workerpool"
)

const (
	sortedPathMinRows          = 1000
	radixPathMinRows           = 10000
	radixPathMaxRowsPerGroup   = 100
	parallelScatterMinRows     = 50000
)

// SequentialSumF64 scatters values into numGroups accumulators by
// groupIDs[i], one row at a time.
func SequentialSumF64(groupIDs []int32, values []float64, numGroups int) []float64 {
	sums := make([]float64, numGroups)
	n := min(len(groupIDs), len(values))
	for i := 0; i < n; i++ {
		sums[groupIDs[i]] += values[i]
	}
	return sums
}

// SortedSumF64 sums values into numGroups accumulators assuming groupIDs
// is sorted ascending: each group's rows form one contiguous run, so the
// accumulator for a run is a local variable flushed once the group id
// changes rather than a random-access add into a shared array.
func SortedSumF64(groupIDs []int32, values []float64, numGroups int) []float64 {
	sums := make([]float64, numGroups)
	n := min(len(groupIDs), len(values))
	if n == 0 {
		return sums
	}
	curGroup := groupIDs[0]
	var curSum float64
	for i := 0; i < n; i++ {
		if groupIDs[i] != curGroup {
			sums[curGroup] += curSum
			curGroup = groupIDs[i]
			curSum = 0
		}
		curSum += values[i]
	}
	sums[curGroup] += curSum
	return sums
}

// RadixThenContiguousSumF64 bucket-sorts (groupID, value) pairs by group id
// using a direct counting sort over [0, numGroups) — group ids are dense
// small integers, so this is a single-pass histogram-then-scatter rather
// than the multi-digit LSD radix sorting uses for arbitrary 64-bit keys —
// then sums each group's now-contiguous run.
func RadixThenContiguousSumF64(groupIDs []int32, values []float64, numGroups int) []float64 {
	n := min(len(groupIDs), len(values))
	sortedGroupIDs := make([]int32, n)
	sortedValues := make([]float64, n)

	count := make([]int, numGroups+1)
	for i := 0; i < n; i++ {
		count[groupIDs[i]+1]++
	}
	for g := 0; g < numGroups; g++ {
		count[g+1] += count[g]
	}
	cursor := append([]int(nil), count[:numGroups]...)
	for i := 0; i < n; i++ {
		g := groupIDs[i]
		pos := cursor[g]
		sortedGroupIDs[pos] = g
		sortedValues[pos] = values[i]
		cursor[g]++
	}
	return SortedSumF64(sortedGroupIDs, sortedValues, numGroups)
}

// ParallelScatterSumF64 splits rows across workerpool.Default(), scatters
// into a private accumulator array per worker, and merges the per-worker
// arrays at the end.
func ParallelScatterSumF64(groupIDs []int32, values []float64, numGroups int) []float64 {
	n := min(len(groupIDs), len(values))
	pool := workerpool.Default()
	numWorkers := pool.NumWorkers(n)
	if numWorkers < 2 {
		return SequentialSumF64(groupIDs, values, numGroups)
	}
	partials := make([][]float64, numWorkers)
	chunkSize := (n + numWorkers - 1) / numWorkers
	var ranges []struct{ start, end int }
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		ranges = append(ranges, struct{ start, end int }{start, end})
	}
	pool.ParallelFor(len(ranges), func(rs, re int) {
		for w := rs; w < re; w++ {
			local := make([]float64, numGroups)
			r := ranges[w]
			for i := r.start; i < r.end; i++ {
				local[groupIDs[i]] += values[i]
			}
			partials[w] = local
		}
	}, 1)

	sums := make([]float64, numGroups)
	for _, local := range partials {
		for g := 0; g < numGroups; g++ {
			sums[g] += local[g]
		}
	}
	return sums
}

// OptimalSumByGroup dispatches to the fastest strategy for the given row
// count and group cardinality:
//
//   - n > 1000 and groupIDs already sorted: SortedSumF64
//   - n >= 10000 and n/numGroups < 100 (high cardinality: few rows per group): radix-then-contiguous
//   - n >= 50000: parallel scatter
//   - otherwise: sequential scatter
func OptimalSumByGroup(groupIDs []int32, values []float64, numGroups int) []float64 {
	n := min(len(groupIDs), len(values))
	if numGroups == 0 {
		return nil
	}
	if n > sortedPathMinRows && isSortedI32(groupIDs[:n]) {
		return SortedSumF64(groupIDs, values, numGroups)
	}
	if n >= radixPathMinRows && n/numGroups < radixPathMaxRowsPerGroup {
		return RadixThenContiguousSumF64(groupIDs, values, numGroups)
	}
	if n >= parallelScatterMinRows {
		return ParallelScatterSumF64(groupIDs, values, numGroups)
	}
	return SequentialSumF64(groupIDs, values, numGroups)
}

func isSortedI32(ids []int32) bool {
	asU32 := make([]uint32, len(ids))
	for i, v := range ids {
		asU32[i] = uint32(v)
	}
	return sorting.IsSortedU32(asU32)
}

// MinMaxF64 computes per-group min and max in a single scatter pass.
// Accumulators initialize to the type's max/min (rather than the group's
// first value) so an empty pass over a sparsely-touched group is
// detectable by comparing against those sentinels.
func MinMaxF64(groupIDs []int32, values []float64, numGroups int) (mins, maxs []float64) {
	mins = make([]float64, numGroups)
	maxs = make([]float64, numGroups)
	for g := 0; g < numGroups; g++ {
		mins[g] = math.MaxFloat64
		maxs[g] = -math.MaxFloat64
	}
	n := min(len(groupIDs), len(values))
	for i := 0; i < n; i++ {
		g := groupIDs[i]
		v := values[i]
		if v < mins[g] {
			mins[g] = v
		}
		if v > maxs[g] {
			maxs[g] = v
		}
	}
	return mins, maxs
}
