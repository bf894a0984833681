// Package window implements window functions: lag/lead, row numbering,
// rank/dense_rank, cumulative reductions, rolling aggregations, and
// row-to-row diff/percent-change.
//
// Rolling min/max use a monotonic deque held in a fixed-size ring buffer
// of length window+1 so each element enters and leaves the deque at most
// once, giving O(1) amortized work per row instead of rescanning the
// window. This is the same "hold a small bounded working set" shape as
// idxvec's small-vector-with-spill, adapted from a per-key row list to a
// sliding index deque: an index leaves from the front once it falls out of
// the window, and from the back once a better candidate arrives.
package window

import "math"

// LagF64 writes out[i] = data[i-n] for i >= n, and fillValue otherwise.
func LagF64(data []float64, n int, fillValue float64, out []float64) {
	length := min(len(data), len(out))
	for i := 0; i < length; i++ {
		if i-n >= 0 {
			out[i] = data[i-n]
		} else {
			out[i] = fillValue
		}
	}
}

// LeadF64 writes out[i] = data[i+n] for i+n < len(data), and fillValue
// otherwise.
func LeadF64(data []float64, n int, fillValue float64, out []float64) {
	length := min(len(data), len(out))
	for i := 0; i < length; i++ {
		if i+n < len(data) {
			out[i] = data[i+n]
		} else {
			out[i] = fillValue
		}
	}
}

// RowNumber writes a 1-based sequential row number into out.
func RowNumber(out []int64) {
	for i := range out {
		out[i] = int64(i + 1)
	}
}

// RowNumberByGroup writes a 1-based row number that resets at the start of
// each run of equal groupIDs (groupIDs must already be partition-sorted:
// the partition-reset variants need sorted group-id input).
func RowNumberByGroup(groupIDs []int32, out []int64) {
	length := min(len(groupIDs), len(out))
	if length == 0 {
		return
	}
	var rowInGroup int64
	cur := groupIDs[0]
	for i := 0; i < length; i++ {
		if groupIDs[i] != cur {
			cur = groupIDs[i]
			rowInGroup = 0
		}
		rowInGroup++
		out[i] = rowInGroup
	}
}

// RankF64 writes standard competition rank (1224) for ascending data:
// tied values share the lower rank and the next distinct value jumps by
// the tie-group size.
func RankF64(data []float64, out []int64) {
	length := min(len(data), len(out))
	rank := int64(1)
	for i := 0; i < length; i++ {
		if i > 0 && data[i] != data[i-1] {
			rank = int64(i + 1)
		}
		out[i] = rank
	}
}

// DenseRankF64 writes dense rank (1223) for ascending data: tied values
// share a rank and the next distinct value is exactly one higher.
func DenseRankF64(data []float64, out []int64) {
	length := min(len(data), len(out))
	rank := int64(0)
	for i := 0; i < length; i++ {
		if i == 0 || data[i] != data[i-1] {
			rank++
		}
		out[i] = rank
	}
}

// CumSumF64 writes the running sum of data into out.
func CumSumF64(data []float64, out []float64) {
	length := min(len(data), len(out))
	var sum float64
	for i := 0; i < length; i++ {
		sum += data[i]
		out[i] = sum
	}
}

// CumMinF64 writes the running minimum of data into out.
func CumMinF64(data []float64, out []float64) {
	length := min(len(data), len(out))
	if length == 0 {
		return
	}
	cur := data[0]
	for i := 0; i < length; i++ {
		if data[i] < cur {
			cur = data[i]
		}
		out[i] = cur
	}
}

// CumMaxF64 writes the running maximum of data into out.
func CumMaxF64(data []float64, out []float64) {
	length := min(len(data), len(out))
	if length == 0 {
		return
	}
	cur := data[0]
	for i := 0; i < length; i++ {
		if data[i] > cur {
			cur = data[i]
		}
		out[i] = cur
	}
}

// nullValue fills positions that have not yet satisfied minPeriods.
func nullValue() float64 {
	var zero float64
	return zero / zero
}

// RollingSumF64 writes, for each row i, the sum of data[i-window+1 : i+1]
// (clamped to [0, i]) into out, provided at least minPeriods values are
// available; otherwise out[i] is NaN.
func RollingSumF64(data []float64, window, minPeriods int, out []float64) {
	length := min(len(data), len(out))
	var sum float64
	for i := 0; i < length; i++ {
		sum += data[i]
		if i >= window {
			sum -= data[i-window]
		}
		count := i + 1
		if count > window {
			count = window
		}
		if count < minPeriods {
			out[i] = nullValue()
		} else {
			out[i] = sum
		}
	}
}

// RollingMeanF64 writes the rolling mean with the same windowing and
// min_periods gating as RollingSumF64.
func RollingMeanF64(data []float64, window, minPeriods int, out []float64) {
	RollingSumF64(data, window, minPeriods, out)
	for i := range out[:min(len(data), len(out))] {
		count := i + 1
		if count > window {
			count = window
		}
		if count >= minPeriods {
			out[i] /= float64(count)
		}
	}
}

// RollingMinF64 writes the rolling minimum over the trailing window rows
// into out, gated by minPeriods, using a monotonic increasing deque of
// indices held in a ring buffer of length window+1 so each index enters
// and is evicted at most once.
func RollingMinF64(data []float64, window, minPeriods int, out []float64) {
	rollingExtreme(data, window, minPeriods, out, func(a, b float64) bool { return a <= b })
}

// RollingMaxF64 is RollingMinF64's maximum counterpart.
func RollingMaxF64(data []float64, window, minPeriods int, out []float64) {
	rollingExtreme(data, window, minPeriods, out, func(a, b float64) bool { return a >= b })
}

// rollingExtreme drives both RollingMinF64 and RollingMaxF64. keepFront(a,
// b) reports whether the deque's existing back element a should be kept
// ahead of a new candidate b; when false, b evicts it (it can never be the
// extreme for any future window once a strictly-better candidate exists).
func rollingExtreme(data []float64, window, minPeriods int, out []float64, keepFront func(a, b float64) bool) {
	length := min(len(data), len(out))
	if length == 0 {
		return
	}
	ring := make([]int, window+1)
	head, tail := 0, 0 // [head, tail) holds deque indices into ring, front-to-back in window order
	push := func(i int) {
		for tail != head {
			backIdx := ring[(tail-1+len(ring))%len(ring)]
			if keepFront(data[backIdx], data[i]) {
				break
			}
			tail = (tail - 1 + len(ring)) % len(ring)
		}
		ring[tail] = i
		tail = (tail + 1) % len(ring)
	}
	popFront := func() {
		head = (head + 1) % len(ring)
	}
	for i := 0; i < length; i++ {
		lowerBound := i - window + 1
		for head != tail && ring[head] < lowerBound {
			popFront()
		}
		push(i)
		count := i + 1
		if count > window {
			count = window
		}
		if count < minPeriods {
			out[i] = nullValue()
		} else {
			out[i] = data[ring[head]]
		}
	}
}

// RollingStdF64 computes, for each row, the sample standard deviation of
// the trailing window via a naive two-pass recomputation per window rather
// than an incremental-moments update.
func RollingStdF64(data []float64, window, minPeriods int, out []float64) {
	length := min(len(data), len(out))
	for i := 0; i < length; i++ {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		slice := data[start : i+1]
		count := len(slice)
		if count < minPeriods || count < 2 {
			out[i] = nullValue()
			continue
		}
		var sum float64
		for _, v := range slice {
			sum += v
		}
		mean := sum / float64(count)
		var sumSq float64
		for _, v := range slice {
			d := v - mean
			sumSq += d * d
		}
		out[i] = math.Sqrt(sumSq / float64(count-1))
	}
}

// DiffF64 writes out[i] = data[i] - data[i-n] for i >= n, NaN otherwise.
func DiffF64(data []float64, n int, out []float64) {
	length := min(len(data), len(out))
	for i := 0; i < length; i++ {
		if i-n >= 0 {
			out[i] = data[i] - data[i-n]
		} else {
			out[i] = nullValue()
		}
	}
}

// PctChangeF64 writes out[i] = (data[i] - data[i-n]) / data[i-n] for i >=
// n, NaN for i < n, and NaN (not +-Inf) when data[i-n] is zero.
func PctChangeF64(data []float64, n int, out []float64) {
	length := min(len(data), len(out))
	for i := 0; i < length; i++ {
		if i-n < 0 {
			out[i] = nullValue()
			continue
		}
		prev := data[i-n]
		if prev == 0 {
			out[i] = nullValue()
			continue
		}
		out[i] = (data[i] - prev) / prev
	}
}
