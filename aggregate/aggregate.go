// Package aggregate implements vertical aggregations: sum, min, max, mean,
// variance, stdDev over a single column.
//
// Every reduction uses a four-accumulator tree: the input is striped across
// four running accumulators (config.Unroll of them, each config.VectorWidth
// lanes wide in concept), combined in the same fixed order on every call, so
// that for a given column length and build the resulting float is
// bit-identical across runs. Empty input yields "no value" (reported via a
// bool) for every aggregation except sum, which has an identity element and
// returns 0.
package aggregate

import (
	"math"

	"github.com/vectorframe/corekernel/config"
)

// Numeric is the set of element types aggregate reduces over.
type Numeric interface {
	~int32 | ~int64 | ~float32 | ~float64
}

// reduceTree folds data with op across four accumulators seeded with
// identity, combining them pairwise in a fixed order at the end.
func reduceTree[T Numeric](data []T, identity T, op func(a, b T) T) T {
	var acc [config.Unroll]T
	for i := range acc {
		acc[i] = identity
	}
	n := len(data)
	i := 0
	for ; i+config.Chunk <= n; i += config.Chunk {
		for lane := 0; lane < config.Unroll; lane++ {
			base := i + lane*config.VectorWidth
			for j := 0; j < config.VectorWidth; j++ {
				acc[lane] = op(acc[lane], data[base+j])
			}
		}
	}
	// Remaining elements above the scalar tail, striped across the same
	// four accumulators one vector-width at a time.
	for ; i+config.VectorWidth <= n; i += config.VectorWidth {
		lane := (i / config.VectorWidth) % config.Unroll
		for j := 0; j < config.VectorWidth; j++ {
			acc[lane] = op(acc[lane], data[i+j])
		}
	}
	for ; i < n; i++ {
		acc[0] = op(acc[0], data[i])
	}
	result := acc[0]
	for lane := 1; lane < config.Unroll; lane++ {
		result = op(result, acc[lane])
	}
	return result
}

func addOp[T Numeric](a, b T) T { return a + b }

func minOp[T Numeric](a, b T) T {
	if b < a {
		return b
	}
	return a
}

func maxOp[T Numeric](a, b T) T {
	if b > a {
		return b
	}
	return a
}

// SumF64 returns the sum of data, 0 for empty input.
func SumF64(data []float64) float64 { return reduceTree(data, 0, addOp[float64]) }

// SumF32 returns the sum of data, 0 for empty input.
func SumF32(data []float32) float32 { return reduceTree(data, 0, addOp[float32]) }

// SumI64 returns the wrapping sum of data, 0 for empty input.
func SumI64(data []int64) int64 { return reduceTree(data, 0, addOp[int64]) }

// SumI32 returns the wrapping sum of data, 0 for empty input.
func SumI32(data []int32) int32 { return reduceTree(data, 0, addOp[int32]) }

// MinF64 returns the minimum of data. ok is false for empty input.
func MinF64(data []float64) (result float64, ok bool) {
	if len(data) == 0 {
		return 0, false
	}
	return reduceTree(data[1:], data[0], minOp[float64]), true
}

// MaxF64 returns the maximum of data. ok is false for empty input.
func MaxF64(data []float64) (result float64, ok bool) {
	if len(data) == 0 {
		return 0, false
	}
	return reduceTree(data[1:], data[0], maxOp[float64]), true
}

// MinI64 returns the minimum of data. ok is false for empty input.
func MinI64(data []int64) (result int64, ok bool) {
	if len(data) == 0 {
		return 0, false
	}
	return reduceTree(data[1:], data[0], minOp[int64]), true
}

// MaxI64 returns the maximum of data. ok is false for empty input.
func MaxI64(data []int64) (result int64, ok bool) {
	if len(data) == 0 {
		return 0, false
	}
	return reduceTree(data[1:], data[0], maxOp[int64]), true
}

// MeanF64 returns the arithmetic mean of data. ok is false for empty input.
func MeanF64(data []float64) (result float64, ok bool) {
	if len(data) == 0 {
		return 0, false
	}
	return SumF64(data) / float64(len(data)), true
}

// MeanI64 returns the arithmetic mean of data as a float64. ok is false for
// empty input.
func MeanI64(data []int64) (result float64, ok bool) {
	if len(data) == 0 {
		return 0, false
	}
	return float64(SumI64(data)) / float64(len(data)), true
}

// VarianceF64 returns the sample variance (divisor n-1) of data. ok is
// false unless len(data) >= 2.
//
// Two passes: compute the mean, then a second four-accumulator pass sums
// squared deviations.
func VarianceF64(data []float64) (result float64, ok bool) {
	n := len(data)
	if n < 2 {
		return 0, false
	}
	mean, _ := MeanF64(data)
	sqDev := make([]float64, n)
	for i, x := range data {
		d := x - mean
		sqDev[i] = d * d
	}
	return SumF64(sqDev) / float64(n-1), true
}

// StdDevF64 returns the sample standard deviation of data. ok is false
// unless len(data) >= 2.
func StdDevF64(data []float64) (result float64, ok bool) {
	v, ok := VarianceF64(data)
	if !ok {
		return 0, false
	}
	return math.Sqrt(v), true
}
