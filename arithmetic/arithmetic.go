// Package arithmetic implements elementwise scalar-op-vector and
// vector-op-vector kernels: +, -, *, / over int32/int64/float32/float64
// columns, in-place and out-of-place.
//
// Every kernel follows the same three-stage shape: an unrolled loop over
// config.Chunk elements (four independent config.VectorWidth-wide strides,
// exposing instruction-level parallelism the same way go-highway's hwy
// package hides load/op/store latency behind four accumulators), a
// single-width loop for the remainder above the scalar tail, and a scalar
// loop for what's left. None of these kernels allocate, so none of them
// can fail.
package arithmetic

import "github.com/vectorframe/corekernel/config"

// Numeric is the set of element types arithmetic operates on.
type Numeric interface {
	~int32 | ~int64 | ~float32 | ~float64
}

type binOp[T Numeric] func(a, b T) T

// apply3Stage runs op(a[i], b[i]) into out[i] for i in [0, n) using the
// chunk/vector/scalar staged loop. n is pre-clipped by the caller to
// min(len(a), len(b), len(out)).
func apply3Stage[T Numeric](a, b, out []T, n int, op binOp[T]) {
	i := 0
	for ; i+config.Chunk <= n; i += config.Chunk {
		for lane := 0; lane < config.Unroll; lane++ {
			base := i + lane*config.VectorWidth
			for j := 0; j < config.VectorWidth; j++ {
				out[base+j] = op(a[base+j], b[base+j])
			}
		}
	}
	for ; i+config.VectorWidth <= n; i += config.VectorWidth {
		for j := 0; j < config.VectorWidth; j++ {
			out[i+j] = op(a[i+j], b[i+j])
		}
	}
	for ; i < n; i++ {
		out[i] = op(a[i], b[i])
	}
}

func binaryInto[T Numeric](a, b, out []T, op binOp[T]) {
	n := min(len(a), len(b), len(out))
	apply3Stage(a, b, out, n, op)
}

func addOp[T Numeric](a, b T) T { return a + b }
func subOp[T Numeric](a, b T) T { return a - b }
func mulOp[T Numeric](a, b T) T { return a * b }
func divOp[T Numeric](a, b T) T { return a / b }

// AddF64 computes out[i] = a[i] + b[i]. out may alias a or b.
func AddF64(a, b, out []float64) { binaryInto(a, b, out, addOp[float64]) }

// AddF32 computes out[i] = a[i] + b[i]. out may alias a or b.
func AddF32(a, b, out []float32) { binaryInto(a, b, out, addOp[float32]) }

// AddI64 computes out[i] = a[i] + b[i] with wrapping overflow. out may alias a or b.
func AddI64(a, b, out []int64) { binaryInto(a, b, out, addOp[int64]) }

// AddI32 computes out[i] = a[i] + b[i] with wrapping overflow. out may alias a or b.
func AddI32(a, b, out []int32) { binaryInto(a, b, out, addOp[int32]) }

// SubF64 computes out[i] = a[i] - b[i]. out may alias a or b.
func SubF64(a, b, out []float64) { binaryInto(a, b, out, subOp[float64]) }

// SubF32 computes out[i] = a[i] - b[i]. out may alias a or b.
func SubF32(a, b, out []float32) { binaryInto(a, b, out, subOp[float32]) }

// SubI64 computes out[i] = a[i] - b[i] with wrapping overflow. out may alias a or b.
func SubI64(a, b, out []int64) { binaryInto(a, b, out, subOp[int64]) }

// SubI32 computes out[i] = a[i] - b[i] with wrapping overflow. out may alias a or b.
func SubI32(a, b, out []int32) { binaryInto(a, b, out, subOp[int32]) }

// MulF64 computes out[i] = a[i] * b[i]. out may alias a or b.
func MulF64(a, b, out []float64) { binaryInto(a, b, out, mulOp[float64]) }

// MulF32 computes out[i] = a[i] * b[i]. out may alias a or b.
func MulF32(a, b, out []float32) { binaryInto(a, b, out, mulOp[float32]) }

// MulI64 computes out[i] = a[i] * b[i] with wrapping overflow. out may alias a or b.
func MulI64(a, b, out []int64) { binaryInto(a, b, out, mulOp[int64]) }

// MulI32 computes out[i] = a[i] * b[i] with wrapping overflow. out may alias a or b.
func MulI32(a, b, out []int32) { binaryInto(a, b, out, mulOp[int32]) }

// DivF64 computes out[i] = a[i] / b[i]. Division by zero follows IEEE-754
// (±Inf or NaN); out may alias a or b.
func DivF64(a, b, out []float64) { binaryInto(a, b, out, divOp[float64]) }

// DivF32 computes out[i] = a[i] / b[i]. Division by zero follows IEEE-754
// (±Inf or NaN); out may alias a or b.
func DivF32(a, b, out []float32) { binaryInto(a, b, out, divOp[float32]) }

// DivI64 computes out[i] = a[i] / b[i]. Division by zero is delegated to
// the hardware/runtime and panics.
func DivI64(a, b, out []int64) { binaryInto(a, b, out, divOp[int64]) }

// DivI32 computes out[i] = a[i] / b[i]. Division by zero is delegated to
// the hardware/runtime and panics.
func DivI32(a, b, out []int32) { binaryInto(a, b, out, divOp[int32]) }

// AddScalarF64 computes out[i] = a[i] + scalar.
func AddScalarF64(a []float64, scalar float64, out []float64) {
	scalarOpInto(a, scalar, out, addOp[float64])
}

// MulScalarF64 computes out[i] = a[i] * scalar.
func MulScalarF64(a []float64, scalar float64, out []float64) {
	scalarOpInto(a, scalar, out, mulOp[float64])
}

func scalarOpInto[T Numeric](a []T, scalar T, out []T, op binOp[T]) {
	n := min(len(a), len(out))
	i := 0
	for ; i+config.Chunk <= n; i += config.Chunk {
		for lane := 0; lane < config.Unroll; lane++ {
			base := i + lane*config.VectorWidth
			for j := 0; j < config.VectorWidth; j++ {
				out[base+j] = op(a[base+j], scalar)
			}
		}
	}
	for ; i+config.VectorWidth <= n; i += config.VectorWidth {
		for j := 0; j < config.VectorWidth; j++ {
			out[i+j] = op(a[i+j], scalar)
		}
	}
	for ; i < n; i++ {
		out[i] = op(a[i], scalar)
	}
}

// AddInPlaceF64 computes out[i] += b[i].
func AddInPlaceF64(out, b []float64) { binaryInto(out, b, out, addOp[float64]) }

// AddInPlaceI64 computes out[i] += b[i] with wrapping overflow.
func AddInPlaceI64(out, b []int64) { binaryInto(out, b, out, addOp[int64]) }
