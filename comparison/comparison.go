// Package comparison implements elementwise <, <=, >, >=, ==, != kernels,
// each producing a byte-mask column of exactly 0x00 or 0x01.
package comparison

import "github.com/vectorframe/corekernel/config"

// Numeric is the set of element types comparison operates on.
type Numeric interface {
	~int32 | ~int64 | ~float32 | ~float64
}

type cmpOp[T Numeric] func(a, b T) bool

func applyCmp[T Numeric](a, b []T, out []uint8, op cmpOp[T]) {
	n := min(len(a), len(b), len(out))
	i := 0
	for ; i+config.Chunk <= n; i += config.Chunk {
		for lane := 0; lane < config.Unroll; lane++ {
			base := i + lane*config.VectorWidth
			for j := 0; j < config.VectorWidth; j++ {
				out[base+j] = boolByte(op(a[base+j], b[base+j]))
			}
		}
	}
	for ; i+config.VectorWidth <= n; i += config.VectorWidth {
		for j := 0; j < config.VectorWidth; j++ {
			out[i+j] = boolByte(op(a[i+j], b[i+j]))
		}
	}
	for ; i < n; i++ {
		out[i] = boolByte(op(a[i], b[i]))
	}
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func lt[T Numeric](a, b T) bool { return a < b }
func le[T Numeric](a, b T) bool { return a <= b }
func gt[T Numeric](a, b T) bool { return a > b }
func ge[T Numeric](a, b T) bool { return a >= b }
func eq[T Numeric](a, b T) bool { return a == b }
func ne[T Numeric](a, b T) bool { return a != b }

// LtF64 writes out[i] = a[i] < b[i] as a 0/1 byte mask.
func LtF64(a, b []float64, out []uint8) { applyCmp(a, b, out, lt[float64]) }

// LeF64 writes out[i] = a[i] <= b[i] as a 0/1 byte mask.
func LeF64(a, b []float64, out []uint8) { applyCmp(a, b, out, le[float64]) }

// GtF64 writes out[i] = a[i] > b[i] as a 0/1 byte mask.
func GtF64(a, b []float64, out []uint8) { applyCmp(a, b, out, gt[float64]) }

// GeF64 writes out[i] = a[i] >= b[i] as a 0/1 byte mask.
func GeF64(a, b []float64, out []uint8) { applyCmp(a, b, out, ge[float64]) }

// EqF64 writes out[i] = a[i] == b[i] as a 0/1 byte mask.
func EqF64(a, b []float64, out []uint8) { applyCmp(a, b, out, eq[float64]) }

// NeF64 writes out[i] = a[i] != b[i] as a 0/1 byte mask.
func NeF64(a, b []float64, out []uint8) { applyCmp(a, b, out, ne[float64]) }

// LtI64 writes out[i] = a[i] < b[i] as a 0/1 byte mask.
func LtI64(a, b []int64, out []uint8) { applyCmp(a, b, out, lt[int64]) }

// LeI64 writes out[i] = a[i] <= b[i] as a 0/1 byte mask.
func LeI64(a, b []int64, out []uint8) { applyCmp(a, b, out, le[int64]) }

// GtI64 writes out[i] = a[i] > b[i] as a 0/1 byte mask.
func GtI64(a, b []int64, out []uint8) { applyCmp(a, b, out, gt[int64]) }

// GeI64 writes out[i] = a[i] >= b[i] as a 0/1 byte mask.
func GeI64(a, b []int64, out []uint8) { applyCmp(a, b, out, ge[int64]) }

// EqI64 writes out[i] = a[i] == b[i] as a 0/1 byte mask.
func EqI64(a, b []int64, out []uint8) { applyCmp(a, b, out, eq[int64]) }

// NeI64 writes out[i] = a[i] != b[i] as a 0/1 byte mask.
func NeI64(a, b []int64, out []uint8) { applyCmp(a, b, out, ne[int64]) }

// LtI32 writes out[i] = a[i] < b[i] as a 0/1 byte mask.
func LtI32(a, b []int32, out []uint8) { applyCmp(a, b, out, lt[int32]) }

// GtI32 writes out[i] = a[i] > b[i] as a 0/1 byte mask.
func GtI32(a, b []int32, out []uint8) { applyCmp(a, b, out, gt[int32]) }

// GtF32 writes out[i] = a[i] > b[i] as a 0/1 byte mask.
func GtF32(a, b []float32, out []uint8) { applyCmp(a, b, out, gt[float32]) }

// ScalarGtF64 writes out[i] = a[i] > threshold as a 0/1 byte mask.
func ScalarGtF64(a []float64, threshold float64, out []uint8) {
	n := min(len(a), len(out))
	for i := 0; i < n; i++ {
		out[i] = boolByte(a[i] > threshold)
	}
}
