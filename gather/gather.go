// Package gather implements the gather kernel: permute a source column by
// an index vector, treating an out-of-range or negative (missing) index as
// null and writing the zero value.
//
// Grounded on go-highway's hwy.GatherIndex / hwy.GatherIndexMasked
// (hwy/gather.go), generalized from a fixed-width Vec[T] to a
// plain caller-sized output slice, matching a flat C-ABI-style kernel
// contract.
package gather

// Numeric is the set of primitive column element types gather operates on.
type Numeric interface {
	~int32 | ~int64 | ~float32 | ~float64 | ~uint8
}

// Gather writes out[i] = src[indices[i]] for every i in
// [0, min(len(indices), len(out))). A negative index, or one that is out of
// range for src, writes the zero value at out[i].
func Gather[T Numeric](src []T, indices []int32, out []T) {
	n := min(len(indices), len(out))
	srcLen := len(src)
	for i := 0; i < n; i++ {
		idx := indices[i]
		if idx >= 0 && int(idx) < srcLen {
			out[i] = src[idx]
		} else {
			var zero T
			out[i] = zero
		}
	}
}

// GatherU32 is Gather specialized to unsigned row indices (the plain index
// vector form, which has no missing sentinel: every value is in-range by
// caller contract). Out-of-bounds indices still null-fill with zero rather
// than panicking, since kernels never validate caller contracts.
func GatherU32[T Numeric](src []T, indices []uint32, out []T) {
	n := min(len(indices), len(out))
	srcLen := len(src)
	for i := 0; i < n; i++ {
		idx := indices[i]
		if int(idx) < srcLen {
			out[i] = src[idx]
		} else {
			var zero T
			out[i] = zero
		}
	}
}

// Scatter writes dst[indices[i]] = v[i] for every i where indices[i] is a
// valid position in dst. Out-of-range or negative indices are skipped.
func Scatter[T Numeric](v []T, indices []int32, dst []T) {
	n := min(len(v), len(indices))
	dstLen := len(dst)
	for i := 0; i < n; i++ {
		idx := indices[i]
		if idx >= 0 && int(idx) < dstLen {
			dst[idx] = v[i]
		}
	}
}
