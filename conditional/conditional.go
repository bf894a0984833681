// Package conditional implements null-aware ternary select, null
// detection, null filling (constant / forward / backward), and coalesce.
//
// Floats use NaN as the null sentinel; a value is null exactly when it is
// not equal to itself.
// Integer columns have no sentinel of their own in this kernel layer — a
// caller tracking integer nulls does so with a separate byte mask. Select,
// which is driven by such a mask, operates on any Numeric type; the
// NaN-driven IsNull/IsNotNull, FillNull, ForwardFill, BackwardFill,
// Coalesce2 and CoalesceN are float64-only.
package conditional

// Numeric is the set of element types conditional operates on.
type Numeric interface {
	~int32 | ~int64 | ~float32 | ~float64
}

// Select writes out[i] = ifTrue[i] if mask[i] != 0, else ifFalse[i].
func Select[T Numeric](mask []uint8, ifTrue, ifFalse []T, out []T) {
	n := len(mask)
	if len(ifTrue) < n {
		n = len(ifTrue)
	}
	if len(ifFalse) < n {
		n = len(ifFalse)
	}
	if len(out) < n {
		n = len(out)
	}
	for i := 0; i < n; i++ {
		if mask[i] != 0 {
			out[i] = ifTrue[i]
		} else {
			out[i] = ifFalse[i]
		}
	}
}

// IsNull writes a 0/1 byte mask for data[i] being the float NaN null
// sentinel.
func IsNull(data []float64, out []uint8) {
	n := min(len(data), len(out))
	for i := 0; i < n; i++ {
		if data[i] != data[i] {
			out[i] = 1
		} else {
			out[i] = 0
		}
	}
}

// IsNotNull writes a 0/1 byte mask for data[i] not being NaN.
func IsNotNull(data []float64, out []uint8) {
	n := min(len(data), len(out))
	for i := 0; i < n; i++ {
		if data[i] == data[i] {
			out[i] = 1
		} else {
			out[i] = 0
		}
	}
}

// FillNull replaces every NaN in data with fillValue, writing the result
// into out (which may alias data).
func FillNull(data []float64, fillValue float64, out []float64) {
	n := min(len(data), len(out))
	for i := 0; i < n; i++ {
		if data[i] != data[i] {
			out[i] = fillValue
		} else {
			out[i] = data[i]
		}
	}
}

// ForwardFill replaces each NaN with the most recent preceding non-null
// value, writing into out (which may alias data). Leading NaNs with no
// prior value stay NaN.
func ForwardFill(data []float64, out []float64) {
	n := min(len(data), len(out))
	last := nanValue()
	haveLast := false
	for i := 0; i < n; i++ {
		if data[i] == data[i] {
			last = data[i]
			haveLast = true
			out[i] = data[i]
		} else if haveLast {
			out[i] = last
		} else {
			out[i] = data[i]
		}
	}
}

// BackwardFill replaces each NaN with the next following non-null value,
// writing into out (which may alias data). Trailing NaNs with no following
// value stay NaN.
func BackwardFill(data []float64, out []float64) {
	n := min(len(data), len(out))
	next := nanValue()
	haveNext := false
	for i := n - 1; i >= 0; i-- {
		if data[i] == data[i] {
			next = data[i]
			haveNext = true
			out[i] = data[i]
		} else if haveNext {
			out[i] = next
		} else {
			out[i] = data[i]
		}
	}
}

// Coalesce2 writes out[i] = a[i] if non-null, else b[i].
func Coalesce2(a, b []float64, out []float64) {
	n := min(len(a), len(b), len(out))
	for i := 0; i < n; i++ {
		if a[i] == a[i] {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}
}

// CoalesceN writes out[i] = the first non-null value across cols[*][i], or
// NaN if every column is null at that row.
func CoalesceN(cols [][]float64, out []float64) {
	n := len(out)
	for _, col := range cols {
		if len(col) < n {
			n = len(col)
		}
	}
	for i := 0; i < n; i++ {
		out[i] = nanValue()
		for _, col := range cols {
			if col[i] == col[i] {
				out[i] = col[i]
				break
			}
		}
	}
}

func nanValue() float64 {
	var zero float64
	return zero / zero
}
