// Package fold implements horizontal folds: reducing N columns of equal
// length down to one column, element-by-element across the columns rather
// than down a single column (aggregate's job).
//
// The sum fold has fixed-arity 2 and 3 specializations (Sum2, Sum3: the
// common case of combining two or three expression operands). The
// variable-arity numeric folds (SumN, ProductN, MinN, MaxN) block-copy
// column 0 into the output and then
// accumulate the remaining columns in place — avoiding a per-element
// branch on "is this the first column" for every row. The pattern mirrors
// go-highway's accumulate-into-destination style seen in
// hwy/contrib/dot's batched reduction helpers, adapted here from a
// single-column dot product to a row-wise fold across columns.
package fold

// Numeric is the set of element types fold operates on.
type Numeric interface {
	~int32 | ~int64 | ~float32 | ~float64
}

// SumN writes, for each row i, the sum across cols[*][i] into out. All
// columns and out must share the same length; extra length in any is
// ignored past the shortest.
func SumN[T Numeric](cols [][]T, out []T) {
	n := rowCount(cols, out)
	if len(cols) == 0 {
		clearZero(out[:n])
		return
	}
	copy(out[:n], cols[0][:n])
	for _, col := range cols[1:] {
		for i := 0; i < n; i++ {
			out[i] += col[i]
		}
	}
}

// Sum2 is the specialized two-column sum fold.
func Sum2[T Numeric](a, b []T, out []T) {
	n := rowCount([][]T{a, b}, out)
	for i := 0; i < n; i++ {
		out[i] = a[i] + b[i]
	}
}

// Sum3 is the specialized three-column sum fold.
func Sum3[T Numeric](a, b, c []T, out []T) {
	n := rowCount([][]T{a, b, c}, out)
	for i := 0; i < n; i++ {
		out[i] = a[i] + b[i] + c[i]
	}
}

// ProductN writes, for each row i, the product across cols[*][i] into out.
func ProductN[T Numeric](cols [][]T, out []T) {
	n := rowCount(cols, out)
	if len(cols) == 0 {
		return
	}
	copy(out[:n], cols[0][:n])
	for _, col := range cols[1:] {
		for i := 0; i < n; i++ {
			out[i] *= col[i]
		}
	}
}

// MinN writes, for each row i, the minimum across cols[*][i] into out.
func MinN[T Numeric](cols [][]T, out []T) {
	n := rowCount(cols, out)
	if len(cols) == 0 {
		return
	}
	copy(out[:n], cols[0][:n])
	for _, col := range cols[1:] {
		for i := 0; i < n; i++ {
			if col[i] < out[i] {
				out[i] = col[i]
			}
		}
	}
}

// MaxN writes, for each row i, the maximum across cols[*][i] into out.
func MaxN[T Numeric](cols [][]T, out []T) {
	n := rowCount(cols, out)
	if len(cols) == 0 {
		return
	}
	copy(out[:n], cols[0][:n])
	for _, col := range cols[1:] {
		for i := 0; i < n; i++ {
			if col[i] > out[i] {
				out[i] = col[i]
			}
		}
	}
}

// MeanN writes, for each row i, the arithmetic mean across cols[*][i] into
// out: the sum fold divided by the column count.
func MeanN[T Numeric](cols [][]T, out []T) {
	n := rowCount(cols, out)
	SumN(cols, out)
	if len(cols) == 0 {
		return
	}
	divisor := T(len(cols))
	for i := 0; i < n; i++ {
		out[i] /= divisor
	}
}

// AnyN writes, for each row i, whether any mask[*][i] across masks is
// non-zero.
func AnyN(masks [][]uint8, out []uint8) {
	n := rowCount(masks, out)
	for i := 0; i < n; i++ {
		out[i] = 0
	}
	for _, m := range masks {
		for i := 0; i < n; i++ {
			if m[i] != 0 {
				out[i] = 1
			}
		}
	}
}

// AllN writes, for each row i, whether every masks[*][i] is non-zero. An
// empty mask list yields all-true (the vacuous case).
func AllN(masks [][]uint8, out []uint8) {
	n := rowCount(masks, out)
	for i := 0; i < n; i++ {
		out[i] = 1
	}
	for _, m := range masks {
		for i := 0; i < n; i++ {
			if m[i] == 0 {
				out[i] = 0
			}
		}
	}
}

// CountNonNullF64 writes, for each row i, the number of cols[*][i] that are
// not the NaN null sentinel.
func CountNonNullF64(cols [][]float64, out []int32) {
	n := rowCount(cols, out)
	clearInt32Zero(out[:n])
	for _, col := range cols {
		for i := 0; i < n; i++ {
			if col[i] == col[i] { // false only for NaN
				out[i]++
			}
		}
	}
}

func rowCount[T any, O any](cols [][]T, out []O) int {
	n := len(out)
	for _, col := range cols {
		if len(col) < n {
			n = len(col)
		}
	}
	return n
}

func clearZero[T Numeric](s []T) {
	var zero T
	for i := range s {
		s[i] = zero
	}
}

func clearInt32Zero(s []int32) {
	for i := range s {
		s[i] = 0
	}
}
