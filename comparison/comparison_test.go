package comparison

import "testing"

func TestGtF64WritesZeroOrOneOnly(t *testing.T) {
	a := []float64{1, 5, 3, 7, 2, 8, 4, 6}
	b := []float64{4, 4, 4, 4, 4, 4, 4, 4}
	out := make([]uint8, len(a))
	GtF64(a, b, out)
	for i, v := range out {
		if v != 0 && v != 1 {
			t.Fatalf("out[%d] = %d, not a 0/1 byte", i, v)
		}
		want := a[i] > b[i]
		gotTrue := v == 1
		if gotTrue != want {
			t.Errorf("out[%d] = %d, want %v", i, v, want)
		}
	}
}

func TestEqI64(t *testing.T) {
	a := []int64{1, 2, 3}
	b := []int64{1, 0, 3}
	out := make([]uint8, 3)
	EqI64(a, b, out)
	want := []uint8{1, 0, 1}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %d, want %d", i, out[i], want[i])
		}
	}
}

func TestScalarGtF64(t *testing.T) {
	a := []float64{1.0, 5.0, 3.0, 7.0, 2.0, 8.0, 4.0, 6.0}
	out := make([]uint8, len(a))
	ScalarGtF64(a, 4.0, out)
	want := []uint8{0, 1, 0, 1, 0, 1, 0, 1}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %d, want %d", i, out[i], want[i])
		}
	}
}
