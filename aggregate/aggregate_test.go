package aggregate

import (
	"math"
	"testing"
)

func TestSumF64(t *testing.T) {
	data := []float64{1, 5, 3, 7, 2, 8, 4, 6}
	if got := SumF64(data); got != 36 {
		t.Fatalf("SumF64 = %v, want 36", got)
	}
}

func TestSumF64NonMultipleOfWidth(t *testing.T) {
	data := make([]float64, 37)
	for i := range data {
		data[i] = 1
	}
	if got := SumF64(data); got != 37 {
		t.Fatalf("SumF64 = %v, want 37", got)
	}
}

func TestSumEmptyReturnsZero(t *testing.T) {
	if got := SumF64(nil); got != 0 {
		t.Fatalf("SumF64(nil) = %v, want 0", got)
	}
	if got := SumI64(nil); got != 0 {
		t.Fatalf("SumI64(nil) = %v, want 0", got)
	}
}

func TestSumI64Wraps(t *testing.T) {
	data := []int64{math.MaxInt64, 1}
	if got := SumI64(data); got != math.MinInt64 {
		t.Fatalf("SumI64 = %v, want wraparound to MinInt64", got)
	}
}

func TestMinMaxF64(t *testing.T) {
	data := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	min, ok := MinF64(data)
	if !ok || min != 1 {
		t.Fatalf("MinF64 = %v, %v, want 1, true", min, ok)
	}
	max, ok := MaxF64(data)
	if !ok || max != 9 {
		t.Fatalf("MaxF64 = %v, %v, want 9, true", max, ok)
	}
}

func TestMinMaxEmptyNotOk(t *testing.T) {
	if _, ok := MinF64(nil); ok {
		t.Fatal("MinF64(nil) ok = true, want false")
	}
	if _, ok := MaxI64(nil); ok {
		t.Fatal("MaxI64(nil) ok = true, want false")
	}
}

func TestMeanF64(t *testing.T) {
	data := []float64{2, 4, 6, 8}
	mean, ok := MeanF64(data)
	if !ok || mean != 5 {
		t.Fatalf("MeanF64 = %v, %v, want 5, true", mean, ok)
	}
}

func TestMeanI64(t *testing.T) {
	data := []int64{1, 2, 3, 4}
	mean, ok := MeanI64(data)
	if !ok || mean != 2.5 {
		t.Fatalf("MeanI64 = %v, %v, want 2.5, true", mean, ok)
	}
}

func TestVarianceRequiresAtLeastTwo(t *testing.T) {
	if _, ok := VarianceF64([]float64{5}); ok {
		t.Fatal("VarianceF64 with n=1 ok = true, want false")
	}
	if _, ok := VarianceF64(nil); ok {
		t.Fatal("VarianceF64 with n=0 ok = true, want false")
	}
}

func TestVarianceF64Known(t *testing.T) {
	data := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	v, ok := VarianceF64(data)
	if !ok {
		t.Fatal("VarianceF64 ok = false")
	}
	// mean = 5, sum of squared deviations = 32, n-1 = 7
	want := 32.0 / 7.0
	if math.Abs(v-want) > 1e-9 {
		t.Fatalf("VarianceF64 = %v, want %v", v, want)
	}
}

func TestStdDevF64(t *testing.T) {
	data := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	sd, ok := StdDevF64(data)
	if !ok {
		t.Fatal("StdDevF64 ok = false")
	}
	want := math.Sqrt(32.0 / 7.0)
	if math.Abs(sd-want) > 1e-9 {
		t.Fatalf("StdDevF64 = %v, want %v", sd, want)
	}
}

func TestMinMaxI64(t *testing.T) {
	data := []int64{9, 1, 8, 2, 7, 3, 6, 4, 5}
	min, _ := MinI64(data)
	max, _ := MaxI64(data)
	if min != 1 || max != 9 {
		t.Fatalf("min, max = %d, %d, want 1, 9", min, max)
	}
}
