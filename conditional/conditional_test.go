package conditional

import (
	"math"
	"testing"
)

func TestSelect(t *testing.T) {
	mask := []uint8{1, 0, 1, 0}
	a := []int64{1, 2, 3, 4}
	b := []int64{10, 20, 30, 40}
	out := make([]int64, 4)
	Select(mask, a, b, out)
	want := []int64{1, 20, 3, 40}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %d, want %d", i, out[i], want[i])
		}
	}
}

func TestIsNullIsNotNull(t *testing.T) {
	nan := math.NaN()
	data := []float64{1, nan, 3, nan}
	isNull := make([]uint8, 4)
	isNotNull := make([]uint8, 4)
	IsNull(data, isNull)
	IsNotNull(data, isNotNull)
	wantNull := []uint8{0, 1, 0, 1}
	for i := range wantNull {
		if isNull[i] != wantNull[i] {
			t.Errorf("IsNull[%d] = %d, want %d", i, isNull[i], wantNull[i])
		}
		if isNotNull[i] == wantNull[i] && wantNull[i] != 0 {
			t.Errorf("IsNotNull[%d] disagrees with IsNull", i)
		}
	}
}

func TestFillNull(t *testing.T) {
	nan := math.NaN()
	data := []float64{1, nan, 3}
	out := make([]float64, 3)
	FillNull(data, -1, out)
	want := []float64{1, -1, 3}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestForwardFill(t *testing.T) {
	nan := math.NaN()
	data := []float64{nan, 1, nan, nan, 5, nan}
	out := make([]float64, len(data))
	ForwardFill(data, out)
	if !math.IsNaN(out[0]) {
		t.Errorf("out[0] = %v, want NaN (no prior value)", out[0])
	}
	want := map[int]float64{1: 1, 2: 1, 3: 1, 4: 5, 5: 5}
	for i, w := range want {
		if out[i] != w {
			t.Errorf("out[%d] = %v, want %v", i, out[i], w)
		}
	}
}

func TestBackwardFill(t *testing.T) {
	nan := math.NaN()
	data := []float64{nan, 1, nan, nan, 5, nan}
	out := make([]float64, len(data))
	BackwardFill(data, out)
	if !math.IsNaN(out[5]) {
		t.Errorf("out[5] = %v, want NaN (no following value)", out[5])
	}
	want := map[int]float64{0: 1, 2: 5, 3: 5}
	for i, w := range want {
		if out[i] != w {
			t.Errorf("out[%d] = %v, want %v", i, out[i], w)
		}
	}
}

func TestCoalesce2(t *testing.T) {
	nan := math.NaN()
	a := []float64{1, nan, nan}
	b := []float64{100, 2, nan}
	out := make([]float64, 3)
	Coalesce2(a, b, out)
	if out[0] != 1 || out[1] != 2 {
		t.Fatalf("Coalesce2 = %v", out)
	}
	if !math.IsNaN(out[2]) {
		t.Fatalf("out[2] = %v, want NaN", out[2])
	}
}

func TestCoalesceN(t *testing.T) {
	nan := math.NaN()
	a := []float64{nan, nan, nan}
	b := []float64{nan, 2, nan}
	c := []float64{1, 20, nan}
	out := make([]float64, 3)
	CoalesceN([][]float64{a, b, c}, out)
	if out[0] != 1 || out[1] != 2 {
		t.Fatalf("CoalesceN = %v", out)
	}
	if !math.IsNaN(out[2]) {
		t.Fatalf("out[2] = %v, want NaN", out[2])
	}
}
