package fold

import (
	"math"
	"testing"
)

func TestSum2(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{10, 20, 30}
	out := make([]float64, 3)
	Sum2(a, b, out)
	want := []float64{11, 22, 33}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestSum3(t *testing.T) {
	a := []float64{1, 2}
	b := []float64{10, 20}
	c := []float64{100, 200}
	out := make([]float64, 2)
	Sum3(a, b, c, out)
	want := []float64{111, 222}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestSumNAgreesWithSum3(t *testing.T) {
	a := []float64{1, 2}
	b := []float64{10, 20}
	c := []float64{100, 200}
	out3 := make([]float64, 2)
	Sum3(a, b, c, out3)
	outN := make([]float64, 2)
	SumN([][]float64{a, b, c}, outN)
	for i := range out3 {
		if out3[i] != outN[i] {
			t.Errorf("SumN disagrees with Sum3 at %d: %v vs %v", i, outN[i], out3[i])
		}
	}
}

func TestSumNEmptyColumns(t *testing.T) {
	out := []float64{9, 9}
	SumN[float64](nil, out)
	if out[0] != 0 || out[1] != 0 {
		t.Fatalf("SumN(nil) = %v, want zeros", out)
	}
}

func TestProductN(t *testing.T) {
	a := []int64{2, 3}
	b := []int64{4, 5}
	c := []int64{1, 2}
	out := make([]int64, 2)
	ProductN([][]int64{a, b, c}, out)
	want := []int64{8, 30}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %d, want %d", i, out[i], want[i])
		}
	}
}

func TestMinMaxN(t *testing.T) {
	a := []float64{3, 8}
	b := []float64{5, 1}
	c := []float64{1, 9}
	minOut := make([]float64, 2)
	maxOut := make([]float64, 2)
	MinN([][]float64{a, b, c}, minOut)
	MaxN([][]float64{a, b, c}, maxOut)
	if minOut[0] != 1 || minOut[1] != 1 {
		t.Errorf("MinN = %v", minOut)
	}
	if maxOut[0] != 5 || maxOut[1] != 9 {
		t.Errorf("MaxN = %v", maxOut)
	}
}

func TestMeanN(t *testing.T) {
	a := []float64{2, 4}
	b := []float64{4, 8}
	out := make([]float64, 2)
	MeanN([][]float64{a, b}, out)
	if out[0] != 3 || out[1] != 6 {
		t.Fatalf("MeanN = %v, want [3 6]", out)
	}
}

func TestAnyAllN(t *testing.T) {
	a := []uint8{1, 0, 0}
	b := []uint8{0, 0, 0}
	c := []uint8{0, 0, 1}
	anyOut := make([]uint8, 3)
	allOut := make([]uint8, 3)
	AnyN([][]uint8{a, b, c}, anyOut)
	AllN([][]uint8{a, b, c}, allOut)
	wantAny := []uint8{1, 0, 1}
	wantAll := []uint8{0, 0, 0}
	for i := range wantAny {
		if anyOut[i] != wantAny[i] {
			t.Errorf("AnyN[%d] = %d, want %d", i, anyOut[i], wantAny[i])
		}
		if allOut[i] != wantAll[i] {
			t.Errorf("AllN[%d] = %d, want %d", i, allOut[i], wantAll[i])
		}
	}
}

func TestAllNVacuousEmptyMaskList(t *testing.T) {
	out := make([]uint8, 2)
	AllN(nil, out)
	if out[0] != 1 || out[1] != 1 {
		t.Fatalf("AllN(nil) = %v, want all-true", out)
	}
}

func TestCountNonNullF64(t *testing.T) {
	nan := math.NaN()
	a := []float64{1, nan, 3}
	b := []float64{nan, nan, 3}
	c := []float64{1, 2, nan}
	out := make([]int32, 3)
	CountNonNullF64([][]float64{a, b, c}, out)
	want := []int32{2, 1, 2}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %d, want %d", i, out[i], want[i])
		}
	}
}
