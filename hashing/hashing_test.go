package hashing

import "testing"

func TestFastInt64Deterministic(t *testing.T) {
	a := FastInt64(12345)
	b := FastInt64(12345)
	if a != b {
		t.Fatalf("FastInt64 not deterministic: %d vs %d", a, b)
	}
}

func TestFastInt64SpreadsDistinctInputs(t *testing.T) {
	seen := map[uint64]bool{}
	for i := uint64(0); i < 1000; i++ {
		h := FastInt64(i)
		if seen[h] {
			t.Fatalf("collision for small sequential input set at i=%d", i)
		}
		seen[h] = true
	}
}

func TestRapidHash64Deterministic(t *testing.T) {
	a := RapidHash64(98765)
	b := RapidHash64(98765)
	if a != b {
		t.Fatalf("RapidHash64 not deterministic: %d vs %d", a, b)
	}
}

func TestRapidHash64DiffersFromFastInt64(t *testing.T) {
	x := uint64(42)
	if FastInt64(x) == RapidHash64(x) {
		t.Fatal("FastInt64 and RapidHash64 produced identical output, expected distinct paths")
	}
}

func TestRowHashI64OrderSensitive(t *testing.T) {
	colA := []int64{1}
	colB := []int64{2}
	h1 := RowHashI64([][]int64{colA, colB}, 0)
	h2 := RowHashI64([][]int64{colB, colA}, 0)
	if h1 == h2 {
		t.Fatal("RowHashI64 should be order-sensitive across columns")
	}
}

func TestRowHashI64Deterministic(t *testing.T) {
	cols := [][]int64{{1, 2, 3}, {10, 20, 30}}
	h1 := RowHashI64(cols, 1)
	h2 := RowHashI64(cols, 1)
	if h1 != h2 {
		t.Fatalf("RowHashI64 not deterministic: %d vs %d", h1, h2)
	}
}

func TestRowHashF64MatchesManualCombine(t *testing.T) {
	cols := [][]float64{{1.5, 2.5}, {10.5, 20.5}}
	got := RowHashF64(cols, 0)
	want := combineSeed
	want = CombineF64(want, 1.5)
	want = CombineF64(want, 10.5)
	want ^= rapidSecret2
	if got != want {
		t.Fatalf("RowHashF64 = %d, want %d", got, want)
	}
}

func TestHashColumnParallelMatchesSequential(t *testing.T) {
	data := make([]int64, 20000)
	for i := range data {
		data[i] = int64(i) * 7
	}
	out := make([]uint64, len(data))
	HashColumnParallel(data, out)
	for i, v := range data {
		want := FastInt64(uint64(v))
		if out[i] != want {
			t.Fatalf("out[%d] = %d, want %d", i, out[i], want)
		}
	}
}
