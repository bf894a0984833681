package groupby

import "testing"

func TestGroupByI64FirstOccurrenceOrder(t *testing.T) {
	keys := []int64{10, 20, 10, 30, 20, 10}
	ids, numGroups := GroupByI64(keys)
	if numGroups != 3 {
		t.Fatalf("numGroups = %d, want 3", numGroups)
	}
	want := []int32{0, 1, 0, 2, 1, 0}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %d, want %d", i, ids[i], want[i])
		}
	}
}

func TestGroupByI64Empty(t *testing.T) {
	ids, n := GroupByI64(nil)
	if len(ids) != 0 || n != 0 {
		t.Fatalf("GroupByI64(nil) = %v, %d, want empty, 0", ids, n)
	}
}

func TestGroupByI64Extended(t *testing.T) {
	keys := []int64{10, 20, 10, 30, 20, 10}
	ids, firstRowIdx, counts, numGroups := GroupByI64Extended(keys)
	if numGroups != 3 {
		t.Fatalf("numGroups = %d, want 3", numGroups)
	}
	wantFirst := []int32{0, 1, 3}
	for i := range wantFirst {
		if firstRowIdx[i] != wantFirst[i] {
			t.Errorf("firstRowIdx[%d] = %d, want %d", i, firstRowIdx[i], wantFirst[i])
		}
	}
	wantCounts := []int32{3, 2, 1}
	for i := range wantCounts {
		if counts[i] != wantCounts[i] {
			t.Errorf("counts[%d] = %d, want %d", i, counts[i], wantCounts[i])
		}
	}
	for i, id := range ids {
		if keys[i] != 0 && counts[id] == 0 {
			t.Fatalf("group %d has zero count but row %d belongs to it", id, i)
		}
	}
}

func TestKeysReconstruction(t *testing.T) {
	keys := []int64{10, 20, 10, 30, 20, 10}
	ids, numGroups := GroupByI64(keys)
	got := Keys(keys, ids, numGroups)
	want := []int64{10, 20, 30}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSumI64KeyF64ValueScenario(t *testing.T) {
	// hand-verified groupby-sum case with a repeated key.
	keys := []int64{1, 2, 1, 3, 2, 1}
	values := []float64{10, 20, 30, 40, 50, 60}
	result := SumI64KeyF64Value(keys, values)
	if result.NumGroups != 3 {
		t.Fatalf("NumGroups = %d, want 3", result.NumGroups)
	}
	want := map[int64]float64{1: 100, 2: 70, 3: 40}
	for g, k := range result.Keys {
		if result.Sums[g] != want[k] {
			t.Errorf("sum for key %d = %v, want %v", k, result.Sums[g], want[k])
		}
	}
}

func TestSumI64KeyF64ValueSmallKeyspace(t *testing.T) {
	// literal inputs/outputs, hand-traced groupby-sum case.
	keys := []int64{10, 20, 10, 20, 10}
	values := []float64{1.0, 2.0, 3.0, 4.0, 5.0}
	result := SumI64KeyF64Value(keys, values)
	if result.NumGroups != 2 {
		t.Fatalf("NumGroups = %d, want 2", result.NumGroups)
	}
	wantKeys := []int64{10, 20}
	wantSums := []float64{9.0, 6.0}
	for i := range wantKeys {
		if result.Keys[i] != wantKeys[i] {
			t.Errorf("Keys[%d] = %d, want %d", i, result.Keys[i], wantKeys[i])
		}
		if result.Sums[i] != wantSums[i] {
			t.Errorf("Sums[%d] = %v, want %v", i, result.Sums[i], wantSums[i])
		}
	}
}

func TestMultiAggI64KeyF64Value(t *testing.T) {
	keys := []int64{1, 2, 1, 3, 2, 1}
	values := []float64{10, 20, 30, 40, 50, 60}
	result := MultiAggI64KeyF64Value(keys, values)
	wantSum := map[int64]float64{1: 100, 2: 70, 3: 40}
	wantMin := map[int64]float64{1: 10, 2: 20, 3: 40}
	wantMax := map[int64]float64{1: 60, 2: 50, 3: 40}
	wantCount := map[int64]int64{1: 3, 2: 2, 3: 1}
	for g, k := range result.Keys {
		if result.Sums[g] != wantSum[k] {
			t.Errorf("sum[%d] = %v, want %v", k, result.Sums[g], wantSum[k])
		}
		if result.Mins[g] != wantMin[k] {
			t.Errorf("min[%d] = %v, want %v", k, result.Mins[g], wantMin[k])
		}
		if result.Maxs[g] != wantMax[k] {
			t.Errorf("max[%d] = %v, want %v", k, result.Maxs[g], wantMax[k])
		}
		if result.Counts[g] != wantCount[k] {
			t.Errorf("count[%d] = %v, want %v", k, result.Counts[g], wantCount[k])
		}
	}
}

func TestGroupByI64ManyDistinctKeys(t *testing.T) {
	n := 5000
	keys := make([]int64, n)
	for i := range keys {
		keys[i] = int64(i)
	}
	ids, numGroups := GroupByI64(keys)
	if numGroups != n {
		t.Fatalf("numGroups = %d, want %d", numGroups, n)
	}
	for i, id := range ids {
		if int(id) != i {
			t.Fatalf("ids[%d] = %d, want %d (all distinct, first occurrence order)", i, id, i)
		}
	}
}
