package workerpool

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParallelForCoversEveryIndexExactlyOnce(t *testing.T) {
	const n = 10_000
	var hits [n]int32

	pool := New(4)
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	}, 777)

	for i := range hits {
		require.Equalf(t, int32(1), hits[i], "index %d visited %d times", i, hits[i])
	}
}

func TestParallelForEmptyRangeNoOp(t *testing.T) {
	pool := New(4)
	called := false
	pool.ParallelFor(0, func(start, end int) { called = true }, 16)
	require.False(t, called)
}

func TestParallelForSingleWorkerRunsInline(t *testing.T) {
	pool := New(1)
	var sum int
	pool.ParallelFor(100, func(start, end int) {
		sum += end - start
	}, 0)
	require.Equal(t, 100, sum)
}

func TestNumWorkersNeverExceedsRangeLength(t *testing.T) {
	pool := New(16)
	require.LessOrEqual(t, pool.NumWorkers(3), 3)
}
