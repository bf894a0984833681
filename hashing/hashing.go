// Package hashing implements two hash paths: a fast multiply-xorshift
// integer hash (FastInt64) for hash-table probing, and a higher-quality
// 128-bit-wide multiply-fold hash (RapidHash64, in the style of rapidhash)
// for callers where collision quality matters more than the last
// nanosecond. The in-tree hash tables (groupby, joins) and the multi-column
// combine rule all use FastInt64; a single hash table commits to one
// variant for its whole lifetime.
//
// The 64-bit FNV-style hash-then-compare-on-collision design in
// djheidihoe/1brc's column-store benchmark is the model for combine's
// fold-left shape; the mixing constants here are fixed independently of
// FNV so that hash tables stay bit-identical across builds.
package hashing

import (
	"math"
	"math/bits"

	"github.com/vectorframe/corekernel/workerpool"
)

// parallelHashGrain is the row count per chunk used by HashColumnParallel,
// chosen so each worker does enough independent hashing to dwarf its
// chunk-claim overhead.
const parallelHashGrain = 8192

// A single hash table build+probe must use one fastIntHash variant
// consistently. FastInt64 is that chosen variant; callers must not mix it
// with RapidHash64 within one table.

const (
	goldenRatio64  uint64 = 0x9E3779B97F4A7C15
	secondPrime64  uint64 = 0xBF58476D1CE4E5B9
	rapidSecret0   uint64 = 0x2D358DCCAA6C78A5
	rapidSecret1   uint64 = 0x8BB84B93962EACC9
	rapidSecret2   uint64 = 0x4B33A62ED433D4A3
	combineSeed    uint64 = 0x9E3779B97F4A7C15
	combineMixConst uint64 = 0xBF58476D1CE4E5B9
)

// FastInt64 is the fast path: two rounds of multiply + xorshift. Chosen
// for raw hash-table insert/probe throughput where hash quality only needs
// to be good enough to spread keys across buckets, not cryptographically
// sound.
func FastInt64(x uint64) uint64 {
	x ^= x >> 33
	x *= goldenRatio64
	x ^= x >> 29
	x *= secondPrime64
	x ^= x >> 32
	return x
}

// RapidHash64 is the high-quality path: a 128-bit-wide multiply-fold using
// three secret constants, for cases where collision resistance across a
// large key space matters more than the extra multiply's cost (e.g. a
// join's build-side table over millions of distinct keys).
func RapidHash64(x uint64) uint64 {
	hi, lo := bits.Mul64(x^rapidSecret0, rapidSecret1)
	folded := hi ^ lo
	hi2, lo2 := bits.Mul64(folded, rapidSecret2)
	return hi2 ^ lo2
}

// CombineF64 folds a single float64 value into a running multi-column
// hash state using its raw bit pattern.
func CombineF64(state uint64, v float64) uint64 {
	return combine(state, floatBits(v))
}

// CombineI64 folds a single int64 value into a running multi-column hash
// state.
func CombineI64(state uint64, v int64) uint64 {
	return combine(state, uint64(v))
}

func combine(state uint64, v uint64) uint64 {
	return FastInt64(state ^ v ^ combineMixConst)
}

// RowHashI64 computes the combined hash of one row across several int64
// key columns: hash = combineSeed; for each column, hash = combine(hash,
// value); finalize hash ^ rapidSecret2. The fold is associative in the sense
// that grouping columns differently still reaches the same final hash for
// the same column order, but it is NOT commutative: reordering the
// columns changes the result.
func RowHashI64(cols [][]int64, row int) uint64 {
	hash := combineSeed
	for _, col := range cols {
		hash = CombineI64(hash, col[row])
	}
	return hash ^ rapidSecret2
}

// RowHashF64 is RowHashI64's float64 counterpart.
func RowHashF64(cols [][]float64, row int) uint64 {
	hash := combineSeed
	for _, col := range cols {
		hash = CombineF64(hash, col[row])
	}
	return hash ^ rapidSecret2
}

func floatBits(v float64) uint64 {
	return math.Float64bits(v)
}

// HashColumnParallel writes FastInt64(bit-pattern) for each row of data
// into out, splitting the work across workerpool.Default() in
// parallelHashGrain-sized chunks.
func HashColumnParallel(data []int64, out []uint64) {
	n := min(len(data), len(out))
	pool := workerpool.Default()
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = FastInt64(uint64(data[i]))
		}
	}, parallelHashGrain)
}
