// Package config holds the process-wide tunables shared by every kernel
// package in corekernel: the SIMD chunking constants and the worker thread
// budget. It is the only package in the module that carries mutable
// process-wide state.
package config

import (
	"runtime"
	"sync/atomic"
)

// VectorWidth is the number of lanes a single SIMD-style chunk step
// processes. It is a fixed build-time constant, not a runtime-detected
// value: kernels must agree on a single width so that the four-accumulator
// reduction tree shape (see aggregate package) produces bit-identical
// results across runs on the same build, independent of which CPU the
// binary happens to run on.
const VectorWidth = 8

// Unroll is the number of independent vector-width iterations issued per
// loop body in the "unrolled SIMD loop" stage of a kernel, hiding load/op/
// store latency behind instruction-level parallelism.
const Unroll = 4

// Chunk is the number of elements processed per unrolled-loop iteration:
// VectorWidth * Unroll.
const Chunk = VectorWidth * Unroll

// MaxThreadsHardLimit is the ceiling on the worker thread budget regardless
// of what the caller requests or what auto-detection finds.
const MaxThreadsHardLimit = 32

var (
	maxThreads   atomic.Int32
	autoDetected atomic.Bool
)

func init() {
	autoDetect()
}

func autoDetect() {
	n := runtime.NumCPU()
	if n < 1 {
		n = 1
	}
	if n > MaxThreadsHardLimit {
		n = MaxThreadsHardLimit
	}
	maxThreads.Store(int32(n))
	autoDetected.Store(true)
}

// MaxThreads returns the current worker thread budget. Parallel kernels
// read this once per entry: a concurrent SetMaxThreads call affects at most
// the next kernel invocation, never one already running.
func MaxThreads() int {
	return int(maxThreads.Load())
}

// SetMaxThreads explicitly configures the worker thread budget, clamped to
// [1, MaxThreadsHardLimit]. Calling it marks the budget as no longer
// auto-detected.
func SetMaxThreads(n int) {
	if n < 1 {
		n = 1
	}
	if n > MaxThreadsHardLimit {
		n = MaxThreadsHardLimit
	}
	maxThreads.Store(int32(n))
	autoDetected.Store(false)
}

// ThreadsAutoDetected reports whether the current budget came from
// runtime.NumCPU() rather than an explicit SetMaxThreads call.
func ThreadsAutoDetected() bool {
	return autoDetected.Load()
}

// ResetAutoDetect restores the thread budget to the auto-detected value.
// Mainly useful for tests that call SetMaxThreads and need to undo it.
func ResetAutoDetect() {
	autoDetect()
}
