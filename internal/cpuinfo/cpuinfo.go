// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cpuinfo is a diagnostic-only CPU feature probe. It never changes
// the fixed SIMD chunking constants in package config; it only reports what
// the running CPU could in principle support, for logging and
// cmd/kernelbench output.
package cpuinfo

import "os"

// Level names the SIMD instruction family the probe detected.
type Level int

const (
	LevelScalar Level = iota
	LevelSSE2
	LevelAVX2
	LevelAVX512
	LevelNEON
)

func (l Level) String() string {
	switch l {
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	default:
		return "scalar"
	}
}

// detectedLevel is populated by the arch-specific init() in
// cpuinfo_amd64.go / cpuinfo_arm64.go / cpuinfo_other.go.
var detectedLevel = LevelScalar

// Detected returns the SIMD level the current CPU appears to support.
// corekernel's kernels do not branch on this value; it exists purely for
// diagnostics (cmd/kernelbench prints it) since the pure-Go unrolled loops
// in arithmetic/comparison/aggregate run identically either way.
func Detected() Level {
	if disabledByEnv() {
		return LevelScalar
	}
	return detectedLevel
}

// disabledByEnv checks CORE_NO_SIMD, the collaborator-facing escape hatch
// for forcing the scalar-equivalent diagnostic reading (e.g. in CI sandboxes
// where cpu feature bits are unreliable).
func disabledByEnv() bool {
	v := os.Getenv("CORE_NO_SIMD")
	return v != "" && v != "0" && v != "false"
}
