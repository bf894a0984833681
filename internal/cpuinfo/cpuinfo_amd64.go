//go:build amd64

package cpuinfo

import "golang.org/x/sys/cpu"

func init() {
	switch {
	case cpu.X86.HasAVX512F:
		detectedLevel = LevelAVX512
	case cpu.X86.HasAVX2:
		detectedLevel = LevelAVX2
	default:
		detectedLevel = LevelSSE2
	}
}
