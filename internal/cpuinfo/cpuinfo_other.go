//go:build !amd64 && !arm64

package cpuinfo

func init() {
	detectedLevel = LevelScalar
}
