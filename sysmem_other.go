//go:build !linux
// +build !linux

package govfi

// systemMemory returns an assumed system memory size on platforms without a
// cheap probe
func systemMemory() uint64 {
	return defaultSystemMemory
}
