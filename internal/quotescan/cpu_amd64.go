//go:build amd64

package quotescan

import "golang.org/x/sys/cpu"

// hasSIMD reports whether the host has a wide-enough vector extension to
// make the blocked SWAR scan worthwhile. AVX2 or SSE4.2 both qualify; below
// that the per-byte scalar scan is cheaper than the block bookkeeping.
func hasSIMD() bool {
	return cpu.X86.HasAVX2 || cpu.X86.HasSSE42
}
