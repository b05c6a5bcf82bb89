//go:build arm64

package quotescan

import "golang.org/x/sys/cpu"

// hasSIMD reports whether NEON is available. NEON is mandatory on arm64 so
// this is always true, but the check keeps the call site identical across
// architectures (teacher: internal/scanner/simd_arm64.go).
func hasSIMD() bool {
	return cpu.ARM64.HasASIMD
}
