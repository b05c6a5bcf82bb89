//go:build !amd64 && !arm64

package quotescan

// hasSIMD is always false on architectures with no vector-compare path
// defined here; Scan falls back to the byte-at-a-time scalar scan.
func hasSIMD() bool {
	return false
}
