// Package quotescan locates every `"` byte in a buffer, in ascending offset
// order, using block-wise vectorized-style comparison where the platform
// supports it and falling back to a scalar scan otherwise.
//
// It implements B.QuoteScan: no JSON structure is understood here, only the
// positions of quote bytes.
package quotescan

import "sync"

const quotesPerRecord = 18

// Scanner holds a reusable output buffer for quote offsets.
type Scanner struct {
	indices []uint32
}

var scannerPool = sync.Pool{
	New: func() interface{} {
		return &Scanner{indices: make([]uint32, 0, 256)}
	},
}

// New returns a Scanner from the pool, ready for Scan.
func New() *Scanner {
	return scannerPool.Get().(*Scanner)
}

// Release clears the Scanner and returns it to the pool.
func (s *Scanner) Release() {
	s.indices = s.indices[:0]
	scannerPool.Put(s)
}

// Scan returns the ascending offsets of every '"' byte in data. expectedRecords,
// when non-zero, pre-sizes the output to expectedRecords*18 to avoid growth.
func (s *Scanner) Scan(data []byte, expectedRecords int) []uint32 {
	if expectedRecords > 0 && cap(s.indices) < expectedRecords*quotesPerRecord {
		s.indices = make([]uint32, 0, expectedRecords*quotesPerRecord)
	} else {
		s.indices = s.indices[:0]
	}

	if hasSIMD() {
		s.indices = scanBlocks(data, s.indices)
	} else {
		s.indices = scanScalar(data, s.indices)
	}
	return s.indices
}

// scanScalar appends the offset of every '"' in data to out, byte by byte.
func scanScalar(data []byte, out []uint32) []uint32 {
	for i, c := range data {
		if c == '"' {
			out = append(out, uint32(i))
		}
	}
	return out
}

// HasSIMD reports whether the vectorized block path is in use on this build.
func HasSIMD() bool {
	return hasSIMD()
}
