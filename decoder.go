package tradecache

import (
	"sync"

	"github.com/biggeezerdevelopment/tradecache/internal/quotescan"
	"github.com/biggeezerdevelopment/tradecache/internal/schemawalk"
)

// ErrMalformedInput is returned when the decoded quote count does not match
// 18*expectedRecords. The records the walk can still decode are returned
// alongside the error.
var ErrMalformedInput = schemawalk.ErrMalformedInput

// Decoder is the SIMD schema-walk decoder: a vectorized quote scan followed
// by a fixed-offset schema walk. A Decoder is not safe for concurrent use;
// it is single-threaded by design.
type Decoder struct {
	expected int
	scanner  *quotescan.Scanner
}

var decoderPool = sync.Pool{
	New: func() interface{} {
		return &Decoder{scanner: quotescan.New()}
	},
}

// NewDecoder returns a pooled Decoder whose quote-index buffer is pre-sized
// for expectedRecords. Pass 0 if the record count is unknown; the decoder
// then grows its buffer on demand and skips the 18*n length validation.
func NewDecoder(expectedRecords int) *Decoder {
	d := decoderPool.Get().(*Decoder)
	d.expected = expectedRecords
	return d
}

// Reset clears the Decoder and returns it to the pool.
func (d *Decoder) Reset() {
	d.expected = 0
	decoderPool.Put(d)
}

// ParseRecords decodes json into Records using the vectorized quote scan
// followed by the fixed-offset schema walk.
func (d *Decoder) ParseRecords(json []byte) ([]Record, error) {
	offsets := d.scanner.Scan(json, d.expected)
	return schemawalk.Walk(json, offsets, d.expected)
}
