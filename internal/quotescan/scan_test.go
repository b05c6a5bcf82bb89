package quotescan

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func expectedQuoteOffsets(data []byte) []uint32 {
	want := []uint32{}
	for i, c := range data {
		if c == '"' {
			want = append(want, uint32(i))
		}
	}
	return want
}

func TestScanMatchesScalar(t *testing.T) {
	cases := map[string]string{
		"empty":       "",
		"no_quotes":   "1234567890abcdef",
		"one_quote":   `"`,
		"pair":        `"a"`,
		"record":      `{"a":1,"p":"0.5","q":"2","f":10,"l":11,"T":1700000000000,"m":true}`,
		"exact_block": `"012345678901234567890123456789"`,
		"multi_block": `"0123456789012345678901234567890123456789012345678901234567890123456789"` + `"tail"`,
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			s := New()
			defer s.Release()

			got := s.Scan([]byte(input), 0)
			require.Equal(t, expectedQuoteOffsets([]byte(input)), got)
		})
	}
}

func TestScanRandomAgreesWithScalar(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for n := 0; n < 50; n++ {
		size := r.Intn(500)
		data := make([]byte, size)
		// The full byte range, not just a quote-heavy alphabet: a lane
		// whose byte is one more than '"' (i.e. '#') immediately after a
		// real '"' is exactly the case a borrow out of the lower lane can
		// corrupt, and a narrow alphabet can go many runs without ever
		// placing that byte adjacent to a quote.
		r.Read(data)

		simd := scanBlocks(data, nil)
		scalar := scanScalar(data, nil)
		require.Equal(t, scalar, simd, "mismatch for size %d", size)
	}
}

// TestScanBorrowAcrossLaneBoundary exercises the exact byte pairing that
// can corrupt the SWAR zero-lane mask: '"' (0x22) immediately followed by
// '#' (0x23). A naive mask-only scan reports a spurious match on the '#'
// because the borrow out of the '"' lane flips the high bit of the lane
// above it.
func TestScanBorrowAcrossLaneBoundary(t *testing.T) {
	data := []byte(`"#` + `0123456789012345678901234567890123456789`)

	got := scanBlocks(data, nil)
	want := scanScalar(data, nil)
	require.Equal(t, want, got)
	require.Equal(t, []uint32{0}, got)
}

func TestScanPreSizesByExpectedRecords(t *testing.T) {
	s := New()
	defer s.Release()

	_ = s.Scan([]byte(`"a"`), 10)
	require.GreaterOrEqual(t, cap(s.indices), 10*quotesPerRecord)
}

func TestHasSIMDDoesNotPanic(t *testing.T) {
	require.NotPanics(t, func() { HasSIMD() })
}
