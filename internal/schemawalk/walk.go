// Package schemawalk implements a fixed-offset traversal of a quote-offset
// sequence that extracts Records from a JSON array of Binance
// aggregate-trade objects without parsing JSON structure at all.
//
// The walk relies entirely on the schema being exactly seven fields, in
// order a, p, q, f, l, T, m, and on quotes being the only navigation
// landmark.
package schemawalk

import (
	"errors"
	"strconv"
)

// ErrMalformedInput is returned when the supplied quote-index length does
// not match 18*expectedRecords. The records the walk can still decode from
// that index are returned alongside the error.
var ErrMalformedInput = errors.New("schemawalk: quote index length does not match expected record count")

const (
	quotesPerRecord = 18
	keysPerRecord   = 7
)

// pairOffset is the number of quotes the key at position k (0-based, a p q
// f l T m) contributes together with its value.
func pairOffset(k int) int {
	if k == 1 || k == 2 { // p, q: value is itself a quoted string
		return 4
	}
	return 2
}

// Walk extracts Records from s using the quote-offset sequence q produced
// by quotescan.Scan. When expectedRecords is non-zero, len(q) is validated
// against 18*expectedRecords first; on a mismatch the walk still runs over
// q as far as it goes, and the records it decodes are returned together
// with ErrMalformedInput.
// When expectedRecords is zero the walk proceeds and simply stops cleanly
// before reading past the end of q.
func Walk(s []byte, q []uint32, expectedRecords int) ([]Record, error) {
	if expectedRecords > 0 && len(q) != expectedRecords*quotesPerRecord {
		partial, _ := walk(s, q)
		return partial, ErrMalformedInput
	}
	return walk(s, q)
}

func walk(s []byte, q []uint32) ([]Record, error) {
	var records []Record
	var record Record
	started := false

	k := 0
outer:
	for i := 0; i < len(q); {
		d := pairOffset(k)
		q0 := int(q[i])
		start := q0 + 4

		if k == 0 {
			if started {
				records = append(records, record)
			}
			record = Record{}
			started = true
		}

		switch {
		case k == keysPerRecord-1:
			// m's boolean literal is never quoted, so there is no
			// "next key" quote to bound it against — only the first
			// byte is read, matching the original parser's substr(start, 1).
			if start >= 0 && start < len(s) {
				record.M = parseBool(s[start : start+1])
			}

		case k == 1 || k == 2:
			// p/q hold quoted string values: i+1 is the key's closing
			// quote, i+2/i+3 are the value's own opening/closing quotes.
			// The slice is the bytes strictly between those two quotes —
			// q0+4 would land ON the value's opening quote, which is why
			// p/q need this instead of the shared q0+4..qNext-1 formula.
			if i+3 >= len(q) {
				break outer
			}
			vstart := int(q[i+2]) + 1
			vend := int(q[i+3])
			if vstart < 0 || vend < vstart || vend > len(s) {
				break outer
			}
			value := s[vstart:vend]
			if k == 1 {
				record.P = string(value)
			} else {
				record.Q = string(value)
			}

		default:
			if i+d >= len(q) {
				// Truncated tail: stop cleanly rather than reading past q.
				break outer
			}
			qNext := int(q[i+d])
			end := qNext - 1
			if start < 0 || end < start || end > len(s) {
				break outer
			}
			value := s[start:end]

			switch k {
			case 0:
				record.A = parseInt64(value)
			case 3:
				record.F = parseInt64(value)
			case 4:
				record.L = parseInt64(value)
			case 5:
				record.T = parseInt64(value)
			}
		}

		i += d
		k = (k + 1) % keysPerRecord
	}

	if started {
		records = append(records, record)
	}
	return records, nil
}

// parseInt64 parses an optionally-signed decimal integer from its slice.
// Malformed input yields 0; no error is surfaced by the schema walk.
func parseInt64(b []byte) int64 {
	v, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseBool dispatches on the first byte only: 't' -> true, anything else
// (including 'f') -> false. This is correct for this schema's literal
// booleans and not a general JSON boolean parser.
func parseBool(b []byte) bool {
	return len(b) > 0 && b[0] == 't'
}
