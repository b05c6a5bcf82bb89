// Package refparse implements a byte-at-a-time reference parser for the
// same Binance aggregate-trade array shape that schemawalk decodes. It
// tolerates whitespace between tokens and exists only as a semantic oracle
// for tests and for benchmark comparison against the vectorized decoder;
// it is not a general JSON parser.
package refparse

import (
	"strconv"

	"github.com/biggeezerdevelopment/tradecache/internal/schemawalk"
)

// Record aliases schemawalk.Record so both decoders share one type.
type Record = schemawalk.Record

// ParseRecords parses a JSON array of aggregate-trade objects, skipping
// whitespace between tokens. Input that does not start with '[' yields nil.
// Every object the parse reaches yields a Record, complete or not: fields
// it could not read are left zero, and a truncated trailing object still
// yields a Record. Parsing ends after the first object that is not
// followed by ','; no error is ever returned.
func ParseRecords(json []byte) []Record {
	p := &parser{s: json}

	p.skipWhitespace()
	if !p.expect('[') {
		return nil
	}

	p.skipWhitespace()
	if p.peek() == ']' {
		p.i++
		return nil
	}

	var records []Record
	for {
		records = append(records, p.parseRecord())

		p.skipWhitespace()
		switch p.peek() {
		case ',':
			p.i++
			continue
		case ']':
			p.i++
		}
		break
	}
	return records
}

type parser struct {
	s []byte
	i int
}

func (p *parser) peek() byte {
	if p.i >= len(p.s) {
		return 0
	}
	return p.s[p.i]
}

func (p *parser) skipWhitespace() {
	for p.i < len(p.s) {
		switch p.s[p.i] {
		case ' ', '\t', '\n', '\r':
			p.i++
		default:
			return
		}
	}
}

func (p *parser) expect(c byte) bool {
	p.skipWhitespace()
	if p.peek() != c {
		return false
	}
	p.i++
	return true
}

func (p *parser) parseString() string {
	p.skipWhitespace()
	if p.peek() != '"' {
		return ""
	}
	p.i++

	start := p.i
	for p.i < len(p.s) && p.s[p.i] != '"' {
		p.i++
	}
	result := string(p.s[start:p.i])
	if p.i < len(p.s) {
		p.i++ // closing quote
	}
	return result
}

func (p *parser) parseInt64() int64 {
	p.skipWhitespace()
	negative := false
	if p.peek() == '-' {
		negative = true
		p.i++
	}

	start := p.i
	for p.i < len(p.s) && p.s[p.i] >= '0' && p.s[p.i] <= '9' {
		p.i++
	}
	if start == p.i {
		return 0
	}

	v, err := strconv.ParseInt(string(p.s[start:p.i]), 10, 64)
	if err != nil {
		return 0
	}
	if negative {
		return -v
	}
	return v
}

// parseBool consumes a fixed-length literal, true (4 bytes) or false (5
// bytes), dispatching on the first character only — correct for this
// schema, not for general JSON.
func (p *parser) parseBool() bool {
	p.skipWhitespace()
	switch p.peek() {
	case 't':
		p.i += 4
		return true
	case 'f':
		p.i += 5
		return false
	default:
		return false
	}
}

// parseField parses one "name": value pair and, if name matches expected,
// stores the decoded value into record. Returns true if a trailing comma
// followed the field (matching the original oracle's own contract: the
// last field, m, has no trailing comma and so returns false here too).
func (p *parser) parseField(record *Record, expected string) bool {
	p.skipWhitespace()
	name := p.parseString()
	if !p.expect(':') {
		return false
	}

	switch {
	case name == "a" && expected == "a":
		record.A = p.parseInt64()
	case name == "p" && expected == "p":
		record.P = p.parseString()
	case name == "q" && expected == "q":
		record.Q = p.parseString()
	case name == "f" && expected == "f":
		record.F = p.parseInt64()
	case name == "l" && expected == "l":
		record.L = p.parseInt64()
	case name == "T" && expected == "T":
		record.T = p.parseInt64()
	case name == "m" && expected == "m":
		record.M = p.parseBool()
	default:
		return false
	}

	p.skipWhitespace()
	if p.peek() == ',' {
		p.i++
		return true
	}
	return false
}

func (p *parser) parseRecord() Record {
	p.skipWhitespace()
	if !p.expect('{') {
		return Record{}
	}

	var record Record
	for _, key := range [...]string{"a", "p", "q", "f", "l", "T", "m"} {
		p.parseField(&record, key)
	}

	p.skipWhitespace()
	if p.peek() == '}' {
		p.i++
	}
	return record
}
