package refparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRecordsSingleRecord(t *testing.T) {
	input := `[{"a":1,"p":"0.5","q":"2","f":10,"l":11,"T":1700000000000,"m":true}]`

	records := ParseRecords([]byte(input))
	require.Equal(t, []Record{{A: 1, P: "0.5", Q: "2", F: 10, L: 11, T: 1700000000000, M: true}}, records)
}

func TestParseRecordsMultipleRecords(t *testing.T) {
	input := `[{"a":1,"p":"0.5","q":"2","f":10,"l":11,"T":1700000000000,"m":true},` +
		`{"a":2,"p":"0.6","q":"3","f":12,"l":13,"T":1700000000500,"m":false}]`

	records := ParseRecords([]byte(input))
	require.Len(t, records, 2)
	require.Equal(t, int64(2), records[1].A)
	require.False(t, records[1].M)
}

func TestParseRecordsToleratesWhitespace(t *testing.T) {
	input := `  [ { "a" : 1 , "p" : "0.5" , "q" : "2" , "f" : 10 , "l" : 11 , "T" : 1700000000000 , "m" : true } ] `

	records := ParseRecords([]byte(input))
	require.Equal(t, []Record{{A: 1, P: "0.5", Q: "2", F: 10, L: 11, T: 1700000000000, M: true}}, records)
}

func TestParseRecordsEmptyArray(t *testing.T) {
	records := ParseRecords([]byte(`[]`))
	require.Empty(t, records)
}

func TestParseRecordsNegativeIntegers(t *testing.T) {
	input := `[{"a":-7,"p":"0.5","q":"2","f":-1,"l":11,"T":1700000000000,"m":false}]`

	records := ParseRecords([]byte(input))
	require.Len(t, records, 1)
	require.Equal(t, int64(-7), records[0].A)
	require.Equal(t, int64(-1), records[0].F)
}

func TestParseRecordsMissingOpeningBracketYieldsNil(t *testing.T) {
	records := ParseRecords([]byte(`{"a":1}`))
	require.Nil(t, records)
}
