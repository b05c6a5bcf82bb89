package schemawalk

import (
	"testing"

	"github.com/biggeezerdevelopment/tradecache/internal/quotescan"
	"github.com/stretchr/testify/require"
)

func quotesOf(t *testing.T, s string) []uint32 {
	t.Helper()
	sc := quotescan.New()
	defer sc.Release()
	out := sc.Scan([]byte(s), 0)
	got := make([]uint32, len(out))
	copy(got, out)
	return got
}

func TestWalkSingleRecord(t *testing.T) {
	s := `[{"a":1,"p":"0.5","q":"2","f":10,"l":11,"T":1700000000000,"m":true}]`
	q := quotesOf(t, s)
	require.Len(t, q, 18)

	records, err := Walk([]byte(s), q, 1)
	require.NoError(t, err)
	require.Equal(t, []Record{{A: 1, P: "0.5", Q: "2", F: 10, L: 11, T: 1700000000000, M: true}}, records)
}

func TestWalkNegativeIntegers(t *testing.T) {
	s := `[{"a":-7,"p":"0.5","q":"2","f":-1,"l":11,"T":1700000000000,"m":false}]`
	q := quotesOf(t, s)

	records, err := Walk([]byte(s), q, 1)
	require.NoError(t, err)
	require.Equal(t, int64(-7), records[0].A)
	require.Equal(t, int64(-1), records[0].F)
	require.False(t, records[0].M)
}

func TestWalkMultipleRecords(t *testing.T) {
	s := `[{"a":1,"p":"0.5","q":"2","f":10,"l":11,"T":1700000000000,"m":true},` +
		`{"a":2,"p":"0.6","q":"3","f":12,"l":13,"T":1700000000500,"m":false}]`
	q := quotesOf(t, s)
	require.Len(t, q, 36)

	records, err := Walk([]byte(s), q, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, int64(2), records[1].A)
	require.False(t, records[1].M)
}

func TestWalkRejectsWrongExpectedCount(t *testing.T) {
	s := `[{"a":1,"p":"0.5","q":"2","f":10,"l":11,"T":1700000000000,"m":true}]`
	q := quotesOf(t, s)

	_, err := Walk([]byte(s), q, 2)
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestWalkNoHintStopsBeforeOverrun(t *testing.T) {
	s := `[{"a":1,"p":"0.5"`
	q := quotesOf(t, s)

	records, err := Walk([]byte(s), q, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, int64(1), records[0].A)
	require.Equal(t, "0.5", records[0].P)
	require.Equal(t, "", records[0].Q)
}
