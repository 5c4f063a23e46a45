package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActionTime_Morning(t *testing.T) {
	got, err := ParseActionTime("2020-04-01 09:00 AM")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 4, 1, 9, 0, 0, 0, time.UTC), got)
}

func TestParseActionTime_Afternoon(t *testing.T) {
	got, err := ParseActionTime("2020-04-01 05:30 PM")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 4, 1, 17, 30, 0, 0, time.UTC), got)
}

func TestParseActionTime_MidnightAndNoon(t *testing.T) {
	midnight, err := ParseActionTime("2020-04-01 12:00 AM")
	require.NoError(t, err)
	assert.Equal(t, 0, midnight.Hour())

	noon, err := ParseActionTime("2020-04-01 12:00 PM")
	require.NoError(t, err)
	assert.Equal(t, 12, noon.Hour())
}

func TestParseActionTime_Malformed(t *testing.T) {
	cases := []string{
		"",
		"2020-04-01 09:00",
		"2020-04-01T09:00:00Z",
		"2020-04-01 13:00 PM",
		"01/04/2020 09:00 AM",
	}
	for _, in := range cases {
		_, err := ParseActionTime(in)
		require.Error(t, err, "input=%q", in)
		assert.ErrorIs(t, err, ErrMalformedTimestamp, "input=%q", in)
	}
}

func TestFormatActionTime_RoundTrip(t *testing.T) {
	const in = "2020-04-02 11:45 PM"
	parsed, err := ParseActionTime(in)
	require.NoError(t, err)
	assert.Equal(t, in, FormatActionTime(parsed))
}

func TestParseActionKind(t *testing.T) {
	k, err := ParseActionKind("CheckIn")
	require.NoError(t, err)
	assert.Equal(t, ActionCheckIn, k)

	k, err = ParseActionKind("CheckOut")
	require.NoError(t, err)
	assert.Equal(t, ActionCheckOut, k)

	_, err = ParseActionKind("checkin")
	assert.Error(t, err)
}

func TestDuration_String(t *testing.T) {
	assert.Equal(t, "8:0", Duration{Hours: 8}.String())
	assert.Equal(t, "0:0", Duration{}.String())
	assert.Equal(t, "3:75", Duration{Hours: 3, Minutes: 75}.String(), "minutes are not normalized")
}
