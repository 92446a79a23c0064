package schedule

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"06:30", 390},
		{"09:00", 540},
		{"13:45", 825},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := ToMinutes(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestToMinutes_Invalid(t *testing.T) {
	for _, in := range []string{"", "9", "9:00:00", "ab:cd", "24:00", "12:60", "-1:00", "12:-5"} {
		_, err := ToMinutes(in)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat, in)
	}
}

func TestFromMinutes_RoundTrip(t *testing.T) {
	for h := 0; h < 24; h++ {
		for _, m := range []int{0, 15, 30, 45, 59} {
			in := fmt.Sprintf("%02d:%02d", h, m)
			mins, err := ToMinutes(in)
			require.NoError(t, err)
			assert.Equal(t, in, FromMinutes(mins))
		}
	}
}

func TestFromMinutes_Wraps(t *testing.T) {
	assert.Equal(t, "00:15", FromMinutes(1440+15))
	assert.Equal(t, "23:45", FromMinutes(-15))
}

func TestAddMinutes(t *testing.T) {
	got, err := AddMinutes("09:00", 15)
	require.NoError(t, err)
	assert.Equal(t, "09:15", got)

	got, err = AddMinutes("23:50", 20)
	require.NoError(t, err)
	assert.Equal(t, "00:10", got)

	_, err = AddMinutes("bogus", 5)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestFormatDisplay(t *testing.T) {
	cases := map[string]string{
		"00:00": "12:00 AM",
		"00:30": "12:30 AM",
		"09:05": "9:05 AM",
		"12:00": "12:00 PM",
		"13:30": "1:30 PM",
		"23:59": "11:59 PM",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatDisplay(in), in)
	}
}

func TestFormatDisplay_MalformedReturnsSentinel(t *testing.T) {
	for _, in := range []string{"", "nope", "25:00", "12:99"} {
		assert.Equal(t, InvalidTimeSentinel, FormatDisplay(in), in)
	}
}

func TestOverlaps(t *testing.T) {
	// Touching endpoints do not overlap.
	ok, err := Overlaps("09:00", "09:15", "09:15", "09:30")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = Overlaps("09:00", "09:20", "09:15", "09:30")
	require.NoError(t, err)
	assert.True(t, ok)

	// Containment counts as overlap.
	ok, err = Overlaps("09:00", "10:00", "09:15", "09:30")
	require.NoError(t, err)
	assert.True(t, ok)

	// Disjoint.
	ok, err = Overlaps("09:00", "09:30", "10:00", "10:30")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = Overlaps("bad", "09:30", "10:00", "10:30")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}
