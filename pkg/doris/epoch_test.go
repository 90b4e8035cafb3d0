package doris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEpochHeaderForm(t *testing.T) {
	for _, tt := range []struct {
		desc  string
		input string
		want  time.Time
		scale TimeScale
	}{
		{
			desc:  "wide form with GPS scale",
			input: "  2021    12    21     0     0    0.0000000     GPS",
			want:  time.Date(2021, 12, 21, 0, 0, 0, 0, time.UTC),
			scale: GPST,
		},
		{
			desc:  "no scale tag defaults to TAI",
			input: "  1995    01    01    00    00   00.000000             ",
			want:  time.Date(1995, 1, 1, 0, 0, 0, 0, time.UTC),
			scale: TAI,
		},
	} {
		t.Run(tt.desc, func(t *testing.T) {
			e, err := ParseEpochHeaderForm(tt.input)
			assert.NoError(t, err)
			assert.True(t, tt.want.Equal(e.Time))
			assert.Equal(t, tt.scale, e.Scale)
		})
	}
}

func TestParseEpochRecordForm(t *testing.T) {
	e, err := ParseEpochRecordForm("2018 06 13 00 00 33.179947800", TAI)
	assert.NoError(t, err)
	assert.Equal(t, 2018, e.Time.Year())
	assert.Equal(t, time.Month(6), e.Time.Month())
	assert.Equal(t, 13, e.Time.Day())
	assert.Equal(t, 33, e.Time.Second())
	assert.Equal(t, 179947800, e.Time.Nanosecond())
	assert.Equal(t, TAI, e.Scale)
}

func TestParseEpochRecordFormTooFewFields(t *testing.T) {
	_, err := ParseEpochRecordForm("2018 06 13", TAI)
	assert.ErrorIs(t, err, ErrEpochFormat)
}

func TestTwoDigitYearRollover(t *testing.T) {
	assert.Equal(t, 2000, normalizeTwoDigitYear(0))
	assert.Equal(t, 2078, normalizeTwoDigitYear(78))
	assert.Equal(t, 1979, normalizeTwoDigitYear(79))
	assert.Equal(t, 1999, normalizeTwoDigitYear(99))
}

func TestEpochRoundTrip(t *testing.T) {
	e, err := ParseEpochRecordForm("2018 06 13 00 00 33.179947800", TAI)
	assert.NoError(t, err)

	formatted := FormatEpochRecordForm(e)
	reparsed, err := ParseEpochRecordForm(formatted, TAI)
	assert.NoError(t, err)
	assert.True(t, e.Time.Equal(reparsed.Time))
}
