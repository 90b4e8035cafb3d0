package doris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSNRDigitRoundTrip(t *testing.T) {
	for d := '0'; d <= '9'; d++ {
		digit := string(d)
		snr, err := ParseSNR(digit)
		assert.NoError(t, err)
		assert.Equal(t, digit, snr.String())
	}
}

func TestSNRSynonyms(t *testing.T) {
	bad, err := ParseSNR("bad")
	assert.NoError(t, err)
	assert.Equal(t, SNRDbHz18to23, bad)

	excellent, err := ParseSNR("excellent")
	assert.NoError(t, err)
	assert.Equal(t, SNRDbHz48to53, excellent)
}

func TestSNRFromValue(t *testing.T) {
	for _, tt := range []struct {
		value float64
		want  SNR
	}{
		{0.0, SNRDbHz12},
		{11.9, SNRDbHz12},
		{17.0, SNRDbHz12to17},
		{30.0, SNRDbHz30to35},
		{54.1, SNRDbHz54},
	} {
		assert.Equal(t, tt.want, SNRFromValue(tt.value))
	}
}
