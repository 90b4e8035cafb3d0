package doris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObservableRoundTrip(t *testing.T) {
	for _, code := range []string{"L1", "L2", "C1", "C2", "W1", "W2", "T", "P", "H", "F"} {
		o, err := ParseObservable(code)
		assert.NoError(t, err, code)

		reparsed, err := ParseObservable(o.String())
		assert.NoError(t, err, code)
		assert.Equal(t, o, reparsed, code)
	}
}

func TestObservableCaseInsensitive(t *testing.T) {
	lower, err := ParseObservable("l1")
	assert.NoError(t, err)
	upper, err := ParseObservable("L1")
	assert.NoError(t, err)
	assert.Equal(t, upper, lower)
}

func TestObservableVerboseForms(t *testing.T) {
	for _, tt := range []struct {
		verbose string
		want    ObservableKind
	}{
		{"PRESSURE", PressureKind},
		{"TEMPERATURE", TemperatureKind},
		{"MOISTURE RATE", HumidityRateKind},
		{"FREQUENCY RATIO", FrequencyRatioKind},
	} {
		o, err := ParseObservable(tt.verbose)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, o.Kind)
	}
}

func TestObservableInvalidCode(t *testing.T) {
	_, err := ParseObservable("Z9")
	assert.ErrorIs(t, err, ErrObservableFormat)
}
