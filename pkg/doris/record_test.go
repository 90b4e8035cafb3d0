package doris

import (
	"bufio"
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sampleRecordHeader() *Header {
	return &Header{
		Satellite: "CRYOSAT-2",
		Observables: []Observable{
			PseudoRange(F1),
			PseudoRange(F2),
			UnambiguousPhaseRange(F1),
		},
		GroundStations: []GroundStation{
			mustStation("D01  OWFC OWENGA                        50253S002  3   0"),
			mustStation("D17  GRFB GREENBELT                     40451S178  3   0"),
		},
	}
}

func TestRecordFormatParseRoundTrip(t *testing.T) {
	header := sampleRecordHeader()
	rec := NewRecord()

	epoch := Epoch{Time: time.Date(2018, 6, 13, 0, 0, 0, 0, time.UTC), Scale: TAI}
	key := Key{Epoch: epoch, Flag: EpochOK}

	station1 := header.GroundStations[0]
	station2 := header.GroundStations[1]

	clock := &ClockOffset{Offset: -4326631626 * time.Nanosecond, Extrapolated: false}

	rec.Insert(key, ObservationKey{Station: station1, Observable: PseudoRange(F1)}, Observation{Value: 123.456}, clock)
	rec.Insert(key, ObservationKey{Station: station1, Observable: PseudoRange(F2)}, Observation{Value: 789.012}, clock)
	rec.Insert(key, ObservationKey{Station: station2, Observable: UnambiguousPhaseRange(F1)}, Observation{Value: 42.0}, nil)

	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	assert.NoError(t, FormatRecord(w, header, rec))

	scanner := bufio.NewScanner(&buf)
	parsed, err := ParseRecord(scanner, header)
	assert.NoError(t, err)

	assert.Len(t, parsed.Keys, 1)
	parsedKey := parsed.Keys[0]
	assert.True(t, parsedKey.Epoch.Time.Equal(epoch.Time))
	assert.Equal(t, EpochOK, parsedKey.Flag)

	m := parsed.Measurements[parsedKey]
	v1, ok := m.Observations[ObservationKey{Station: station1, Observable: PseudoRange(F1)}]
	assert.True(t, ok)
	assert.InDelta(t, 123.456, v1.Value, 1e-3)

	v2, ok := m.Observations[ObservationKey{Station: station2, Observable: UnambiguousPhaseRange(F1)}]
	assert.True(t, ok)
	assert.InDelta(t, 42.0, v2.Value, 1e-3)
}

func TestRecordOrderInvariant(t *testing.T) {
	header := sampleRecordHeader()
	rec := NewRecord()

	e1 := Epoch{Time: time.Date(2018, 6, 13, 0, 0, 0, 0, time.UTC), Scale: TAI}
	e2 := Epoch{Time: time.Date(2018, 6, 13, 0, 0, 3, 0, time.UTC), Scale: TAI}

	station := header.GroundStations[0]
	rec.Insert(Key{Epoch: e1, Flag: EpochOK}, ObservationKey{Station: station, Observable: PseudoRange(F1)}, Observation{Value: 1}, nil)
	rec.Insert(Key{Epoch: e2, Flag: EpochOK}, ObservationKey{Station: station, Observable: PseudoRange(F1)}, Observation{Value: 2}, nil)

	for i := 1; i < len(rec.Keys); i++ {
		assert.False(t, rec.Keys[i].Less(rec.Keys[i-1]))
	}
}
