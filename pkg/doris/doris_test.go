package doris

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sampleDORIS() *DORIS {
	header := &Header{
		Satellite: "CRYOSAT-2",
		Observables: []Observable{
			PseudoRange(F1),
			PseudoRange(F2),
		},
		GroundStations: []GroundStation{
			mustStation("D01  OWFC OWENGA                        50253S002  3   0"),
		},
	}
	rec := NewRecord()
	station := header.GroundStations[0]

	base := time.Date(2018, 6, 13, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		epoch := Epoch{Time: base.Add(time.Duration(i) * 3 * time.Second), Scale: TAI}
		key := Key{Epoch: epoch, Flag: EpochOK}
		clock := &ClockOffset{Offset: time.Duration(i) * time.Microsecond}
		rec.Insert(key, ObservationKey{Station: station, Observable: PseudoRange(F1)}, Observation{Value: 100.0 + float64(i)}, clock)
		rec.Insert(key, ObservationKey{Station: station, Observable: PseudoRange(F2)}, Observation{Value: 200.0 + float64(i)}, nil)
	}

	return &DORIS{Header: header, Record: rec}
}

func TestDORISSamplingHistogramAndDominantPeriod(t *testing.T) {
	d := sampleDORIS()

	hist := d.SamplingHistogram()
	assert.Len(t, hist, 1)
	assert.Equal(t, 3*time.Second, hist[0].Duration)
	assert.Equal(t, 2, hist[0].Count)

	period, err := d.DominantSamplingPeriod()
	assert.NoError(t, err)
	assert.Equal(t, 3*time.Second, period)
}

func TestDORISDominantPeriodUndetermined(t *testing.T) {
	d := &DORIS{Header: &Header{}, Record: NewRecord()}
	_, err := d.DominantSamplingPeriod()
	assert.ErrorIs(t, err, ErrUndeterminedSamplingRate)
}

func TestDORISSatelliteClockOffsetIter(t *testing.T) {
	d := sampleDORIS()
	offsets := d.SatelliteClockOffsetIter()
	assert.Len(t, offsets, 3)
	assert.True(t, offsets[0].Epoch.Before(offsets[1].Epoch))
	assert.True(t, offsets[1].Epoch.Before(offsets[2].Epoch))
}

func TestDORISIsMerged(t *testing.T) {
	d := sampleDORIS()
	assert.False(t, d.IsMerged())

	d.Header.Comments = append(d.Header.Comments, "FILE MERGE")
	assert.True(t, d.IsMerged())
}

func TestDORISStandardFilenameFallsBackToHeader(t *testing.T) {
	d := sampleDORIS()
	firstObs := Epoch{Time: time.Date(2018, 6, 13, 0, 0, 0, 0, time.UTC), Scale: TAI}
	d.Header.TimeOfFirstObservation = &firstObs

	name := d.StandardFilename()
	assert.Equal(t, "CRYOS18164", name)
}

func TestDORISStandardFilenamePrefersProduction(t *testing.T) {
	d := sampleDORIS()
	d.Production = &ProductionAttributes{Satellite: "CS2RX", Year: 2019, DOY: 42, GzipCompressed: true}

	assert.Equal(t, "CS2RX19042.gz", d.StandardFilename())
}

func TestDORISSubstractIdentityYieldsZeroResiduals(t *testing.T) {
	d := sampleDORIS()

	residual, err := d.Substract(d)
	assert.NoError(t, err)
	assert.True(t, len(residual.Record.Keys) > 0)

	for _, key := range residual.Record.Keys {
		m := residual.Record.Measurements[key]
		for _, obs := range m.Observations {
			assert.InDelta(t, 0.0, obs.Value, 1e-9)
		}
	}
}

func TestMergeRejectsDistinctSatellites(t *testing.T) {
	a := sampleDORIS()
	b := sampleDORIS()
	b.Header.Satellite = "JASON-3"

	_, err := Merge(a, b, Epoch{Time: time.Now(), Scale: TAI})
	assert.Error(t, err)
}

func TestMergeUnionsKeysAndFlagsMerged(t *testing.T) {
	a := sampleDORIS()
	b := sampleDORIS()
	station := b.Header.GroundStations[0]

	later := Epoch{Time: time.Date(2018, 6, 13, 0, 0, 9, 0, time.UTC), Scale: TAI}
	key := Key{Epoch: later, Flag: EpochOK}
	b.Record.Insert(key, ObservationKey{Station: station, Observable: PseudoRange(F1)}, Observation{Value: 999}, nil)

	at := Epoch{Time: time.Date(2018, 6, 14, 0, 0, 0, 0, time.UTC), Scale: TAI}
	merged, err := Merge(a, b, at)
	assert.NoError(t, err)
	assert.True(t, merged.IsMerged())
	assert.Len(t, merged.Record.Keys, 4)

	for i := 1; i < len(merged.Record.Keys); i++ {
		assert.False(t, merged.Record.Keys[i].Less(merged.Record.Keys[i-1]))
	}
}

func TestDORISParseFormatRoundTrip(t *testing.T) {
	header := sampleHeader()
	rec := NewRecord()
	station := header.GroundStations[0]
	epoch := Epoch{Time: time.Date(2018, 6, 13, 0, 0, 0, 0, time.UTC), Scale: TAI}
	key := Key{Epoch: epoch, Flag: EpochOK}
	rec.Insert(key, ObservationKey{Station: station, Observable: PseudoRange(F1)}, Observation{Value: 1234.5}, nil)
	d := &DORIS{Header: header, Record: rec}

	var buf bytes.Buffer
	assert.NoError(t, d.Format(&buf))

	parsed, err := Parse(&buf)
	assert.NoError(t, err)
	assert.Equal(t, d.Header.Satellite, parsed.Header.Satellite)
	assert.Len(t, parsed.Record.Keys, 1)
}
