package doris

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDiffIdenticalFilesProducesNoOutput(t *testing.T) {
	d := sampleDORIS()

	var buf bytes.Buffer
	assert.NoError(t, d.Diff(d, &buf))
	assert.Empty(t, buf.String())
}

func TestDiffReportsValueMismatchAndMissingEpoch(t *testing.T) {
	a := sampleDORIS()
	b := sampleDORIS()
	station := b.Header.GroundStations[0]

	firstKey := a.Record.Keys[0]
	m := b.Record.Measurements[firstKey]
	obsKey := ObservationKey{Station: station, Observable: PseudoRange(F1)}
	mismatched := m.Observations[obsKey]
	mismatched.Value += 50
	m.Observations[obsKey] = mismatched
	b.Record.Measurements[firstKey] = m

	extraEpoch := Epoch{Time: time.Date(2018, 6, 13, 0, 1, 0, 0, time.UTC), Scale: TAI}
	extraKey := Key{Epoch: extraEpoch, Flag: EpochOK}
	b.Record.Insert(extraKey, ObservationKey{Station: station, Observable: PseudoRange(F2)}, Observation{Value: 1}, nil)

	var buf bytes.Buffer
	assert.NoError(t, a.Diff(b, &buf))

	out := buf.String()
	assert.True(t, strings.Contains(out, "vs"))
	assert.True(t, strings.Contains(out, "only in second"))
}
