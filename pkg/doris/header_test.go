package doris

import (
	"bufio"
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleHeader() *Header {
	cospar := COSPAR{Year: 2010, Sequence: 13, Piece: "A"}
	firstObs, _ := ParseEpochHeaderForm("  2018    06    13     0     0    0.0000000     TAI")

	return &Header{
		Version:   Version{Major: 3, Minor: 0},
		Satellite: "CRYOSAT-2",
		Program:   "dorisgo",
		RunBy:     "BKG",
		Date:      "20180613",
		Observer:  "OPERATOR",
		Agency:    "CNES",
		COSPAR:    &cospar,
		Receiver:  &Receiver{SerialNumber: "2090088", Model: "DORIS RECEIVER", Firmware: "1.0"},
		Antenna:   &Antenna{SerialNumber: "ANT001", Model: "DORIS ANTENNA"},
		Observables: []Observable{
			PseudoRange(F1),
			PseudoRange(F2),
			UnambiguousPhaseRange(F1),
			UnambiguousPhaseRange(F2),
			Power(F1),
		},
		ScalingFactors:         map[Observable]float64{PseudoRange(F1): 1000.0},
		L1L2DateOffset:         2000000, // 2ms
		GroundStations:         []GroundStation{mustStation("D17  GRFB GREENBELT                     40451S178  3   0")},
		TimeOfFirstObservation: &firstObs,
	}
}

func mustStation(s string) GroundStation {
	st, err := ParseGroundStation(s)
	if err != nil {
		panic(err)
	}
	return st
}

func TestHeaderFormatParseRoundTrip(t *testing.T) {
	h := sampleHeader()

	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	assert.NoError(t, h.Format(w))

	scanner := bufio.NewScanner(&buf)
	parsed, err := ParseHeader(scanner)
	assert.NoError(t, err)

	assert.Equal(t, h.Version, parsed.Version)
	assert.Equal(t, h.Satellite, parsed.Satellite)
	assert.Equal(t, h.Program, parsed.Program)
	assert.Equal(t, h.Observer, parsed.Observer)
	assert.Equal(t, h.Agency, parsed.Agency)
	assert.Equal(t, *h.COSPAR, *parsed.COSPAR)
	assert.Equal(t, h.Receiver.Model, parsed.Receiver.Model)
	assert.Equal(t, h.Observables, parsed.Observables)
	assert.Equal(t, len(h.GroundStations), len(parsed.GroundStations))
	assert.Equal(t, h.GroundStations[0].Label, parsed.GroundStations[0].Label)
	assert.NotNil(t, parsed.TimeOfFirstObservation)
}

func TestHeaderRejectsNonDoris(t *testing.T) {
	line := formatHeaderLine(
		fmt.Sprintf("%9s%11s%-1s%19s%-1s%-19s", "3.00", "", "O", "OBSERVATION DATA", "G", "(GPS)"),
		"RINEX VERSION / TYPE")
	raw := line + "\n" + formatHeaderLine("", "END OF HEADER") + "\n"

	scanner := bufio.NewScanner(bytes.NewBufferString(raw))
	_, err := ParseHeader(scanner)
	assert.ErrorIs(t, err, ErrInvalidDoris)
}

func TestHeaderMissingVersionFails(t *testing.T) {
	raw := formatHeaderLine("", "END OF HEADER") + "\n"
	scanner := bufio.NewScanner(bytes.NewBufferString(raw))
	_, err := ParseHeader(scanner)
	assert.ErrorIs(t, err, ErrNoHeader)
}
