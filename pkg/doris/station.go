package doris

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// usoFreqHz is the DORIS beacon ultra-stable oscillator nominal reference
// frequency, in Hertz, used to derive per-beacon frequency shifts.
const usoFreqHz = 5_000_000.0

// GroundStation describes a DORIS beacon ground station, as listed in a
// file's "STATION REFERENCE" header roster.
type GroundStation struct {
	// Code is the station's ID# used to index it within a file.
	Code uint16

	// Label is the 4 letter station mnemonic (antenna point).
	Label string

	// Site is the station's site name.
	Site string

	// DOMES is the station's DOMES site identifier.
	DOMES DOMES

	// BeaconRevision is the DORIS beacon generation.
	BeaconRevision uint8

	// KFrequencyShift is the beacon's frequency shift factor.
	KFrequencyShift int8
}

// ParseGroundStation parses a "STATION REFERENCE" content field, in the
// fixed-column "DCC  LLLL SSSS...S DDDDDDDDD  R KKK" form: the code
// directly after the "D", a 30 column site field and a 9 character DOMES.
func ParseGroundStation(content string) (GroundStation, error) {
	if len(content) < 56 {
		return GroundStation{}, fmt.Errorf("%w: %q", ErrGroundStationFormat, content)
	}

	content = content[1:]

	key := content[:4]
	rem := content[4:]
	label := rem[:5]
	rem = rem[5:]
	name := rem[:30]
	rem = rem[30:]
	domes := rem[:10]
	rem = rem[10:]
	gen := rem[:3]
	rem = rem[3:]
	kFactor := rem[:3]

	code, err := strconv.ParseUint(strings.TrimSpace(key), 10, 16)
	if err != nil {
		return GroundStation{}, fmt.Errorf("%w: %q", ErrGroundStationFormat, content)
	}

	domesID, err := ParseDOMES(strings.TrimSpace(domes))
	if err != nil {
		return GroundStation{}, fmt.Errorf("%w: %q", ErrGroundStationFormat, content)
	}

	rev, err := strconv.ParseUint(strings.TrimSpace(gen), 10, 8)
	if err != nil {
		return GroundStation{}, fmt.Errorf("%w: %q", ErrGroundStationFormat, content)
	}

	k, err := strconv.ParseInt(strings.TrimSpace(kFactor), 10, 8)
	if err != nil {
		return GroundStation{}, fmt.Errorf("%w: %q", ErrGroundStationFormat, content)
	}

	return GroundStation{
		Code:            uint16(code),
		Label:           strings.TrimSpace(label),
		Site:            strings.TrimSpace(name),
		DOMES:           domesID,
		BeaconRevision:  uint8(rev),
		KFrequencyShift: int8(k),
	}, nil
}

// String formats the station according to the DORIS "STATION REFERENCE"
// fixed-column layout, reciprocal with ParseGroundStation.
func (g GroundStation) String() string {
	return fmt.Sprintf("D%02d  %s %-29s %s  %d %3d",
		g.Code, g.Label, g.Site, g.DOMES, g.BeaconRevision, g.KFrequencyShift)
}

// Verbose formats the station for human-readable display.
func (g GroundStation) Verbose() string {
	return fmt.Sprintf("Station %s (%s/%s) (rev=%d) (freq=%d)",
		g.Label, g.Site, g.DOMES, g.BeaconRevision, g.KFrequencyShift)
}

func (g GroundStation) shiftFactor() float64 {
	return 3.0/4.0 + 87.0*float64(g.KFrequencyShift)/5.0*math.Pow(2, 26)
}

// S1FrequencyShift returns the S1 (DORIS F1) carrier frequency shift for
// this station, in Hertz.
func (g GroundStation) S1FrequencyShift() float64 {
	return 543.0 * usoFreqHz * g.shiftFactor()
}

// U2FrequencyShift returns the U2 (DORIS F2) carrier frequency shift for
// this station, in Hertz.
func (g GroundStation) U2FrequencyShift() float64 {
	return 107.0 * usoFreqHz * g.shiftFactor()
}

// MatcherKind selects which GroundStation field a Matcher tests.
type MatcherKind uint8

// Available matcher kinds.
const (
	MatchID MatcherKind = iota
	MatchSite
	MatchLabel
	MatchDOMES
)

// Matcher is a predicate over a GroundStation's identifying fields.
type Matcher struct {
	Kind  MatcherKind
	ID    uint16
	Site  string
	Label string
	DOMES DOMES
}

// MatchByID builds a Matcher selecting a station by its code.
func MatchByID(id uint16) Matcher { return Matcher{Kind: MatchID, ID: id} }

// MatchBySite builds a Matcher selecting a station by its site name.
func MatchBySite(site string) Matcher { return Matcher{Kind: MatchSite, Site: site} }

// MatchByLabel builds a Matcher selecting a station by its mnemonic label.
func MatchByLabel(label string) Matcher { return Matcher{Kind: MatchLabel, Label: label} }

// MatchByDOMES builds a Matcher selecting a station by its DOMES number.
func MatchByDOMES(domes DOMES) Matcher { return Matcher{Kind: MatchDOMES, DOMES: domes} }

// Matches reports whether g satisfies m.
func (g GroundStation) Matches(m Matcher) bool {
	switch m.Kind {
	case MatchID:
		return g.Code == m.ID
	case MatchSite:
		return g.Site == m.Site
	case MatchLabel:
		return g.Label == m.Label
	case MatchDOMES:
		return g.DOMES == m.DOMES
	default:
		return false
	}
}
