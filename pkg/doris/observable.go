package doris

import (
	"fmt"
	"strings"
)

// ObservableKind identifies the physical quantity an Observable measures,
// independent of the DORIS frequency it was sampled on.
type ObservableKind uint8

// Available observable kinds.
const (
	PseudoRangeKind ObservableKind = iota
	UnambiguousPhaseRangeKind
	PowerKind
	PressureKind
	TemperatureKind
	HumidityRateKind
	FrequencyRatioKind
)

// Observable describes both physics and, where applicable, the DORIS
// frequency the measurement was sampled on. Pressure, Temperature,
// HumidityRate and FrequencyRatio carry no frequency.
type Observable struct {
	Kind ObservableKind
	Freq Frequency
}

// PseudoRange builds the decoded pseudo-range Observable for freq.
func PseudoRange(freq Frequency) Observable { return Observable{Kind: PseudoRangeKind, Freq: freq} }

// UnambiguousPhaseRange builds the unambiguous carrier phase range
// Observable for freq.
func UnambiguousPhaseRange(freq Frequency) Observable {
	return Observable{Kind: UnambiguousPhaseRangeKind, Freq: freq}
}

// Power builds the received signal power Observable for freq.
func Power(freq Frequency) Observable { return Observable{Kind: PowerKind, Freq: freq} }

// Ground-station-level observables that carry no frequency.
var (
	Pressure       = Observable{Kind: PressureKind}
	Temperature    = Observable{Kind: TemperatureKind}
	HumidityRate   = Observable{Kind: HumidityRateKind}
	FrequencyRatio = Observable{Kind: FrequencyRatioKind}
)

// ParseObservable parses an Observable from either its compact code
// ("L1", "C2", "W1", "P", "T", "H", "F") or its verbose display form
// ("Pressure", "Temperature", "Moisture rate", "Frequency ratio").
// Parsing is case-insensitive.
func ParseObservable(s string) (Observable, error) {
	content := strings.ToUpper(strings.TrimSpace(s))

	switch content {
	case "P", "PRESSURE":
		return Pressure, nil
	case "T", "TEMPERATURE":
		return Temperature, nil
	case "H", "MOISTURE RATE":
		return HumidityRate, nil
	case "F", "FREQUENCY RATIO":
		return FrequencyRatio, nil
	}

	if len(content) < 2 {
		return Observable{}, fmt.Errorf("%w: %q", ErrObservableFormat, s)
	}

	freq, err := ParseFrequency(content[1:])
	if err != nil {
		return Observable{}, fmt.Errorf("%w: %q", ErrObservableFormat, s)
	}

	switch content[:1] {
	case "L":
		return UnambiguousPhaseRange(freq), nil
	case "C":
		return PseudoRange(freq), nil
	case "W":
		return Power(freq), nil
	default:
		return Observable{}, fmt.Errorf("%w: %q", ErrObservableFormat, s)
	}
}

// String formats the Observable using its compact DORIS code.
func (o Observable) String() string {
	switch o.Kind {
	case PressureKind:
		return "P"
	case TemperatureKind:
		return "T"
	case HumidityRateKind:
		return "H"
	case FrequencyRatioKind:
		return "F"
	case PseudoRangeKind:
		return "C" + o.Freq.String()
	case UnambiguousPhaseRangeKind:
		return "L" + o.Freq.String()
	case PowerKind:
		return "W" + o.Freq.String()
	default:
		return "?"
	}
}

// Verbose formats the Observable using its verbose display form.
func (o Observable) Verbose() string {
	switch o.Kind {
	case PressureKind:
		return "Pressure"
	case TemperatureKind:
		return "Temperature"
	case HumidityRateKind:
		return "Moisture rate"
	case FrequencyRatioKind:
		return "Frequency ratio"
	case PseudoRangeKind:
		return fmt.Sprintf("Pseudo range F%s", o.Freq)
	case UnambiguousPhaseRangeKind:
		return fmt.Sprintf("Unambiguous phase range F%s", o.Freq)
	case PowerKind:
		return fmt.Sprintf("Power F%s", o.Freq)
	default:
		return "?"
	}
}

// SameFrequency returns true if both Observables were sampled on the same
// DORIS frequency. Observables without a frequency are never equal this
// way.
func (o Observable) SameFrequency(rhs Observable) bool {
	switch o.Kind {
	case PseudoRangeKind, UnambiguousPhaseRangeKind, PowerKind:
		switch rhs.Kind {
		case PseudoRangeKind, UnambiguousPhaseRangeKind, PowerKind:
			return o.Freq == rhs.Freq
		}
	}
	return false
}

// SamePhysics returns true if o and rhs describe the same physical
// quantity, regardless of frequency.
func (o Observable) SamePhysics(rhs Observable) bool {
	return o.Kind == rhs.Kind
}
