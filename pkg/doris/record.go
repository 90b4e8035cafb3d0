package doris

import "time"

// secondsToDuration converts a fractional-seconds float64 into a
// time.Duration at nanosecond resolution.
func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

// Key identifies one epoch's measurements within a Record: the epoch
// instant together with its sampling flag. Keys order lexicographically,
// epoch first.
type Key struct {
	Epoch Epoch
	Flag  EpochFlag
}

// Less reports whether k sorts strictly before rhs.
func (k Key) Less(rhs Key) bool {
	if !k.Epoch.Time.Equal(rhs.Epoch.Time) {
		return k.Epoch.Time.Before(rhs.Epoch.Time)
	}
	return k.Flag < rhs.Flag
}

// ObservationKey identifies a single measurement channel: a station
// observing one Observable.
type ObservationKey struct {
	Station GroundStation
	Observable Observable
}

// Observation is a single decoded measurement cell.
type Observation struct {
	Value     float64
	SNR       *SNR
	PhaseFlag *bool
}

// ClockOffset is the onboard receiver clock offset from the record
// epoch's time scale, as reported on an epoch header line.
type ClockOffset struct {
	Offset       time.Duration
	Extrapolated bool
}

// Measurements groups every observation collected at one epoch, keyed by
// (station, observable).
type Measurements struct {
	SatelliteClockOffset *ClockOffset
	Observations         map[ObservationKey]Observation
}

// Record is the chronological body of a DORIS file: the ordered sequence
// of per-epoch Measurements plus any comments encountered in the record
// body.
type Record struct {
	// Keys holds the epoch keys in strictly non-decreasing (epoch, flag)
	// order, mirroring insertion order from a single chronological pass.
	Keys []Key

	// Measurements maps each Key to its collected Measurements.
	Measurements map[Key]Measurements

	// Comments are lines tagged COMMENT encountered within the record
	// body (as opposed to the header).
	Comments []string
}

// NewRecord builds an empty Record ready for sequential population.
func NewRecord() *Record {
	return &Record{Measurements: make(map[Key]Measurements)}
}

// Insert records an Observation for (key, obsKey), creating the epoch's
// Measurements entry (and appending key to Keys) on first use.
func (r *Record) Insert(key Key, obsKey ObservationKey, obs Observation, clock *ClockOffset) {
	m, ok := r.Measurements[key]
	if !ok {
		m = Measurements{Observations: make(map[ObservationKey]Observation)}
		r.Keys = append(r.Keys, key)
	}
	if m.SatelliteClockOffset == nil && clock != nil {
		m.SatelliteClockOffset = clock
	}
	m.Observations[obsKey] = obs
	r.Measurements[key] = m
}

// StationCodes returns the distinct station codes with observations at
// key, ascending.
func (r *Record) StationCodes(key Key) []uint16 {
	seen := make(map[uint16]bool)
	var codes []uint16
	for obsKey := range r.Measurements[key].Observations {
		if !seen[obsKey.Station.Code] {
			seen[obsKey.Station.Code] = true
			codes = append(codes, obsKey.Station.Code)
		}
	}
	for i := 1; i < len(codes); i++ {
		for j := i; j > 0 && codes[j-1] > codes[j]; j-- {
			codes[j-1], codes[j] = codes[j], codes[j-1]
		}
	}
	return codes
}
