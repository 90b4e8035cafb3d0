package doris

import (
	"bufio"
	"fmt"
	"strings"
)

// FormatRecord writes rec to w, column-exact against header's observable
// schema, iterating Keys in order (strictly chronological by
// construction).
func FormatRecord(w *bufio.Writer, header *Header, rec *Record) error {
	for _, key := range rec.Keys {
		if err := formatEpochLine(w, rec, key); err != nil {
			return err
		}

		for _, code := range rec.StationCodes(key) {
			station, ok := header.GroundStation(code)
			if !ok {
				continue
			}
			if err := formatStationBlock(w, header, rec, key, station); err != nil {
				return err
			}
		}
	}
	return w.Flush()
}

func formatEpochLine(w *bufio.Writer, rec *Record, key Key) error {
	codes := rec.StationCodes(key)

	line := fmt.Sprintf("> %s  %d%3d", FormatEpochRecordForm(key.Epoch), int(key.Flag), len(codes))

	m := rec.Measurements[key]
	if m.SatelliteClockOffset != nil {
		line += fmt.Sprintf(" %14.9f%d", m.SatelliteClockOffset.Offset.Seconds(), boolToDigit(m.SatelliteClockOffset.Extrapolated))
	}

	_, err := w.WriteString(line + "\n")
	return err
}

func boolToDigit(b bool) int {
	if b {
		return 1
	}
	return 0
}

func formatStationBlock(w *bufio.Writer, header *Header, rec *Record, key Key, station GroundStation) error {
	m := rec.Measurements[key]

	var b strings.Builder
	fmt.Fprintf(&b, "D%02d", station.Code)

	for i, obs := range header.Observables {
		if i > 0 && i%5 == 0 {
			b.WriteString("\n   ")
		}
		if o, ok := m.Observations[ObservationKey{Station: station, Observable: obs}]; ok {
			snr := " "
			if o.SNR != nil {
				snr = o.SNR.String()
			}
			flag := " "
			if o.PhaseFlag != nil {
				if *o.PhaseFlag {
					flag = "1"
				} else {
					flag = "0"
				}
			}
			v := o.Value
			if factor, ok := header.ScalingFactors[obs]; ok && factor != 0 {
				v *= factor
			}
			fmt.Fprintf(&b, "%14.3f%s%s", v, snr, flag)
		} else {
			b.WriteString(strings.Repeat(" ", 16))
		}
	}

	_, err := w.WriteString(b.String() + "\n")
	return err
}
