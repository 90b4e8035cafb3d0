package doris

import (
	"bufio"
	"fmt"
	"log"
	"strconv"
	"strings"
)

const epochHeaderFormLen = len("YYYY MM DD HH MM SS.NNNNNNNNN  0")

// ParseRecord reads the record body from scanner against header's
// observable schema and station roster, stopping at end of stream. It is
// a single, line-by-line pass: it never seeks.
func ParseRecord(scanner *bufio.Scanner, header *Header) (*Record, error) {
	codeIndex := make(map[uint16]GroundStation, len(header.GroundStations))
	for _, s := range header.GroundStations {
		codeIndex[s.Code] = s
	}

	rec := NewRecord()
	var buf []string

	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		err := decodeEpochBuffer(rec, header, codeIndex, buf)
		buf = nil
		return err
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, ">") {
			if err := flush(); err != nil {
				return nil, err
			}
		}
		if strings.HasPrefix(strings.TrimSpace(line), "COMMENT") && !strings.HasPrefix(line, ">") && !strings.HasPrefix(line, "D") {
			rec.Comments = append(rec.Comments, strings.TrimSpace(line))
			continue
		}
		buf = append(buf, line)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return rec, nil
}

func decodeEpochBuffer(rec *Record, header *Header, codeIndex map[uint16]GroundStation, buf []string) error {
	if len(buf) == 0 {
		return nil
	}

	line0 := buf[0]
	if len(line0) < 2 {
		return fmt.Errorf("%w: %q", ErrEpochFormat, line0)
	}

	epochEnd := 2 + epochHeaderFormLen
	if len(line0) < epochEnd {
		return fmt.Errorf("%w: %q", ErrEpochFormat, line0)
	}

	epochFlagField := line0[2:epochEnd]
	flagDigit := strings.TrimSpace(epochFlagField[len(epochFlagField)-1:])
	flag, err := ParseEpochFlag(flagDigit)
	if err != nil {
		return err
	}

	epochStr := strings.TrimSpace(epochFlagField[:len(epochFlagField)-1])
	epoch, err := ParseEpochRecordForm(epochStr, TAI)
	if err != nil {
		return err
	}

	key := Key{Epoch: epoch, Flag: flag}

	var clock *ClockOffset
	if len(line0) >= 38+14 {
		offsetField := strings.TrimSpace(line0[38 : 38+14])
		if offsetField != "" {
			v, err := strconv.ParseFloat(offsetField, 64)
			if err != nil {
				return fmt.Errorf("%w: %q", ErrClockOffset, offsetField)
			}
			extrapolated := false
			if len(line0) > 52 {
				extrapolated = strings.TrimSpace(line0[52:53]) == "1"
			}
			c := ClockOffset{Offset: secondsToDuration(v), Extrapolated: extrapolated}
			clock = &c
		}
	}

	var station *GroundStation
	var cells []string

	flushStation := func() {
		if station == nil {
			return
		}
		decodeStationCells(rec, header, key, *station, cells, clock)
		station = nil
		cells = nil
	}

	for _, line := range buf[1:] {
		if strings.HasPrefix(line, "D") {
			flushStation()

			if len(line) < 4 {
				log.Printf("doris: malformed station sub-block header %q", line)
				continue
			}
			code, err := strconv.ParseUint(strings.TrimSpace(line[1:3]), 10, 16)
			if err != nil {
				log.Printf("doris: unresolved station code in %q", line)
				continue
			}
			st, ok := codeIndex[uint16(code)]
			if !ok {
				log.Printf("doris: unresolved station code %d", code)
				continue
			}
			station = &st
			cells = append(cells, line[3:])
			continue
		}

		if strings.HasPrefix(strings.TrimSpace(line), "COMMENT") {
			rec.Comments = append(rec.Comments, strings.TrimSpace(line))
			continue
		}

		if station != nil && len(line) >= 3 {
			cells = append(cells, line[3:])
		}
	}
	flushStation()

	return nil
}

func decodeStationCells(rec *Record, header *Header, key Key, station GroundStation, cellLines []string, clock *ClockOffset) {
	const cellWidth = 16 // 14 value + 1 SNR + 1 phase flag
	var rawCells []string
	for _, l := range cellLines {
		for i := 0; i < len(l); i += cellWidth {
			end := i + cellWidth
			if end > len(l) {
				end = len(l)
			}
			rawCells = append(rawCells, l[i:end])
		}
	}

	for i, obs := range header.Observables {
		if i >= len(rawCells) {
			break
		}
		cell := rawCells[i]
		if len(strings.TrimSpace(cell)) == 0 {
			continue
		}

		valueField := cell
		snrChar := ""
		flagChar := ""
		if len(cell) >= 16 {
			valueField = cell[:14]
			snrChar = cell[14:15]
			flagChar = cell[15:16]
		}

		valStr := strings.TrimSpace(valueField)
		if valStr == "" {
			continue
		}

		v, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			log.Printf("doris: cell parse failure at station %d observable %s: %v", station.Code, obs, err)
			continue
		}
		if factor, ok := header.ScalingFactors[obs]; ok && factor != 0 {
			v /= factor
		}

		obsResult := Observation{Value: v}
		if s := strings.TrimSpace(snrChar); s != "" {
			snr, err := ParseSNR(s)
			if err == nil {
				obsResult.SNR = &snr
			}
		}
		if f := strings.TrimSpace(flagChar); f != "" {
			b := f == "1"
			obsResult.PhaseFlag = &b
		}

		rec.Insert(key, ObservationKey{Station: station, Observable: obs}, obsResult, clock)
	}
}
