package doris

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeScale identifies the time reference an Epoch is expressed in.
type TimeScale uint8

// Available time scales.
const (
	TAI TimeScale = iota
	UTC
	GPST
)

// ParseTimeScale parses a time scale tag as found in a DORIS header. An
// empty string or the literal "DOR" both mean TAI.
func ParseTimeScale(s string) TimeScale {
	switch strings.TrimSpace(s) {
	case "", "DOR", "TAI":
		return TAI
	case "UTC":
		return UTC
	case "GPS":
		return GPST
	default:
		return TAI
	}
}

// String formats the TimeScale as its DORIS header tag.
func (s TimeScale) String() string {
	switch s {
	case UTC:
		return "UTC"
	case GPST:
		return "GPS"
	default:
		return "TAI"
	}
}

// Epoch is an absolute instant with an attached TimeScale, at nanosecond
// resolution.
type Epoch struct {
	Time  time.Time
	Scale TimeScale
}

// Before reports whether e occurred before rhs, comparing the wall-clock
// reading only (cross-scale comparison is the caller's responsibility,
// matching DORIS files which never mix scales within one record).
func (e Epoch) Before(rhs Epoch) bool { return e.Time.Before(rhs.Time) }

// Equal reports whether e and rhs denote the same instant and scale.
func (e Epoch) Equal(rhs Epoch) bool { return e.Scale == rhs.Scale && e.Time.Equal(rhs.Time) }

// Sub returns the signed duration between two epochs.
func (e Epoch) Sub(rhs Epoch) time.Duration { return e.Time.Sub(rhs.Time) }

func normalizeTwoDigitYear(y int) int {
	if y < 79 {
		return y + 2000
	}
	if y <= 99 {
		return y + 1900
	}
	return y
}

// ParseEpochRecordForm parses the record-form epoch encoding: six
// whitespace separated fields, "YYYY MM DD hh mm ss.fffffffff", the
// fractional seconds forming a single token with the decoded DORIS
// file's declared scale.
func ParseEpochRecordForm(s string, scale TimeScale) (Epoch, error) {
	fields := strings.Fields(s)
	if len(fields) < 6 {
		return Epoch{}, fmt.Errorf("%w: %q", ErrEpochFormat, s)
	}

	y, err := strconv.Atoi(fields[0])
	if err != nil {
		return Epoch{}, fmt.Errorf("%w: %q", ErrEpochFormat, s)
	}
	y = normalizeTwoDigitYear(y)

	month, err := strconv.Atoi(fields[1])
	if err != nil {
		return Epoch{}, fmt.Errorf("%w: %q", ErrEpochFormat, s)
	}
	day, err := strconv.Atoi(fields[2])
	if err != nil {
		return Epoch{}, fmt.Errorf("%w: %q", ErrEpochFormat, s)
	}
	hour, err := strconv.Atoi(fields[3])
	if err != nil {
		return Epoch{}, fmt.Errorf("%w: %q", ErrEpochFormat, s)
	}
	minute, err := strconv.Atoi(fields[4])
	if err != nil {
		return Epoch{}, fmt.Errorf("%w: %q", ErrEpochFormat, s)
	}

	secField := fields[5]
	var sec, ns int
	if dot := strings.Index(secField, "."); dot >= 0 {
		isNav := len(secField) < 7

		sec, err = strconv.Atoi(secField[:dot])
		if err != nil {
			return Epoch{}, fmt.Errorf("%w: %q", ErrEpochFormat, s)
		}

		nanos := secField[dot+1:]
		n, err := strconv.ParseUint(nanos, 10, 64)
		if err != nil {
			return Epoch{}, fmt.Errorf("%w: %q", ErrEpochFormat, s)
		}

		switch {
		case isNav:
			n *= 100_000_000
		case len(nanos) != 9:
			n *= 100
		}
		ns = int(n)
	} else {
		sec, err = strconv.Atoi(secField)
		if err != nil {
			return Epoch{}, fmt.Errorf("%w: %q", ErrEpochFormat, s)
		}
	}

	t := time.Date(y, time.Month(month), day, hour, minute, sec, ns, time.UTC)
	return Epoch{Time: t, Scale: scale}, nil
}

// ParseEpochHeaderForm parses the fixed-column header-form epoch encoding
// used by TIME OF FIRST OBS / TIME OF LAST OBS: year(6) month(6) day(6)
// hour(6) minute(6) second(5) "."(1) nanosecond(8) scale(rest, trimmed).
func ParseEpochHeaderForm(s string) (Epoch, error) {
	if len(s) < 44 {
		return Epoch{}, fmt.Errorf("%w: %q", ErrEpochFormat, s)
	}

	field := func(a, b int) (int, error) {
		v, err := strconv.Atoi(strings.TrimSpace(s[a:b]))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrEpochFormat, s)
		}
		return v, nil
	}

	y, err := field(0, 6)
	if err != nil {
		return Epoch{}, err
	}
	y = normalizeTwoDigitYear(y)

	month, err := field(6, 12)
	if err != nil {
		return Epoch{}, err
	}
	day, err := field(12, 18)
	if err != nil {
		return Epoch{}, err
	}
	hour, err := field(18, 24)
	if err != nil {
		return Epoch{}, err
	}
	minute, err := field(24, 30)
	if err != nil {
		return Epoch{}, err
	}
	sec, err := field(30, 35)
	if err != nil {
		return Epoch{}, err
	}

	nsStr := strings.TrimSpace(s[36:44])
	ns := 0
	if nsStr != "" {
		ns, err = strconv.Atoi(nsStr)
		if err != nil {
			return Epoch{}, fmt.Errorf("%w: %q", ErrEpochFormat, s)
		}
	}

	scale := ParseTimeScale(s[44:])

	t := time.Date(y, time.Month(month), day, hour, minute, sec, ns, time.UTC)
	return Epoch{Time: t, Scale: scale}, nil
}

// FormatEpochRecordForm formats e as "YYYY MM DD hh mm ss.fffffffff", the
// fractional seconds at nanosecond (9 digit) resolution, as used on
// per-epoch record lines.
func FormatEpochRecordForm(e Epoch) string {
	t := e.Time
	return fmt.Sprintf("%4d %02d %02d %02d %02d %2d.%09d",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
}

// FormatEpochCompact formats e as "YYYY MM DD hh mm ss.NNNNNNN", the
// fractional part fixed at 7 digits (nanoseconds / 100).
func FormatEpochCompact(e Epoch) string {
	t := e.Time
	return fmt.Sprintf("%4d %02d %02d %02d %02d %2d.%07d",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/100)
}

// FormatEpochHeaderForm formats e into the fixed-column header-form
// encoding used by TIME OF FIRST OBS / TIME OF LAST OBS.
func FormatEpochHeaderForm(e Epoch) string {
	t := e.Time
	return fmt.Sprintf("%6d%6d%6d%6d%6d%5d.%-8d%s",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), e.Scale)
}
