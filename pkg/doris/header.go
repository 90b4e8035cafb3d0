package doris

import (
	"bufio"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var headerValidate = validator.New()

// Header is the parsed content of a DORIS RINEX observation file header:
// satellite identity, instrument descriptions, observable schema and the
// station roster.
type Header struct {
	Version Version `validate:"required"`

	// Comments are COMMENT lines found in the header section, in order.
	Comments []string

	Satellite string `validate:"required"`

	Program string
	RunBy   string
	Date    string

	Observer string
	Agency   string

	COSPAR   *COSPAR
	Receiver *Receiver
	Antenna  *Antenna

	License string
	DOI     string

	// ScalingFactors holds the per-observable scale divisor declared by
	// SYS / SCALE FACTOR lines, applied by the record parser.
	ScalingFactors map[Observable]float64

	L1L2DateOffset time.Duration

	// GroundStations preserves the file's STATION REFERENCE order.
	GroundStations []GroundStation

	TimeOfFirstObservation *Epoch
	TimeOfLastObservation  *Epoch

	Observables []Observable
}

// GroundStation looks up a station by its ID# code, returning the last
// matching roster entry (a code must be unique per spec.md, so any match
// is definitive).
func (h *Header) GroundStation(code uint16) (GroundStation, bool) {
	var found GroundStation
	ok := false
	for _, s := range h.GroundStations {
		if s.Code == code {
			found = s
			ok = true
		}
	}
	return found, ok
}

// FindGroundStation performs a linear scan of the roster for the first
// station satisfying m.
func (h *Header) FindGroundStation(m Matcher) (GroundStation, bool) {
	for _, s := range h.GroundStations {
		if s.Matches(m) {
			return s, true
		}
	}
	return GroundStation{}, false
}

const pkgVersion = "1.0.0"

func formatPkgVersion(version string) string {
	parts := strings.Split(version, ".")
	var out []string
	for i, p := range parts {
		if i < 2 {
			out = append(out, p)
			continue
		}
		if i == 2 {
			pre := strings.Split(p, "-")
			var b strings.Builder
			for _, s := range pre {
				if s == "rc" {
					b.WriteString("rc")
				} else if len(s) > 0 {
					b.WriteString(s[:1])
				}
			}
			out = append(out, b.String())
		}
	}
	return strings.Join(out, ".")
}

// MergeComment builds the "FILE MERGE" comment appended to a header
// produced by Merge.
func MergeComment(timestamp Epoch) string {
	formatted := formatPkgVersion(pkgVersion)
	width := 19 - len(formatted)
	if width < 0 {
		width = 0
	}
	t := timestamp.Time
	return fmt.Sprintf("dorisgo v%s %*s          %04d%02d%02d %02d%02d%02d %s",
		formatted, width, "FILE MERGE",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second(), timestamp.Scale)
}

func contentAndMarker(line string) (content, marker string, ok bool) {
	if len(line) < 60 {
		return "", "", false
	}
	return line[:60], strings.TrimSpace(line[60:]), true
}

func field20(content string, n int) string {
	start := n * 20
	end := start + 20
	if end > len(content) {
		end = len(content)
	}
	if start > len(content) {
		return ""
	}
	return strings.TrimSpace(content[start:end])
}

// ParseHeader reads a DORIS header from scanner, stopping at END OF
// HEADER. It does not consume lines after the header terminator.
func ParseHeader(scanner *bufio.Scanner) (*Header, error) {
	h := &Header{ScalingFactors: make(map[Observable]float64)}
	sawVersion := false
	declaredObsCount := -1

	for scanner.Scan() {
		line := scanner.Text()
		content, marker, ok := contentAndMarker(line)
		if !ok {
			// Header lines under 60 bytes are tolerated and skipped.
			continue
		}

		if marker == "END OF HEADER" {
			return finishHeader(h, sawVersion)
		}

		if marker == "COMMENT" {
			h.Comments = append(h.Comments, strings.TrimSpace(content))
			continue
		}

		switch marker {
		case "RINEX VERSION / TYPE":
			v, err := ParseVersion(strings.TrimSpace(content[0:9]))
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrVersionFormat, err)
			}
			fileType := ""
			system := ""
			if len(content) > 20 {
				fileType = string(content[20])
			}
			if len(content) > 40 {
				system = string(content[40])
			}
			if fileType != "O" || system != "D" {
				return nil, fmt.Errorf("%w: type=%q system=%q", ErrInvalidDoris, fileType, system)
			}
			h.Version = v
			sawVersion = true

		case "PGM / RUN BY / DATE":
			h.Program = field20(content, 0)
			h.RunBy = field20(content, 1)
			h.Date = field20(content, 2)

		case "SATELLITE NAME":
			h.Satellite = strings.TrimSpace(content[:20])

		case "OBSERVER / AGENCY":
			h.Observer = field20(content, 0)
			h.Agency = field20(content, 1)

		case "REC # / TYPE / VERS":
			rcvr, err := ParseReceiver(content)
			if err != nil {
				return nil, err
			}
			h.Receiver = &rcvr

		case "ANT # / TYPE":
			serial, model := ParseAntennaType(content[:40])
			h.Antenna = &Antenna{SerialNumber: serial, Model: model}

		case "COSPAR NUMBER":
			c, err := ParseCOSPAR(strings.TrimSpace(content))
			if err != nil {
				return nil, err
			}
			h.COSPAR = &c

		case "L2 / L1 DATE OFFSET":
			v, err := strconv.ParseFloat(strings.TrimSpace(content[1:]), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrL1L2DateOffset, err)
			}
			h.L1L2DateOffset = time.Duration(v * float64(time.Microsecond))

		case "STATION REFERENCE":
			st, err := ParseGroundStation(content)
			if err != nil {
				return nil, err
			}
			h.GroundStations = append(h.GroundStations, st)

		case "TIME OF FIRST OBS":
			e, err := ParseEpochHeaderForm(content)
			if err != nil {
				return nil, err
			}
			h.TimeOfFirstObservation = &e

		case "TIME OF LAST OBS":
			e, err := ParseEpochHeaderForm(content)
			if err != nil {
				return nil, err
			}
			h.TimeOfLastObservation = &e

		case "SYS / # / OBS TYPES":
			if err := parseObsTypesLine(h, content, &declaredObsCount); err != nil {
				return nil, err
			}

		case "SYS / SCALE FACTOR":
			parseScaleFactorLine(h, content)

		case "# OF STATIONS":
			// count only, informational; roster length is authoritative.

		default:
			// Unknown markers are ignored silently.
		}
	}

	return finishHeader(h, sawVersion)
}

func finishHeader(h *Header, sawVersion bool) (*Header, error) {
	if !sawVersion {
		return nil, ErrNoHeader
	}
	if err := headerValidate.Struct(h); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDoris, err)
	}
	return h, nil
}

func parseObsTypesLine(h *Header, content string, declaredCount *int) error {
	if *declaredCount < 0 {
		n, err := strconv.Atoi(strings.TrimSpace(content[0:6]))
		if err != nil {
			return fmt.Errorf("%w: %q", ErrObservableFormat, content)
		}
		*declaredCount = n
	}

	rest := content[6:]
	for i := 0; i+6 <= len(rest)+6 && i < len(rest); i += 6 {
		end := i + 6
		if end > len(rest) {
			end = len(rest)
		}
		field := rest[i:end]
		code := strings.TrimSpace(field)
		if code == "" {
			continue
		}
		obs, err := ParseObservable(code)
		if err != nil {
			return err
		}
		h.Observables = append(h.Observables, obs)
	}
	return nil
}

func parseScaleFactorLine(h *Header, content string) {
	factorStr := strings.TrimSpace(content[0:6])
	factor, err := strconv.ParseFloat(factorStr, 64)
	if err != nil || factor == 0 {
		factor = 1.0
	}

	n, _ := strconv.Atoi(strings.TrimSpace(content[6:8]))
	rest := content[8:]
	for i := 0; i < n && i*4+2 <= len(rest); i++ {
		code := strings.TrimSpace(rest[i*4 : i*4+2])
		if code == "" {
			continue
		}
		obs, err := ParseObservable(code)
		if err != nil {
			log.Printf("doris: SYS / SCALE FACTOR: unrecognized observable %q", code)
			continue
		}
		h.ScalingFactors[obs] = factor
	}
}

// Format writes h's header block, terminated by END OF HEADER.
func (h *Header) Format(w *bufio.Writer) error {
	lines := h.formatLines()
	for _, l := range lines {
		if _, err := w.WriteString(l + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (h *Header) formatLines() []string {
	var lines []string

	lines = append(lines, formatHeaderLine(
		fmt.Sprintf("%9s%11s%-1s%19s%-1s%-19s", h.Version.String(), "", "O", "OBSERVATION DATA", "D", "(DORIS)"),
		"RINEX VERSION / TYPE"))

	lines = append(lines, formatHeaderLine(fmt.Sprintf("%-20s", h.Satellite), "SATELLITE NAME"))

	if h.COSPAR != nil {
		lines = append(lines, formatHeaderLine(h.COSPAR.String(), "COSPAR NUMBER"))
	}

	lines = append(lines, formatHeaderLine(
		fmt.Sprintf("%-20s%-20s%-20s", h.Program, h.RunBy, h.Date),
		"PGM / RUN BY / DATE"))

	lines = append(lines, formatHeaderLine(
		fmt.Sprintf("%-20s%-20s", h.Observer, h.Agency),
		"OBSERVER / AGENCY"))

	if h.Receiver != nil {
		lines = append(lines, h.Receiver.Format())
	}
	if h.Antenna != nil {
		lines = append(lines, h.Antenna.Format()...)
	}

	lines = append(lines, formatObsTypesLines(h.Observables)...)
	lines = append(lines, formatScaleFactorLines(h)...)

	lines = append(lines, formatHeaderLine(
		fmt.Sprintf("%1s%5d", "", int(h.L1L2DateOffset.Microseconds())),
		"L2 / L1 DATE OFFSET"))

	if h.TimeOfFirstObservation != nil {
		lines = append(lines, formatHeaderLine(FormatEpochHeaderForm(*h.TimeOfFirstObservation), "TIME OF FIRST OBS"))
	}
	if h.TimeOfLastObservation != nil {
		lines = append(lines, formatHeaderLine(FormatEpochHeaderForm(*h.TimeOfLastObservation), "TIME OF LAST OBS"))
	}

	for _, c := range h.Comments {
		lines = append(lines, formatHeaderLine(c, "COMMENT"))
	}

	lines = append(lines, formatHeaderLine(fmt.Sprintf("%6d", len(h.GroundStations)), "# OF STATIONS"))
	for _, s := range h.GroundStations {
		lines = append(lines, formatHeaderLine(s.String(), "STATION REFERENCE"))
	}

	lines = append(lines, formatHeaderLine("", "END OF HEADER"))
	return lines
}

func formatScaleFactorLines(h *Header) []string {
	if len(h.ScalingFactors) == 0 {
		return nil
	}

	byFactor := make(map[float64][]Observable)
	for _, o := range h.Observables {
		if f, ok := h.ScalingFactors[o]; ok {
			byFactor[f] = append(byFactor[f], o)
		}
	}

	var lines []string
	for _, o := range h.Observables {
		f, ok := h.ScalingFactors[o]
		if !ok {
			continue
		}
		group, pending := byFactor[f]
		if !pending {
			continue
		}
		delete(byFactor, f)

		var b strings.Builder
		fmt.Fprintf(&b, "%6.0f%2d", f, len(group))
		for _, g := range group {
			fmt.Fprintf(&b, "%-4s", g.String())
		}
		lines = append(lines, formatHeaderLine(b.String(), "SYS / SCALE FACTOR"))
	}
	return lines
}

func formatObsTypesLines(obs []Observable) []string {
	if len(obs) == 0 {
		return nil
	}
	var lines []string
	for i := 0; i < len(obs); i += 5 {
		end := i + 5
		if end > len(obs) {
			end = len(obs)
		}
		chunk := obs[i:end]
		var b strings.Builder
		if i == 0 {
			fmt.Fprintf(&b, "%6d", len(obs))
		} else {
			b.WriteString("      ")
		}
		for _, o := range chunk {
			fmt.Fprintf(&b, "%6s", o.String())
		}
		lines = append(lines, formatHeaderLine(b.String(), "SYS / # / OBS TYPES"))
	}
	return lines
}
