package doris

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/mholt/archiver/v3"
)

// DORIS is an in-memory DORIS RINEX observation file: its header, its
// record, and (when known) the production attributes derived from the
// original file name.
type DORIS struct {
	Header     *Header
	Record     *Record
	Production *ProductionAttributes
}

// Parse reads a complete DORIS file (header then record) from r.
func Parse(r io.Reader) (*DORIS, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	header, err := ParseHeader(scanner)
	if err != nil {
		return nil, err
	}

	rec, err := ParseRecord(scanner, header)
	if err != nil {
		return nil, err
	}

	return &DORIS{Header: header, Record: rec}, nil
}

// Format writes d's header and record to w.
func (d *DORIS) Format(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := d.Header.Format(bw); err != nil {
		return err
	}
	if err := FormatRecord(bw, d.Header, d.Record); err != nil {
		return err
	}
	return bw.Flush()
}

// ParseFile opens path and parses its contents, deriving production
// attributes from the file name when it follows the standard convention.
func ParseFile(path string) (*DORIS, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, err
	}

	if attrs, err := ParseProductionAttributes(filenameOf(path)); err == nil {
		d.Production = &attrs
	}
	return d, nil
}

// ParseGzipFile decompresses path to a temporary file using the archiver
// collaborator, the same way cmd/rnxgo decompresses before parsing, then
// parses the result.
func ParseGzipFile(path string) (*DORIS, error) {
	tmp, err := os.CreateTemp("", "dorisgo-*.doris")
	if err != nil {
		return nil, err
	}
	tmpPath := tmp.Name()
	tmp.Close()
	// The decompressor refuses to overwrite an existing file, so only the
	// reserved name is kept.
	os.Remove(tmpPath)
	defer os.Remove(tmpPath)

	if err := archiver.DecompressFile(path, tmpPath); err != nil {
		return nil, err
	}

	d, err := ParseFile(tmpPath)
	if err != nil {
		return nil, err
	}

	if attrs, err := ParseProductionAttributes(filenameOf(path)); err == nil {
		attrs.GzipCompressed = true
		d.Production = &attrs
	}
	return d, nil
}

// WriteFile formats d and writes it to path.
func (d *DORIS) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return d.Format(f)
}

// WriteGzipFile formats d to a temporary file and gzip-compresses it to
// path, using the same archiver collaborator as ParseGzipFile.
func (d *DORIS) WriteGzipFile(path string) error {
	tmp, err := os.CreateTemp("", "dorisgo-*.doris")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := d.Format(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return archiver.CompressFile(tmpPath, path)
}

func filenameOf(path string) string {
	i := len(path) - 1
	for i >= 0 && path[i] != '/' {
		i--
	}
	return path[i+1:]
}

// GroundStation looks up a station satisfying m, first match in roster
// order.
func (d *DORIS) GroundStation(m Matcher) (GroundStation, bool) {
	return d.Header.FindGroundStation(m)
}

// SatelliteClockOffsetIter returns the (Epoch, ClockOffset) pairs present
// in the record, chronological (by construction) and deduplicated by
// epoch.
func (d *DORIS) SatelliteClockOffsetIter() []EpochClockOffset {
	var out []EpochClockOffset
	seen := make(map[time.Time]bool)
	for _, key := range d.Record.Keys {
		m := d.Record.Measurements[key]
		if m.SatelliteClockOffset == nil {
			continue
		}
		if seen[key.Epoch.Time] {
			continue
		}
		seen[key.Epoch.Time] = true
		out = append(out, EpochClockOffset{Epoch: key.Epoch, ClockOffset: *m.SatelliteClockOffset})
	}
	return out
}

// EpochClockOffset pairs an Epoch with its measured satellite clock
// offset.
type EpochClockOffset struct {
	Epoch       Epoch
	ClockOffset ClockOffset
}

// DurationCount pairs a sampling Duration with its population in the
// sampling histogram.
type DurationCount struct {
	Duration time.Duration
	Count    int
}

// SamplingHistogram returns the adjacent-epoch gaps in the record,
// folded into an association list keyed by exact Duration equality.
func (d *DORIS) SamplingHistogram() []DurationCount {
	var hist []DurationCount
	for i := 1; i < len(d.Record.Keys); i++ {
		dt := d.Record.Keys[i].Epoch.Sub(d.Record.Keys[i-1].Epoch)
		found := false
		for j := range hist {
			if hist[j].Duration == dt {
				hist[j].Count++
				found = true
				break
			}
		}
		if !found {
			hist = append(hist, DurationCount{Duration: dt, Count: 1})
		}
	}
	return hist
}

// DominantSamplingPeriod returns the smallest sampling interval present
// in the record. Fails ErrUndeterminedSamplingRate with fewer than two
// epochs.
func (d *DORIS) DominantSamplingPeriod() (time.Duration, error) {
	hist := d.SamplingHistogram()
	if len(hist) == 0 {
		return 0, ErrUndeterminedSamplingRate
	}
	sort.Slice(hist, func(i, j int) bool { return hist[i].Duration < hist[j].Duration })
	return hist[0].Duration, nil
}

// IsMerged reports whether the header carries the literal "FILE MERGE"
// comment.
func (d *DORIS) IsMerged() bool {
	for _, c := range d.Header.Comments {
		if strings.Contains(c, "FILE MERGE") {
			return true
		}
	}
	return false
}

// StandardFilename derives the "SSSSSyyddd[.gz]" name for d, preferring
// production attributes when present, falling back to the header's
// satellite name and time_of_first_observation.
func (d *DORIS) StandardFilename() string {
	var year, doy uint32
	sat := d.Header.Satellite

	if d.Header.TimeOfFirstObservation != nil {
		t := d.Header.TimeOfFirstObservation.Time
		year = uint32(t.Year())
		doy = uint32(t.YearDay())
	}

	gzip := false
	if d.Production != nil {
		year = d.Production.Year
		doy = d.Production.DOY
		sat = d.Production.Satellite
		gzip = d.Production.GzipCompressed
	}

	if len(sat) > 5 {
		sat = sat[:5]
	}
	name := fmt.Sprintf("%-5s%02d%03d", sat, year%100, doy)
	for i, r := range name {
		if r == ' ' {
			name = name[:i] + "X" + name[i+1:]
		}
	}
	if gzip {
		name += ".gz"
	}
	return name
}

// Substract returns a residual DORIS pairing every observation in d with
// the nearest-in-time observation of the same (station, observable) in
// other, within half of d's dominant sampling period. Unpaired
// observations are dropped.
func (d *DORIS) Substract(other *DORIS) (*DORIS, error) {
	period, err := d.DominantSamplingPeriod()
	if err != nil {
		return nil, err
	}
	halfPeriod := period / 2

	out := &DORIS{Header: d.Header, Record: NewRecord()}

	type indexed struct {
		epoch Epoch
		obs   Observation
	}
	byObsKey := make(map[ObservationKey][]indexed)
	for _, key := range other.Record.Keys {
		m := other.Record.Measurements[key]
		for obsKey, obs := range m.Observations {
			byObsKey[obsKey] = append(byObsKey[obsKey], indexed{epoch: key.Epoch, obs: obs})
		}
	}

	for _, key := range d.Record.Keys {
		m := d.Record.Measurements[key]
		for obsKey, obs := range m.Observations {
			candidates := byObsKey[obsKey]

			var best *indexed
			var bestDt time.Duration
			for i := range candidates {
				dt := key.Epoch.Sub(candidates[i].epoch)
				if dt < 0 {
					dt = -dt
				}
				if dt > halfPeriod {
					continue
				}
				if best == nil || dt < bestDt {
					c := candidates[i]
					best = &c
					bestDt = dt
				}
			}
			if best == nil {
				continue
			}

			residual := obs
			residual.Value = obs.Value - best.obs.Value
			out.Record.Insert(key, obsKey, residual, m.SatelliteClockOffset)
		}
	}

	return out, nil
}

// Merge unions two parsed DORIS files' records into one, appending a
// "FILE MERGE" comment to the resulting header. Fails if the files
// describe different satellites.
func Merge(a, b *DORIS, at Epoch) (*DORIS, error) {
	if a.Header.Satellite != b.Header.Satellite {
		return nil, fmt.Errorf("doris: cannot merge distinct satellites %q and %q", a.Header.Satellite, b.Header.Satellite)
	}

	merged := &DORIS{
		Header: a.Header,
		Record: NewRecord(),
	}
	merged.Header.Comments = append(append([]string{}, a.Header.Comments...), MergeComment(at))

	for _, key := range a.Record.Keys {
		m := a.Record.Measurements[key]
		for obsKey, obs := range m.Observations {
			merged.Record.Insert(key, obsKey, obs, m.SatelliteClockOffset)
		}
	}
	for _, key := range b.Record.Keys {
		m := b.Record.Measurements[key]
		for obsKey, obs := range m.Observations {
			merged.Record.Insert(key, obsKey, obs, m.SatelliteClockOffset)
		}
	}

	sort.Slice(merged.Record.Keys, func(i, j int) bool { return merged.Record.Keys[i].Less(merged.Record.Keys[j]) })
	return merged, nil
}
