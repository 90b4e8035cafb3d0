package doris

import (
	"fmt"
	"io"
)

// Diff writes a structural comparison of d and other's records to w: one
// line per epoch present in only one file, and one line per observation
// whose value differs between files at a shared (epoch, station,
// observable).
func (d *DORIS) Diff(other *DORIS, w io.Writer) error {
	lhs := make(map[Key]Measurements, len(d.Record.Keys))
	for _, k := range d.Record.Keys {
		lhs[k] = d.Record.Measurements[k]
	}
	rhs := make(map[Key]Measurements, len(other.Record.Keys))
	for _, k := range other.Record.Keys {
		rhs[k] = other.Record.Measurements[k]
	}

	for _, k := range d.Record.Keys {
		m2, ok := rhs[k]
		if !ok {
			fmt.Fprintf(w, "only in first: %s\n", FormatEpochRecordForm(k.Epoch))
			continue
		}
		diffObs(w, k, lhs[k], m2)
	}

	for _, k := range other.Record.Keys {
		if _, ok := lhs[k]; !ok {
			fmt.Fprintf(w, "only in second: %s\n", FormatEpochRecordForm(k.Epoch))
		}
	}

	return nil
}

func diffObs(w io.Writer, key Key, a, b Measurements) {
	for obsKey, av := range a.Observations {
		bv, ok := b.Observations[obsKey]
		if !ok {
			fmt.Fprintf(w, "%s station=%d %s: only in first (%.3f)\n",
				FormatEpochRecordForm(key.Epoch), obsKey.Station.Code, obsKey.Observable, av.Value)
			continue
		}
		if av.Value != bv.Value {
			fmt.Fprintf(w, "%s station=%d %s: %.3f vs %.3f\n",
				FormatEpochRecordForm(key.Epoch), obsKey.Station.Code, obsKey.Observable, av.Value, bv.Value)
		}
	}
	for obsKey := range b.Observations {
		if _, ok := a.Observations[obsKey]; !ok {
			fmt.Fprintf(w, "%s station=%d %s: only in second\n",
				FormatEpochRecordForm(key.Epoch), obsKey.Station.Code, obsKey.Observable)
		}
	}
}
