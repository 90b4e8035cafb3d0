// Package doris reads and writes DORIS RINEX observation files: the fixed
// column text format emitted by satellite-borne DORIS receivers describing
// ground-beacon radio observations used for precise orbit determination.
package doris
