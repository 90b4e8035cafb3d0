package doris

import "errors"

// Sentinel errors describing the DORIS file format taxonomy. Decoders wrap
// these with fmt.Errorf("...: %w", err) to attach positional detail.
var (
	// ErrNoHeader is returned when reading DORIS data that does not begin
	// with a DORIS header.
	ErrNoHeader = errors.New("doris: no header")

	// ErrInvalidDoris is returned when the first header line declares a
	// file type other than observation data for the DORIS constellation.
	ErrInvalidDoris = errors.New("doris: not a valid DORIS observation file")

	// ErrHeaderLineTooShort flags a header line shorter than the fixed 60
	// content columns. The decoder does not currently raise this error
	// (see SPEC_FULL.md open question); it is kept for callers that want
	// to detect the condition via errors.Is on a wrapped return.
	ErrHeaderLineTooShort = errors.New("doris: header line too short")

	// ErrVersionFormat is returned when a "MM.mm" version string fails to
	// parse.
	ErrVersionFormat = errors.New("doris: invalid version format")

	// ErrEpochFormat is returned when an epoch string has fewer than six
	// whitespace separated fields, or a numeric field fails to parse.
	ErrEpochFormat = errors.New("doris: invalid epoch format")

	// ErrClockOffset is returned when the satellite clock offset cell on
	// an epoch header line fails to parse as a float.
	ErrClockOffset = errors.New("doris: invalid clock offset")

	// ErrObservableFormat is returned for an unrecognized observable code.
	ErrObservableFormat = errors.New("doris: invalid observable")

	// ErrFrequencyFormat is returned for an unrecognized frequency code.
	ErrFrequencyFormat = errors.New("doris: invalid frequency")

	// ErrSNRFormat is returned for an unrecognized SNR code.
	ErrSNRFormat = errors.New("doris: invalid SNR code")

	// ErrEpochFlagFormat is returned for an unrecognized epoch flag digit.
	ErrEpochFlagFormat = errors.New("doris: invalid epoch flag")

	// ErrGroundStationFormat is returned when a STATION REFERENCE line
	// cannot be decoded. ErrStationFormat names an undecodable per-epoch
	// station sub-block identifier; the record parser does not return it,
	// it logs such sub-blocks and skips them.
	ErrStationFormat       = errors.New("doris: invalid station sub-block")
	ErrGroundStationFormat = errors.New("doris: invalid ground station record")

	// ErrL1L2DateOffset is returned when the L1/L2 date offset
	// microsecond value fails to parse.
	ErrL1L2DateOffset = errors.New("doris: invalid L1/L2 date offset")

	// ErrCOSPARFormat / ErrDOMESFormat are returned by the COSPAR and
	// DOMES value type parsers.
	ErrCOSPARFormat = errors.New("doris: invalid COSPAR identifier")
	ErrDOMESFormat  = errors.New("doris: invalid DOMES identifier")

	// ErrNonStandardFilename is returned when a path does not follow the
	// SSSSSyyddd[.gz] naming convention.
	ErrNonStandardFilename = errors.New("doris: non-standard file name")

	// ErrUndeterminedSamplingRate is returned by query-surface operations
	// that require at least two epochs to determine a sampling period.
	ErrUndeterminedSamplingRate = errors.New("doris: undetermined sampling rate")
)
