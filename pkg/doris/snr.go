package doris

import (
	"fmt"
	"strings"
)

// SNR is an ordered signal-to-noise ratio bucket, in dB.Hz.
type SNR uint8

// Available SNR buckets, ascending.
const (
	SNRDbHz0 SNR = iota
	SNRDbHz12
	SNRDbHz12to17
	SNRDbHz18to23
	SNRDbHz24to29
	SNRDbHz30to35
	SNRDbHz36to41
	SNRDbHz42to47
	SNRDbHz48to53
	SNRDbHz54
)

// ParseSNR parses a single decimal digit '0'..'9', or one of the synonyms
// "bad", "weak", "strong", "excellent".
func ParseSNR(s string) (SNR, error) {
	switch strings.TrimSpace(s) {
	case "0":
		return SNRDbHz0, nil
	case "1":
		return SNRDbHz12, nil
	case "2":
		return SNRDbHz12to17, nil
	case "3":
		return SNRDbHz18to23, nil
	case "4":
		return SNRDbHz24to29, nil
	case "5":
		return SNRDbHz30to35, nil
	case "6":
		return SNRDbHz36to41, nil
	case "7":
		return SNRDbHz42to47, nil
	case "8":
		return SNRDbHz48to53, nil
	case "9":
		return SNRDbHz54, nil
	case "bad":
		return SNRDbHz18to23, nil
	case "weak":
		return SNRDbHz24to29, nil
	case "strong":
		return SNRDbHz30to35, nil
	case "excellent":
		return SNRDbHz48to53, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrSNRFormat, s)
	}
}

// SNRFromValue quantizes a raw dB.Hz value into its bucket, grouping by
// ceiling to the bucket's upper bound.
func SNRFromValue(dbHz float64) SNR {
	switch {
	case dbHz < 12.0:
		return SNRDbHz12
	case dbHz <= 17.0:
		return SNRDbHz12to17
	case dbHz <= 23.0:
		return SNRDbHz18to23
	case dbHz <= 29.0:
		return SNRDbHz24to29
	case dbHz <= 35.0:
		return SNRDbHz30to35
	case dbHz <= 41.0:
		return SNRDbHz36to41
	case dbHz <= 47.0:
		return SNRDbHz42to47
	case dbHz <= 53.0:
		return SNRDbHz48to53
	default:
		return SNRDbHz54
	}
}

// String formats the SNR as its single decimal digit code, as found in
// DORIS RINEX files.
func (s SNR) String() string {
	if s > SNRDbHz54 {
		return "?"
	}
	return fmt.Sprintf("%d", int(s))
}

// Verbose formats the SNR as a human-readable bound.
func (s SNR) Verbose() string {
	switch s {
	case SNRDbHz0:
		return "<< 12 dB.Hz"
	case SNRDbHz12:
		return "< 12 dB.Hz"
	case SNRDbHz12to17:
		return "[12, 17[ dB.Hz"
	case SNRDbHz18to23:
		return "[18, 23[ dB.Hz"
	case SNRDbHz24to29:
		return "[24, 29[ dB.Hz"
	case SNRDbHz30to35:
		return "[30, 35[ dB.Hz"
	case SNRDbHz36to41:
		return "[36, 41[ dB.Hz"
	case SNRDbHz42to47:
		return "[42, 47[ dB.Hz"
	case SNRDbHz48to53:
		return "[48, 53[ dB.Hz"
	case SNRDbHz54:
		return ">= 54 dB.Hz"
	default:
		return "?"
	}
}

// Bad returns true if the SNR describes a bad signal level.
func (s SNR) Bad() bool { return s <= SNRDbHz18to23 }

// Weak returns true if the SNR describes a weak signal level.
func (s SNR) Weak() bool { return s < SNRDbHz30to35 }

// Strong returns true if the SNR describes a strong signal level.
func (s SNR) Strong() bool { return s >= SNRDbHz30to35 }

// Excellent returns true if the SNR describes an excellent signal level.
func (s SNR) Excellent() bool { return s > SNRDbHz42to47 }
