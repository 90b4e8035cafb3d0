package doris

import (
	"fmt"
	"strings"
)

// EpochFlag describes the sampling conditions of an epoch.
type EpochFlag uint8

// Available epoch flags.
const (
	EpochOK EpochFlag = iota
	EpochPowerFailure
	EpochAntennaBeingMoved
	EpochNewSiteEndOfKinematics
	EpochHeaderInfoFollowing
	EpochExternalEvent
)

// ParseEpochFlag parses a single digit '0'..'5'.
func ParseEpochFlag(s string) (EpochFlag, error) {
	switch strings.TrimSpace(s) {
	case "0":
		return EpochOK, nil
	case "1":
		return EpochPowerFailure, nil
	case "2":
		return EpochAntennaBeingMoved, nil
	case "3":
		return EpochNewSiteEndOfKinematics, nil
	case "4":
		return EpochHeaderInfoFollowing, nil
	case "5":
		return EpochExternalEvent, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrEpochFlagFormat, s)
	}
}

// String formats the flag as its single digit code.
func (f EpochFlag) String() string {
	if f > EpochExternalEvent {
		return "?"
	}
	return fmt.Sprintf("%d", int(f))
}
