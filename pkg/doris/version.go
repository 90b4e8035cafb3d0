package doris

import (
	"fmt"
	"strconv"
	"strings"
)

// Version describes a DORIS RINEX file revision, parsed from a "MM.mm"
// string.
type Version struct {
	Major int
	Minor int
}

// ParseVersion parses a "MM.mm" version string, e.g. "3.00".
func ParseVersion(s string) (Version, error) {
	s = strings.TrimSpace(s)
	parts := strings.SplitN(s, ".", 2)

	major, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || major < 0 {
		return Version{}, fmt.Errorf("%w: %q", ErrVersionFormat, s)
	}

	minor := 0
	if len(parts) == 2 {
		minor, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || minor < 0 {
			return Version{}, fmt.Errorf("%w: %q", ErrVersionFormat, s)
		}
	}

	return Version{Major: major, Minor: minor}, nil
}

// String formats the version back as "MM.mm".
func (v Version) String() string {
	return fmt.Sprintf("%d.%02d", v.Major, v.Minor)
}
