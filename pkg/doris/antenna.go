package doris

import (
	"fmt"
	"strings"
)

// Antenna describes the beacon antenna mounted at a ground station.
type Antenna struct {
	Model        string
	SerialNumber string

	// ApproxCoordinates holds the approximate ECEF X/Y/Z antenna base
	// coordinates, in meters, when known.
	ApproxCoordinates *[3]float64

	// Height, Eastern and Northern are the antenna eccentricities,
	// referenced to the station's reference point, in meters.
	Height   float64
	Eastern  float64
	Northern float64
}

// Format writes the "ANT # / TYPE", "APPROX POSITION XYZ" (when known) and
// "ANTENNA: DELTA H/E/N" header lines describing a.
func (a Antenna) Format() []string {
	lines := []string{
		formatHeaderLine(fmt.Sprintf("%-20s%s", a.SerialNumber, a.Model), "ANT # / TYPE"),
	}

	if a.ApproxCoordinates != nil {
		c := a.ApproxCoordinates
		lines = append(lines, formatHeaderLine(
			fmt.Sprintf("%14.4f%14.4f%14.4f", c[0], c[1], c[2]),
			"APPROX POSITION XYZ"))
	}

	lines = append(lines, formatHeaderLine(
		fmt.Sprintf("%14.4f%14.4f%14.4f", a.Height, a.Eastern, a.Northern),
		"ANTENNA: DELTA H/E/N"))

	return lines
}

// ParseAntennaType parses the free-form "ANT # / TYPE" content field into
// its serial number (first 20 columns) and model (remainder).
func ParseAntennaType(content string) (serialNumber, model string) {
	if len(content) < 20 {
		return strings.TrimSpace(content), ""
	}
	return strings.TrimSpace(content[:20]), strings.TrimSpace(content[20:])
}
