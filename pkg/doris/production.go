package doris

import (
	"fmt"
	"strconv"
	"strings"
)

// ProductionAttributes are derived from a standard DORIS file name,
// "SSSSSyyddd[.gz]".
type ProductionAttributes struct {
	Satellite      string
	Year           uint32
	DOY            uint32
	GzipCompressed bool
}

// ParseProductionAttributes parses a standard DORIS file name. Any other
// length fails ErrNonStandardFilename.
func ParseProductionAttributes(filename string) (ProductionAttributes, error) {
	name := strings.ToUpper(filename)

	gzip := false
	if strings.HasSuffix(name, ".GZ") {
		gzip = true
		name = strings.TrimSuffix(name, ".GZ")
	}

	if len(name) != 10 {
		return ProductionAttributes{}, fmt.Errorf("%w: %q", ErrNonStandardFilename, filename)
	}

	satellite := name[:5]
	yy, err := strconv.ParseUint(name[5:7], 10, 32)
	if err != nil {
		return ProductionAttributes{}, fmt.Errorf("%w: %q", ErrNonStandardFilename, filename)
	}
	doy, err := strconv.ParseUint(name[7:10], 10, 32)
	if err != nil {
		return ProductionAttributes{}, fmt.Errorf("%w: %q", ErrNonStandardFilename, filename)
	}

	return ProductionAttributes{
		Satellite:      satellite,
		Year:           2000 + uint32(yy),
		DOY:            uint32(doy),
		GzipCompressed: gzip,
	}, nil
}

// String formats the attributes back into a standard DORIS file name.
func (p ProductionAttributes) String() string {
	sat := strings.ToUpper(p.Satellite)
	if len(sat) > 5 {
		sat = sat[:5]
	}
	name := fmt.Sprintf("%-5s%02d%03d", sat, p.Year%100, p.DOY)
	name = strings.ReplaceAll(name, " ", "X")
	if p.GzipCompressed {
		name += ".gz"
	}
	return name
}
