package doris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDOMESRoundTrip(t *testing.T) {
	d, err := ParseDOMES("10003S005")
	assert.NoError(t, err)
	assert.Equal(t, uint16(100), d.Area)
	assert.Equal(t, uint16(3), d.Site)
	assert.Equal(t, DOMESInstrument, d.Point)
	assert.Equal(t, uint16(5), d.Sequential)
	assert.Equal(t, "10003S005", d.String())
}

func TestDOMESMonument(t *testing.T) {
	d, err := ParseDOMES("40451M178")
	assert.NoError(t, err)
	assert.Equal(t, DOMESMonument, d.Point)
	assert.Equal(t, "40451M178", d.String())
}

func TestDOMESInvalidLength(t *testing.T) {
	_, err := ParseDOMES("12345")
	assert.ErrorIs(t, err, ErrDOMESFormat)
}

func TestCOSPARRoundTrip(t *testing.T) {
	c, err := ParseCOSPAR("2010-013A")
	assert.NoError(t, err)
	assert.Equal(t, 2010, c.Year)
	assert.Equal(t, 13, c.Sequence)
	assert.Equal(t, "A", c.Piece)
	assert.Equal(t, "2010-013A", c.String())
}
