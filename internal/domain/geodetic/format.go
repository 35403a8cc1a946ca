package geodetic

import (
	"strconv"
	"strings"

	"github.com/marcos-nsantos/geocoord/internal/domain/valueobject"
)

// Pair holds the rendered latitude and longitude text, in that order.
type Pair [2]string

func (p Pair) Latitude() string {
	return p[0]
}

func (p Pair) Longitude() string {
	return p[1]
}

// Join renders the pair as a single string.
func (p Pair) Join(sep string) string {
	return p[0] + sep + p[1]
}

// DecimalDegrees renders both axes with five decimal places, e.g. "34.50000N".
func (c *Coordinate) DecimalDegrees() Pair {
	if c.IsRecoverable() {
		return c.fallback()
	}
	return Pair{
		strconv.FormatFloat(c.decimalLat, 'f', 5, 64) + c.latHem.String(),
		strconv.FormatFloat(c.decimalLng, 'f', 5, 64) + c.lngHem.String(),
	}
}

// DegreesMinutes renders both axes as whole degrees and minutes, e.g. "34 30.0N".
func (c *Coordinate) DegreesMinutes() Pair {
	if c.IsRecoverable() {
		return c.fallback()
	}
	return Pair{
		renderDM(c.decimalLat, c.latHem),
		renderDM(c.decimalLng, c.lngHem),
	}
}

// DegreesMinutesSeconds renders both axes as degrees, minutes and seconds, e.g. "34 30 0.0N".
func (c *Coordinate) DegreesMinutesSeconds() Pair {
	if c.IsRecoverable() {
		return c.fallback()
	}
	return Pair{
		renderDMS(c.decimalLat, c.latHem),
		renderDMS(c.decimalLng, c.lngHem),
	}
}

// Format renders the coordinate in the given notation. An unknown notation
// yields the input for both axes.
func (c *Coordinate) Format(kind valueobject.FormatKind) Pair {
	switch kind {
	case valueobject.FormatDecimalDegrees:
		return c.DecimalDegrees()
	case valueobject.FormatDegreesMinutes:
		return c.DegreesMinutes()
	case valueobject.FormatDegreesMinutesSeconds:
		return c.DegreesMinutesSeconds()
	}
	return c.fallback()
}

func (c *Coordinate) String() string {
	return c.DecimalDegrees().Join("/")
}

func (c *Coordinate) fallback() Pair {
	return Pair{c.input, c.input}
}

func renderDM(v float64, hem valueobject.Hemisphere) string {
	deg, minute := toDegreesMinutes(v)
	return formatWhole(deg) + " " + formatFraction(minute) + hem.String()
}

func renderDMS(v float64, hem valueobject.Hemisphere) string {
	deg, minute, second := toDegreesMinutesSeconds(v)
	return formatWhole(deg) + " " + formatWhole(minute) + " " + formatFraction(second) + hem.String()
}

func formatWhole(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}

// formatFraction prints the shortest exact form, always with a fractional part.
func formatFraction(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
