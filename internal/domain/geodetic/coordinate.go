package geodetic

import (
	"github.com/marcos-nsantos/geocoord/internal/domain/valueobject"
)

// Status tracks how far normalization got.
type Status int

const (
	StatusProvisional Status = iota
	StatusNormalized
	StatusDegraded
)

func (s Status) String() string {
	switch s {
	case StatusNormalized:
		return "normalized"
	case StatusDegraded:
		return "degraded"
	}
	return "provisional"
}

// Axis holds the degree, minute and second components of one axis.
// Minute and second are zero when the notation does not carry them.
type Axis struct {
	Degree float64
	Minute float64
	Second float64
}

// Coordinate is the result of parsing one input string.
// Decimal values are unsigned magnitudes; the hemisphere letters carry the sign.
type Coordinate struct {
	input      string
	kind       valueobject.FormatKind
	lat        Axis
	lng        Axis
	latHem     valueobject.Hemisphere
	lngHem     valueobject.Hemisphere
	decimalLat float64
	decimalLng float64
	status     Status
	warnings   []string
}

func (c *Coordinate) Input() string {
	return c.input
}

func (c *Coordinate) Kind() valueobject.FormatKind {
	return c.kind
}

func (c *Coordinate) Latitude() Axis {
	return c.lat
}

func (c *Coordinate) Longitude() Axis {
	return c.lng
}

func (c *Coordinate) LatHemisphere() valueobject.Hemisphere {
	return c.latHem
}

func (c *Coordinate) LngHemisphere() valueobject.Hemisphere {
	return c.lngHem
}

func (c *Coordinate) DecimalLatitude() float64 {
	return c.decimalLat
}

func (c *Coordinate) DecimalLongitude() float64 {
	return c.decimalLng
}

func (c *Coordinate) Status() Status {
	return c.status
}

// IsRecoverable reports true while the value has not been normalized with
// confidence. Renders of such a coordinate echo the input.
func (c *Coordinate) IsRecoverable() bool {
	return c.status != StatusNormalized
}

// Warnings returns the diagnostics raised while parsing.
func (c *Coordinate) Warnings() []string {
	return append([]string(nil), c.warnings...)
}

// Location returns the signed decimal position.
func (c *Coordinate) Location() *valueobject.Location {
	return valueobject.NewLocation(c.decimalLat*c.latHem.Sign(), c.decimalLng*c.lngHem.Sign())
}
