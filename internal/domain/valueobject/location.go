package valueobject

import (
	"github.com/golang/geo/s2"
)

// Location is a signed latitude/longitude pair in decimal degrees.
type Location struct {
	Latitude  float64
	Longitude float64
}

func NewLocation(lat, lng float64) *Location {
	return &Location{
		Latitude:  lat,
		Longitude: lng,
	}
}

// LocationFromLatLng converts an s2 point into degrees, normalizing it first.
func LocationFromLatLng(ll s2.LatLng) *Location {
	ll = ll.Normalized()
	return NewLocation(ll.Lat.Degrees(), ll.Lng.Degrees())
}

func (l *Location) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(l.Latitude, l.Longitude)
}

func (l *Location) IsValid() bool {
	return l.LatLng().IsValid()
}

// Hemispheres returns the hemisphere letters implied by the signs.
func (l *Location) Hemispheres() (Hemisphere, Hemisphere) {
	lat, lng := North, East
	if l.Latitude < 0 {
		lat = South
	}
	if l.Longitude < 0 {
		lng = West
	}
	return lat, lng
}
