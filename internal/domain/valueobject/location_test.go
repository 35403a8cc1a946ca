package valueobject_test

import (
	"testing"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"

	"github.com/marcos-nsantos/geocoord/internal/domain/valueobject"
)

func TestLocation_IsValid(t *testing.T) {
	assert.True(t, valueobject.NewLocation(37.7749, -122.4194).IsValid())
	assert.True(t, valueobject.NewLocation(-90, 180).IsValid())
	assert.False(t, valueobject.NewLocation(90.5, 0).IsValid())
	assert.False(t, valueobject.NewLocation(0, -180.5).IsValid())
}

func TestLocation_Hemispheres(t *testing.T) {
	lat, lng := valueobject.NewLocation(-33.8568, 151.2153).Hemispheres()
	assert.Equal(t, valueobject.South, lat)
	assert.Equal(t, valueobject.East, lng)

	lat, lng = valueobject.NewLocation(38.8895, -77.0352).Hemispheres()
	assert.Equal(t, valueobject.North, lat)
	assert.Equal(t, valueobject.West, lng)
}

func TestLocationFromLatLng(t *testing.T) {
	loc := valueobject.LocationFromLatLng(s2.LatLngFromDegrees(95, 190))

	assert.InDelta(t, 90, loc.Latitude, 1e-9)
	assert.InDelta(t, -170, loc.Longitude, 1e-9)
	assert.True(t, loc.IsValid())
}
