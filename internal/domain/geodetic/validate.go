package geodetic

import (
	"math"

	"github.com/marcos-nsantos/geocoord/internal/domain/valueobject"
)

const (
	maxDegree = 180
	maxMinute = 60
	maxSecond = 60
)

// valid reports whether the format is known and every component is in range.
// Latitude is held to the longitude bound; callers own the tighter check.
func valid(kind valueobject.FormatKind, axes ...Axis) bool {
	if kind == valueobject.FormatUnknown {
		return false
	}
	for _, a := range axes {
		if math.IsNaN(a.Degree) || math.IsNaN(a.Minute) || math.IsNaN(a.Second) {
			return false
		}
		if math.Abs(a.Degree) > maxDegree || math.Abs(a.Minute) > maxMinute || math.Abs(a.Second) > maxSecond {
			return false
		}
	}
	return true
}
