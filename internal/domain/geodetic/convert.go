package geodetic

import "math"

const precision = 1e5

func round5(v float64) float64 {
	return math.Round(v*precision) / precision
}

// toDecimal accumulates the components into decimal degrees. The sign of
// the hemisphere is not applied.
func toDecimal(a Axis) float64 {
	return round5(a.Degree + a.Minute/60 + a.Second/3600)
}

// toDegreesMinutes splits decimal degrees into whole degrees and minutes
// rounded for display. A minute that rounds up to 60 is carried.
func toDegreesMinutes(v float64) (float64, float64) {
	deg := math.Trunc(v)
	minute := round5(60 * (v - deg))
	if minute >= 60 {
		deg++
		minute = 0
	}
	return deg, minute
}

// toDegreesMinutesSeconds splits decimal degrees into whole degrees, whole
// minutes and seconds rounded for display, carrying any unit that reaches 60.
func toDegreesMinutesSeconds(v float64) (float64, float64, float64) {
	deg := math.Trunc(v)
	minutes := 60 * (v - deg)
	minute := math.Trunc(minutes)
	second := round5(60 * (minutes - minute))
	if second >= 60 {
		minute++
		second = 0
	}
	if minute >= 60 {
		deg++
		minute = 0
	}
	return deg, minute, second
}
