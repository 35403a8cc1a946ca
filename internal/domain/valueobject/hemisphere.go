package valueobject

type Hemisphere byte

const (
	North Hemisphere = 'N'
	South Hemisphere = 'S'
	East  Hemisphere = 'E'
	West  Hemisphere = 'W'
)

// ParseHemisphere accepts a hemisphere letter in either case.
func ParseHemisphere(c byte) (Hemisphere, bool) {
	switch c {
	case 'N', 'n':
		return North, true
	case 'S', 's':
		return South, true
	case 'E', 'e':
		return East, true
	case 'W', 'w':
		return West, true
	}
	return 0, false
}

func (h Hemisphere) String() string {
	return string(h)
}

// Sign is -1 for the southern and western hemispheres.
func (h Hemisphere) Sign() float64 {
	if h == South || h == West {
		return -1
	}
	return 1
}
