package mgrs

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/golang/geo/s2"

	"github.com/marcos-nsantos/geocoord/internal/domain"
	"github.com/marcos-nsantos/geocoord/internal/domain/valueobject"
)

// WGS84 ellipsoid and UTM projection constants.
const (
	semiMajorAxis = 6378137.0
	flattening    = 1 / 298.257223563
	scaleFactor   = 0.9996
	falseEasting  = 500000.0
	falseNorthing = 10000000.0

	squareSize = 100000.0
	cycleSize  = 2000000.0
	maxDigits  = 12
)

const (
	latBands   = "CDEFGHJKLMNPQRSTUVWXX"
	polarBands = "ABYZ"
)

var (
	eastingLetters  = [3]string{"ABCDEFGH", "JKLMNPQR", "STUVWXYZ"}
	northingLetters = [2]string{"ABCDEFGHJKLMNPQRSTUV", "FGHJKLMNPQRSTUVABCDE"}

	referencePattern = regexp.MustCompile(`^(\d{1,2})([A-Z])([A-Z])([A-Z])(\d*)$`)
)

var (
	eccSquared  = flattening * (2 - flattening)
	eccPrimeSq  = eccSquared / (1 - eccSquared)
	arcConstant = 1 - eccSquared/4 - 3*eccSquared*eccSquared/64 - 5*eccSquared*eccSquared*eccSquared/256
)

// Converter turns MGRS references into WGS84 latitude/longitude.
type Converter struct{}

func NewConverter() *Converter {
	return &Converter{}
}

// utm is a position on the Universal Transverse Mercator grid.
type utm struct {
	zone     int
	south    bool
	easting  float64
	northing float64
}

func (c *Converter) ToLatLng(ref string) (float64, float64, error) {
	pos, err := parseReference(ref)
	if err != nil {
		return 0, 0, err
	}

	loc := valueobject.LocationFromLatLng(pos.latLng())
	if !loc.IsValid() {
		return 0, 0, fmt.Errorf("%w: %s", domain.ErrInvalidLocation, ref)
	}
	return loc.Latitude, loc.Longitude, nil
}

func parseReference(ref string) (utm, error) {
	clean := strings.ToUpper(strings.Join(strings.Fields(ref), ""))

	m := referencePattern.FindStringSubmatch(clean)
	if m == nil {
		return utm{}, fmt.Errorf("%w: %q", domain.ErrInvalidGridReference, ref)
	}

	zone, _ := strconv.Atoi(m[1])
	band, colLetter, rowLetter, digits := m[2], m[3], m[4], m[5]

	if strings.Contains(polarBands, band) {
		return utm{}, fmt.Errorf("%w: polar band %s in %q", domain.ErrUnsupportedGridZone, band, ref)
	}
	if zone < 1 || zone > 60 {
		return utm{}, fmt.Errorf("%w: zone %d in %q", domain.ErrInvalidGridReference, zone, ref)
	}
	bandIdx := strings.Index(latBands, band)
	if bandIdx < 0 {
		return utm{}, fmt.Errorf("%w: latitude band %s in %q", domain.ErrInvalidGridReference, band, ref)
	}
	if len(digits) == 0 || len(digits)%2 != 0 || len(digits) > maxDigits {
		return utm{}, fmt.Errorf("%w: %d location digits in %q", domain.ErrInvalidGridReference, len(digits), ref)
	}

	col := strings.Index(eastingLetters[(zone-1)%3], colLetter)
	row := strings.Index(northingLetters[(zone-1)%2], rowLetter)
	if col < 0 || row < 0 {
		return utm{}, fmt.Errorf("%w: square %s%s in zone %d", domain.ErrInvalidGridReference, colLetter, rowLetter, zone)
	}

	half := len(digits) / 2
	unit := math.Pow10(5 - half)
	east, _ := strconv.ParseFloat(digits[:half], 64)
	north, _ := strconv.ParseFloat(digits[half:], 64)

	// Northing letters repeat every 2,000 km; the band fixes the cycle.
	bandLat := float64((bandIdx - 10) * 8)
	bandNorthing := math.Floor(centralNorthing(bandLat)/squareSize) * squareSize

	squareNorthing := float64(row) * squareSize
	northing := squareNorthing + north*unit
	for northing < bandNorthing {
		northing += cycleSize
	}

	return utm{
		zone:     zone,
		south:    band < "N",
		easting:  float64(col+1)*squareSize + east*unit,
		northing: northing,
	}, nil
}

// centralNorthing is the UTM northing of a latitude on a zone's central meridian.
func centralNorthing(lat float64) float64 {
	n := scaleFactor * meridionalArc(lat*math.Pi/180)
	if lat < 0 {
		n += falseNorthing
	}
	return n
}

func meridionalArc(phi float64) float64 {
	e2 := eccSquared
	e4 := e2 * e2
	e6 := e4 * e2
	return semiMajorAxis * (arcConstant*phi -
		(3*e2/8+3*e4/32+45*e6/1024)*math.Sin(2*phi) +
		(15*e4/256+45*e6/1024)*math.Sin(4*phi) -
		(35*e6/3072)*math.Sin(6*phi))
}

// latLng applies the inverse transverse Mercator projection.
func (u utm) latLng() s2.LatLng {
	x := u.easting - falseEasting
	y := u.northing
	if u.south {
		y -= falseNorthing
	}

	mu := (y / scaleFactor) / (semiMajorAxis * arcConstant)
	e1 := (1 - math.Sqrt(1-eccSquared)) / (1 + math.Sqrt(1-eccSquared))
	phi1 := mu +
		(3*e1/2-27*math.Pow(e1, 3)/32)*math.Sin(2*mu) +
		(21*e1*e1/16-55*math.Pow(e1, 4)/32)*math.Sin(4*mu) +
		(151*math.Pow(e1, 3)/96)*math.Sin(6*mu) +
		(1097*math.Pow(e1, 4)/512)*math.Sin(8*mu)

	sin, cos, tan := math.Sin(phi1), math.Cos(phi1), math.Tan(phi1)
	n1 := semiMajorAxis / math.Sqrt(1-eccSquared*sin*sin)
	t1 := tan * tan
	c1 := eccPrimeSq * cos * cos
	r1 := semiMajorAxis * (1 - eccSquared) / math.Pow(1-eccSquared*sin*sin, 1.5)
	d := x / (n1 * scaleFactor)

	lat := phi1 - (n1*tan/r1)*(d*d/2-
		(5+3*t1+10*c1-4*c1*c1-9*eccPrimeSq)*math.Pow(d, 4)/24+
		(61+90*t1+298*c1+45*t1*t1-252*eccPrimeSq-3*c1*c1)*math.Pow(d, 6)/720)
	lng := (d - (1+2*t1+c1)*math.Pow(d, 3)/6 +
		(5-2*c1+28*t1-3*c1*c1+8*eccPrimeSq+24*t1*t1)*math.Pow(d, 5)/120) / cos

	centralMeridian := float64((u.zone-1)*6-180+3) * math.Pi / 180
	return s2.LatLngFromDegrees(lat*180/math.Pi, (centralMeridian+lng)*180/math.Pi)
}
