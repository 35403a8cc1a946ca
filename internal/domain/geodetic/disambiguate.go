package geodetic

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/marcos-nsantos/geocoord/internal/domain/valueobject"
)

var (
	decimalPrefix = regexp.MustCompile(`^\d{1,2}\.`)
	// 6-7 digits split from the right: seconds, minutes, then 2-3 degree digits.
	packedDMS = regexp.MustCompile(`^(\d{2,3})(\d{2})(\d{2})(\.\d+)?$`)
	// 4-5 digits split from the right: minutes, then 2-3 degree digits.
	packedDM = regexp.MustCompile(`^(\d{2,3})(\d{2})(\.\d+)?$`)
)

type guess struct {
	kind  valueobject.FormatKind
	lat   Axis
	lng   Axis
	latOK bool
	lngOK bool
}

func (g guess) ok() bool {
	return g.latOK && g.lngOK
}

// disambiguate picks a notation from the latitude text and splits both
// axes with it. It returns false when the latitude matches no rule.
func disambiguate(latText, lngText string) (guess, bool) {
	latText = strings.TrimSpace(latText)
	lngText = strings.TrimSpace(lngText)

	var split func(string) (Axis, bool)
	var kind valueobject.FormatKind

	switch {
	case decimalPrefix.MatchString(latText):
		kind, split = valueobject.FormatDecimalDegrees, splitDecimal
	case packedDMS.MatchString(latText):
		kind, split = valueobject.FormatDegreesMinutesSeconds, splitPackedDMS
	case packedDM.MatchString(latText):
		kind, split = valueobject.FormatDegreesMinutes, splitPackedDM
	default:
		return guess{}, false
	}

	g := guess{kind: kind}
	g.lat, g.latOK = split(latText)
	g.lng, g.lngOK = split(lngText)
	return g, true
}

func splitDecimal(s string) (Axis, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Axis{}, false
	}
	return Axis{Degree: v}, true
}

func splitPackedDMS(s string) (Axis, bool) {
	m := packedDMS.FindStringSubmatch(s)
	if m == nil {
		return Axis{}, false
	}
	return parseParts(m[1], m[2], m[3]+m[4])
}

func splitPackedDM(s string) (Axis, bool) {
	m := packedDM.FindStringSubmatch(s)
	if m == nil {
		return Axis{}, false
	}
	return parseParts(m[1], m[2]+m[3], "0")
}

func parseParts(deg, minute, second string) (Axis, bool) {
	var a Axis
	var err error
	if a.Degree, err = strconv.ParseFloat(deg, 64); err != nil {
		return Axis{}, false
	}
	if a.Minute, err = strconv.ParseFloat(minute, 64); err != nil {
		return Axis{}, false
	}
	if a.Second, err = strconv.ParseFloat(second, 64); err != nil {
		return Axis{}, false
	}
	return a, true
}
