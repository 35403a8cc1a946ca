package geodetic

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/marcos-nsantos/geocoord/internal/domain/valueobject"
)

var numericRun = regexp.MustCompile(`\d+(?:\.\d+)?`)

// segments is the tokenizer output: whitespace-separated numeric text per axis.
type segments struct {
	lat    string
	lng    string
	latHem valueobject.Hemisphere
	lngHem valueobject.Hemisphere
}

func tokenize(input string) segments {
	s := strings.ReplaceAll(input, "-", " ")
	s = strings.TrimFunc(s, func(r rune) bool { return !isContent(r) })

	seg := segments{latHem: valueobject.North, lngHem: valueobject.East}

	latIdx := strings.IndexAny(s, "NSns")
	lngIdx := strings.IndexAny(s, "EWew")
	if latIdx >= 0 {
		seg.latHem, _ = valueobject.ParseHemisphere(s[latIdx])
	}
	if lngIdx >= 0 {
		seg.lngHem, _ = valueobject.ParseHemisphere(s[lngIdx])
	}

	lngEnd := len(s)
	if lngIdx >= 0 {
		lngEnd = lngIdx
	}

	switch {
	case latIdx < 0:
		runs := numericRun.FindAllString(s, 2)
		if len(runs) > 0 {
			seg.lat = runs[0]
		}
		if len(runs) > 1 {
			seg.lng = runs[1]
		}
	case latIdx > 0:
		// coordinate then hemisphere: "34.5N 118.2W"
		seg.lat = s[:latIdx]
		if start := strings.IndexFunc(s[latIdx+1:], isDigit); start >= 0 {
			start += latIdx + 1
			if lngEnd > start {
				seg.lng = s[start:lngEnd]
			}
		}
	default:
		// hemisphere then coordinate: "N34.5 W118.2"
		if lngEnd > 1 {
			seg.lat = s[1:lngEnd]
		}
		if lngIdx >= 0 {
			seg.lng = s[lngIdx+1:]
		}
	}

	seg.lat = blankNonNumeric(seg.lat)
	seg.lng = blankNonNumeric(seg.lng)
	return seg
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isContent(r rune) bool {
	if isDigit(r) {
		return true
	}
	switch unicode.ToUpper(r) {
	case 'N', 'S', 'E', 'W':
		return true
	}
	return false
}

func blankNonNumeric(s string) string {
	return strings.Map(func(r rune) rune {
		if isDigit(r) || r == '.' {
			return r
		}
		return ' '
	}, s)
}
