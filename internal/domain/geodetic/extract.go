package geodetic

import (
	"strconv"
	"strings"

	"github.com/marcos-nsantos/geocoord/internal/domain/valueobject"
)

const maxComponents = 3

// extract assigns degree, minute and second from the whitespace grouping
// of one axis and reports the notation the grouping implies.
func extract(text string) (Axis, valueobject.FormatKind, []string) {
	tokens := strings.Fields(text)
	kind := valueobject.FormatKindFromComponents(len(tokens))
	if kind == valueobject.FormatUnknown {
		return Axis{}, kind, tokens
	}

	var values [maxComponents]float64
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Axis{}, valueobject.FormatUnknown, tokens
		}
		values[i] = v
	}

	return Axis{Degree: values[0], Minute: values[1], Second: values[2]}, kind, tokens
}
