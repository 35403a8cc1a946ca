package valueobject

import (
	"fmt"
	"strings"

	"github.com/marcos-nsantos/geocoord/internal/domain"
)

// FormatKind identifies a coordinate notation.
type FormatKind int

const (
	FormatUnknown FormatKind = iota
	FormatDecimalDegrees
	FormatDegreesMinutes
	FormatDegreesMinutesSeconds
)

func (k FormatKind) String() string {
	switch k {
	case FormatDecimalDegrees:
		return "DD"
	case FormatDegreesMinutes:
		return "DM"
	case FormatDegreesMinutesSeconds:
		return "DMS"
	}
	return "unknown"
}

// FormatKindFromComponents maps a token count to its notation.
func FormatKindFromComponents(n int) FormatKind {
	switch n {
	case 1:
		return FormatDecimalDegrees
	case 2:
		return FormatDegreesMinutes
	case 3:
		return FormatDegreesMinutesSeconds
	}
	return FormatUnknown
}

func ParseFormatKind(s string) (FormatKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dd":
		return FormatDecimalDegrees, nil
	case "dm":
		return FormatDegreesMinutes, nil
	case "dms":
		return FormatDegreesMinutesSeconds, nil
	}
	return FormatUnknown, fmt.Errorf("%w: %q", domain.ErrUnknownFormat, s)
}
