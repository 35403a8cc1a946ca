package coordinate

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/geocoord/internal/adapter/gridref"
	"github.com/marcos-nsantos/geocoord/internal/domain"
	"github.com/marcos-nsantos/geocoord/internal/domain/geodetic"
	"github.com/marcos-nsantos/geocoord/internal/domain/valueobject"
)

var gridPattern = regexp.MustCompile(`^\d{2}[A-Za-z]{3}(?:\d\d){1,6}$`)

type Service struct {
	grid   gridref.Converter
	logger *zap.Logger
}

// NewService returns a parser. A nil grid converter disables grid references.
func NewService(grid gridref.Converter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		grid:   grid,
		logger: logger,
	}
}

// Parse resolves grid references through the converter and runs every
// input through the geodetic pipeline. Only a failed grid conversion errors.
func (s *Service) Parse(input string) (*geodetic.Coordinate, error) {
	if s.grid != nil {
		if ref, ok := GridReference(input); ok {
			lat, lng, err := s.grid.ToLatLng(ref)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %w", domain.ErrGridConversion, ref, err)
			}
			input = GridText(lat, lng)
			s.logger.Debug("grid reference resolved", zap.String("reference", ref), zap.String("coordinate", input))
		}
	}

	return geodetic.Parse(input, geodetic.WithLogger(s.logger)), nil
}

// GridReference strips whitespace and dashes and reports whether what is
// left is shaped like a grid reference.
func GridReference(input string) (string, bool) {
	ref := strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, input)
	return ref, gridPattern.MatchString(ref)
}

// GridText renders signed degrees as hemisphere-suffixed decimal text, e.g. "38.8895N/77.0352W".
func GridText(lat, lng float64) string {
	latHem, lngHem := valueobject.NewLocation(lat, lng).Hemispheres()
	return strconv.FormatFloat(math.Abs(lat), 'f', -1, 64) + latHem.String() + "/" +
		strconv.FormatFloat(math.Abs(lng), 'f', -1, 64) + lngHem.String()
}
