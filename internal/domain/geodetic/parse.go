package geodetic

import (
	"go.uber.org/zap"

	"github.com/marcos-nsantos/geocoord/internal/domain/valueobject"
)

const (
	warnAmbiguous  = "possibly invalid coordinate, guessing from components"
	warnMismatch   = "latitude and longitude use different notations"
	warnUnresolved = "could not normalize coordinate, echoing input"
)

type options struct {
	logger *zap.Logger
}

type Option func(*options)

// WithLogger routes parse diagnostics to logger at warn level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Parse runs the full pipeline over input. It never fails: a coordinate
// that cannot be normalized comes back degraded and renders as input.
func Parse(input string, opts ...Option) *Coordinate {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger.With(zap.String("input", input))

	c := &Coordinate{input: input, status: StatusProvisional}

	seg := tokenize(input)
	c.latHem, c.lngHem = seg.latHem, seg.lngHem

	lat, latKind, latTokens := extract(seg.lat)
	lng, lngKind, lngTokens := extract(seg.lng)
	c.lat, c.lng = lat, lng
	c.kind = latKind

	if malformed(latTokens) || malformed(lngTokens) {
		c.warn(log, warnAmbiguous,
			zap.Strings("latitude", latTokens),
			zap.Strings("longitude", lngTokens),
		)
	} else if latKind != lngKind {
		c.warn(log, warnMismatch,
			zap.Stringer("latitude", latKind),
			zap.Stringer("longitude", lngKind),
		)
	}
	if latKind != lngKind {
		c.kind = valueobject.FormatUnknown
	}

	if !valid(c.kind, c.lat, c.lng) {
		c.kind = valueobject.FormatUnknown
		g, ok := disambiguate(seg.lat, seg.lng)
		if !ok {
			c.degrade(log)
			return c
		}
		// The guessed notation stands if at least one axis fits it.
		if g.latOK || g.lngOK {
			c.kind = g.kind
		}
		if g.latOK {
			c.lat = g.lat
		}
		if g.lngOK {
			c.lng = g.lng
		}
		if !g.ok() {
			c.degrade(log)
			return c
		}
		log.Debug("format guessed from unbroken digits", zap.Stringer("format", c.kind))
	}

	c.decimalLat = toDecimal(c.lat)
	c.decimalLng = toDecimal(c.lng)

	if !valid(c.kind, c.lat, c.lng) {
		c.degrade(log)
		return c
	}

	c.status = StatusNormalized
	return c
}

func malformed(tokens []string) bool {
	return len(tokens) == 0 || len(tokens) > maxComponents
}

func (c *Coordinate) warn(log *zap.Logger, msg string, fields ...zap.Field) {
	c.warnings = append(c.warnings, msg)
	log.Warn(msg, fields...)
}

func (c *Coordinate) degrade(log *zap.Logger) {
	c.status = StatusDegraded
	c.warn(log, warnUnresolved, zap.Stringer("format", c.kind))
}
