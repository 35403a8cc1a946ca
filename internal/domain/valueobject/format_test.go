package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/geocoord/internal/domain"
	"github.com/marcos-nsantos/geocoord/internal/domain/valueobject"
)

func TestParseFormatKind(t *testing.T) {
	tests := map[string]valueobject.FormatKind{
		"dd":   valueobject.FormatDecimalDegrees,
		" DM ": valueobject.FormatDegreesMinutes,
		"Dms":  valueobject.FormatDegreesMinutesSeconds,
	}
	for in, want := range tests {
		got, err := valueobject.ParseFormatKind(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := valueobject.ParseFormatKind("utm")
	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}

func TestFormatKindFromComponents(t *testing.T) {
	want := []valueobject.FormatKind{
		valueobject.FormatUnknown,
		valueobject.FormatDecimalDegrees,
		valueobject.FormatDegreesMinutes,
		valueobject.FormatDegreesMinutesSeconds,
		valueobject.FormatUnknown,
	}
	for n, kind := range want {
		assert.Equal(t, kind, valueobject.FormatKindFromComponents(n))
	}
	assert.Equal(t, "DMS", valueobject.FormatDegreesMinutesSeconds.String())
	assert.Equal(t, "unknown", valueobject.FormatUnknown.String())
}

func TestHemisphere(t *testing.T) {
	h, ok := valueobject.ParseHemisphere('s')
	require.True(t, ok)
	assert.Equal(t, valueobject.South, h)
	assert.Equal(t, -1.0, h.Sign())

	h, ok = valueobject.ParseHemisphere('E')
	require.True(t, ok)
	assert.Equal(t, 1.0, h.Sign())

	_, ok = valueobject.ParseHemisphere('x')
	assert.False(t, ok)
}
