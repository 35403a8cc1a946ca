package coordinate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/geocoord/internal/domain"
	"github.com/marcos-nsantos/geocoord/internal/domain/geodetic"
	"github.com/marcos-nsantos/geocoord/internal/infrastructure/mgrs"
	"github.com/marcos-nsantos/geocoord/internal/usecase/coordinate"
)

func TestService_WithMGRSConverter(t *testing.T) {
	svc := coordinate.NewService(mgrs.NewConverter(), nil)

	t.Run("washington monument", func(t *testing.T) {
		c, err := svc.Parse("18S UJ 23487 06483")

		require.NoError(t, err)
		require.False(t, c.IsRecoverable())
		assert.Equal(t, geodetic.Pair{"38.88950N", "77.03520W"}, c.DecimalDegrees())
		assert.Equal(t, geodetic.Pair{"38 53.37N", "77 2.112W"}, c.DegreesMinutes())
		assert.Equal(t, geodetic.Pair{"38 53 22.2N", "77 2 6.72W"}, c.DegreesMinutesSeconds())

		loc := c.Location()
		assert.InDelta(t, -77.0352, loc.Longitude, 1e-4)
		assert.True(t, loc.IsValid())
	})

	t.Run("lower case reference resolves like upper case", func(t *testing.T) {
		lower, err := svc.Parse("18suj 23487-06483")
		require.NoError(t, err)
		upper, err := svc.Parse("18SUJ2348706483")
		require.NoError(t, err)

		require.False(t, lower.IsRecoverable())
		assert.Equal(t, upper.DecimalDegrees(), lower.DecimalDegrees())
		assert.Equal(t, geodetic.Pair{"38.88950N", "77.03520W"}, lower.DecimalDegrees())
	})

	t.Run("polar reference fails the whole parse", func(t *testing.T) {
		_, err := svc.Parse("18ZUJ2348706483")

		assert.ErrorIs(t, err, domain.ErrGridConversion)
		assert.ErrorIs(t, err, domain.ErrUnsupportedGridZone)
	})
}
