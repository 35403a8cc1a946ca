package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/geocoord/internal/infrastructure/config"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.Load()

		require.NoError(t, err)
		assert.Equal(t, "/", cfg.Output.Separator)
		assert.Equal(t, []string{"dd", "dm", "dms"}, cfg.Output.Formats)
		assert.True(t, cfg.Grid.Enabled)
		assert.Equal(t, "warn", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("OUTPUT_SEPARATOR", " | ")
		t.Setenv("OUTPUT_FORMATS", "dms,dd")
		t.Setenv("GRID_ENABLED", "false")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")

		cfg, err := config.Load()

		require.NoError(t, err)
		assert.Equal(t, " | ", cfg.Output.Separator)
		assert.Equal(t, []string{"dms", "dd"}, cfg.Output.Formats)
		assert.False(t, cfg.Grid.Enabled)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("invalid boolean", func(t *testing.T) {
		t.Setenv("GRID_ENABLED", "sometimes")

		_, err := config.Load()

		assert.ErrorContains(t, err, "loading config")
	})
}
