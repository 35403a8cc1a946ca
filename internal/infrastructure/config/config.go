package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Output OutputConfig
	Grid   GridConfig
	Log    LogConfig
}

type OutputConfig struct {
	Separator string   `envconfig:"OUTPUT_SEPARATOR" default:"/"`
	Formats   []string `envconfig:"OUTPUT_FORMATS" default:"dd,dm,dms"`
}

type GridConfig struct {
	Enabled bool `envconfig:"GRID_ENABLED" default:"true"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"warn"`
	Format string `envconfig:"LOG_FORMAT" default:"console"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}
