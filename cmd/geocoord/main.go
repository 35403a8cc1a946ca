package main

import (
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/geocoord/internal/adapter/cli"
	"github.com/marcos-nsantos/geocoord/internal/adapter/gridref"
	"github.com/marcos-nsantos/geocoord/internal/infrastructure/config"
	"github.com/marcos-nsantos/geocoord/internal/infrastructure/mgrs"
	"github.com/marcos-nsantos/geocoord/internal/infrastructure/observability"
	"github.com/marcos-nsantos/geocoord/internal/pkg/apperror"
	"github.com/marcos-nsantos/geocoord/internal/usecase/coordinate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}

	os.Exit(run(cfg, logger))
}

func run(cfg *config.Config, logger *zap.Logger) int {
	defer logger.Sync()

	var grid gridref.Converter
	if cfg.Grid.Enabled {
		grid = mgrs.NewConverter()
	}

	svc := coordinate.NewService(grid, logger)
	handler := cli.NewCoordinateHandler(svc)

	cmd := handler.Command(cli.Options{
		Separator: cfg.Output.Separator,
		Formats:   cfg.Output.Formats,
	})

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "geocoord:", err)
		logger.Debug("command failed", zap.Error(err))
		return apperror.ExitCode(err)
	}
	return apperror.ExitOK
}
