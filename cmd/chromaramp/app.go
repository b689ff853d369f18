package main

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/chromaramp/internal/config"
	"github.com/alexisbeaulieu97/chromaramp/internal/engine"
	"github.com/alexisbeaulieu97/chromaramp/internal/logger"
	"github.com/alexisbeaulieu97/chromaramp/internal/model"
)

// loadConfig parses the configuration and applies environment overrides.
func loadConfig(path string) (*config.Config, error) {
	if err := validateConfigPath(path); err != nil {
		return nil, err
	}
	cfg, err := config.ParseConfig(path)
	if err != nil {
		return nil, err
	}
	config.ApplyEnv(cfg)
	return cfg, nil
}

func newLogger(verbose, humanReadable bool, w io.Writer) (*logger.Logger, error) {
	level := "info"
	if verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         config.LogLevel(level),
		HumanReadable: humanReadable,
		Writer:        w,
	})
	if err != nil {
		return nil, withExitCode(exitConfig, err)
	}
	return log, nil
}

// buildPalettes runs the engine over every configured palette. hooks may
// set progress callbacks on the context before the build starts.
func buildPalettes(ctx context.Context, cfg *config.Config, log *logger.Logger, hooks func(*engine.BuildContext)) ([]model.PaletteResult, string, error) {
	bc, err := engine.NewBuildContext(ctx, cfg, log)
	if err != nil {
		return nil, "", err
	}
	bc.BuildID = uuid.NewString()
	if hooks != nil {
		hooks(bc)
	}

	log.WithFields(map[string]any{
		"build_id": bc.BuildID,
		"config":   cfg.Name,
		"palettes": len(cfg.Palettes),
		"parallel": cfg.Settings.EffectiveParallel(),
	}).Info("Starting build")

	results, err := engine.Build(bc)
	return results, bc.BuildID, err
}
