package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// EnvLogLevel selects the log level (debug, info, warn, error).
	EnvLogLevel = "CHROMARAMP_LOG_LEVEL"
	// EnvOutputDir overrides output.dir.
	EnvOutputDir = "CHROMARAMP_OUTPUT_DIR"
)

// LoadEnv populates the process environment from dotenv files. Variables that
// are already set win. A missing file is not an error unless it was named
// explicitly.
func LoadEnv(explicit string) error {
	if explicit != "" {
		return godotenv.Load(explicit)
	}

	err := godotenv.Load()
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// ApplyEnv overlays environment overrides onto cfg.
func ApplyEnv(cfg *Config) {
	if cfg == nil {
		return
	}
	if dir := strings.TrimSpace(os.Getenv(EnvOutputDir)); dir != "" {
		cfg.Output.Dir = dir
	}
}

// LogLevel returns the configured log level, or fallback when unset.
func LogLevel(fallback string) string {
	if level := strings.TrimSpace(os.Getenv(EnvLogLevel)); level != "" {
		return strings.ToLower(level)
	}
	return fallback
}
