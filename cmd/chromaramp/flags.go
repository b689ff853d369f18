package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/chromaramp/internal/emit"
)

func validateConfigPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return withExitCode(exitConfig, fmt.Errorf("config file is required"))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return withExitCode(exitConfig, fmt.Errorf("resolve config path: %w", err))
	}
	info, err := os.Stat(abs)
	if err != nil {
		return withExitCode(exitConfig, fmt.Errorf("config file does not exist: %w", err))
	}
	if info.IsDir() {
		return withExitCode(exitConfig, fmt.Errorf("config path %s is a directory", abs))
	}

	return nil
}

func validateFormats(formats []string, extra ...string) error {
	allowed := make(map[string]struct{})
	for _, f := range emit.Formats() {
		allowed[f] = struct{}{}
	}
	for _, f := range extra {
		allowed[f] = struct{}{}
	}

	for _, f := range formats {
		if _, ok := allowed[f]; !ok {
			return withExitCode(exitConfig, fmt.Errorf("unknown format %q", f))
		}
	}
	return nil
}
