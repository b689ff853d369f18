package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/chromaramp/internal/config"
	chromaerrors "github.com/alexisbeaulieu97/chromaramp/pkg/errors"
)

const blueChromaFlag = "0.03,0.06,0.10,0.14,0.17,0.18,0.17,0.14,0.11,0.08"

func writeConfig(t *testing.T, outDir string, palettes string) string {
	t.Helper()

	contents := fmt.Sprintf(`version: "1.0"
name: "CLI test"
settings:
  parallel: 2
output:
  dir: %q
  formats: [css, json, markdown]
palettes:
%s`, outDir, palettes)

	path := filepath.Join(t.TempDir(), "chromaramp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

const greyPalette = `  - id: grey
    brand: "#808080"
`

const mixedPalettes = `  - id: blue
    hue: 250
    chroma: [0.03, 0.06, 0.10, 0.14, 0.17, 0.18, 0.17, 0.14, 0.11, 0.08]
  - id: sand
    brand: "#F4EBD7"
    pin: 4
`

func executeCommand(args ...string) (string, error) {
	root := newRootCmd()
	root.SetArgs(args)
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	err := root.Execute()
	return out.String(), err
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-19"

	output, err := executeCommand("version")
	require.NoError(t, err)
	require.Contains(t, output, "chromaramp 1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2026-10-19")
}

func TestBuildCommandWritesArtifacts(t *testing.T) {
	t.Parallel()

	outDir := filepath.Join(t.TempDir(), "tokens")
	cfgPath := writeConfig(t, outDir, mixedPalettes)

	output, err := executeCommand("build", "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, output, "chromaramp • CLI test")
	require.Contains(t, output, "wrote "+filepath.Join(outDir, "tokens.css"))

	css, err := os.ReadFile(filepath.Join(outDir, "tokens.css"))
	require.NoError(t, err)
	require.Contains(t, string(css), "--color-blue-50: #EEF6FF;")
	require.Contains(t, string(css), "--color-sand-400: #F4EBD7;")

	require.FileExists(t, filepath.Join(outDir, "tokens.json"))
	require.FileExists(t, filepath.Join(outDir, "colors.md"))
	require.NoFileExists(t, filepath.Join(outDir, "tokens.yaml"))
}

func TestBuildCommandFlagOverrides(t *testing.T) {
	t.Parallel()

	cfgPath := writeConfig(t, filepath.Join(t.TempDir(), "ignored"), greyPalette)
	outDir := filepath.Join(t.TempDir(), "override")

	_, err := executeCommand("build", "-c", cfgPath, "--out", outDir, "--format", "yaml")
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(outDir, "tokens.yaml"))
	require.NoFileExists(t, filepath.Join(outDir, "tokens.css"))

	_, err = executeCommand("build", "-c", cfgPath, "--format", "scss")
	require.ErrorContains(t, err, "unknown format")
	require.Equal(t, exitConfig, exitCode(err))
}

func TestBuildCommandStrictFailsOnIssues(t *testing.T) {
	t.Parallel()

	cfgPath := writeConfig(t, filepath.Join(t.TempDir(), "tokens"), mixedPalettes)

	_, err := executeCommand("build", "-c", cfgPath, "--strict")
	require.ErrorContains(t, err, "strict mode")
	require.Equal(t, exitFailure, exitCode(err))
}

func TestBuildCommandValidatesConfig(t *testing.T) {
	t.Parallel()

	_, err := executeCommand("build", "--config", "/path/does/not/exist")
	require.ErrorContains(t, err, "does not exist")
	require.Equal(t, exitConfig, exitCode(err))

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("version: \"1.0\"\nname: bad\npalettes:\n  - id: x\n    brand: tomato\n"), 0o600))
	_, err = executeCommand("build", "--config", bad)
	var validationErr *chromaerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, exitConfig, exitCode(err))
}

func TestVerifyCommandDetectsDrift(t *testing.T) {
	t.Parallel()

	outDir := filepath.Join(t.TempDir(), "tokens")
	cfgPath := writeConfig(t, outDir, greyPalette)

	output, err := executeCommand("verify", cfgPath)
	require.Error(t, err)
	require.Equal(t, exitFailure, exitCode(err))
	require.Contains(t, output, "✖ missing")

	_, err = executeCommand("build", "-c", cfgPath)
	require.NoError(t, err)

	output, err = executeCommand("verify", cfgPath)
	require.NoError(t, err)
	require.Contains(t, output, "All artifacts up to date")

	cssPath := filepath.Join(outDir, "tokens.css")
	require.NoError(t, os.WriteFile(cssPath, []byte(":root {}\n"), 0o600))

	output, err = executeCommand("verify", cfgPath, "--json")
	require.Error(t, err)
	require.Contains(t, output, `"status": "drifted"`)
	require.Contains(t, output, `"config_file": "`+cfgPath+`"`)

	output, err = executeCommand("verify", cfgPath, "--verbose")
	require.Error(t, err)
	require.Contains(t, output, "Detailed Diff Output")
	require.Contains(t, output, "+:root {}")
}

func TestCheckCommand(t *testing.T) {
	t.Parallel()

	clean := writeConfig(t, t.TempDir(), greyPalette)
	output, err := executeCommand("check", clean)
	require.NoError(t, err)
	require.Contains(t, output, "✓ grey: no issues")

	flagged := writeConfig(t, t.TempDir(), mixedPalettes)
	output, err = executeCommand("check", flagged)
	require.Error(t, err)
	require.Equal(t, exitFailure, exitCode(err))
	require.Contains(t, output, "⚠ sand")
	require.Contains(t, output, "step 5 contrast")

	output, err = executeCommand("check", flagged, "--json")
	require.Error(t, err)
	require.Contains(t, output, `"palette": "sand"`)
	require.Contains(t, output, `"kind": "contrast"`)
}

func TestBrandCommand(t *testing.T) {
	t.Parallel()

	output, err := executeCommand("brand", "#ff7a52")
	require.NoError(t, err)
	require.Contains(t, output, "--color-brand-300: #FF7A52;")

	output, err = executeCommand("brand", "#F4EBD7", "--pin", "4", "--format", "swatch", "--id", "sand")
	require.NoError(t, err)
	require.Contains(t, output, "sand")
	require.Contains(t, output, "400*")

	output, err = executeCommand("brand", "#3B82F6", "--format", "json", "--prefix", "brand")
	require.NoError(t, err)
	require.Contains(t, output, `"brand": {`)

	_, err = executeCommand("brand", "tomato")
	var parseErr *chromaerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, exitConfig, exitCode(err))

	_, err = executeCommand("brand", "#FF7A52", "--pin", "10")
	require.Equal(t, exitConfig, exitCode(err))

	_, err = executeCommand("brand", "#FF7A52", "--format", "scss")
	require.Equal(t, exitConfig, exitCode(err))
}

func TestScaleCommand(t *testing.T) {
	t.Parallel()

	output, err := executeCommand("scale", "--hue", "250", "--chroma", blueChromaFlag)
	require.NoError(t, err)
	require.Contains(t, output, "--color-scale-50: #EEF6FF;")
	require.Contains(t, output, "--color-scale-900: #001B36;")

	output, err = executeCommand("scale", "--hue", "250", "--chroma", blueChromaFlag, "--format", "markdown", "--id", "blue")
	require.NoError(t, err)
	require.Contains(t, output, "## blue")

	_, err = executeCommand("scale", "--hue", "250", "--chroma", "0.1,0.2")
	require.ErrorContains(t, err, "needs 10 values")
	require.Equal(t, exitConfig, exitCode(err))

	_, err = executeCommand("scale", "--hue", "400", "--chroma", blueChromaFlag)
	require.Equal(t, exitConfig, exitCode(err))
}

func TestPreviewCommand(t *testing.T) {
	t.Parallel()

	cfgPath := writeConfig(t, t.TempDir(), mixedPalettes)
	output, err := executeCommand("preview", cfgPath)
	require.NoError(t, err)
	require.Contains(t, output, "blue")
	require.Contains(t, output, "#EEF6FF")
	require.Contains(t, output, "400*")
	require.Contains(t, output, "step 5 contrast")
}

func TestEnvFileOverridesOutputDir(t *testing.T) {
	t.Setenv(config.EnvOutputDir, "")
	require.NoError(t, os.Unsetenv(config.EnvOutputDir))

	envDir := filepath.Join(t.TempDir(), "from-env")
	envFile := filepath.Join(t.TempDir(), "build.env")
	require.NoError(t, os.WriteFile(envFile, []byte(config.EnvOutputDir+"="+envDir+"\n"), 0o600))

	cfgPath := writeConfig(t, filepath.Join(t.TempDir(), "from-config"), greyPalette)
	_, err := executeCommand("build", "-c", cfgPath, "--env-file", envFile)
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(envDir, "tokens.css"))

	_, err = executeCommand("version", "--env-file", filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	require.Equal(t, exitConfig, exitCode(err))
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, exitOK},
		{"plain", errors.New("boom"), exitFailure},
		{"explicit", withExitCode(exitConfig, errors.New("bad flag")), exitConfig},
		{"parse", chromaerrors.NewParseError("cfg.yaml", 3, errors.New("bad")), exitConfig},
		{"validation", chromaerrors.NewValidationError("palettes", "required", nil), exitConfig},
		{"generation wraps parse", chromaerrors.NewGenerationError("x", chromaerrors.NewColorParseError("#GG", "bad")), exitFailure},
		{"wrapped", fmt.Errorf("outer: %w", chromaerrors.NewValidationError("f", "m", nil)), exitConfig},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, exitCode(tt.err))
		})
	}

	require.Nil(t, withExitCode(exitConfig, nil))
}
