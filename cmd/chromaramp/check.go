package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/chromaramp/internal/accessibility"
	"github.com/alexisbeaulieu97/chromaramp/internal/model"
)

type checkOptions struct {
	ConfigPath string
	Verbose    bool
	JSON       bool
}

var checkCmdRunner = runCheck

func newCheckCmd(root *rootFlags) *cobra.Command {
	opts := checkOptions{}

	cmd := &cobra.Command{
		Use:   "check <config-file>",
		Short: "Report gamut and contrast issues without writing artifacts",
		Long: `Check generates every palette and reports accessibility advisories.
Returns exit code 0 when no palette failed and no issue was found, exit code 1
otherwise.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ConfigPath = args[0]
			opts.Verbose = root.verbose

			return checkCmdRunner(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output results in JSON format")

	return cmd
}

type issueJSON struct {
	Kind      accessibility.Kind `json:"kind"`
	Step      int                `json:"step"`
	Hex       string             `json:"hex"`
	Ratio     float64            `json:"ratio,omitempty"`
	Threshold float64            `json:"threshold,omitempty"`
	Message   string             `json:"message"`
}

type paletteReportJSON struct {
	Palette string      `json:"palette"`
	Status  string      `json:"status"`
	Hexes   []string    `json:"hexes,omitempty"`
	Issues  []issueJSON `json:"issues"`
	Error   string      `json:"error,omitempty"`
}

func runCheck(ctx context.Context, out, errOut io.Writer, opts checkOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	// every palette is reported, including failures
	cfg.Settings.ContinueOnError = true

	log, err := newLogger(opts.Verbose, !opts.JSON, errOut)
	if err != nil {
		return err
	}

	results, _, err := buildPalettes(ctx, cfg, log, nil)
	if err != nil {
		return err
	}

	if opts.JSON {
		if err := printCheckJSON(out, results); err != nil {
			return err
		}
	} else {
		printCheckReport(out, cfg.Name, results)
	}

	summary := model.Summarize(results)
	if summary.Failed > 0 || summary.Issues > 0 {
		return withExitCode(exitFailure, fmt.Errorf("%d issue(s), %d failed palette(s)", summary.Issues, summary.Failed))
	}
	return nil
}

func printCheckReport(out io.Writer, name string, results []model.PaletteResult) {
	fmt.Fprintf(out, "Accessibility report: %s\n\n", name)
	for _, res := range results {
		switch res.Status {
		case model.StatusFailed:
			fmt.Fprintf(out, "✗ %s: %s\n", res.PaletteID, res.Message)
		case model.StatusWarning:
			fmt.Fprintf(out, "⚠ %s: %d issue(s)\n", res.PaletteID, len(res.Issues))
			for _, issue := range res.Issues {
				fmt.Fprintf(out, "    %s\n", issue)
			}
		default:
			fmt.Fprintf(out, "✓ %s: no issues\n", res.PaletteID)
		}
	}
}

func printCheckJSON(out io.Writer, results []model.PaletteResult) error {
	report := make([]paletteReportJSON, 0, len(results))
	for _, res := range results {
		entry := paletteReportJSON{
			Palette: res.PaletteID,
			Status:  res.Status,
			Issues:  make([]issueJSON, 0, len(res.Issues)),
		}
		if res.Generated() {
			for _, hex := range res.Scale.Hexes() {
				entry.Hexes = append(entry.Hexes, hex.String())
			}
		}
		if res.Error != nil {
			entry.Error = res.Error.Error()
		}
		for _, issue := range res.Issues {
			entry.Issues = append(entry.Issues, issueJSON{
				Kind:      issue.Kind,
				Step:      issue.Step,
				Hex:       issue.Hex.String(),
				Ratio:     issue.Ratio,
				Threshold: issue.Threshold,
				Message:   issue.Message,
			})
		}
		report = append(report, entry)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
