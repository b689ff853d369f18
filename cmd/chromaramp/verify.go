package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/chromaramp/internal/drift"
	"github.com/alexisbeaulieu97/chromaramp/internal/emit"
	"github.com/alexisbeaulieu97/chromaramp/internal/model"
)

type verifyOptions struct {
	ConfigPath string
	Verbose    bool
	JSON       bool
}

var verifyCmdRunner = runVerify

func newVerifyCmd(root *rootFlags) *cobra.Command {
	opts := verifyOptions{}

	cmd := &cobra.Command{
		Use:   "verify <config-file>",
		Short: "Check that generated artifacts on disk match the configuration",
		Long: `Verify regenerates every artifact in memory and compares it with the files
in the output directory. Returns exit code 0 if all artifacts are up to date,
exit code 1 if any are missing or have drifted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ConfigPath = args[0]
			opts.Verbose = root.verbose

			return verifyCmdRunner(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output results in JSON format")

	return cmd
}

func runVerify(ctx context.Context, out, errOut io.Writer, opts verifyOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	log, err := newLogger(opts.Verbose, !opts.JSON, errOut)
	if err != nil {
		return err
	}

	results, _, err := buildPalettes(ctx, cfg, log, nil)
	if err != nil {
		return err
	}

	doc := emit.FromResults(cfg.Name, cfg.Output.EffectivePrefix(), results)
	rendered, err := emit.RenderAll(cfg.Output.EffectiveFormats(), doc)
	if err != nil {
		return err
	}

	summary := drift.Check(cfg.Output.EffectiveDir(), rendered)

	log.WithFields(map[string]any{
		"total":     summary.Total,
		"satisfied": summary.Satisfied,
		"missing":   summary.Missing,
		"drifted":   summary.Drifted,
		"unknown":   summary.Unknown,
	}).Info("Verification complete")

	switch {
	case opts.JSON:
		if err := printJSONOutput(out, summary, opts.ConfigPath); err != nil {
			return err
		}
	case opts.Verbose:
		printVerboseOutput(out, summary)
	default:
		printTableOutput(out, summary)
	}

	if !summary.AllSatisfied() {
		return withExitCode(exitFailure, fmt.Errorf("%d of %d artifact(s) out of date", summary.Total-summary.Satisfied, summary.Total))
	}
	return nil
}

func printTableOutput(out io.Writer, summary *model.VerificationSummary) {
	fmt.Fprintln(out, "\nVerification Results:")
	fmt.Fprintln(out, strings.Repeat("=", 80))
	fmt.Fprintf(out, "%-40s %-12s %s\n", "Artifact", "Status", "Message")
	fmt.Fprintln(out, strings.Repeat("-", 80))

	for _, result := range summary.Results {
		fmt.Fprintf(out, "%-40s %-12s %s\n",
			truncatePath(result.Path, 40),
			fmt.Sprintf("%s %s", getStatusSymbol(result.Status), result.Status),
			truncateString(result.Message, 40),
		)
	}

	fmt.Fprintln(out, strings.Repeat("=", 80))
	fmt.Fprintf(out, "\nSummary:\n")
	fmt.Fprintf(out, "  Total:       %d\n", summary.Total)
	fmt.Fprintf(out, "  ✔ Satisfied: %d\n", summary.Satisfied)
	fmt.Fprintf(out, "  ✖ Missing:   %d\n", summary.Missing)
	fmt.Fprintf(out, "  ⚠ Drifted:   %d\n", summary.Drifted)
	fmt.Fprintf(out, "  ? Unknown:   %d\n", summary.Unknown)

	if summary.AllSatisfied() {
		fmt.Fprintln(out, "\n✅ All artifacts up to date")
	} else {
		fmt.Fprintln(out, "\n❌ Artifacts out of date - run 'chromaramp build' to regenerate")
	}
}

func printVerboseOutput(out io.Writer, summary *model.VerificationSummary) {
	printTableOutput(out, summary)

	hasDetails := false
	for _, result := range summary.Results {
		if result.Status != model.StatusDrifted || result.Diff == "" {
			continue
		}
		if !hasDetails {
			fmt.Fprintln(out, "\nDetailed Diff Output:")
			fmt.Fprintln(out, strings.Repeat("=", 80))
			hasDetails = true
		}
		fmt.Fprintf(out, "\n--- Artifact: %s ---\n", result.Path)
		fmt.Fprintln(out, result.Diff)
	}
}

func printJSONOutput(out io.Writer, summary *model.VerificationSummary, configPath string) error {
	type jsonOutput struct {
		ConfigFile string                     `json:"config_file"`
		Summary    *model.VerificationSummary `json:"summary"`
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(jsonOutput{ConfigFile: configPath, Summary: summary})
}

func getStatusSymbol(status model.VerificationStatus) string {
	switch status {
	case model.StatusSatisfied:
		return "✔"
	case model.StatusMissing:
		return "✖"
	case model.StatusDrifted:
		return "⚠"
	default:
		return "?"
	}
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func truncatePath(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return "..." + s[len(s)-maxLen+3:]
}
