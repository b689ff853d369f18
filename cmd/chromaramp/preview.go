package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/chromaramp/internal/model"
	"github.com/alexisbeaulieu97/chromaramp/internal/tui"
)

type previewOptions struct {
	ConfigPath string
	Verbose    bool
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview <config-file>",
		Short: "Render every palette as terminal swatches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ConfigPath = args[0]
			opts.Verbose = root.verbose
			return runPreview(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	return cmd
}

func runPreview(ctx context.Context, out, errOut io.Writer, opts previewOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	cfg.Settings.ContinueOnError = true

	log, err := newLogger(opts.Verbose, true, errOut)
	if err != nil {
		return err
	}

	results, _, err := buildPalettes(ctx, cfg, log, nil)
	if err != nil {
		return err
	}

	for _, res := range results {
		if res.Status == model.StatusFailed {
			fmt.Fprintf(out, "%s %s: %s\n\n", tui.StatusIcon(res.Status), res.PaletteID, res.Message)
			continue
		}
		fmt.Fprintln(out, tui.RenderScale(res.PaletteID, res.Scale))
		if issues := tui.RenderIssues(res.Issues); issues != "" {
			fmt.Fprintln(out, issues)
		}
		fmt.Fprintln(out)
	}

	return nil
}
