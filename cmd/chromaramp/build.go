package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/chromaramp/internal/emit"
	"github.com/alexisbeaulieu97/chromaramp/internal/engine"
	"github.com/alexisbeaulieu97/chromaramp/internal/model"
	"github.com/alexisbeaulieu97/chromaramp/internal/tui"
)

type buildOptions struct {
	ConfigPath     string
	OutDir         string
	Formats        []string
	Strict         bool
	Verbose        bool
	NonInteractive bool
}

var buildCmdRunner = runBuild

func newBuildCmd(root *rootFlags) *cobra.Command {
	opts := buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate every palette in a configuration and write token artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose
			opts.NonInteractive = !term.IsTerminal(int(os.Stdout.Fd()))

			if err := validateConfigPath(opts.ConfigPath); err != nil {
				return err
			}
			if err := validateFormats(opts.Formats); err != nil {
				return err
			}

			return buildCmdRunner(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().StringVarP(&opts.OutDir, "out", "o", "", "Output directory (overrides output.dir)")
	cmd.Flags().StringSliceVarP(&opts.Formats, "format", "f", nil, "Artifact formats: css, json, yaml, markdown")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Fail when any accessibility issue is reported")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runBuild(ctx context.Context, out, errOut io.Writer, opts buildOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.OutDir != "" {
		cfg.Output.Dir = opts.OutDir
	}
	if len(opts.Formats) > 0 {
		cfg.Output.Formats = opts.Formats
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	strict := opts.Strict || cfg.Settings.Strict
	verbose := opts.Verbose || cfg.Settings.Verbose

	log, err := newLogger(verbose, true, errOut)
	if err != nil {
		return err
	}

	modelState := tui.NewModel(cfg, opts.NonInteractive)
	interactive := !opts.NonInteractive

	var program *tea.Program
	var programErr error
	done := make(chan struct{})

	if interactive {
		program = tea.NewProgram(modelState, tea.WithOutput(out))
		go func() {
			var final tea.Model
			final, programErr = program.Run()
			if m, ok := final.(tui.Model); ok && m.Cancelled() {
				cancel()
			}
			close(done)
		}()
	}

	results, buildID, buildErr := buildPalettes(ctx, cfg, log, func(bc *engine.BuildContext) {
		if !interactive {
			return
		}
		bc.OnStart = func(id string) { program.Send(tui.PaletteStartMsg{ID: id}) }
		bc.OnResult = func(res model.PaletteResult) { program.Send(tui.PaletteCompleteMsg{Result: res}) }
	})

	if interactive {
		program.Send(tui.BuildDoneMsg{Err: buildErr})
		<-done
		if programErr != nil {
			return programErr
		}
	} else {
		for _, res := range results {
			dispatchTuiMessage(&modelState, tui.PaletteCompleteMsg{Result: res})
		}
		dispatchTuiMessage(&modelState, tui.BuildDoneMsg{Err: buildErr})
		fmt.Fprintln(out, modelState.View())
	}

	if buildErr != nil {
		return buildErr
	}

	doc := emit.FromResults(cfg.Name, cfg.Output.EffectivePrefix(), results)
	paths, err := emit.WriteAll(cfg.Output.EffectiveDir(), cfg.Output.EffectiveFormats(), doc)
	if err != nil {
		return err
	}
	for _, path := range paths {
		fmt.Fprintf(out, "wrote %s\n", path)
	}

	summary := model.Summarize(results)
	log.WithFields(map[string]any{
		"build_id":  buildID,
		"succeeded": summary.Succeeded,
		"warnings":  summary.Warnings,
		"failed":    summary.Failed,
		"issues":    summary.Issues,
	}).Info("Build complete")

	if strict && summary.Issues > 0 {
		return withExitCode(exitFailure, fmt.Errorf("strict mode: %d accessibility issue(s) reported", summary.Issues))
	}

	return nil
}

func dispatchTuiMessage(state *tui.Model, msg tea.Msg) {
	updated, _ := state.Update(msg)
	if m, ok := updated.(tui.Model); ok {
		*state = m
	}
}
