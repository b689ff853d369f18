package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/chromaramp/internal/config"
	"github.com/alexisbeaulieu97/chromaramp/internal/curve"
	"github.com/alexisbeaulieu97/chromaramp/internal/scale"
)

func newScaleCmd() *cobra.Command {
	opts := singleScaleOptions{}
	var hue float64
	var chroma []float64

	cmd := &cobra.Command{
		Use:     "scale",
		Short:   "Render an explicit hue and chroma table and print it",
		Example: `  chromaramp scale --hue 250 --chroma 0.03,0.06,0.10,0.14,0.17,0.18,0.17,0.14,0.11,0.08`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(chroma) != curve.Steps {
				return withExitCode(exitConfig, fmt.Errorf("--chroma needs %d values, got %d", curve.Steps, len(chroma)))
			}
			if hue < 0 || hue >= 360 {
				return withExitCode(exitConfig, fmt.Errorf("--hue must be in [0,360), got %v", hue))
			}

			var table [curve.Steps]float64
			copy(table[:], chroma)

			s, err := scale.New().GenerateExplicit(hue, table)
			if err != nil {
				return withExitCode(exitConfig, err)
			}
			return writeSingleScale(cmd.OutOrStdout(), opts, s)
		},
	}

	cmd.Flags().Float64Var(&hue, "hue", 0, "Hue angle in degrees")
	cmd.Flags().Float64SliceVar(&chroma, "chroma", nil, "Ten comma-separated chroma values, lightest step first")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "css", "Output format: css, json, yaml, markdown, swatch")
	cmd.Flags().StringVar(&opts.ID, "id", "scale", "Palette id used in token names")
	cmd.Flags().StringVar(&opts.Prefix, "prefix", config.DefaultPrefix, "Token group prefix")
	cmd.MarkFlagRequired("hue")    //nolint:errcheck
	cmd.MarkFlagRequired("chroma") //nolint:errcheck

	return cmd
}
