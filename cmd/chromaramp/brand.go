package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/chromaramp/internal/config"
	"github.com/alexisbeaulieu97/chromaramp/internal/scale"
)

func newBrandCmd() *cobra.Command {
	opts := singleScaleOptions{}
	pin := -1

	cmd := &cobra.Command{
		Use:   "brand <hex>",
		Short: "Derive a scale from a brand colour and print it",
		Example: `  chromaramp brand '#FF7A52'
  chromaramp brand '#F4EBD7' --pin 4 --format swatch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pinPtr *int
			if cmd.Flags().Changed("pin") {
				pinPtr = &pin
			}

			s, err := scale.New().GenerateFromBrand(args[0], pinPtr)
			if err != nil {
				return withExitCode(exitConfig, err)
			}
			return writeSingleScale(cmd.OutOrStdout(), opts, s)
		},
	}

	cmd.Flags().IntVar(&pin, "pin", -1, "Step (0-9) that reproduces the brand colour; defaults to the closest step")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "css", "Output format: css, json, yaml, markdown, swatch")
	cmd.Flags().StringVar(&opts.ID, "id", "brand", "Palette id used in token names")
	cmd.Flags().StringVar(&opts.Prefix, "prefix", config.DefaultPrefix, "Token group prefix")

	return cmd
}
