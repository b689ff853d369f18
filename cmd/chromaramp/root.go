package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/chromaramp/internal/config"
)

type rootFlags struct {
	verbose bool
	envFile string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "chromaramp",
		Short:         "chromaramp generates perceptually even colour scales for design tokens",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnv(flags.envFile); err != nil {
				return withExitCode(exitConfig, err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", "", "Load environment overrides from this file (default .env when present)")

	cmd.AddCommand(newBuildCmd(flags))
	cmd.AddCommand(newVerifyCmd(flags))
	cmd.AddCommand(newCheckCmd(flags))
	cmd.AddCommand(newBrandCmd())
	cmd.AddCommand(newScaleCmd())
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
