package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cfgcheck/internal/config"
	"cfgcheck/internal/diag"
	"cfgcheck/internal/diagfmt"
)

var codesConfig string

func init() {
	codesCmd.Flags().StringVar(&codesConfig, "config", "", "path to cfgcheck.toml (default: search upward from the working directory)")
}

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "List diagnostic codes with their default and effective levels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(codesConfig)
		if err != nil {
			return err
		}
		reg := diag.NewRegistry()
		cfg.Apply(reg)

		colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
		if err != nil {
			return fmt.Errorf("failed to get color flag: %w", err)
		}
		out := cmd.OutOrStdout()
		styled, err := useColor(colorFlag, out)
		if err != nil {
			return err
		}
		if err := diagfmt.CodeTable(out, reg.Categories(), styled); err != nil {
			return err
		}
		if reg.HadFatal() {
			errOut := cmd.ErrOrStderr()
			errColor, _ := useColor(colorFlag, errOut)
			_ = diagfmt.Pretty(errOut, reg.Items(), diagfmt.PrettyOpts{Color: errColor})
			return errDiagnostics
		}
		return nil
	},
}

// loadConfig reads path, or discovers cfgcheck.toml when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.Discover(".")
}
