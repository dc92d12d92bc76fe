// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cliforge/internal/config"
)

var configCmd = newConfigCommand()

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage forge configuration",
		Long: `Manage the forge user configuration.

The configuration file is written in CUE and lives in the platform's
standard config directory. Without a subcommand, the current
configuration is shown.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	}

	initSub := &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.CreateDefaultConfig()
			if err != nil {
				return reportError(err)
			}
			fmt.Printf("%s Created %s\n", SuccessStyle.Render("✓"), path)
			return nil
		},
	}

	path := &cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.ConfigFilePath()
			if err != nil {
				return reportError(err)
			}
			fmt.Println(p)
			return nil
		},
	}

	dump := &cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return reportError(err)
			}
			fmt.Print(config.GenerateCUE(cfg))
			return nil
		},
	}

	cmd.AddCommand(show, initSub, path, dump)
	return cmd
}

func showConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return reportError(err)
	}

	p, pathErr := config.ConfigFilePath()

	fmt.Fprintln(os.Stdout, TitleStyle.Render("forge configuration"))
	if pathErr == nil {
		source := p
		if _, err := os.Stat(p); err != nil {
			source = p + SubtitleStyle.Render(" (not present, using defaults)")
		}
		fmt.Fprintf(os.Stdout, "%s %s\n\n", SubtitleStyle.Render("file:"), source)
	}

	fmt.Fprintf(os.Stdout, "  bin_dir: %s\n", valueOrDefault(cfg.BinDir, "(per project)"))
	fmt.Fprintf(os.Stdout, "  jobs:    %s\n", jobsDisplay(cfg.Jobs))
	fmt.Fprintf(os.Stdout, "  ui.color_scheme: %s\n", cfg.UI.ColorScheme)
	fmt.Fprintf(os.Stdout, "  ui.verbose:      %t\n", cfg.UI.Verbose)
	return nil
}

func valueOrDefault(v, fallback string) string {
	if v == "" {
		return SubtitleStyle.Render(fallback)
	}
	return v
}

func jobsDisplay(jobs int) string {
	if jobs == 0 {
		return SubtitleStyle.Render("(number of CPUs)")
	}
	return fmt.Sprintf("%d", jobs)
}
