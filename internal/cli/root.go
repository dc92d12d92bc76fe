// SPDX-License-Identifier: MPL-2.0

// Package cli contains all commands of the forge binary.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"cliforge/internal/config"
	"cliforge/internal/discovery"
	"cliforge/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// manifestPath allows selecting a forgefile explicitly instead of
	// walking up from the working directory
	manifestPath string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "forge",
	})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "forge",
		Short: "A workbench for multi-binary Go projects",
		Long: TitleStyle.Render("forge") + SubtitleStyle.Render(" - a workbench for multi-binary Go projects") + `

forge reads a single project manifest (forgefile.cue) that declares
any number of named binary targets, and checks, builds, or runs them
by their declared names.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Run 'forge init' in your project directory
  2. Declare your binaries as targets in forgefile.cue
  3. Build them with: forge build

` + SubtitleStyle.Render("Examples:") + `
  forge list                Show all declared targets
  forge check               Vet every target's entry point
  forge build forge lrscan  Build two targets by name
  forge run lrscan -- --quadrant gamma
  forge config show         Show current configuration`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/forge/config.cue)")
	rootCmd.PersistentFlags().StringVarP(&manifestPath, "forgefile", "f", "", "path to the forgefile (default: nearest forgefile.cue)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(completionCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		// Config problems must never block the operation itself.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}

	if cfg != nil && !verbose {
		verbose = cfg.UI.Verbose
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// loadProject discovers and parses the forgefile for the current
// invocation, honoring the --forgefile flag.
func loadProject() (*discovery.Project, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, issue.WrapWithOperation(err, "determine working directory")
	}
	return discovery.Load(cwd, manifestPath)
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
