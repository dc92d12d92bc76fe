// SPDX-License-Identifier: MPL-2.0

// lrscan is the long-range scanner demo binary. It exists to give
// multi-target forgefiles something real to build and run.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"cliforge/internal/scanner"
	"cliforge/internal/stylesheet"
)

// exitError signals a non-zero exit code without forcing os.Exit in
// RunE handlers.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// hostileExitCode is returned when a sweep finds a hostile contact,
// so scripts can react to the alert.
const hostileExitCode = 2

var (
	quadrant string
	please   bool

	rootCmd = &cobra.Command{
		Use:   "lrscan",
		Short: "Sweep a quadrant with the long-range scanner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return sweep(os.Stdout, quadrant)
		},
	}
)

// sweep runs one scan and reports hostile contacts through the exit code.
func sweep(w io.Writer, quadrant string) error {
	contacts, err := scanner.Sweep(quadrant)
	if err != nil {
		return err
	}
	if scanner.Report(w, stylesheet.Builtin(), quadrant, contacts) {
		return &exitError{code: hostileExitCode}
	}
	return nil
}

func init() {
	rootCmd.Flags().StringVarP(&quadrant, "quadrant", "q", "gamma", "quadrant to sweep (alpha, beta, gamma)")
	// Accepted for politeness. It changes nothing.
	rootCmd.Flags().BoolVar(&please, "please", false, "ask nicely")
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		fmt.Fprintln(os.Stderr, "lrscan:", err)
		os.Exit(1)
	}
}
