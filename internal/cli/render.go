// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"errors"
	"fmt"
	"os"

	"cliforge/internal/config"
	"cliforge/internal/discovery"
	"cliforge/internal/issue"
	"cliforge/internal/toolchain"
	"cliforge/pkg/forgefile"
)

// classifyError maps operation failures to issue catalog IDs so a
// rendered card with remediation steps can accompany the terse message.
// Errors with no matching card map to issue.Id zero.
func classifyError(err error) issue.Id {
	var notFound *discovery.NotFoundError
	if errors.As(err, &notFound) {
		return issue.ForgefileNotFoundId
	}

	var target *forgefile.TargetNotFoundError
	if errors.As(err, &target) {
		return issue.TargetNotFoundId
	}

	if errors.Is(err, toolchain.ErrToolchainMissing) {
		return issue.ToolchainNotFoundId
	}

	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		switch ae.Operation {
		case "load forgefile":
			return issue.ForgefileParseErrorId
		case "run prebuild hook", "parse prebuild script":
			return issue.HookFailedId
		case "check target", "build target":
			return issue.BuildFailedId
		case "load configuration", "validate configuration":
			return issue.ConfigLoadFailedId
		}
	}
	return 0
}

// reportError prints the styled error message, then the issue card for
// classified failures. It returns err unchanged so RunE handlers can
// hand it back to cobra.
func reportError(err error) error {
	fmt.Fprintf(os.Stderr, "\n%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, verbose))

	if id := classifyError(err); id != 0 {
		if card := issue.Get(id); card != nil {
			rendered, renderErr := card.Render(colorScheme())
			if renderErr == nil {
				fmt.Fprintln(os.Stderr, rendered)
			}
		}
	}
	return &ExitError{Code: 1, Err: err}
}

// colorScheme returns the glamour style from the loaded config.
func colorScheme() string {
	if cfg := config.Get(); cfg != nil {
		return string(cfg.UI.ColorScheme)
	}
	return string(config.ColorSchemeAuto)
}
