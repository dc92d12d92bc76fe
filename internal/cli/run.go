// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cliforge/internal/hook"
	"cliforge/internal/toolchain"
	"cliforge/pkg/forgefile"
)

var runCmd = &cobra.Command{
	Use:   "run <target> [-- args...]",
	Short: "Build one target and execute it",
	Long: `Build the named target and execute the resulting binary from the
project root, forwarding everything after -- as its arguments. The
binary's exit code becomes forge's exit code.`,
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completeTargetNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := loadProject()
		if err != nil {
			return reportError(err)
		}

		// Selection is by declared name only; a target restricted to
		// another platform cannot be run here.
		targets, err := project.Manifest.SelectTargetsFor(args[0:1], forgefile.CurrentPlatform())
		if err != nil {
			return reportError(err)
		}
		target := targets[0]

		binDir := resolveBinDir(project)
		hooks := hook.NewExecutor(project.Root, binDir, os.Stdout, os.Stderr, logger)
		tc := toolchain.New(logger)

		if verbose {
			fmt.Fprintf(os.Stderr, "%s Running '%s'...\n", SuccessStyle.Render("→"), target.Name)
		}

		code, err := tc.Run(cmd.Context(), project, target, toolchain.RunOptions{
			BuildOptions: toolchain.BuildOptions{
				BinDir:   binDir,
				Jobs:     resolveJobs(),
				Prebuild: hooks.Run,
			},
			Args:   args[1:],
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		})
		if err != nil {
			return reportError(err)
		}
		if code != 0 {
			// The binary already printed whatever it had to say.
			return &ExitError{Code: code}
		}
		return nil
	},
}
