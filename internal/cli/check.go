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

var checkCmd = &cobra.Command{
	Use:   "check [target...]",
	Short: "Vet targets without producing binaries",
	Long: `Run the toolchain's static checks over the named targets, or over
every declared target when none are named. Targets are selected by
their declared name; no binaries are produced. Each target's prebuild
hook runs first so generated sources are vetted too.`,
	ValidArgsFunction: completeTargetNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := loadProject()
		if err != nil {
			return reportError(err)
		}

		targets, err := project.Manifest.SelectTargetsFor(args, forgefile.CurrentPlatform())
		if err != nil {
			return reportError(err)
		}

		// Surface syntax errors in every hook before running any of them.
		for _, t := range targets {
			if err := hook.Validate(t); err != nil {
				return reportError(err)
			}
		}

		hooks := hook.NewExecutor(project.Root, resolveBinDir(project), os.Stdout, os.Stderr, logger)
		tc := toolchain.New(logger)
		if err := tc.Check(cmd.Context(), project, targets, toolchain.CheckOptions{
			Prebuild: hooks.Run,
		}); err != nil {
			return reportError(err)
		}

		fmt.Fprintf(os.Stdout, "%s %d target(s) checked\n", SuccessStyle.Render("✓"), len(targets))
		return nil
	},
}
