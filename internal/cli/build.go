// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"cliforge/internal/config"
	"cliforge/internal/discovery"
	"cliforge/internal/hook"
	"cliforge/internal/receipt"
	"cliforge/internal/toolchain"
	"cliforge/pkg/forgefile"
)

var buildJobs int

// timePrecision rounds build durations for display.
const timePrecision = 10 * time.Millisecond

var buildCmd = &cobra.Command{
	Use:   "build [target...]",
	Short: "Build targets into the project's bin dir",
	Long: `Compile the named targets, or every declared target when none are
named. Builds run in parallel up to --jobs, each target's prebuild
hook runs first, and a build receipt is written next to the
artifacts.`,
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

		results, err := buildTargets(cmd.Context(), project, targets)
		if err != nil {
			return reportError(err)
		}

		for _, res := range results {
			fmt.Fprintf(os.Stdout, "%s %s %s\n",
				SuccessStyle.Render("✓"),
				TargetStyle.Render(res.Target),
				VerboseStyle.Render(fmt.Sprintf("→ %s (%s)", res.Binary, res.Duration.Round(timePrecision))))
		}
		return nil
	},
}

func init() {
	buildCmd.Flags().IntVarP(&buildJobs, "jobs", "j", 0, "max concurrent target builds (default: from config)")
}

// buildTargets runs the prebuild hooks and compiles the targets,
// recording a receipt for whatever was produced. Shared by build and run.
func buildTargets(ctx context.Context, project *discovery.Project, targets []*forgefile.Target) ([]toolchain.BuildResult, error) {
	binDir := resolveBinDir(project)
	hooks := hook.NewExecutor(project.Root, binDir, os.Stdout, os.Stderr, logger)
	tc := toolchain.New(logger)

	results, err := tc.Build(ctx, project, targets, toolchain.BuildOptions{
		BinDir:   binDir,
		Jobs:     resolveJobs(),
		Prebuild: hooks.Run,
	})
	if err != nil {
		return nil, err
	}

	goVersion, err := tc.GoVersion(ctx)
	if err != nil {
		logger.Debug("could not determine toolchain version", "err", err)
		goVersion = "unknown"
	}
	if err := receipt.Record(project.Root, binDir, project.Manifest.Project, goVersion, results); err != nil {
		// The artifacts exist; a receipt problem only degrades listings.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
	}
	return results, nil
}

// resolveBinDir picks the artifact directory: the manifest wins, then
// the user config, then the built-in default.
func resolveBinDir(project *discovery.Project) string {
	if project.Manifest.BinDir != "" {
		return project.Manifest.BinDir
	}
	if cfg := config.Get(); cfg != nil && cfg.BinDir != "" {
		return cfg.BinDir
	}
	return forgefile.DefaultBinDir
}

// resolveJobs picks the build parallelism: the --jobs flag wins, then
// the user config. Zero lets the toolchain decide.
func resolveJobs() int {
	if buildJobs > 0 {
		return buildJobs
	}
	if cfg := config.Get(); cfg != nil {
		return cfg.Jobs
	}
	return 0
}
