// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cliforge/internal/receipt"
	"cliforge/pkg/forgefile"
)

var listReceipts bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the targets declared in the forgefile",
	Long: `List every binary target declared in the project's forgefile,
in declaration order. With --receipts, each target also shows when
it was last built and by which toolchain version.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := loadProject()
		if err != nil {
			return reportError(err)
		}

		m := project.Manifest
		fmt.Fprintf(os.Stdout, "%s %s\n", TitleStyle.Render(m.Project), SubtitleStyle.Render(m.Description))
		if verbose {
			fmt.Fprintf(os.Stdout, "%s\n", VerboseStyle.Render("forgefile: "+project.ManifestPath))
		}
		fmt.Fprintln(os.Stdout)

		var receipts *receipt.Receipt
		if listReceipts {
			receipts = receipt.Load(project.Root, m.ResolvedBinDir())
		}

		host := forgefile.CurrentPlatform()
		for i := range m.Targets {
			t := &m.Targets[i]
			printTarget(t, host, receipts)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listReceipts, "receipts", false, "show build receipts for each target")
}

func printTarget(t *forgefile.Target, host forgefile.PlatformType, receipts *receipt.Receipt) {
	marker := SuccessStyle.Render("•")
	if !t.SupportsPlatform(host) {
		marker = WarningStyle.Render("○")
	}

	line := fmt.Sprintf("%s %s  %s", marker, TargetStyle.Render(t.Name), VerboseStyle.Render(t.Path))
	if t.Description != "" {
		line += "  " + SubtitleStyle.Render(t.Description)
	}
	fmt.Fprintln(os.Stdout, line)

	if receipts == nil {
		return
	}
	if entry, ok := receipts.Lookup(t.Name); ok {
		fmt.Fprintf(os.Stdout, "    %s\n", VerboseStyle.Render(fmt.Sprintf(
			"built %s with %s", entry.BuiltAt.Local().Format("2006-01-02 15:04"), entry.GoVersion)))
	} else {
		fmt.Fprintf(os.Stdout, "    %s\n", VerboseStyle.Render("not built"))
	}
}
