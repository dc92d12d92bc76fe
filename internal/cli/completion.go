// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = newCompletionCommand()

// newCompletionCommand creates the `forge completion` command.
func newCompletionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for forge.

To enable shell completions, run one of the following commands:

` + SubtitleStyle.Render("Bash:") + `
  # Add to ~/.bashrc:
  eval "$(forge completion bash)"

  # Or install system-wide:
  forge completion bash > /etc/bash_completion.d/forge

` + SubtitleStyle.Render("Zsh:") + `
  # Add to ~/.zshrc:
  eval "$(forge completion zsh)"

  # Or install to fpath:
  forge completion zsh > "${fpath[1]}/_forge"

` + SubtitleStyle.Render("Fish:") + `
  forge completion fish > ~/.config/fish/completions/forge.fish

` + SubtitleStyle.Render("PowerShell:") + `
  forge completion powershell | Out-String | Invoke-Expression

  # Or add to $PROFILE:
  forge completion powershell >> $PROFILE
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}

// completeTargetNames offers the declared target names, sorted, for
// commands that select targets by name.
func completeTargetNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	project, err := loadProject()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return project.Manifest.SortedTargetNames(), cobra.ShellCompDirectiveNoFileComp
}
