package cli

import (
	"fmt"

	"github.com/arthur-debert/gcroots/internal/version"
	"github.com/spf13/cobra"
)

// skipSetup replaces the root's config and logging setup for commands that
// need neither
func skipSetup(cmd *cobra.Command, args []string) error { return nil }

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "version",
		Short:             MsgVersionShort,
		GroupID:           "misc",
		Args:              cobra.NoArgs,
		PersistentPreRunE: skipSetup,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return renderer.RenderMessage(fmt.Sprintf(MsgVersionFormat, version.Version, version.Commit, version.Date))
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: `To load completions:

Bash:
  $ source <(gcroots completion bash)

Zsh:
  $ gcroots completion zsh > "${fpath[1]}/_gcroots"

Fish:
  $ gcroots completion fish | source

PowerShell:
  PS> gcroots completion powershell | Out-String | Invoke-Expression
`,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		PersistentPreRunE:     skipSetup,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(w, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			default:
				return fmt.Errorf(MsgErrUnknownShell, args[0])
			}
		},
	}
}
