package sortie

import (
	"fmt"

	"github.com/arthur-debert/sortie/internal/version"
	"github.com/spf13/cobra"
)

func newTopicsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "topics [topic]",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topic := "topics"
			if len(args) == 1 {
				topic = args[0]
			}
			helpCmd, _, err := cmd.Root().Find([]string{"help"})
			if err != nil || helpCmd == cmd.Root() {
				return fmt.Errorf("help command not found")
			}
			helpCmd.SetOut(cmd.OutOrStdout())
			if helpCmd.RunE != nil {
				return helpCmd.RunE(helpCmd, []string{topic})
			}
			if helpCmd.Run != nil {
				helpCmd.Run(helpCmd, []string{topic})
				return nil
			}
			return fmt.Errorf("help command not found")
		},
	}
	skipConfig(cmd)
	return cmd
}

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	skipConfig(cmd)
	return cmd
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
	skipConfig(cmd)
	return cmd
}
