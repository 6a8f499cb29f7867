package sortie

import (
	"fmt"

	"github.com/arthur-debert/sortie/pkg/config"
	"github.com/arthur-debert/sortie/pkg/paths"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.cfg.TOML()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if src := a.cfg.Source(); src != "" {
				_, _ = fmt.Fprintf(out, MsgConfigSource, src)
			} else {
				_, _ = fmt.Fprint(out, MsgConfigNoSource)
			}
			_, err = out.Write(data)
			return err
		},
	})

	initCmd := &cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.New()
			if err != nil {
				return fmt.Errorf(MsgErrInitPaths, err)
			}
			target := p.ConfigFile()
			if a.opts.configFile != "" {
				if target, err = paths.Normalize(a.opts.configFile); err != nil {
					return err
				}
			}
			if err := config.WriteDefault(target); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, target)
			return nil
		},
	}
	// init must work when the file named by --config does not exist yet
	skipConfig(initCmd)
	cmd.AddCommand(initCmd)

	return cmd
}
