package sortie

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/sortie/pkg/errors"
	"github.com/arthur-debert/sortie/pkg/paths"
	"github.com/arthur-debert/sortie/pkg/report"
	"github.com/arthur-debert/sortie/pkg/rules"
	"github.com/arthur-debert/sortie/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// rulesFile returns the --rules-file override or rules.file
func (a *app) rulesFile(override string) string {
	if override != "" {
		if path, err := paths.Normalize(override); err == nil {
			return path
		}
		return override
	}
	return a.cfg.Rules.File
}

func newRulesCmd(a *app) *cobra.Command {
	var rulesFile string

	cmd := &cobra.Command{
		Use:     "rules",
		Short:   MsgRulesShort,
		Long:    MsgRulesLong,
		Example: MsgRulesExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRules(cmd, a, rules.NewStore(a.rulesFile(rulesFile)))
		},
	}
	cmd.PersistentFlags().StringVar(&rulesFile, "rules-file", "", MsgFlagRulesFile)

	cmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgRulesListShort,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRules(cmd, a, rules.NewStore(a.rulesFile(rulesFile)))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <extensions> <destination>",
		Short: MsgRulesAddShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := rules.NewStore(a.rulesFile(rulesFile))
			set, rule, err := store.Add(rules.ParseExtensions(args[0]), args[1])
			if err != nil {
				return err
			}
			log.Info().
				Strs("extensions", rule.Extensions).
				Str("dest", rule.Dest).
				Str("file", store.Path()).
				Msg("Rule added")
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgRuleAdded, len(set), strings.Join(rule.Extensions, ", "), rule.Dest)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "remove <number...>",
		Aliases: []string{"rm"},
		Short:   MsgRulesRemoveShort,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			indexes := make([]int, 0, len(args))
			for _, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil || n < 1 {
					return errors.Newf(errors.ErrInvalidInput, MsgErrRuleIndex, arg)
				}
				indexes = append(indexes, n-1)
			}

			store := rules.NewStore(a.rulesFile(rulesFile))
			_, removed, err := store.Remove(indexes...)
			if err != nil {
				return err
			}
			for _, rule := range removed {
				log.Info().
					Strs("extensions", rule.Extensions).
					Str("dest", rule.Dest).
					Msg("Rule removed")
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgRuleRemoved, strings.Join(rule.Extensions, ", "), rule.Dest)
			}
			return nil
		},
	})

	return cmd
}

func listRules(cmd *cobra.Command, a *app, store *rules.Store) error {
	set, err := store.Load()
	if err != nil {
		return err
	}

	format, err := a.outputFormat()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == report.FormatJSON {
		if set == nil {
			set = types.RuleSet{}
		}
		data, err := json.MarshalIndent(set, "", "  ")
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to encode rules")
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	if len(set) == 0 {
		_, err := fmt.Fprintln(out, MsgNoRules)
		return err
	}

	rows := make([][]string, 0, len(set))
	for i, rule := range set {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strings.Join(rule.Extensions, ", "),
			rule.Dest,
		})
	}
	table := renderTable(
		[]string{"#", "Extensions", "Destination"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft},
		format == report.FormatTerminal,
	)
	_, err = fmt.Fprintln(out, table)
	return err
}
