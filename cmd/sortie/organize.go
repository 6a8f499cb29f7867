package sortie

import (
	"fmt"

	"github.com/arthur-debert/sortie/pkg/errors"
	"github.com/arthur-debert/sortie/pkg/keywords"
	"github.com/arthur-debert/sortie/pkg/organize"
	"github.com/arthur-debert/sortie/pkg/paths"
	"github.com/arthur-debert/sortie/pkg/report"
	"github.com/arthur-debert/sortie/pkg/rules"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newExtensionCmd(a *app) *cobra.Command {
	var (
		defaultDest string
		rulesFile   string
	)

	cmd := &cobra.Command{
		Use:     "extension [sources...]",
		Aliases: []string{"ext"},
		Short:   MsgExtensionShort,
		Long:    MsgExtensionLong,
		Example: MsgExtensionExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := a.sources(args)
			if err != nil {
				return err
			}

			store := rules.NewStore(a.rulesFile(rulesFile))
			set, err := store.Load()
			if err != nil {
				return err
			}
			if len(set) == 0 {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), MsgNoRules)
			}

			dest := a.cfg.Organize.DefaultDestination
			if cmd.Flags().Changed("default-dest") {
				dest = defaultDest
			}

			log.Info().
				Strs("sources", sources).
				Int("rules", len(set)).
				Str("rules_file", store.Path()).
				Str("default_dest", dest).
				Msg("Organizing by extension")

			summary, err := organize.ByExtension(cmd.Context(), organize.ExtensionOptions{
				Sources:     sources,
				Rules:       set,
				DefaultDest: dest,
				DryRun:      a.opts.dryRun,
				Reporter:    report.NewLogReporter(),
			})
			if err != nil {
				return err
			}
			return a.finish(cmd, summary)
		},
	}

	cmd.Flags().StringVar(&defaultDest, "default-dest", "", MsgFlagDefaultDest)
	cmd.Flags().StringVar(&rulesFile, "rules-file", "", MsgFlagRulesFile)
	_ = cmd.MarkFlagDirname("default-dest")
	_ = cmd.MarkFlagFilename("rules-file", "json")

	return cmd
}

func newKeywordCmd(a *app) *cobra.Command {
	var keywordFile string

	cmd := &cobra.Command{
		Use:     "keyword [sources...]",
		Aliases: []string{"kw"},
		Short:   MsgKeywordShort,
		Long:    MsgKeywordLong,
		Example: MsgKeywordExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := a.sources(args)
			if err != nil {
				return err
			}

			file := keywordFile
			if file == "" {
				file = a.cfg.Keywords.File
			}
			if file == "" {
				return errors.New(errors.ErrConfigValid, MsgErrNoKeywords)
			}
			file, err = paths.Normalize(file)
			if err != nil {
				return err
			}

			km, err := keywords.Load(file)
			if err != nil {
				return err
			}

			log.Info().
				Strs("sources", sources).
				Int("keywords", len(km)).
				Str("keyword_file", file).
				Msg("Organizing by keyword")

			summary, err := organize.ByKeyword(cmd.Context(), organize.KeywordOptions{
				Sources:  sources,
				Keywords: km,
				DryRun:   a.opts.dryRun,
				Reporter: report.NewLogReporter(),
			})
			if err != nil {
				return err
			}
			return a.finish(cmd, summary)
		},
	}

	cmd.Flags().StringVar(&keywordFile, "keywords", "", MsgFlagKeywords)
	_ = cmd.MarkFlagFilename("keywords", "json", "yaml", "yml")

	return cmd
}
