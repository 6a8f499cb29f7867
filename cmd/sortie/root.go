package sortie

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/arthur-debert/sortie/internal/version"
	"github.com/arthur-debert/sortie/pkg/cobrax/topics"
	"github.com/arthur-debert/sortie/pkg/config"
	"github.com/arthur-debert/sortie/pkg/errors"
	"github.com/arthur-debert/sortie/pkg/logging"
	"github.com/arthur-debert/sortie/pkg/paths"
	"github.com/arthur-debert/sortie/pkg/report"
	"github.com/arthur-debert/sortie/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicFiles embed.FS

// annotationNoConfig marks commands that must work without a readable
// configuration
const annotationNoConfig = "sortie/no-config"

type globalOptions struct {
	verbosity  int
	dryRun     bool
	configFile string
	format     string
	strict     bool
}

func skipConfig(cmd *cobra.Command) {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[annotationNoConfig] = "true"
}

// app is the state shared by every command of one invocation
type app struct {
	opts globalOptions
	cfg  *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "sortie",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&a.opts.dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&a.opts.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.opts.format, "format", "", MsgFlagFormat)
	rootCmd.PersistentFlags().BoolVar(&a.opts.strict, "strict", false, MsgFlagStrict)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newExtensionCmd(a))
	rootCmd.AddCommand(newKeywordCmd(a))
	rootCmd.AddCommand(newRulesCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	// Topic-based help replaces cobra's help command
	if topicFS, err := fs.Sub(topicFiles, "topics"); err == nil {
		opts := topics.Options{
			Extensions: []string{".md", ".txt"},
			Renderer:   topics.NewGlamourRenderer(),
		}
		if _, err := topics.InitializeWithOptions(rootCmd, topicFS, opts); err != nil {
			log.Debug().Err(err).Msg("Help topics unavailable")
		}
	}
	if helpCmd, _, err := rootCmd.Find([]string{"help"}); err == nil && helpCmd != rootCmd {
		skipConfig(helpCmd)
	}

	return rootCmd
}

// setup configures logging and loads the configuration for cmd
func (a *app) setup(cmd *cobra.Command) error {
	if cmd.Annotations[annotationNoConfig] == "true" {
		logging.SetupLoggerWithOptions(logging.Options{
			Verbosity: a.opts.verbosity,
			Console:   cmd.ErrOrStderr(),
		})
		return nil
	}

	p, err := paths.New()
	if err != nil {
		logging.SetupLogger(a.opts.verbosity)
		return fmt.Errorf(MsgErrInitPaths, err)
	}

	cfg, err := config.Load(config.LoadOptions{ConfigFile: a.opts.configFile, Paths: p})
	if err != nil {
		// Log to the default location so the failure is recorded
		logging.SetupLoggerWithOptions(logging.Options{
			Verbosity: a.opts.verbosity,
			Console:   cmd.ErrOrStderr(),
		})
		return err
	}

	logging.SetupLoggerWithOptions(logging.Options{
		Verbosity: a.opts.verbosity,
		LogDir:    cfg.Logging.Dir,
		Console:   cmd.ErrOrStderr(),
	})
	log.Debug().
		Str("command", cmd.CommandPath()).
		Str("config", cfg.Source()).
		Msg("Command started")

	a.cfg = cfg
	return nil
}

// outputFormat resolves --format, falling back to output.format
func (a *app) outputFormat() (report.Format, error) {
	name := a.cfg.Output.Format
	if a.opts.format != "" {
		name = a.opts.format
	}
	format, err := report.ParseFormat(name)
	if err != nil {
		return report.FormatAuto, err
	}
	return format.Resolve(os.Stdout), nil
}

// sources returns the source directories from args or organize.sources
func (a *app) sources(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if len(a.cfg.Organize.Sources) > 0 {
		return a.cfg.Organize.Sources, nil
	}
	return nil, errors.New(errors.ErrInvalidInput, MsgErrNoSources)
}

// finish renders the summary and turns interruption and, with --strict,
// failures into exit codes
func (a *app) finish(cmd *cobra.Command, summary *types.Summary) error {
	format, err := a.outputFormat()
	if err != nil {
		return err
	}

	opts := report.RenderOptions{
		Format:      format,
		ShowSkipped: a.cfg.Organize.ShowSkipped,
	}
	if err := report.Render(cmd.OutOrStdout(), summary, opts); err != nil {
		return err
	}

	if summary.Interrupted {
		return &ExitError{Code: ExitInterrupted, Err: fmt.Errorf(MsgInterruptedError)}
	}
	if failed := summary.Tally().Failed; a.opts.strict && failed > 0 {
		return &ExitError{Code: 1, Err: fmt.Errorf(MsgStrictFailures, failed)}
	}
	return nil
}
