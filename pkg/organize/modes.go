package organize

import (
	"context"
	"time"

	"github.com/arthur-debert/sortie/pkg/filesystem"
	"github.com/arthur-debert/sortie/pkg/keywords"
	"github.com/arthur-debert/sortie/pkg/logging"
	"github.com/arthur-debert/sortie/pkg/mover"
	"github.com/arthur-debert/sortie/pkg/paths"
	"github.com/arthur-debert/sortie/pkg/rules"
	"github.com/arthur-debert/sortie/pkg/types"
)

// ExtensionOptions holds options for an extension mode run. DefaultDest
// receives unmatched files; when empty they stay in place.
type ExtensionOptions struct {
	Sources     []string
	Rules       types.RuleSet
	DefaultDest string
	DryRun      bool
	FileSystem  types.FS
	Reporter    types.Reporter
	Clock       func() time.Time
}

// ByExtension organizes files by extension rules
func ByExtension(ctx context.Context, opts ExtensionOptions) (*types.Summary, error) {
	classifier, err := rules.NewExtensionClassifier(opts.Rules)
	if err != nil {
		return nil, err
	}

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	sources, err := paths.NormalizeAll(opts.Sources)
	if err != nil {
		return nil, err
	}

	defaultDest, err := paths.Normalize(opts.DefaultDest)
	if err != nil {
		return nil, err
	}
	fallback := RecordUnmatched
	if defaultDest != "" {
		fallback = MoveToDefault(defaultDest)
	}

	logger := logging.GetLogger("organize")
	logger.Debug().
		Int("ruleCount", classifier.Len()).
		Str("defaultDest", defaultDest).
		Msg("Extension mode")

	return Run(ctx, Options{
		Sources:  sources,
		Classify: classifier.Classify,
		Fallback: fallback,
		Mover:    newMover(fs, opts.DryRun, opts.Clock),
		FS:       fs,
		Reporter: opts.Reporter,
		Mode:     types.ModeExtension,
		DryRun:   opts.DryRun,
	})
}

// KeywordOptions holds options for a keyword mode run
type KeywordOptions struct {
	Sources    []string
	Keywords   types.KeywordMap
	DryRun     bool
	FileSystem types.FS
	Reporter   types.Reporter
	Clock      func() time.Time
}

// ByKeyword organizes files by keyword. Every keyword destination is
// created before the walk starts; unmatched files stay in place.
func ByKeyword(ctx context.Context, opts KeywordOptions) (*types.Summary, error) {
	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	sources, err := paths.NormalizeAll(opts.Sources)
	if err != nil {
		return nil, err
	}

	if !opts.DryRun {
		if err := keywords.EnsureDestinations(fs, opts.Keywords); err != nil {
			return nil, err
		}
	}

	classifier := keywords.NewClassifier(opts.Keywords)

	return Run(ctx, Options{
		Sources:  sources,
		Classify: classifier.Classify,
		Fallback: RecordUnmatched,
		Mover:    newMover(fs, opts.DryRun, opts.Clock),
		FS:       fs,
		Reporter: opts.Reporter,
		Mode:     types.ModeKeyword,
		DryRun:   opts.DryRun,
	})
}

func newMover(fs types.FS, dryRun bool, clock func() time.Time) *mover.Mover {
	return mover.New(fs, mover.WithDryRun(dryRun), mover.WithClock(clock))
}
