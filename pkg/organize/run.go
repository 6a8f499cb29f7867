package organize

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/sortie/pkg/errors"
	"github.com/arthur-debert/sortie/pkg/filesystem"
	"github.com/arthur-debert/sortie/pkg/logging"
	"github.com/arthur-debert/sortie/pkg/mover"
	"github.com/arthur-debert/sortie/pkg/types"
	"github.com/google/uuid"
)

// ClassifyFunc maps a file path to its destination directory
type ClassifyFunc func(filePath string) (dest string, ok bool)

// Mover relocates one file into a destination directory
type Mover interface {
	Move(filePath, destDir string) types.Outcome
}

// FallbackFunc decides what happens to a file no rule matched
type FallbackFunc func(filePath string, mv Mover) types.Outcome

// RecordUnmatched leaves the file in place
func RecordUnmatched(filePath string, _ Mover) types.Outcome {
	return types.Skipped(filePath, types.ReasonUnmatched)
}

// MoveToDefault sends unmatched files to dest
func MoveToDefault(dest string) FallbackFunc {
	return func(filePath string, mv Mover) types.Outcome {
		return mv.Move(filePath, dest)
	}
}

// Options holds the inputs of a run
type Options struct {
	Sources  []string
	Classify ClassifyFunc
	Fallback FallbackFunc
	Mover    Mover
	FS       types.FS // Allow injecting a filesystem for testing
	Reporter types.Reporter
	Mode     types.OrganizeMode
	DryRun   bool
}

type run struct {
	opts    Options
	summary *types.Summary
	seen    map[string]struct{}
}

// Run organizes every file under opts.Sources. Per-file problems become
// outcomes; the returned error is only set for invalid options.
func Run(ctx context.Context, opts Options) (*types.Summary, error) {
	logger := logging.GetLogger("organize")

	if opts.Classify == nil {
		return nil, errors.New(errors.ErrConfigValid, "no classifier configured")
	}
	if len(opts.Sources) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no source directories given")
	}
	if opts.FS == nil {
		opts.FS = filesystem.NewOS()
	}
	if opts.Mover == nil {
		opts.Mover = mover.New(opts.FS, mover.WithDryRun(opts.DryRun))
	}
	if opts.Fallback == nil {
		opts.Fallback = RecordUnmatched
	}
	if opts.Reporter == nil {
		opts.Reporter = types.ReporterFunc(func(types.Outcome) {})
	}

	r := &run{
		opts: opts,
		summary: &types.Summary{
			RunID:     uuid.NewString(),
			Mode:      opts.Mode,
			DryRun:    opts.DryRun,
			Sources:   opts.Sources,
			StartedAt: time.Now(),
		},
		seen: make(map[string]struct{}),
	}

	logger.Info().
		Str("runId", r.summary.RunID).
		Str("mode", string(opts.Mode)).
		Strs("sources", opts.Sources).
		Bool("dryRun", opts.DryRun).
		Msg("Organize run started")

	for _, source := range opts.Sources {
		if ctx.Err() != nil {
			r.summary.Interrupted = true
			break
		}
		if !r.organizeSource(ctx, source) {
			r.summary.Interrupted = true
			break
		}
	}

	r.summary.FinishedAt = time.Now()
	tally := r.summary.Tally()
	logger.Info().
		Str("runId", r.summary.RunID).
		Int("moved", tally.Moved).
		Int("skipped", tally.Skipped).
		Int("failed", tally.Failed).
		Bool("interrupted", r.summary.Interrupted).
		Dur("duration", r.summary.Duration()).
		Msg("Organize run finished")

	return r.summary, nil
}

func (r *run) emit(o types.Outcome) {
	r.opts.Reporter.Report(o)
	r.summary.Add(o)
}

// organizeSource processes one source root. It returns false when the
// context was cancelled before the root was finished.
func (r *run) organizeSource(ctx context.Context, source string) bool {
	root := filepath.Clean(source)

	info, err := r.opts.FS.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			r.emit(types.Failed(root, errors.Wrap(err, errors.ErrSourceNotFound, "source directory not found")))
		} else {
			r.emit(types.Failed(root, errors.Wrap(err, errors.ErrWalk, "cannot access source directory")))
		}
		return true
	}
	if !info.IsDir() {
		r.emit(types.Failed(root, errors.Newf(errors.ErrInvalidInput, "source %s is not a directory", root)))
		return true
	}

	for _, e := range collect(r.opts.FS, root) {
		if ctx.Err() != nil {
			return false
		}
		if _, done := r.seen[e.path]; done {
			continue
		}
		r.seen[e.path] = struct{}{}

		if e.outcome != nil {
			r.emit(*e.outcome)
			continue
		}
		r.emit(r.organizeFile(e.path))
	}
	return true
}

func (r *run) organizeFile(path string) types.Outcome {
	var outcome types.Outcome
	if dest, ok := r.opts.Classify(path); ok {
		outcome = r.opts.Mover.Move(path, dest)
	} else {
		outcome = r.opts.Fallback(path, r.opts.Mover)
	}

	if outcome.Status == types.StatusMoved && outcome.Destination != "" {
		r.seen[filepath.Clean(outcome.Destination)] = struct{}{}
	}
	return outcome
}
