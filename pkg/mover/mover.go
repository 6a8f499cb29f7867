package mover

import (
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/sortie/pkg/errors"
	"github.com/arthur-debert/sortie/pkg/logging"
	"github.com/arthur-debert/sortie/pkg/paths"
	"github.com/arthur-debert/sortie/pkg/types"
	"github.com/rs/zerolog"
)

// TimestampFormat is the layout of the collision suffix
const TimestampFormat = "20060102150405"

// Mover moves files into destination directories. A Mover is not safe
// for concurrent use.
type Mover struct {
	fs     types.FS
	copier Copier
	now    func() time.Time
	dryRun bool
	logger zerolog.Logger

	// targets handed out by a dry run, which never reach the disk
	planned map[string]struct{}
}

// Option configures a Mover
type Option func(*Mover)

// WithClock sets the clock used for collision names
func WithClock(now func() time.Time) Option {
	return func(m *Mover) {
		if now != nil {
			m.now = now
		}
	}
}

// WithDryRun makes Move compute targets without touching the filesystem
func WithDryRun(dryRun bool) Option {
	return func(m *Mover) {
		m.dryRun = dryRun
	}
}

// WithCopier replaces the copier used for cross-device moves
func WithCopier(c Copier) Option {
	return func(m *Mover) {
		if c != nil {
			m.copier = c
		}
	}
}

// New creates a mover over fs
func New(fs types.FS, opts ...Option) *Mover {
	m := &Mover{
		fs:      fs,
		copier:  NewSynthfsCopier(),
		now:     time.Now,
		logger:  logging.GetLogger("mover"),
		planned: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// DryRun reports whether the mover leaves the filesystem untouched
func (m *Mover) DryRun() bool {
	return m.dryRun
}

// Move relocates filePath into destDir and reports what happened
func (m *Mover) Move(filePath, destDir string) types.Outcome {
	logger := m.logger.With().Str("file", filePath).Str("destDir", destDir).Logger()

	destDir = absPath(destDir)
	if absPath(filepath.Dir(filePath)) == destDir {
		return types.Skipped(filePath, types.ReasonInPlace)
	}

	if !m.dryRun {
		if err := m.fs.MkdirAll(destDir, 0755); err != nil {
			logger.Debug().Err(err).Msg("Cannot create destination directory")
			return types.Failed(filePath, errors.Wrap(err, errors.ErrDirCreate, "failed to create destination directory").
				WithDetail("dir", destDir))
		}
	}

	target, err := m.resolveTarget(filePath, destDir)
	if err != nil {
		return types.Failed(filePath, err)
	}

	if m.dryRun {
		m.planned[target] = struct{}{}
		logger.Debug().Str("target", target).Msg("Dry run, not moving")
		outcome := types.Moved(filePath, target)
		outcome.DryRun = true
		return outcome
	}

	if err := m.fs.Rename(filePath, target); err != nil {
		if !isCrossDevice(err) {
			return types.Failed(filePath, errors.Wrap(err, errors.ErrMoveFailed, "failed to move file").
				WithDetail("target", target))
		}
		logger.Debug().Msg("Cross-device rename, falling back to copy")
		if err := m.moveAcrossDevices(filePath, target); err != nil {
			return types.Failed(filePath, err)
		}
	}

	logger.Trace().Str("target", target).Msg("File moved")
	return types.Moved(filePath, target)
}

// resolveTarget picks the final path inside destDir, adding a timestamp
// suffix when the plain name is taken
func (m *Mover) resolveTarget(filePath, destDir string) (string, error) {
	name := filepath.Base(filePath)
	target := filepath.Join(destDir, name)
	if !m.taken(target) {
		return target, nil
	}

	stem, ext := paths.SplitName(name)
	renamed := filepath.Join(destDir, stem+"_"+m.now().Format(TimestampFormat)+ext)
	if m.taken(renamed) {
		return "", errors.Newf(errors.ErrAlreadyExists, "destination %s already exists", renamed).
			WithDetail("target", renamed)
	}

	m.logger.Debug().
		Str("file", filePath).
		Str("target", renamed).
		Msg("Name collision, renaming")
	return renamed, nil
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

// taken reports whether path exists on disk or was already promised to
// another file in this dry run
func (m *Mover) taken(path string) bool {
	if _, ok := m.planned[path]; ok {
		return true
	}
	return m.exists(path)
}

func (m *Mover) exists(path string) bool {
	_, err := m.fs.Lstat(path)
	return err == nil || !os.IsNotExist(err)
}
