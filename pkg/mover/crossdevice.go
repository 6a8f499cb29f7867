package mover

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/arthur-debert/sortie/pkg/errors"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
)

// Copier copies a regular file, keeping its content and permissions
type Copier interface {
	Copy(ctx context.Context, src, dst string) error
}

// SynthfsCopier copies files through a synthfs pipeline on the OS filesystem
type SynthfsCopier struct {
	fs filesystem.FullFileSystem
}

// NewSynthfsCopier returns a copier working with absolute OS paths
func NewSynthfsCopier() *SynthfsCopier {
	osfs := filesystem.NewOSFileSystem("/")
	return &SynthfsCopier{
		fs: synthfs.NewPathAwareFileSystem(osfs, "/").WithAbsolutePaths(),
	}
}

// Copy copies src to dst and applies the source mode to the copy
func (c *SynthfsCopier) Copy(ctx context.Context, src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	sfs := synthfs.New()
	id := fmt.Sprintf("copy_%s_%d", filepath.Base(dst), time.Now().UnixNano())

	options := synthfs.DefaultPipelineOptions()
	options.RollbackOnError = true

	if _, err := synthfs.RunWithOptions(ctx, c.fs, options, sfs.CopyWithID(id, src, dst)); err != nil {
		return err
	}
	return os.Chmod(dst, info.Mode().Perm())
}

func isCrossDevice(err error) bool {
	var linkErr *os.LinkError
	if stderrors.As(err, &linkErr) {
		return stderrors.Is(linkErr.Err, syscall.EXDEV)
	}
	return stderrors.Is(err, syscall.EXDEV)
}

// moveAcrossDevices copies filePath to target and removes the original.
// When the original cannot be removed both copies are left in place.
func (m *Mover) moveAcrossDevices(filePath, target string) error {
	if err := m.copier.Copy(context.Background(), filePath, target); err != nil {
		_ = m.fs.Remove(target)
		return errors.Wrap(err, errors.ErrMoveFailed, "failed to copy file across devices").
			WithDetail("target", target)
	}
	if err := m.fs.Remove(filePath); err != nil {
		return errors.Wrap(err, errors.ErrMoveFailed, "copied file but failed to remove source").
			WithDetail("target", target)
	}
	return nil
}
