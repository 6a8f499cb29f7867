package types

import (
	"io/fs"
)

// FS is the filesystem interface required for sortie operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Rename(oldpath, newpath string) error
	Remove(name string) error

	// For testing, Lstat can fall back to Stat
	Lstat(name string) (fs.FileInfo, error)
}

// Reporter receives every outcome of an organize run as it is produced.
// Implementations must not block for long: the run is synchronous.
type Reporter interface {
	Report(outcome Outcome)
}

// ReporterFunc adapts a plain function to the Reporter interface
type ReporterFunc func(outcome Outcome)

// Report calls f(outcome)
func (f ReporterFunc) Report(outcome Outcome) {
	f(outcome)
}
