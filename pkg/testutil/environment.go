package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/sortie/pkg/filesystem"
	"github.com/arthur-debert/sortie/pkg/paths"
	"github.com/arthur-debert/sortie/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment holds the directories and filesystem of one test
type TestEnvironment struct {
	Root      string
	ConfigDir string
	StateDir  string

	FS   types.FS
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment. An isolated
// environment also points SORTIE_CONFIG_DIR and SORTIE_STATE_DIR at its
// own directories and disables colors.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		env.Root = "/virtual"
		env.FS = filesystem.NewMemoryFS()
	case EnvIsolated:
		env.Root = t.TempDir()
		env.FS = filesystem.NewOS()
	}

	env.ConfigDir = filepath.Join(env.Root, "config")
	env.StateDir = filepath.Join(env.Root, "state")

	if envType == EnvIsolated {
		t.Setenv(paths.EnvConfigDir, env.ConfigDir)
		t.Setenv(paths.EnvStateDir, env.StateDir)
		t.Setenv("NO_COLOR", "1")
	}

	return env
}

// Path joins elem under the environment root
func (env *TestEnvironment) Path(elem ...string) string {
	return filepath.Join(append([]string{env.Root}, elem...)...)
}

// Dir creates a directory under the environment root and returns its path
func (env *TestEnvironment) Dir(name string) string {
	env.t.Helper()
	path := env.Path(name)
	CreateDir(env.t, env.FS, path)
	return path
}

// File writes content to a path relative to the environment root and
// returns the absolute path
func (env *TestEnvironment) File(name, content string) string {
	env.t.Helper()
	path := env.Path(name)
	WriteFile(env.t, env.FS, path, content)
	return path
}
