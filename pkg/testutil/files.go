package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/sortie/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// WriteFile creates path with content, creating parent directories
func WriteFile(t *testing.T, fsys types.FS, path, content string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755), "create parent of %s", path)
	require.NoError(t, fsys.WriteFile(path, []byte(content), 0644), "write %s", path)
}

// WriteFiles creates every path -> content pair
func WriteFiles(t *testing.T, fsys types.FS, files map[string]string) {
	t.Helper()
	for path, content := range files {
		WriteFile(t, fsys, path, content)
	}
}

// CreateDir creates a directory and its parents
func CreateDir(t *testing.T, fsys types.FS, path string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(path, 0755), "create directory %s", path)
}

// CreateSymlink creates a symbolic link on the real filesystem
func CreateSymlink(t *testing.T, target, link string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(link), 0755))
	require.NoError(t, os.Symlink(target, link), "symlink %s -> %s", link, target)
}

// ReadFile returns the content of path, failing the test if it is missing
func ReadFile(t *testing.T, fsys types.FS, path string) string {
	t.Helper()
	data, err := fsys.ReadFile(path)
	require.NoError(t, err, "expected %s to exist", path)
	return string(data)
}

// AssertFileContent checks that a file exists and has the expected content
func AssertFileContent(t *testing.T, fsys types.FS, path, expected string) {
	t.Helper()
	assert.Equal(t, expected, ReadFile(t, fsys, path), "content of %s", path)
}

// AssertNoFile checks that nothing exists at path
func AssertNoFile(t *testing.T, fsys types.FS, path string) {
	t.Helper()
	_, err := fsys.Lstat(path)
	assert.True(t, os.IsNotExist(err), "expected %s to be gone, got %v", path, err)
}
