// Test Type: Unit Test
// Description: Tests for the test environment and file helpers

package testutil_test

import (
	"os"
	"testing"

	"github.com/arthur-debert/sortie/pkg/paths"
	"github.com/arthur-debert/sortie/pkg/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMemoryEnvironment(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	path := env.File("in/a/b.txt", "b")
	assert.Equal(t, "/virtual/in/a/b.txt", path)
	testutil.AssertFileContent(t, env.FS, path, "b")
	testutil.AssertNoFile(t, env.FS, env.Path("in", "c.txt"))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "memory environment must not touch the disk")
}

func TestIsolatedEnvironment(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	assert.Equal(t, env.ConfigDir, os.Getenv(paths.EnvConfigDir))
	assert.Equal(t, env.StateDir, os.Getenv(paths.EnvStateDir))

	dir := env.Dir("src")
	assert.DirExists(t, dir)

	testutil.WriteFiles(t, env.FS, map[string]string{
		env.Path("src", "x.pdf"): "x",
		env.Path("src", "y.png"): "y",
	})
	assert.FileExists(t, env.Path("src", "x.pdf"))
	testutil.AssertFileContent(t, env.FS, env.Path("src", "y.png"), "y")
}
