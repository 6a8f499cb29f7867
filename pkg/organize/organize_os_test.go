// Test Type: Integration Test
// Description: Tests for organize runs on the real filesystem - symlinks, special files and relative paths

package organize_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/sortie/pkg/organize"
	"github.com/arthur-debert/sortie/pkg/testutil"
	"github.com/arthur-debert/sortie/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_SymlinksAreSkipped(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src")
	outside := filepath.Join(tmp, "outside")
	dest := filepath.Join(tmp, "dest")
	require.NoError(t, os.MkdirAll(src, 0755))
	require.NoError(t, os.MkdirAll(outside, 0755))

	target := filepath.Join(outside, "real.txt")
	require.NoError(t, os.WriteFile(target, []byte("real"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(outside, "deep.txt"), []byte("deep"), 0644))
	testutil.CreateSymlink(t, target, filepath.Join(src, "link.txt"))
	testutil.CreateSymlink(t, outside, filepath.Join(src, "linkdir"))
	require.NoError(t, os.WriteFile(filepath.Join(src, "plain.txt"), []byte("plain"), 0644))

	summary, err := organize.ByExtension(context.Background(), organize.ExtensionOptions{
		Sources: []string{src},
		Rules:   types.RuleSet{{Extensions: []string{".txt"}, Dest: dest}},
	})
	require.NoError(t, err)

	assert.Equal(t, types.Tally{Moved: 1, Skipped: 2}, summary.Tally())
	for _, o := range summary.Outcomes {
		if o.Status == types.StatusSkipped {
			assert.Equal(t, types.ReasonNotRegular, o.Reason)
		}
	}

	assert.FileExists(t, filepath.Join(dest, "plain.txt"))
	assert.FileExists(t, target, "symlink target must not move")
	assert.FileExists(t, filepath.Join(outside, "deep.txt"), "symlinked directory must not be followed")

	info, err := os.Lstat(filepath.Join(src, "link.txt"))
	require.NoError(t, err)
	assert.Equal(t, os.ModeSymlink, info.Mode()&os.ModeSymlink)
}

func TestRun_RelativeDestinationAlreadyInPlace(t *testing.T) {
	root := t.TempDir()
	t.Chdir(root)
	require.NoError(t, os.MkdirAll("docs", 0755))
	require.NoError(t, os.WriteFile(filepath.Join("docs", "a.pdf"), []byte("pdf"), 0644))
	require.NoError(t, os.WriteFile("b.pdf", []byte("b"), 0644))

	summary, err := organize.ByExtension(context.Background(), organize.ExtensionOptions{
		Sources: []string{"."},
		Rules:   types.RuleSet{{Extensions: []string{".pdf"}, Dest: "docs"}},
	})
	require.NoError(t, err)

	assert.Equal(t, types.Tally{Moved: 1, Skipped: 1}, summary.Tally())
	for _, o := range summary.Outcomes {
		if o.Status == types.StatusSkipped {
			assert.Equal(t, types.ReasonInPlace, o.Reason)
		}
	}

	entries, err := os.ReadDir("docs")
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"a.pdf", "b.pdf"}, names)
}
