// Test Type: Integration Test
// Description: Tests for rules file persistence and rule editing on a real filesystem

package rules_test

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/arthur-debert/sortie/pkg/errors"
	"github.com/arthur-debert/sortie/pkg/rules"
	"github.com/arthur-debert/sortie/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LoadMissingFile(t *testing.T) {
	store := rules.NewStore(filepath.Join(t.TempDir(), "extension_rules.json"))

	set, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "extension_rules.json")
	store := rules.NewStore(path)

	set := types.RuleSet{
		{Extensions: []string{".pdf"}, Dest: "/docs"},
		{Extensions: []string{".png", ".jpg"}, Dest: "/pics"},
	}
	require.NoError(t, store.Save(set))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "    {\n        \"extensions\": [")

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, set, loaded)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp", "temporary file left behind")
	}
}

func TestStore_LoadNormalizesRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"extensions": ["PDF", "doc"], "dest": "/docs"}]`), 0644))

	set, err := rules.NewStore(path).Load()
	require.NoError(t, err)
	require.Len(t, set, 1)
	assert.Equal(t, []string{".pdf", ".doc"}, set[0].Extensions)
}

func TestStore_LoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.ErrorCode
	}{
		{"malformed_json", `[{"extensions": [".pdf"`, errors.ErrConfigParse},
		{"wrong_shape", `{"extensions": [".pdf"]}`, errors.ErrConfigParse},
		{"no_extensions", `[{"extensions": [], "dest": "/docs"}]`, errors.ErrConfigValid},
		{"no_dest", `[{"extensions": [".pdf"], "dest": ""}]`, errors.ErrConfigValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "rules.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := rules.NewStore(path).Load()
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
			assert.True(t, errors.IsConfigError(err))
		})
	}
}

func TestStore_Add(t *testing.T) {
	tmp := t.TempDir()
	store := rules.NewStore(filepath.Join(tmp, "rules.json"))
	dest := filepath.Join(tmp, "Documents")

	set, rule, err := store.Add(rules.ParseExtensions("PDF, doc"), dest)
	require.NoError(t, err)
	assert.Equal(t, []string{".pdf", ".doc"}, rule.Extensions)
	assert.Len(t, set, 1)
	assert.DirExists(t, dest)

	set, _, err = store.Add([]string{".png"}, filepath.Join(tmp, "Pictures"))
	require.NoError(t, err)
	require.Len(t, set, 2)
	assert.Equal(t, dest, set[0].Dest, "new rules are appended last")

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, set, loaded)
}

func TestStore_ConcurrentAddsKeepEveryRule(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "rules.json")

	const writers = 16
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// separate stores stand in for separate sortie processes
			store := rules.NewStore(path)
			_, _, err := store.Add([]string{fmt.Sprintf(".e%d", i)}, filepath.Join(tmp, fmt.Sprintf("d%d", i)))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	loaded, err := rules.NewStore(path).Load()
	require.NoError(t, err)
	require.Len(t, loaded, writers)

	seen := make(map[string]bool, writers)
	for _, r := range loaded {
		seen[r.Extensions[0]] = true
	}
	for i := 0; i < writers; i++ {
		assert.True(t, seen[fmt.Sprintf(".e%d", i)], "rule .e%d lost", i)
	}
}

func TestStore_AddRejectsEmptyExtensions(t *testing.T) {
	tmp := t.TempDir()
	store := rules.NewStore(filepath.Join(tmp, "rules.json"))

	_, _, err := store.Add(rules.ParseExtensions(" , "), filepath.Join(tmp, "x"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.NoFileExists(t, store.Path())
}

func TestStore_Remove(t *testing.T) {
	store := rules.NewStore(filepath.Join(t.TempDir(), "rules.json"))
	require.NoError(t, store.Save(types.RuleSet{
		{Extensions: []string{".a"}, Dest: "/a"},
		{Extensions: []string{".b"}, Dest: "/b"},
		{Extensions: []string{".c"}, Dest: "/c"},
	}))

	set, removed, err := store.Remove(2, 0, 2)
	require.NoError(t, err)
	assert.Len(t, removed, 2)
	require.Len(t, set, 1)
	assert.Equal(t, "/b", set[0].Dest)

	_, _, err = store.Remove(5)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}
