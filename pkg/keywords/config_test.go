// Test Type: Unit Test
// Description: Tests for keyword file loading and destination creation

package keywords_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/sortie/pkg/errors"
	"github.com/arthur-debert/sortie/pkg/filesystem"
	"github.com/arthur-debert/sortie/pkg/keywords"
	"github.com/arthur-debert/sortie/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PreservesOrder(t *testing.T) {
	json := `{
    "folders": {
        "zeta": "/z",
        "Alpha": "/a",
        "mid": "/m"
    }
}`
	km, err := keywords.Parse([]byte(json))
	require.NoError(t, err)
	assert.Equal(t, types.KeywordMap{
		{Keyword: "zeta", Dest: "/z"},
		{Keyword: "alpha", Dest: "/a"},
		{Keyword: "mid", Dest: "/m"},
	}, km)
}

func TestParse_YAML(t *testing.T) {
	doc := `
version: 1
folders:
  invoice: /fin/invoices
  receipt: /fin/receipts
`
	km, err := keywords.Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"/fin/invoices", "/fin/receipts"}, km.Dests())
}

func TestParse_CaseVariantsKeepFirst(t *testing.T) {
	km, err := keywords.Parse([]byte(`{"folders": {"Tax": "/first", "tax ": "/x", "TAX": "/second"}}`))
	require.NoError(t, err)
	assert.Equal(t, types.KeywordMap{{Keyword: "tax", Dest: "/first"}}, km)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code errors.ErrorCode
	}{
		{"malformed", `{"folders": {"a": "/a"`, errors.ErrConfigParse},
		{"empty_document", ``, errors.ErrConfigValid},
		{"not_a_mapping", `["a", "b"]`, errors.ErrConfigValid},
		{"missing_folders", `{"keywords": {"a": "/a"}}`, errors.ErrConfigValid},
		{"folders_not_mapping", `{"folders": ["a"]}`, errors.ErrConfigValid},
		{"empty_keyword", `{"folders": {"": "/a"}}`, errors.ErrConfigValid},
		{"empty_destination", `{"folders": {"a": ""}}`, errors.ErrConfigValid},
		{"nested_destination", `{"folders": {"a": {"b": "/c"}}}`, errors.ErrConfigValid},
		{"null_destination", `{"folders": {"invoice": null, "home": "~"}}`, errors.ErrConfigValid},
		{"number_destination", `{"folders": {"receipt": 42}}`, errors.ErrConfigValid},
		{"bool_destination", `{"folders": {"tax": true}}`, errors.ErrConfigValid},
		{"yaml_null_destination", "folders:\n  invoice: ~\n", errors.ErrConfigValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := keywords.Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
			assert.True(t, errors.IsConfigError(err))
		})
	}
}

func TestParse_RelativeDestinationIsAbsolute(t *testing.T) {
	root := t.TempDir()
	t.Chdir(root)

	km, err := keywords.Parse([]byte(`{"folders": {"invoice": "fin/invoices", "tax": "./tax/../tax"}}`))
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(wd, "fin", "invoices"),
		filepath.Join(wd, "tax"),
	}, km.Dests())
}

func TestParse_DuplicateKeyword(t *testing.T) {
	_, err := keywords.Parse([]byte("folders:\n  a: /a\n  a: /b\n"))
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
}

func TestLoad(t *testing.T) {
	t.Run("reads_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "keyword_config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"folders": {"invoice": "/inv"}}`), 0644))

		km, err := keywords.Load(path)
		require.NoError(t, err)
		assert.Len(t, km, 1)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := keywords.Load(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("invalid_file_reports_path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

		_, err := keywords.Load(path)
		require.Error(t, err)
		assert.Equal(t, path, errors.GetErrorDetails(err)["path"])
	})
}

type noMkdirFS struct {
	types.FS
}

func (noMkdirFS) MkdirAll(string, fs.FileMode) error {
	return os.ErrPermission
}

func TestEnsureDestinations(t *testing.T) {
	fsys := filesystem.NewMemoryFS()
	km := types.KeywordMap{
		{Keyword: "invoice", Dest: "/fin/invoices"},
		{Keyword: "bill", Dest: "/fin/invoices"},
		{Keyword: "receipt", Dest: "/fin/receipts"},
	}

	require.NoError(t, keywords.EnsureDestinations(fsys, km))
	for _, dir := range []string{"/fin/invoices", "/fin/receipts"} {
		info, err := fsys.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	err := keywords.EnsureDestinations(noMkdirFS{fsys}, km)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirCreate))
}
