package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"rules.md":          {Data: []byte("# Rules\n\nExtension rules")},
		"keywords.txt":      {Data: []byte("Keyword matching")},
		"option-dry-run.md": {Data: []byte("Dry run explained")},
		"notes/deep.md":     {Data: []byte("Nested topic")},
		"ignore.json":       {Data: []byte("{}")},
	}
}

func TestTopicManager_Scan(t *testing.T) {
	t.Run("default_extensions", func(t *testing.T) {
		tm := New(testFS())
		require.NoError(t, tm.Scan())

		assert.Equal(t, []string{"deep", "keywords", "option-dry-run", "rules"}, tm.ListTopics())

		topic, ok := tm.GetTopic("rules")
		require.True(t, ok)
		assert.Equal(t, "# Rules\n\nExtension rules", topic.Content)
		assert.Equal(t, "rules.md", topic.FilePath)

		_, ok = tm.GetTopic("ignore")
		assert.False(t, ok)
	})

	t.Run("custom_extensions", func(t *testing.T) {
		tm := NewWithOptions(testFS(), Options{Extensions: []string{".json"}})
		require.NoError(t, tm.Scan())
		assert.Equal(t, []string{"ignore"}, tm.ListTopics())
	})

	t.Run("nil_fs", func(t *testing.T) {
		tm := New(nil)
		require.NoError(t, tm.Scan())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestTopicManager_FlagTopics(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.Scan())

	for _, name := range []string{"--dry-run", "-dry-run", "dry-run", "option-dry-run"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "Dry run explained", topic.Content)
	}
}

func TestTopicManager_PrintList(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.Scan())

	var buf bytes.Buffer
	tm.PrintList(&buf, "sortie")

	out := buf.String()
	assert.Contains(t, out, "General topics:")
	assert.Contains(t, out, "  rules\n")
	assert.Contains(t, out, "  --dry-run\n")
	assert.Contains(t, out, "'sortie help <topic>'")

	var empty bytes.Buffer
	New(nil).PrintList(&empty, "sortie")
	assert.Equal(t, "No help topics available.\n", empty.String())
}

func TestInitialize_HelpCommand(t *testing.T) {
	root := &cobra.Command{Use: "sortie", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "extension", Short: "Organize by extension", Run: func(*cobra.Command, []string) {}})

	_, err := Initialize(root, testFS())
	require.NoError(t, err)

	run := func(args ...string) string {
		var buf bytes.Buffer
		root.SetOut(&buf)
		root.SetErr(&buf)
		root.SetArgs(args)
		require.NoError(t, root.Execute())
		return buf.String()
	}

	assert.Contains(t, run("help", "rules"), "Extension rules")
	assert.Contains(t, run("help", "topics"), "keywords")
	assert.True(t, strings.Contains(run("help", "extension"), "Organize by extension"))
}

func TestPlainRenderer(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# Title", r.Render("# Title", ".md"))
}

func TestGlamourRenderer_NonMarkdownUnchanged(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
}
