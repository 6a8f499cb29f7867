package keywords

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/sortie/pkg/logging"
	"github.com/arthur-debert/sortie/pkg/types"
	"github.com/rs/zerolog"
)

// Classifier matches file names against keywords in declaration order
type Classifier struct {
	entries types.KeywordMap
	logger  zerolog.Logger
}

// NewClassifier copies km, lower-casing every keyword
func NewClassifier(km types.KeywordMap) *Classifier {
	entries := make(types.KeywordMap, 0, len(km))
	for _, e := range km {
		entries = append(entries, types.KeywordEntry{
			Keyword: strings.ToLower(e.Keyword),
			Dest:    e.Dest,
		})
	}
	return &Classifier{
		entries: entries,
		logger:  logging.GetLogger("keywords.classifier"),
	}
}

// Classify returns the destination of the first keyword contained in the
// base name of filename
func (c *Classifier) Classify(filename string) (string, bool) {
	name := strings.ToLower(filepath.Base(filename))
	for _, e := range c.entries {
		if e.Keyword != "" && strings.Contains(name, e.Keyword) {
			c.logger.Trace().
				Str("file", filename).
				Str("keyword", e.Keyword).
				Str("dest", e.Dest).
				Msg("File matched keyword")
			return e.Dest, true
		}
	}
	return "", false
}

// Entries returns the normalized keyword map
func (c *Classifier) Entries() types.KeywordMap {
	return c.entries
}
