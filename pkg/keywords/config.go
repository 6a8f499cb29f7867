package keywords

import (
	"bytes"
	"os"
	"strings"

	"github.com/arthur-debert/sortie/pkg/errors"
	"github.com/arthur-debert/sortie/pkg/logging"
	"github.com/arthur-debert/sortie/pkg/paths"
	"github.com/arthur-debert/sortie/pkg/types"
	"gopkg.in/yaml.v3"
)

// FoldersKey is the top-level key holding the keyword mapping
const FoldersKey = "folders"

// Load reads and validates a keyword file
func Load(path string) (types.KeywordMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to read keyword file").
			WithDetail("path", path)
	}

	km, err := Parse(data)
	if err != nil {
		if se, ok := err.(*errors.SortieError); ok {
			se.WithDetail("path", path)
		}
		return nil, err
	}

	logger := logging.GetLogger("keywords.config")
	logger.Debug().
		Str("path", path).
		Int("keywordCount", len(km)).
		Msg("Keyword file loaded")
	return km, nil
}

// Parse decodes a keyword document. The node tree is walked directly so the
// mapping keeps the order of the file.
func Parse(data []byte) (types.KeywordMap, error) {
	var doc yaml.Node
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse keyword file")
		}
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.Newf(errors.ErrConfigValid, "keyword file has no %q mapping", FoldersKey)
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.New(errors.ErrConfigValid, "keyword file must be a mapping")
	}

	var folders *yaml.Node
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == FoldersKey {
			folders = root.Content[i+1]
			break
		}
	}
	if folders == nil {
		return nil, errors.Newf(errors.ErrConfigValid, "keyword file has no %q mapping", FoldersKey)
	}
	if folders.Kind != yaml.MappingNode {
		return nil, errors.Newf(errors.ErrConfigValid, "%q must map keywords to folders", FoldersKey).
			WithDetail("line", folders.Line)
	}

	return decodeFolders(folders)
}

func decodeFolders(folders *yaml.Node) (types.KeywordMap, error) {
	logger := logging.GetLogger("keywords.config")

	km := make(types.KeywordMap, 0, len(folders.Content)/2)
	raw := make(map[string]struct{}, len(folders.Content)/2)
	lowered := make(map[string]struct{}, len(folders.Content)/2)

	for i := 0; i+1 < len(folders.Content); i += 2 {
		keyNode, valueNode := folders.Content[i], folders.Content[i+1]

		keyword := strings.TrimSpace(keyNode.Value)
		if keyNode.Kind != yaml.ScalarNode || keyword == "" {
			return nil, errors.New(errors.ErrConfigValid, "empty keyword").
				WithDetail("line", keyNode.Line)
		}
		if valueNode.Kind != yaml.ScalarNode || valueNode.Tag != "!!str" || strings.TrimSpace(valueNode.Value) == "" {
			return nil, errors.Newf(errors.ErrConfigValid, "keyword %q needs a destination folder name", keyword).
				WithDetail("line", valueNode.Line)
		}
		dest, err := paths.Normalize(valueNode.Value)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid, "keyword %q has an invalid destination", keyword).
				WithDetail("line", valueNode.Line)
		}

		if _, dup := raw[keyword]; dup {
			return nil, errors.Newf(errors.ErrConfigValid, "keyword %q is defined twice", keyword).
				WithDetail("line", keyNode.Line)
		}
		raw[keyword] = struct{}{}

		lower := strings.ToLower(keyword)
		if _, dup := lowered[lower]; dup {
			logger.Warn().
				Str("keyword", keyword).
				Int("line", keyNode.Line).
				Msg("Keyword differs only in case from an earlier one and will never match")
			continue
		}
		lowered[lower] = struct{}{}

		km = append(km, types.KeywordEntry{
			Keyword: lower,
			Dest:    dest,
		})
	}

	return km, nil
}

// EnsureDestinations creates every destination folder of km
func EnsureDestinations(fs types.FS, km types.KeywordMap) error {
	seen := make(map[string]struct{}, len(km))
	for _, dest := range km.Dests() {
		if _, ok := seen[dest]; ok {
			continue
		}
		seen[dest] = struct{}{}
		if err := fs.MkdirAll(dest, 0755); err != nil {
			return errors.Wrap(err, errors.ErrDirCreate, "failed to create keyword destination").
				WithDetail("dest", dest)
		}
	}
	return nil
}
