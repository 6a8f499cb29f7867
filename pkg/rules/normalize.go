package rules

import (
	"strings"

	"github.com/arthur-debert/sortie/pkg/errors"
	"github.com/arthur-debert/sortie/pkg/paths"
	"github.com/arthur-debert/sortie/pkg/types"
)

// NormalizeExtension returns the canonical form of a rule extension:
// trimmed, lower-cased and dot-prefixed. Blank input yields "".
func NormalizeExtension(ext string) string {
	ext = strings.TrimSpace(ext)
	ext = strings.TrimPrefix(ext, "*")
	ext = strings.ToLower(ext)
	if ext == "" || ext == "." {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// ParseExtensions splits comma separated user input ("pdf, .DOC,*.txt")
// into normalized extensions, dropping blanks and duplicates.
func ParseExtensions(input string) []string {
	return normalizeAll(strings.Split(input, ","))
}

func normalizeAll(exts []string) []string {
	seen := make(map[string]struct{}, len(exts))
	out := make([]string, 0, len(exts))
	for _, raw := range exts {
		ext := NormalizeExtension(raw)
		if ext == "" {
			continue
		}
		if _, dup := seen[ext]; dup {
			continue
		}
		seen[ext] = struct{}{}
		out = append(out, ext)
	}
	return out
}

// NewRule builds a rule with normalized extensions and an absolute
// destination. A rule needs at least one extension and a destination.
func NewRule(extensions []string, dest string) (types.Rule, error) {
	exts := normalizeAll(extensions)
	if len(exts) == 0 {
		return types.Rule{}, errors.New(errors.ErrConfigValid, "rule has no extensions")
	}
	dest = strings.TrimSpace(dest)
	if dest == "" {
		return types.Rule{}, errors.New(errors.ErrConfigValid, "rule has empty destination")
	}
	abs, err := paths.Normalize(dest)
	if err != nil {
		return types.Rule{}, errors.Wrap(err, errors.ErrConfigValid, "rule has invalid destination").
			WithDetail("dest", dest)
	}
	return types.Rule{Extensions: exts, Dest: abs}, nil
}

// FileExtension returns the lower-cased final suffix of a file name, or ""
// when the name has none.
func FileExtension(name string) string {
	_, suffix := paths.SplitName(name)
	return strings.ToLower(suffix)
}
