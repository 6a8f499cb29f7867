package rules

import (
	"path/filepath"

	"github.com/arthur-debert/sortie/pkg/errors"
	"github.com/arthur-debert/sortie/pkg/logging"
	"github.com/arthur-debert/sortie/pkg/types"
	"github.com/rs/zerolog"
)

type compiledRule struct {
	extensions map[string]struct{}
	dest       string
}

// ExtensionClassifier routes files to the destination of the first rule
// containing their extension
type ExtensionClassifier struct {
	rules  []compiledRule
	logger zerolog.Logger
}

// NewExtensionClassifier validates the rule set and builds the lookup sets
func NewExtensionClassifier(rules types.RuleSet) (*ExtensionClassifier, error) {
	c := &ExtensionClassifier{
		rules:  make([]compiledRule, 0, len(rules)),
		logger: logging.GetLogger("rules.classifier"),
	}

	for i, rule := range rules {
		normalized, err := NewRule(rule.Extensions, rule.Dest)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid, "invalid rule %d", i)
		}
		set := make(map[string]struct{}, len(normalized.Extensions))
		for _, ext := range normalized.Extensions {
			set[ext] = struct{}{}
		}
		c.rules = append(c.rules, compiledRule{extensions: set, dest: normalized.Dest})
	}

	c.logger.Debug().Int("ruleCount", len(c.rules)).Msg("Extension classifier ready")
	return c, nil
}

// Classify returns the destination for filePath, or false when no rule
// matches
func (c *ExtensionClassifier) Classify(filePath string) (string, bool) {
	ext := FileExtension(filepath.Base(filePath))
	for _, rule := range c.rules {
		if _, ok := rule.extensions[ext]; ok {
			c.logger.Trace().
				Str("file", filePath).
				Str("extension", ext).
				Str("dest", rule.dest).
				Msg("File matched rule")
			return rule.dest, true
		}
	}
	return "", false
}

// Len returns the number of rules
func (c *ExtensionClassifier) Len() int {
	return len(c.rules)
}
