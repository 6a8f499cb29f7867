package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/sortie/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// GenerateConfigContent returns the default configuration with every value
// commented out, ready to be edited
func GenerateConfigContent() string {
	return commentOutConfigValues(DefaultContent())
}

// commentOutConfigValues comments out every assignment line, keeping
// comments, blank lines and section headers
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}

// WriteDefault writes the commented default configuration to path. An
// existing file is never overwritten.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Newf(errors.ErrAlreadyExists, "config file %s already exists", path).
			WithDetail("path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "failed to create config directory")
	}
	if err := os.WriteFile(path, []byte(GenerateConfigContent()), 0644); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write config file").
			WithDetail("path", path)
	}
	return nil
}

// TOML renders the effective configuration
func (c *Config) TOML() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return data, nil
}
