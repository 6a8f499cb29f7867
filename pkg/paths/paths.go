package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/sortie/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for sortie
	EnvConfigDir = "SORTIE_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for sortie
	EnvStateDir = "SORTIE_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name used under the XDG base directories
	AppDirName = "sortie"

	// ConfigFileName is the name of the app configuration file
	ConfigFileName = "config.toml"

	// RulesFileName is the name of the persisted extension rules file
	RulesFileName = "extension_rules.json"

	// LogFilePrefix prefixes the daily log file name
	LogFilePrefix = "organize_"

	// LogDateFormat is the date layout of the daily log file name
	LogDateFormat = "2006-01-02"
)

// Paths provides centralized path management for sortie
type Paths struct {
	configDir string
	stateDir  string
}

// New creates a Paths instance, respecting environment overrides
func New() (*Paths, error) {
	p := &Paths{}

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = ExpandHome(dir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.stateDir = ExpandHome(dir)
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	for _, dir := range []*string{&p.configDir, &p.stateDir} {
		abs, err := filepath.Abs(*dir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", *dir)
		}
		*dir = abs
	}

	return p, nil
}

// ConfigDir returns the config directory for sortie
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// StateDir returns the state directory for sortie
func (p *Paths) StateDir() string {
	return p.stateDir
}

// ConfigFile returns the default app configuration file path
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// RulesFile returns the default extension rules file path
func (p *Paths) RulesFile() string {
	return filepath.Join(p.configDir, RulesFileName)
}

// LogDir returns the directory holding the daily log files
func (p *Paths) LogDir() string {
	return p.stateDir
}

// ExpandHome expands a leading "~" to the user's home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~otheruser is left alone
	return path
}

// Normalize expands "~", cleans the path and makes it absolute.
// Empty input stays empty.
func Normalize(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "invalid path %q", path)
	}
	return abs, nil
}

// NormalizeAll applies Normalize to every non-empty path, keeping order
func NormalizeAll(paths []string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		n, err := Normalize(p)
		if err != nil {
			return nil, err
		}
		if n != "" {
			out = append(out, n)
		}
	}
	return out, nil
}

// SplitName splits a base file name into stem and final suffix the way a
// user reads it: "report.pdf" -> ("report", ".pdf"), "a.tar.gz" ->
// ("a.tar", ".gz"). Dotfiles without another dot (".bashrc") and names
// ending in a dot ("notes.") have no suffix.
func SplitName(name string) (stem, suffix string) {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return name, ""
	}
	return name[:i], name[i:]
}
