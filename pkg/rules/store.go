package rules

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/sortie/pkg/errors"
	"github.com/arthur-debert/sortie/pkg/logging"
	"github.com/arthur-debert/sortie/pkg/types"
	"github.com/gofrs/flock"
	"github.com/rs/zerolog"
)

// Store persists a RuleSet as a JSON document on disk
type Store struct {
	path   string
	logger zerolog.Logger
}

// NewStore returns a store backed by the rules file at path
func NewStore(path string) *Store {
	return &Store{
		path:   path,
		logger: logging.GetLogger("rules.store").With().Str("path", path).Logger(),
	}
}

// Path returns the rules file location
func (s *Store) Path() string {
	return s.path
}

func (s *Store) lock() *flock.Flock {
	return flock.New(s.path + ".lock")
}

// Load reads the rule set. A missing file is an empty rule set.
func (s *Store) Load() (types.RuleSet, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		s.logger.Debug().Msg("Rules file not found, starting with no rules")
		return types.RuleSet{}, nil
	}

	fl := s.lock()
	if err := fl.RLock(); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to lock rules file").
			WithDetail("path", s.path)
	}
	defer func() { _ = fl.Unlock() }()

	return s.read()
}

// read loads the rule set without locking
func (s *Store) read() (types.RuleSet, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return types.RuleSet{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to read rules file").
			WithDetail("path", s.path)
	}

	return decodeRules(data, s.path)
}

func decodeRules(data []byte, path string) (types.RuleSet, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return types.RuleSet{}, nil
	}

	var raw []types.Rule
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse rules file").
			WithDetail("path", path)
	}

	set := make(types.RuleSet, 0, len(raw))
	for i, r := range raw {
		rule, err := NewRule(r.Extensions, r.Dest)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid, "invalid rule %d in rules file", i).
				WithDetail("path", path).
				WithDetail("index", i)
		}
		set = append(set, rule)
	}
	return set, nil
}

// Save writes the rule set, replacing the file atomically
func (s *Store) Save(set types.RuleSet) error {
	fl, err := s.lockExclusive()
	if err != nil {
		return err
	}
	defer func() { _ = fl.Unlock() }()

	return s.write(set)
}

// update runs fn on the current rule set and saves the result while
// holding the exclusive lock, so concurrent updates are not lost
func (s *Store) update(fn func(types.RuleSet) (types.RuleSet, error)) (types.RuleSet, error) {
	fl, err := s.lockExclusive()
	if err != nil {
		return nil, err
	}
	defer func() { _ = fl.Unlock() }()

	set, err := s.read()
	if err != nil {
		return nil, err
	}
	if set, err = fn(set); err != nil {
		return nil, err
	}
	if err := s.write(set); err != nil {
		return nil, err
	}
	return set, nil
}

func (s *Store) lockExclusive() (*flock.Flock, error) {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(err, errors.ErrDirCreate, "failed to create rules directory").
			WithDetail("dir", dir)
	}

	fl := s.lock()
	if err := fl.Lock(); err != nil {
		return nil, errors.Wrap(err, errors.ErrFileWrite, "failed to lock rules file").
			WithDetail("path", s.path)
	}
	return fl, nil
}

// write replaces the rules file without locking
func (s *Store) write(set types.RuleSet) error {
	dir := filepath.Dir(s.path)
	if set == nil {
		set = types.RuleSet{}
	}
	data, err := json.MarshalIndent(set, "", "    ")
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode rules")
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to create temporary rules file")
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write rules file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write rules file")
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to set rules file mode")
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to replace rules file").
			WithDetail("path", s.path)
	}

	s.logger.Debug().Int("ruleCount", len(set)).Msg("Rules saved")
	return nil
}

// Add appends a rule for extensions -> dest, creating dest on disk, and
// saves the updated set. The new rule has the lowest priority.
func (s *Store) Add(extensions []string, dest string) (types.RuleSet, types.Rule, error) {
	rule, err := NewRule(extensions, dest)
	if err != nil {
		return nil, types.Rule{}, errors.Wrap(err, errors.ErrInvalidInput, "cannot add rule")
	}

	set, err := s.update(func(set types.RuleSet) (types.RuleSet, error) {
		if err := os.MkdirAll(rule.Dest, 0755); err != nil {
			return nil, errors.Wrap(err, errors.ErrDirCreate, "failed to create rule destination").
				WithDetail("dest", rule.Dest)
		}
		return append(set, rule), nil
	})
	if err != nil {
		return nil, types.Rule{}, err
	}

	s.logger.Info().
		Strs("extensions", rule.Extensions).
		Str("dest", rule.Dest).
		Msg("Rule added")
	return set, rule, nil
}

// Remove deletes the rules at the given zero-based indexes and saves the
// updated set. Every index is validated before anything is removed.
func (s *Store) Remove(indexes ...int) (types.RuleSet, []types.Rule, error) {
	var removed []types.Rule
	set, err := s.update(func(set types.RuleSet) (types.RuleSet, error) {
		unique := make(map[int]struct{}, len(indexes))
		for _, idx := range indexes {
			if idx < 0 || idx >= len(set) {
				return nil, errors.Newf(errors.ErrInvalidInput, "rule index %d out of range", idx).
					WithDetail("ruleCount", len(set))
			}
			unique[idx] = struct{}{}
		}

		ordered := make([]int, 0, len(unique))
		for idx := range unique {
			ordered = append(ordered, idx)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(ordered)))

		removed = make([]types.Rule, 0, len(ordered))
		for _, idx := range ordered {
			removed = append(removed, set[idx])
			set = append(set[:idx], set[idx+1:]...)
		}
		return set, nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info().Int("removed", len(removed)).Msg("Rules removed")
	return set, removed, nil
}
