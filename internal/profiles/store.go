// Package profiles persists user profiles as JSON files in a directory,
// one file per profile owner. The recommendation core never touches this
// package; it exists for the CLI shell.
package profiles

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spigell/career-compass/internal/career"
)

// Store reads and writes profiles under Dir.
type Store struct {
	Dir string
}

type storedProfile struct {
	Owner        string              `json:"owner"`
	Competencies []career.Competency `json:"competencies"`
}

func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// Save writes the profile to <dir>/<safe owner name>.json and returns
// the path. The directory is created when missing.
func (s *Store) Save(p *career.Profile) (string, error) {
	if p == nil {
		return "", fmt.Errorf("profile is required")
	}

	name := Filename(p.Owner)
	if name == "" {
		return "", fmt.Errorf("profile owner %q: %w", p.Owner, career.ErrInvalidName)
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}

	stored := storedProfile{Owner: p.Owner}
	for c := range p.All() {
		stored.Competencies = append(stored.Competencies, c)
	}

	path := filepath.Join(s.Dir, name)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(stored); err != nil {
		return "", err
	}

	return path, nil
}

// Load reads the profile saved for the given owner name.
func (s *Store) Load(owner string) (*career.Profile, error) {
	name := Filename(owner)
	if name == "" {
		return nil, fmt.Errorf("profile owner %q: %w", owner, career.ErrInvalidName)
	}

	return s.LoadFile(name)
}

// LoadFile reads a profile from the named file under the store
// directory. Stored entries go through the usual competency validation,
// so a hand-edited file with an out-of-range level fails with
// career.ErrInvalidLevel.
func (s *Store) LoadFile(name string) (*career.Profile, error) {
	path := filepath.Join(s.Dir, name)
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var stored storedProfile
	if err := json.NewDecoder(file).Decode(&stored); err != nil {
		return nil, fmt.Errorf("decoding profile file %q: %w", path, err)
	}

	profile := career.NewProfile(stored.Owner)
	for _, c := range stored.Competencies {
		if err := profile.AddOrUpdateCompetency(c.Name, c.Level); err != nil {
			return nil, fmt.Errorf("profile file %q: %w", path, err)
		}
	}

	return profile, nil
}

// List returns the saved profile file names, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}

	sort.Strings(names)
	return names, nil
}

// Filename derives the on-disk file name for an owner name: whitespace
// collapsed to underscores, lowercased, with a .json extension. Returns
// an empty string for a blank owner.
func Filename(owner string) string {
	safe := strings.ToLower(strings.Join(strings.Fields(owner), "_"))
	if safe == "" {
		return ""
	}
	return safe + ".json"
}
