package tweet

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// A Library holds the madlib fragment sets available to templates, one set of
// candidate strings per placeholder name.
type Library struct {
	sets map[string][]string
}

// LoadLibrary reads every .json file in dir as a fragment set. Each file must
// contain a JSON array of strings; blank entries are discarded and a file
// with no usable entries is an error. The file base name without the
// extension becomes the placeholder name.
func LoadLibrary(dir string) (*Library, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &ConfigError{Path: dir, Err: err}
	}
	sets := make(map[string][]string)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		fragments, err := loadFragments(path)
		if err != nil {
			return nil, err
		}
		sets[strings.TrimSuffix(e.Name(), ".json")] = fragments
	}
	return &Library{sets: sets}, nil
}

func loadFragments(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	var raw []string
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("expected a JSON array of strings: %w", err)}
	}
	fragments := make([]string, 0, len(raw))
	for _, f := range raw {
		if t := strings.TrimSpace(f); t != "" {
			fragments = append(fragments, t)
		}
	}
	if len(fragments) == 0 {
		return nil, &ConfigError{Path: path, Err: errors.New("no usable fragments")}
	}
	return fragments, nil
}

// Fragments returns the candidates for the named placeholder and whether a
// set with that name was loaded.
func (l *Library) Fragments(name string) ([]string, bool) {
	s, ok := l.sets[name]
	return s, ok
}
