package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader resolves the level catalog: built-in levels overlaid by YAML files
// from a directory. A directory level with the same ID as a built-in one
// replaces it, so players can tune the shipped levels.
type Loader struct {
	Root string // level directory; empty means built-ins only
}

// NewLoader creates a loader for the given directory.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// UserLevelsDir returns the default per-user level directory, or empty if
// the home directory is unavailable.
func UserLevelsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bleed", "levels")
}

// LoadAll returns the full catalog sorted by ID. Unreadable or invalid
// files are skipped; a missing directory is not an error.
func (l *Loader) LoadAll() ([]Level, error) {
	byID := make(map[string]Level)
	for _, lvl := range Builtin() {
		byID[lvl.ID] = lvl
	}

	if l.Root != "" {
		if err := l.loadDir(byID); err != nil {
			return nil, err
		}
	}

	result := make([]Level, 0, len(byID))
	for _, lvl := range byID {
		result = append(result, lvl)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// loadDir merges directory levels into the catalog map.
func (l *Loader) loadDir(byID map[string]Level) error {
	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil // skip unreadable files
		}
		lvl, parseErr := ParseYAML(data)
		if parseErr != nil {
			return nil // skip invalid files
		}
		byID[lvl.ID] = lvl
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}
	return nil
}

// LoadByID returns a specific level from the catalog.
func (l *Loader) LoadByID(id string) (Level, error) {
	all, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range all {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("levels: level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	all, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(all))
	for i, lvl := range all {
		ids[i] = lvl.ID
	}
	return ids, nil
}
