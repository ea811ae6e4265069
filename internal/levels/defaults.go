package levels

import (
	"embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/*.yaml
var defaultLevelFS embed.FS

// Builtin returns the levels embedded in the binary, sorted by ID.
// The embedded files are validated at build time by the loader tests, so a
// parse failure here indicates a broken binary and panics.
func Builtin() []Level {
	entries, err := defaultLevelFS.ReadDir("defaults")
	if err != nil {
		panic(fmt.Sprintf("levels: cannot read embedded levels: %v", err))
	}

	result := make([]Level, 0, len(entries))
	for _, entry := range entries {
		data, err := defaultLevelFS.ReadFile("defaults/" + entry.Name())
		if err != nil {
			panic(fmt.Sprintf("levels: cannot read embedded level %s: %v", entry.Name(), err))
		}
		lvl, err := ParseYAML(data)
		if err != nil {
			panic(fmt.Sprintf("levels: invalid embedded level %s: %v", entry.Name(), err))
		}
		result = append(result, lvl)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// ParseYAML parses and validates a single YAML level definition.
func ParseYAML(data []byte) (Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return Level{}, fmt.Errorf("levels: yaml unmarshal: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return Level{}, err
	}
	return lvl, nil
}
