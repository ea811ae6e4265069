package levels

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestBuiltinLevelsValid(t *testing.T) {
	builtin := Builtin()

	if len(builtin) == 0 {
		t.Fatal("Expected at least one built-in level")
	}

	ids := make([]string, len(builtin))
	for i, lvl := range builtin {
		if err := lvl.Validate(); err != nil {
			t.Errorf("Built-in level %s is invalid: %v", lvl.ID, err)
		}
		ids[i] = lvl.ID
	}

	if !sort.StringsAreSorted(ids) {
		t.Errorf("Built-in levels should be sorted by ID, got %v", ids)
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: test_level
name: Test Level
difficulty: medium
palette: [red, blue, green]
max_taps: 7
grid_size: 9
`)

	lvl, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}

	if lvl.ID != "test_level" {
		t.Errorf("Expected ID test_level, got %s", lvl.ID)
	}
	if lvl.Difficulty != DifficultyMedium {
		t.Errorf("Expected medium difficulty, got %s", lvl.Difficulty)
	}
	if len(lvl.Palette) != 3 {
		t.Errorf("Expected 3 palette colors, got %d", len(lvl.Palette))
	}
	if lvl.MaxTaps != 7 || lvl.GridSize != 9 {
		t.Errorf("Expected 7 taps / 9 grid, got %d / %d", lvl.MaxTaps, lvl.GridSize)
	}
}

func TestParseYAMLInvalid(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not yaml", "{{{"},
		{"missing id", "name: X\ndifficulty: easy\npalette: [red, blue]\nmax_taps: 5\ngrid_size: 5"},
		{"one color", "id: x\nname: X\ndifficulty: easy\npalette: [red]\nmax_taps: 5\ngrid_size: 5"},
		{"seven colors", "id: x\nname: X\ndifficulty: easy\npalette: [red, blue, green, yellow, cyan, magenta, orange]\nmax_taps: 5\ngrid_size: 5"},
		{"unknown color", "id: x\nname: X\ndifficulty: easy\npalette: [red, chartreuse]\nmax_taps: 5\ngrid_size: 5"},
		{"repeated color", "id: x\nname: X\ndifficulty: easy\npalette: [red, red]\nmax_taps: 5\ngrid_size: 5"},
		{"bad difficulty", "id: x\nname: X\ndifficulty: brutal\npalette: [red, blue]\nmax_taps: 5\ngrid_size: 5"},
		{"zero taps", "id: x\nname: X\ndifficulty: easy\npalette: [red, blue]\nmax_taps: 0\ngrid_size: 5"},
		{"zero grid", "id: x\nname: X\ndifficulty: easy\npalette: [red, blue]\nmax_taps: 5\ngrid_size: 0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseYAML([]byte(tc.data)); err == nil {
				t.Error("Expected parse/validation error")
			}
		})
	}
}

func TestLoaderBuiltinOnly(t *testing.T) {
	loader := NewLoader("")

	all, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}
	if len(all) != len(Builtin()) {
		t.Errorf("Empty root should yield only built-ins: got %d, want %d", len(all), len(Builtin()))
	}
}

func TestLoaderMissingDirectory(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "does-not-exist"))

	all, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() with missing directory failed: %v", err)
	}
	if len(all) != len(Builtin()) {
		t.Errorf("Missing directory should yield only built-ins: got %d", len(all))
	}
}

func TestLoaderDirectoryOverlay(t *testing.T) {
	dir := t.TempDir()
	builtin := Builtin()
	overrideID := builtin[0].ID

	// A directory level replacing a built-in one
	override := `
id: ` + overrideID + `
name: Tuned Level
difficulty: hard
palette: [purple, orange]
max_taps: 3
grid_size: 4
`
	if err := os.WriteFile(filepath.Join(dir, "override.yaml"), []byte(override), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	// A brand new level
	extra := `
id: zz_custom
name: Custom Level
difficulty: easy
palette: [red, cyan]
max_taps: 6
grid_size: 7
`
	if err := os.WriteFile(filepath.Join(dir, "extra.yml"), []byte(extra), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	// Invalid files are skipped, not fatal
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("{{{"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	// Non-YAML files are ignored
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	all, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}

	if len(all) != len(builtin)+1 {
		t.Errorf("Expected %d levels (built-ins + 1 extra), got %d", len(builtin)+1, len(all))
	}

	overridden, err := NewLoader(dir).LoadByID(overrideID)
	if err != nil {
		t.Fatalf("LoadByID(%s) failed: %v", overrideID, err)
	}
	if overridden.Name != "Tuned Level" {
		t.Errorf("Directory level should replace built-in %s, got name %q", overrideID, overridden.Name)
	}

	custom, err := NewLoader(dir).LoadByID("zz_custom")
	if err != nil {
		t.Fatalf("LoadByID(zz_custom) failed: %v", err)
	}
	if custom.GridSize != 7 {
		t.Errorf("Expected grid size 7, got %d", custom.GridSize)
	}
}

func TestLoaderLoadByIDNotFound(t *testing.T) {
	if _, err := NewLoader("").LoadByID("no_such_level"); err == nil {
		t.Error("Expected error for unknown level ID")
	}
}

func TestLoaderListIDs(t *testing.T) {
	ids, err := NewLoader("").ListIDs()
	if err != nil {
		t.Fatalf("ListIDs() failed: %v", err)
	}
	if len(ids) != len(Builtin()) {
		t.Errorf("Expected %d IDs, got %d", len(Builtin()), len(ids))
	}
	if !sort.StringsAreSorted(ids) {
		t.Errorf("IDs should be sorted, got %v", ids)
	}
}

func TestLevelSessionConfig(t *testing.T) {
	lvl := Level{
		ID:         "cfg_test",
		Name:       "Config Test",
		Difficulty: DifficultyHard,
		Palette:    []string{"red", "blue", "green"},
		MaxTaps:    9,
		GridSize:   12,
	}

	cfg := lvl.SessionConfig()
	if cfg.LevelID != "cfg_test" || cfg.LevelName != "Config Test" {
		t.Errorf("Level identity not carried: %s / %s", cfg.LevelID, cfg.LevelName)
	}
	if cfg.PaletteSize != 3 {
		t.Errorf("Expected palette size 3, got %d", cfg.PaletteSize)
	}
	if cfg.MaxTaps != 9 || cfg.GridSize != 12 {
		t.Errorf("Expected 9 taps / 12 grid, got %d / %d", cfg.MaxTaps, cfg.GridSize)
	}

	session, err := lvl.NewSession(nil)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	if session.Grid().Size() != 12 {
		t.Errorf("Session grid should match level size, got %d", session.Grid().Size())
	}
}
