package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadelab/bleed/internal/levels"
	"github.com/arcadelab/bleed/internal/platform/tui"
	"github.com/arcadelab/bleed/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive level picker",
	Long: `Start the game in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a level.
After a round ends, press B to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select level
  Tab          - Scoreboard
  Q            - Quit

Examples:
  bleed menu
  bleed menu --db ./scores.db`,
	Run: runMenu,
}

// newLoader builds the catalog loader from the global flags.
func newLoader() *levels.Loader {
	return levels.NewLoader(levelsDir())
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	menuLoop(store, width, height)

	// Cleanup
	if store != nil {
		store.Close()
	}
}

// menuLoop runs the menu / play / scoreboard cycle until the user quits.
func menuLoop(store *storage.Store, width, height int) {
	for {
		catalog, err := newLoader().LoadAll()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
			return
		}

		// Show menu and get selection
		result, err := tui.RunMenu(catalog, store, width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		if result.Quit {
			return
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(catalog, store, width, height)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return // User quit from scoreboard
		}

		if result.Level == nil {
			return
		}

		// Run the level; keep looping while the player asks for the menu
		backToMenu, runErr := tui.Run(*result.Level, store, width, height)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running level: %v\n", runErr)
		}
		if !backToMenu {
			return
		}
	}
}
