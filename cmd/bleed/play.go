package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadelab/bleed/internal/platform/tui"
	"github.com/arcadelab/bleed/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <level-id>",
	Short: "Play a level",
	Long: `Start playing the specified level.

Controls:
  Arrows/WASD  - Move cursor
  Space/Enter  - Bleed color into the cursor cell
  1-6          - Select palette color
  R            - Restart level
  B/Esc        - Back to menu (after the round ends)
  Q/Ctrl+C     - Quit

Examples:
  bleed play 01_first_drops
  bleed play 03_tight_budget --db ./scores.db`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	levelID := args[0]

	loader := newLoader()
	level, err := loader.LoadByID(levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'bleed levels' to see available levels.")
		os.Exit(1)
	}

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	backToMenu, runErr := tui.Run(level, store, width, height)

	if runErr != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error running level: %v\n", runErr)
		os.Exit(1)
	}

	// Honor the in-game "back to menu" request from a direct play.
	if backToMenu {
		menuLoop(store, width, height)
	}

	if store != nil {
		store.Close()
	}
}
