package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcadelab/bleed/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows the level catalog: built-in levels plus any YAML level files
found in the extra levels directory.`,
	Run: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	catalog, err := levels.NewLoader(levelsDir()).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	if len(catalog) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, lvl := range catalog {
		if len(lvl.ID) > maxIDLen {
			maxIDLen = len(lvl.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-20s  %-6s  %-6s  %s\n", maxIDLen, "ID", "Name", "Board", "Taps", "Difficulty")
	fmt.Printf("  %-*s  %-20s  %-6s  %-6s  %s\n", maxIDLen, "--", "----", "-----", "----", "----------")

	// Print levels
	for _, lvl := range catalog {
		board := fmt.Sprintf("%dx%d", lvl.GridSize, lvl.GridSize)
		fmt.Printf("  %-*s  %-20s  %-6s  %-6d  %s\n",
			maxIDLen, lvl.ID, lvl.Name, board, lvl.MaxTaps, lvl.Difficulty)
	}

	fmt.Println()
	fmt.Println("Run 'bleed play <id>' to play a level.")
}
