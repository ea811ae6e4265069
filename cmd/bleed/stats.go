package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/arcadelab/bleed/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show play statistics across all levels",
	Long: `Display aggregated statistics for every level that has been played:
play count, best score, average score, best coverage and last play time.

Examples:
  bleed stats
  bleed stats --db ./scores.db`,
	Run: runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.GetAllLevelStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving statistics: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No plays recorded yet.")
		fmt.Println()
		fmt.Println("Run 'bleed menu' to play your first level.")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println("Play statistics:")
	fmt.Println()
	fmt.Printf("  %-20s  %-6s  %-6s  %-8s  %-9s  %s\n",
		"Level", "Plays", "Best", "Avg", "Coverage", "Last played")
	fmt.Printf("  %-20s  %-6s  %-6s  %-8s  %-9s  %s\n",
		"-----", "-----", "----", "---", "--------", "-----------")

	for _, id := range ids {
		ls := stats[id]
		name := ls.LevelName
		if name == "" {
			name = id
		}
		lastPlayed := "-"
		if !ls.LastPlayed.IsZero() {
			lastPlayed = ls.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-20s  %-6d  %-6d  %-8.1f  %-9s  %s\n",
			name, ls.PlaysCount, ls.HighScore, ls.AvgPoints,
			fmt.Sprintf("%.1f%%", ls.BestCompletion), lastPlayed)
	}
}
