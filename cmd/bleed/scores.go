package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcadelab/bleed/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <level-id>",
	Short: "Show high scores for a level",
	Long: `Display the top 10 high scores for the specified level.

Examples:
  bleed scores 01_first_drops
  bleed scores 04_full_saturation`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	levelID := args[0]

	level, err := newLoader().LoadByID(levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'bleed levels' to see available levels.")
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get top scores
	scores, err := store.TopScores(levelID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s (%s)\n", level.Name, level.Difficulty)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'bleed play %s' to set the first high score!\n", levelID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-5s  %-9s  %s\n", "Rank", "Score", "Taps", "Coverage", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-9s  %s\n", "----", "-----", "----", "--------", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		coverage := fmt.Sprintf("%.1f%%", entry.Completion)
		fmt.Printf("  %-4d  %-8d  %-5d  %-9s  %s\n",
			i+1, entry.Points, entry.TapsUsed, coverage, dateStr)
	}

	// Show high score
	fmt.Println()
	if high, err := store.HighScore(levelID); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}
