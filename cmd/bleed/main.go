// bleed is a terminal color-bleed puzzle: tap gray cells to flood a bounded
// patch of the board with your selected color before the tap budget runs out.
//
// Usage:
//
//	bleed play <level-id>    - Play a specific level
//	bleed menu               - Start the interactive level picker
//	bleed levels             - List available levels
//	bleed scores <level-id>  - Show high scores for a level
//	bleed stats              - Show play statistics across levels
//	bleed serve              - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>      - Set database path (default: ~/.bleed/scores.db)
//	--levels <dir>   - Extra level files directory (default: ~/.bleed/levels)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcadelab/bleed/internal/levels"
)

var (
	// Global flags
	flagDBPath    string
	flagLevelsDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bleed",
	Short: "Color Bleed - a tap-budget flood puzzle in your terminal",
	Long: `Color Bleed is a terminal puzzle game. Every tap on a gray cell bleeds
your selected color into a bounded patch around it; cover 95% of the
board before your taps run out.

Available commands:
  play     - Play a specific level directly
  menu     - Interactive level picker
  levels   - Show the level catalog
  scores   - View high scores for a level
  stats    - Play statistics across all levels
  serve    - Start SSH server for remote play

Examples:
  bleed menu
  bleed play 01_first_drops
  bleed scores 01_first_drops
  bleed serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bleed/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory with extra level YAML files (default: ~/.bleed/levels)")

	// Add subcommands
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}

// levelsDir resolves the extra-levels directory, falling back to the
// per-user default when the flag is unset.
func levelsDir() string {
	if flagLevelsDir != "" {
		return flagLevelsDir
	}
	return levels.UserLevelsDir()
}
