// Package tui provides the Bubble Tea integration for the game: the play
// screen, level picker menu, scoreboard, and SSH server support.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SecondMsg is sent once per second to advance the session play clock.
type SecondMsg time.Time

// secondCmd returns a Bubble Tea command that emits SecondMsg every second.
// The clock is advisory; a skipped tick only costs time bonus, never
// correctness.
func secondCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return SecondMsg(t)
	})
}
