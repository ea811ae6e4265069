package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadelab/bleed/internal/game"
	"github.com/arcadelab/bleed/internal/levels"
	"github.com/arcadelab/bleed/internal/storage"
)

// Model is the Bubble Tea model for the play screen. It owns one game
// session and serializes every session event through the Update loop, which
// upholds the engine's single-thread-per-session contract.
type Model struct {
	level   levels.Level
	session *game.Session
	store   *storage.Store

	keyMapper  *KeyMapper
	cursorRow  int
	cursorCol  int
	statusMsg  string
	width      int
	height     int
	quitting   bool
	backToMenu bool
}

// NewModel creates a play-screen model for the given level. The store may
// be nil; the game then runs without score persistence.
func NewModel(level levels.Level, store *storage.Store, width, height int) (Model, error) {
	var sink game.ScoreSink
	if store != nil {
		sink = store
	}
	session, err := level.NewSession(sink)
	if err != nil {
		return Model{}, err
	}

	return Model{
		level:     level,
		session:   session,
		store:     store,
		keyMapper: NewKeyMapper(),
		width:     width,
		height:    height,
	}, nil
}

// Init starts the one-second play clock.
func (m Model) Init() tea.Cmd {
	return secondCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case SecondMsg:
		m.session.Tick()
		return m, secondCmd()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if colorIndex := m.keyMapper.MapColorKey(msg); colorIndex >= 0 {
		if m.session.Status() == game.StatusActive && colorIndex < len(m.level.Palette) {
			m.session.SelectColor(colorIndex)
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		// Abandoning an active session yields no score.
		m.session.Exit()
		m.quitting = true
		return m, tea.Quit
	}

	size := m.session.Grid().Size()
	switch action {
	case ActionUp:
		if m.cursorRow > 0 {
			m.cursorRow--
		}
	case ActionDown:
		if m.cursorRow < size-1 {
			m.cursorRow++
		}
	case ActionLeft:
		if m.cursorCol > 0 {
			m.cursorCol--
		}
	case ActionRight:
		if m.cursorCol < size-1 {
			m.cursorCol++
		}
	case ActionTap:
		result := m.session.TapCell(m.cursorRow, m.cursorCol)
		m.statusMsg = statusText(result)
	case ActionReload:
		m.session.Reload()
		m.statusMsg = ""
	case ActionBack:
		if m.session.Status() == game.StatusEnded {
			m.backToMenu = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// statusText maps a tap result to the advisory line shown under the board.
func statusText(result game.TapResult) string {
	switch result.Outcome {
	case game.OutcomeAlreadyColored:
		return "Already colored — pick a gray cell."
	case game.OutcomeNoTapsLeft:
		return "No taps left."
	case game.OutcomeBled:
		if result.Ended {
			return ""
		}
		return "Color bled."
	default:
		return ""
	}
}

// View renders the play screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	hud := fmt.Sprintf(" %s  [%s]  Taps: %d/%d  Coverage: %.1f%%  Time: %s",
		m.level.Name,
		m.level.Difficulty,
		m.session.TapsUsed(), m.level.MaxTaps,
		m.session.CompletionPercent(),
		clock(m.session.ElapsedSeconds()),
	)
	b.WriteString(hudStyle.Render(hud))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(strings.Repeat("─", max(m.width, 1))))
	b.WriteString("\n\n")

	cursorRow, cursorCol := m.cursorRow, m.cursorCol
	if m.session.Status() == game.StatusEnded {
		cursorRow, cursorCol = -1, -1
	}
	b.WriteString(RenderBoard(m.session.Grid(), m.level.Palette, cursorRow, cursorCol))
	b.WriteString("\n\n")

	b.WriteString(" Colors: ")
	b.WriteString(RenderPalette(m.level.Palette, m.session.SelectedColor()))
	b.WriteString("\n")

	if m.statusMsg != "" {
		b.WriteString(dimStyle.Render(" " + m.statusMsg))
	}
	b.WriteString("\n")

	if m.session.Status() == game.StatusEnded {
		b.WriteString(m.renderEndSummary())
	} else {
		b.WriteString(dimStyle.Render(" Arrows: Move | Space: Bleed | 1-6: Color | R: Restart | Q: Quit"))
	}

	return b.String()
}

// renderEndSummary draws the terminal score breakdown.
func (m Model) renderEndSummary() string {
	var b strings.Builder

	score := m.session.LastScore()
	if score == nil {
		// Abandoned session: nothing was emitted.
		b.WriteString(dimStyle.Render(" Session ended. R: Restart | B: Menu | Q: Quit"))
		return b.String()
	}

	headline := "Out of taps!"
	if game.IsComplete(score.CompletionPercent) {
		headline = "Board complete!"
	}
	if game.IsPerfect(score.CompletionPercent) {
		headline = "Perfect board!"
	}

	b.WriteString("\n")
	b.WriteString(selectedStyle.Render(fmt.Sprintf(" %s  Score: %d", headline, score.Points)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf(" Coverage %.1f%% with %d taps in %s",
		score.CompletionPercent, score.TapsUsed, clock(m.session.ElapsedSeconds()))))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(" R: Play again | B: Menu | Q: Quit"))
	return b.String()
}

// clock formats seconds as m:ss.
func clock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// BackToMenu returns true if the user asked to return to the level picker.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run plays one level in a standalone Bubble Tea program. Returns true if
// the user asked for the menu rather than quitting outright.
func Run(level levels.Level, store *storage.Store, width, height int) (bool, error) {
	model, err := NewModel(level, store, width, height)
	if err != nil {
		return false, err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	if m, ok := finalModel.(Model); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
