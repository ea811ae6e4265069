package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arcadelab/bleed/internal/levels"
	"github.com/arcadelab/bleed/internal/storage"
)

// Scoreboard layout constants
const (
	maxScores = 100 // Max scores to load per level
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLevel, k.PrevLevel, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLevel, k.PrevLevel},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev level"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	catalog     []levels.Level
	levelCursor int
	store       *storage.Store
	scores      []storage.ScoreEntry
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(catalog []levels.Level, store *storage.Store, width, height int) ScoreboardModel {
	keys := DefaultScoreboardKeyMap()
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		catalog: catalog,
		store:   store,
		help:    h,
		keys:    keys,
		width:   width,
		height:  height,
	}
	m.table = m.buildTable()
	m.loadScores()
	return m
}

// buildTable creates the score table with styled headers.
func (m *ScoreboardModel) buildTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Taps", Width: 5},
		{Title: "Coverage", Width: 9},
		{Title: "Date", Width: 17},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 5)),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("11")).
		Bold(true)
	t.SetStyles(styles)

	return t
}

// loadScores fills the table with the current level's scores.
func (m *ScoreboardModel) loadScores() {
	m.scores = nil
	if m.store == nil || len(m.catalog) == 0 {
		m.table.SetRows(nil)
		return
	}

	level := m.catalog[m.levelCursor]
	scores, err := m.store.TopScores(level.ID, maxScores)
	if err != nil {
		m.table.SetRows(nil)
		return
	}
	m.scores = scores

	rows := make([]table.Row, len(scores))
	for i, entry := range scores {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", entry.Points),
			fmt.Sprintf("%d", entry.TapsUsed),
			fmt.Sprintf("%.1f%%", entry.Completion),
			entry.CreatedAt.Format("2006-01-02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextLevel):
			if len(m.catalog) > 0 {
				m.levelCursor = (m.levelCursor + 1) % len(m.catalog)
				m.loadScores()
			}
			return m, nil
		case key.Matches(msg, m.keys.PrevLevel):
			if len(m.catalog) > 0 {
				m.levelCursor = (m.levelCursor - 1 + len(m.catalog)) % len(m.catalog)
				m.loadScores()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(m.height-8, 5))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	if len(m.catalog) == 0 {
		return "\n  No levels available.\n"
	}

	level := m.catalog[m.levelCursor]
	title := fmt.Sprintf(" High Scores — %s (%s)  [%d/%d]",
		level.Name, level.Difficulty, m.levelCursor+1, len(m.catalog))

	body := m.table.View()
	if len(m.scores) == 0 {
		body = dimStyle.Render("\n  No scores recorded for this level yet.\n")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		hudStyle.Render(title),
		"",
		body,
		"",
		" "+m.help.View(m.keys),
	)
}

// GoingBack returns true if user pressed back (not quit).
func (m ScoreboardModel) GoingBack() bool {
	return m.goingBack
}

// RunScoreboard shows the scoreboard in a standalone program. Returns true
// if the user backed out to the menu rather than quitting.
func RunScoreboard(catalog []levels.Level, store *storage.Store, width, height int) (bool, error) {
	model := NewScoreboardModel(catalog, store, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	if m, ok := finalModel.(ScoreboardModel); ok {
		return m.GoingBack(), nil
	}
	return false, nil
}
