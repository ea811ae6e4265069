package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadelab/bleed/internal/levels"
	"github.com/arcadelab/bleed/internal/storage"
)

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	items          []levels.Level
	highScores     map[string]int
	cursor         int
	width          int
	height         int
	keyMapper      *KeyMapper
	quitting       bool
	selected       *levels.Level
	openScoreboard bool
}

// NewMenuModel creates a level picker over the given catalog. Per-level
// best scores are looked up once at construction; a nil store shows none.
func NewMenuModel(catalog []levels.Level, store *storage.Store, width, height int) MenuModel {
	highScores := make(map[string]int, len(catalog))
	if store != nil {
		for _, lvl := range catalog {
			if high, err := store.HighScore(lvl.ID); err == nil && high > 0 {
				highScores[lvl.ID] = high
			}
		}
	}

	return MenuModel{
		items:      catalog,
		highScores: highScores,
		width:      width,
		height:     height,
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(selectedStyle.Render("  C O L O R   B L E E D  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a level", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%-20s %dx%-3d %2d taps  %s",
			cursor, item.Name, item.GridSize, item.GridSize, item.MaxTaps,
			difficultyLabel(item.Difficulty))
		if high, ok := m.highScores[item.ID]; ok {
			line += dimStyle.Render(fmt.Sprintf("  best %d", high))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen level, or nil if none selected.
func (m MenuModel) Selected() *levels.Level {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// MenuResult holds the result of running the level picker.
type MenuResult struct {
	Level           *levels.Level
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the level picker and returns the selection result.
func RunMenu(catalog []levels.Level, store *storage.Store, width, height int) (MenuResult, error) {
	model := NewMenuModel(catalog, store, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}

	switch {
	case m.WantsScoreboard():
		return MenuResult{WantsScoreboard: true}, nil
	case m.IsQuitting() || m.Selected() == nil:
		return MenuResult{Quit: true}, nil
	default:
		return MenuResult{Level: m.Selected()}, nil
	}
}
