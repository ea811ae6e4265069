package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Action represents a semantic play-screen action, abstracted from physical
// key presses. This centralizes key bindings and makes them testable.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionTap
	ActionReload
	ActionBack
	ActionQuit
)

// KeyMapper translates Bubble Tea key messages to play-screen actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return ActionQuit, true
	case "w", "up", "k":
		return ActionUp, false
	case "s", "down", "j":
		return ActionDown, false
	case "a", "left", "h":
		return ActionLeft, false
	case "d", "right", "l":
		return ActionRight, false
	case " ", "enter":
		return ActionTap, false
	case "r":
		return ActionReload, false
	case "b", "esc":
		return ActionBack, false
	}
	return ActionNone, false
}

// MapColorKey translates the 1-6 hotkeys to a 0-based palette index.
// Returns -1 if the key is not a color hotkey.
func (km *KeyMapper) MapColorKey(msg tea.KeyMsg) int {
	key := msg.String()
	if len(key) == 1 && key[0] >= '1' && key[0] <= '6' {
		return int(key[0] - '1')
	}
	return -1
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
