package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rgballs/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a play action.
// Returns ActionNone for keys without a binding.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return core.ActionQuit
	case "w", "up":
		return core.ActionUp
	case "s", "down":
		return core.ActionDown
	case "a", "left":
		return core.ActionLeft
	case "d", "right":
		return core.ActionRight
	case " ":
		return core.ActionUseItem
	case "z":
		return core.ActionPrevItem
	case "x":
		return core.ActionNextItem
	case "h":
		return core.ActionToggleHUD
	case "enter":
		return core.ActionConfirm
	case "r":
		return core.ActionRestart
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionPrev
	MenuActionNext
	MenuActionPageUp
	MenuActionPageDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a level menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "left", "down", "a", "s", "h", "j":
		return MenuActionPrev
	case "right", "up", "d", "w", "l", "k":
		return MenuActionNext
	case "pgup":
		return MenuActionPageUp
	case "pgdown":
		return MenuActionPageDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
