package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-sim/internal/core"
)

// KeyMapper translates Bubble Tea key messages to scene keys.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

var sceneKeys = map[string]core.Key{
	"w": core.KeyW, "a": core.KeyA, "s": core.KeyS, "d": core.KeyD,
	"up": core.KeyUp, "down": core.KeyDown, "left": core.KeyLeft, "right": core.KeyRight,
	" ": core.KeySpace, "t": core.KeyT, "r": core.KeyR, "e": core.KeyE, "p": core.KeyP,
	"enter": core.KeyEnter,
	"1": core.Key1, "2": core.Key2, "3": core.Key3, "4": core.Key4, "5": core.Key5,
	"6": core.Key6, "7": core.Key7, "8": core.Key8, "9": core.Key9,
}

// MapKey translates a key message to a scene key.
// Returns the key (may be KeyNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (k core.Key, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.KeyNone, true
	case "esc":
		return core.KeyEscape, false
	}

	if k, ok := sceneKeys[key]; ok {
		return k, false
	}
	return core.KeyNone, false
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
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
