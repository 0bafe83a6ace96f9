package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/paperplane/internal/core"
)

// gameKeys binds key names, as reported by tea.KeyMsg.String, to actions.
// Terminals report no key releases, so every steer key is a fresh press.
var gameKeys = map[string]core.Action{
	"a": core.ActionLeft, "left": core.ActionLeft, "h": core.ActionLeft,
	"d": core.ActionRight, "right": core.ActionRight, "l": core.ActionRight,
	"enter": core.ActionConfirm, " ": core.ActionConfirm,
	"b": core.ActionBack, "esc": core.ActionBack,
	"p": core.ActionPause,
	"r": core.ActionRestart,
	"q": core.ActionQuit, "ctrl+c": core.ActionQuit,
}

// MenuAction is a navigation step in menus.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

var menuKeys = map[string]MenuAction{
	"w": MenuActionUp, "up": MenuActionUp, "k": MenuActionUp,
	"s": MenuActionDown, "down": MenuActionDown, "j": MenuActionDown,
	"a": MenuActionLeft, "left": MenuActionLeft, "h": MenuActionLeft,
	"d": MenuActionRight, "right": MenuActionRight, "l": MenuActionRight,
	"enter": MenuActionSelect, " ": MenuActionSelect,
	"b": MenuActionBack, "esc": MenuActionBack,
	"q": MenuActionQuit, "ctrl+c": MenuActionQuit,
	"tab": MenuActionScoreboard,
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
type KeyMapper struct {
	game map[string]core.Action
	menu map[string]MenuAction
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{game: gameKeys, menu: menuKeys}
}

// MapKey returns the game action for msg (ActionNone if unbound) and
// whether it asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action = km.game[msg.String()]
	return action, action == core.ActionQuit
}

// MapKeyToFrame sets the action for msg in frame and reports a quit request.
// Quit itself is never written into the frame.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MapKeyToMenuAction returns the menu action for msg.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return km.menu[msg.String()]
}
