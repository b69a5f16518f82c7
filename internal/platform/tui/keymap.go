package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ogrinko/bastion/internal/core"
)

// KeyMapper translates Bubble Tea key messages to battle actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a battle action.
// Returns the action and whether it's a hard-quit request (ctrl+c), which
// bypasses the defender controller and kills the program.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isInterrupt bool) {
	key := msg.String()

	switch key {
	case "ctrl+c":
		return core.ActionQuit, true
	case "q":
		return core.ActionQuit, false
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case "enter":
		return core.ActionConfirm, false
	}

	// Every other key is still delivered so the defender consumes it.
	return core.ActionOther, false
}
