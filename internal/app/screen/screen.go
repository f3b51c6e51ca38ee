// Package screen provides the modal overlay screens for lazysvn.
package screen

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Key constants for navigation.
const (
	keyEnter    = "enter"
	keyEsc      = "esc"
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
	keyQ        = "q"
	keyCtrlC    = "ctrl+c"
)

// Screen represents a modal overlay that handles input and renders itself.
type Screen interface {
	// Update processes a key message and returns the updated screen and any
	// command. Returning nil for the Screen signals that it should close.
	Update(msg tea.KeyMsg) (Screen, tea.Cmd)

	// View renders the screen's content.
	View() string

	// Type returns the screen's type identifier.
	Type() Type

	// Resize sets the outer dimensions the screen renders into.
	Resize(width, height int)
}

// Type identifies the kind of screen being displayed.
type Type int

// Screen type constants.
const (
	TypeNone Type = iota
	TypeConfirm
	TypeMessage
)

// String returns a human-readable name for the screen type.
func (t Type) String() string {
	switch t {
	case TypeConfirm:
		return "confirm"
	case TypeMessage:
		return "message"
	default:
		return "none"
	}
}
