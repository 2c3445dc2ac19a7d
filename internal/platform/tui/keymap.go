package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term-snake/internal/core"
)

// KeyMap translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the arrow-key bindings. ctrl+c quits as well because
// raw mode delivers it as a key instead of a signal.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Quit:  key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// MapKey translates a key message to an action. Unbound keys map to
// core.ActionNone.
func (km KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.Up):
		return core.ActionUp
	case key.Matches(msg, km.Down):
		return core.ActionDown
	case key.Matches(msg, km.Left):
		return core.ActionLeft
	case key.Matches(msg, km.Right):
		return core.ActionRight
	case key.Matches(msg, km.Quit):
		return core.ActionQuit
	}
	return core.ActionNone
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Left, km.Right, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp()}
}

// HelpLine renders the one-line controls summary as plain text, truncated to
// width. The game draws it into its own cell buffer, so no styling is applied.
func (km KeyMap) HelpLine(width int) string {
	plain := lipgloss.NewStyle()
	h := help.New()
	h.Width = width
	h.Styles = help.Styles{
		Ellipsis:       plain,
		ShortKey:       plain,
		ShortDesc:      plain,
		ShortSeparator: plain,
		FullKey:        plain,
		FullDesc:       plain,
		FullSeparator:  plain,
	}
	return h.View(km)
}
