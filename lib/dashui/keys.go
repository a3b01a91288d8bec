// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

package dashui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the dashboard.
type KeyMap struct {
	// Panel focus movement.
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Fullscreen toggles the focused panel to the whole content area.
	Fullscreen key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style movement
// (hjkl) alongside standard arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "focus up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "focus down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "focus left"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "focus right"),
	),
	Fullscreen: key.NewBinding(
		key.WithKeys("f", "enter"),
		key.WithHelp("f", "fullscreen"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
