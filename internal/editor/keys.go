package editor

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

// SaveKey saves the open editor. Terminals cannot report ctrl+enter, so the
// primary-modifier-plus-Enter chord is alt+enter, with ctrl+s as an alias.
var SaveKey = key.NewBinding(
	key.WithKeys("alt+enter", "ctrl+s"),
	key.WithHelp("alt+enter/ctrl+s", "save"),
)

// CancelKey discards edits and closes the open editor.
var CancelKey = key.NewBinding(
	key.WithKeys("esc"),
	key.WithHelp("esc", "cancel"),
)

// IsSaveKey reports whether a bubbletea key string triggers save.
func IsSaveKey(k string) bool {
	return slices.Contains(SaveKey.Keys(), k)
}

// IsCancelKey reports whether a bubbletea key string triggers cancel.
func IsCancelKey(k string) bool {
	return slices.Contains(CancelKey.Keys(), k)
}
