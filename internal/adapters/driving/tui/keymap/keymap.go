// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application without signing out.
	Quit key.Binding

	// SignOut clears the session and exits.
	SignOut key.Binding

	// Search focuses the search input.
	Search key.Binding

	// Submit confirms the search input.
	Submit key.Binding

	// Cancel leaves the search input without searching.
	Cancel key.Binding

	// NextCategory cycles forward through categories.
	NextCategory key.Binding

	// PrevCategory cycles backward through categories.
	PrevCategory key.Binding

	// NextPage moves to the next page.
	NextPage key.Binding

	// PrevPage moves to the previous page.
	PrevPage key.Binding

	// Reload refetches the current page.
	Reload key.Binding

	// ToggleSidebar shows or hides the category sidebar.
	ToggleSidebar key.Binding

	// Help switches to the key reference view.
	Help key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		SignOut: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "sign out"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next category"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev category"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l", "n"),
			key.WithHelp("→/n", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←/p", "prev page"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		ToggleSidebar: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle sidebar"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// All returns every keybinding in display order.
func (k *KeyMap) All() []key.Binding {
	return []key.Binding{
		k.Search, k.Submit, k.Cancel,
		k.NextCategory, k.PrevCategory,
		k.NextPage, k.PrevPage,
		k.Reload, k.ToggleSidebar, k.Help,
		k.SignOut, k.Quit,
	}
}

// BrowseHelp returns keybindings shown while browsing.
func (k *KeyMap) BrowseHelp() []key.Binding {
	return []key.Binding{k.Search, k.NextPage, k.NextCategory, k.Help, k.SignOut, k.Quit}
}

// SearchHelp returns keybindings shown while the search input is focused.
func (k *KeyMap) SearchHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
