// Package help provides the key reference view for the TUI.
package help

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/holocron-labs/holocron-cli/internal/adapters/driving/tui/keymap"
	"github.com/holocron-labs/holocron-cli/internal/adapters/driving/tui/styles"
)

// View renders the full list of keybindings.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	width  int
	height int
}

// NewView creates a new help view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{styles: s, keymap: km}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// View renders the keybinding reference.
func (v *View) View() string {
	lines := make([]string, 0, 16)
	lines = append(lines, v.styles.Title.Render("Holocron - Keys"), "")

	for _, binding := range v.keymap.All() {
		h := binding.Help()
		lines = append(lines, fmt.Sprintf("  %-12s %s", h.Key, h.Desc))
	}

	lines = append(lines, "", v.styles.Muted.Render("Press ? or esc to return."))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Bindings returns the listed keybindings (for testing).
func (v *View) Bindings() []key.Binding {
	return v.keymap.All()
}
