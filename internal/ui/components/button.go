package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// Button fires its OnPress command on enter. Rendered in the danger style
// for destructive actions.
type Button struct {
	Label   string
	OnPress func() tea.Cmd
}

// NewButton creates a new button.
func NewButton(label string, onPress func() tea.Cmd) Button {
	return Button{Label: label, OnPress: onPress}
}

// Update handles key events.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "enter" && b.OnPress != nil {
			return b, b.OnPress()
		}
	}
	return b, nil
}

// View renders the button.
func (b Button) View() string {
	return theme.ButtonDanger.Render("  ▸ " + b.Label + " ")
}
