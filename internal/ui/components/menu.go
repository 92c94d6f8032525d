package components

import (
	tea "charm.land/bubbletea/v2"
)

// MenuItem is one entry in a navigation menu. Action returns the command
// to run when the entry is chosen.
type MenuItem struct {
	Label  string
	Action func() tea.Cmd
}

// Menu tracks the selected entry of a vertical menu and dispatches its
// action on enter. Rendering is owned by the screen.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the first entry selected.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Items)-1 {
			m.Selected++
		}
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			if act := m.Items[m.Selected].Action; act != nil {
				return m, act()
			}
		}
	}

	return m, nil
}
