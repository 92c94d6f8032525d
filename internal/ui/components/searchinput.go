package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// SearchInput wraps bubbles/textinput as the browse screen's search box. It
// starts blurred; the screen focuses it when the user enters search mode.
type SearchInput struct {
	Model textinput.Model
}

// NewSearchInput creates a styled search input.
func NewSearchInput(placeholder string, charLimit int) SearchInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return SearchInput{Model: ti}
}

// Init returns nil; the input only blinks once focused.
func (s SearchInput) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (s SearchInput) Update(msg tea.Msg) (SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the search input.
func (s SearchInput) View() string {
	return s.Model.View()
}

// Value returns the current search term.
func (s SearchInput) Value() string {
	return s.Model.Value()
}

// Focused reports whether the input is capturing keystrokes.
func (s SearchInput) Focused() bool {
	return s.Model.Focused()
}

// Focus puts the input into editing mode.
func (s *SearchInput) Focus() tea.Cmd {
	return s.Model.Focus()
}

// Blur leaves editing mode, keeping the current term.
func (s *SearchInput) Blur() {
	s.Model.Blur()
}

// Clear empties the search term.
func (s *SearchInput) Clear() {
	s.Model.SetValue("")
}
