package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// OptionList renders a question's lettered answer options and tracks the
// cursor. Once an option is revealed the list locks: the correct option
// shows green, a wrong revealed choice red, everything else dims. Navigation
// resumes when the reveal is cleared.
type OptionList struct {
	Options       []string
	CorrectIndex  int
	Cursor        int
	RevealedIndex int // -1 while unrevealed
}

// NewOptionList creates an option list in the unrevealed state.
func NewOptionList(options []string, correctIndex int) OptionList {
	return OptionList{
		Options:       options,
		CorrectIndex:  correctIndex,
		RevealedIndex: -1,
	}
}

// Init returns nil.
func (l OptionList) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement. A revealed list ignores input.
func (l OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if l.Revealed() {
		return l, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if l.Cursor > 0 {
			l.Cursor--
		}
	case "down", "j":
		if l.Cursor < len(l.Options)-1 {
			l.Cursor++
		}
	}

	return l, nil
}

// Revealed reports whether a choice is locked in.
func (l OptionList) Revealed() bool {
	return l.RevealedIndex >= 0
}

// SetRevealed locks the list to the given option, as when restoring a
// previously revealed question.
func (l *OptionList) SetRevealed(index int) {
	l.RevealedIndex = index
}

// ClearRevealed returns the list to the navigable state.
func (l *OptionList) ClearRevealed() {
	l.RevealedIndex = -1
}

// IsCorrect reports whether the revealed choice is the correct one.
func (l OptionList) IsCorrect() bool {
	return l.Revealed() && l.RevealedIndex == l.CorrectIndex
}

// View renders the option list.
func (l OptionList) View() string {
	var s string
	for i, opt := range l.Options {
		// Letters map positionally; decks cap options at four.
		label := string(rune('A' + i))
		prefix := "  "
		if i == l.Cursor && !l.Revealed() {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case l.Revealed() && i == l.CorrectIndex:
			s += theme.Correct.Render(line) + "\n"
		case l.Revealed() && i == l.RevealedIndex:
			s += theme.Incorrect.Render(line) + "\n"
		case l.Revealed():
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == l.Cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
