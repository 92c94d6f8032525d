// Package question implements the single-question detail screen where
// an answer can be revealed, changed and hidden again.
package question

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/deck"
	"github.com/quizdeck/quizdeck/internal/reveal"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// QuestionScreen shows one question with its options. Enter reveals
// the highlighted option and the reveal is persisted across runs.
type QuestionScreen struct {
	question  deck.Question
	displayID int
	reveals   *reveal.Store
	options   components.OptionList
	errText   string

	// prev and next build the adjacent question screens; nil at the
	// ends of the list.
	prev func() screen.Screen
	next func() screen.Screen
}

var _ screen.Screen = (*QuestionScreen)(nil)

// New creates the question screen, restoring a persisted reveal if
// one exists.
func New(q deck.Question, displayID int, reveals *reveal.Store) *QuestionScreen {
	options := components.NewOptionList(q.Options, q.CorrectAnswer)
	if idx, ok := reveals.Revealed(q.ID); ok {
		options.SetRevealed(idx)
	}
	return &QuestionScreen{
		question:  q,
		displayID: displayID,
		reveals:   reveals,
		options:   options,
	}
}

// SetNeighbors wires the screens reached with n and p. A step replaces
// this screen instead of stacking on top of it, so esc still returns
// straight to the list.
func (s *QuestionScreen) SetNeighbors(prev, next func() screen.Screen) {
	s.prev = prev
	s.next = next
}

func (s *QuestionScreen) Init() tea.Cmd {
	return nil
}

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key := keyMsg.String(); key {
	case "esc":
		return s, func() tea.Msg {
			return router.PopScreenMsg{}
		}
	case "enter":
		if !s.options.Revealed() {
			s.reveal(s.options.Cursor)
		}
		return s, nil
	case "u":
		if s.options.Revealed() {
			s.unreveal()
		}
		return s, nil
	case "a", "b", "c", "d":
		if !s.options.Revealed() {
			idx := int(key[0] - 'a')
			if idx < len(s.question.Options) {
				s.options.Cursor = idx
				s.reveal(idx)
			}
		}
		return s, nil
	case "n":
		if s.next != nil {
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: s.next()}
			}
		}
		return s, nil
	case "p":
		if s.prev != nil {
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: s.prev()}
			}
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.options, cmd = s.options.Update(msg)
	return s, cmd
}

// reveal persists the choice and flips the option list. Storage
// failures keep the question hidden and surface the error.
func (s *QuestionScreen) reveal(idx int) {
	if err := s.reveals.Reveal(context.Background(), s.question.ID, idx); err != nil {
		s.errText = fmt.Sprintf("could not save reveal: %v", err)
		return
	}
	s.options.SetRevealed(idx)
	s.errText = ""
}

func (s *QuestionScreen) unreveal() {
	if err := s.reveals.Unreveal(context.Background(), s.question.ID); err != nil {
		s.errText = fmt.Sprintf("could not save reveal: %v", err)
		return
	}
	s.options.ClearRevealed()
	s.errText = ""
}

func (s *QuestionScreen) View(width, height int) string {
	textWidth := width - 6
	if textWidth < 20 {
		textWidth = 20
	}

	headline := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("#%d · %s", s.displayID, s.question.Category))

	body := lipgloss.NewStyle().
		Width(textWidth).
		Render(components.RenderQuestionText(s.question.Text))

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(indent(headline))
	sb.WriteString("\n\n")
	sb.WriteString(indent(body))
	sb.WriteString("\n")

	if s.question.Code != "" {
		codeWidth := textWidth
		if codeWidth > 72 {
			codeWidth = 72
		}
		block := components.RenderCodeBlock(s.question.Code, s.question.CodeLanguage, codeWidth)
		sb.WriteString("\n")
		sb.WriteString(indent(block))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(indent(s.options.View()))
	sb.WriteString("\n")

	if feedback := s.renderFeedback(); feedback != "" {
		sb.WriteString("\n")
		sb.WriteString(indent(feedback))
		sb.WriteString("\n")
	}

	if s.errText != "" {
		warn := lipgloss.NewStyle().Foreground(theme.Error).Italic(true)
		sb.WriteString("\n")
		sb.WriteString(indent(warn.Render(s.errText)))
		sb.WriteString("\n")
	}

	return sb.String()
}

// renderFeedback shows whether the revealed pick was right, and which
// option was correct when it was not.
func (s *QuestionScreen) renderFeedback() string {
	if !s.options.Revealed() {
		return ""
	}
	if s.options.IsCorrect() {
		return theme.Correct.Render("✓ Correct")
	}
	letter := string(rune('A' + s.question.CorrectAnswer))
	return theme.Incorrect.Render(fmt.Sprintf("✗ The correct answer is %s", letter))
}

func (s *QuestionScreen) Title() string {
	return "Question"
}

// KeyHints switches with the reveal state. The stepping hint shows
// only when a neighbor exists.
func (s *QuestionScreen) KeyHints() []layout.KeyHint {
	var hints []layout.KeyHint
	if s.options.Revealed() {
		hints = []layout.KeyHint{
			{Key: "U", Description: "Hide answer"},
		}
	} else {
		hints = []layout.KeyHint{
			{Key: "↑/↓", Description: "Move"},
			{Key: "Enter", Description: "Reveal"},
			{Key: "A-D", Description: "Pick"},
		}
	}
	if s.prev != nil || s.next != nil {
		hints = append(hints, layout.KeyHint{Key: "N/P", Description: "Next/prev"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// indent prefixes every line with a two-space left margin.
func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}
