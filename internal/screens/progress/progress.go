// Package progress implements the study progress screen: overall and
// per-category reveal counts plus a guarded reset action.
package progress

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/catalog"
	"github.com/quizdeck/quizdeck/internal/reveal"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// ProgressScreen summarizes how much of the deck has been revealed.
type ProgressScreen struct {
	catalog    *catalog.Catalog
	reveals    *reveal.Store
	resetBtn   components.Button
	confirming bool
	errText    string
}

var _ screen.Screen = (*ProgressScreen)(nil)

// New creates the progress screen.
func New(cat *catalog.Catalog, reveals *reveal.Store) *ProgressScreen {
	s := &ProgressScreen{
		catalog: cat,
		reveals: reveals,
	}
	s.resetBtn = components.NewButton("RESET ALL PROGRESS", func() tea.Cmd {
		s.confirming = true
		return nil
	})
	return s
}

// NewConfirming creates the progress screen with the reset prompt
// already open. The home menu's reset entry lands here.
func NewConfirming(cat *catalog.Catalog, reveals *reveal.Store) *ProgressScreen {
	s := New(cat, reveals)
	s.confirming = true
	return s
}

func (s *ProgressScreen) Init() tea.Cmd {
	return nil
}

func (s *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.confirming {
		switch keyMsg.String() {
		case "y", "Y":
			s.resetAll()
		case "n", "N", "esc":
			s.confirming = false
		}
		return s, nil
	}

	if keyMsg.String() == "esc" {
		return s, func() tea.Msg {
			return router.PopScreenMsg{}
		}
	}

	var cmd tea.Cmd
	s.resetBtn, cmd = s.resetBtn.Update(msg)
	return s, cmd
}

func (s *ProgressScreen) resetAll() {
	s.confirming = false
	if err := s.reveals.ResetAll(context.Background()); err != nil {
		s.errText = fmt.Sprintf("could not reset progress: %v", err)
		return
	}
	s.errText = ""
}

func (s *ProgressScreen) View(width, height int) string {
	if s.confirming {
		return s.renderConfirm(width, height)
	}

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Your Progress")

	prog := s.reveals.Progress()
	overall := components.NewProgressBar(float64(prog.Percent)/100, true, 46).View()
	summary := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d of %d answers revealed", prog.Revealed, prog.Total))

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  " + title + "\n\n")
	sb.WriteString("  " + overall + "\n")
	sb.WriteString("  " + summary + "\n\n")
	sb.WriteString(s.renderCategories())
	sb.WriteString("\n")
	sb.WriteString(s.resetBtn.View() + "\n")

	if s.errText != "" {
		warn := lipgloss.NewStyle().Foreground(theme.Error).Italic(true)
		sb.WriteString("\n  " + warn.Render(s.errText) + "\n")
	}

	return sb.String()
}

// renderCategories lists each category with its own reveal bar.
func (s *ProgressScreen) renderCategories() string {
	label := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("BY CATEGORY")

	categories := s.categoryNames()
	nameWidth := 0
	for _, c := range categories {
		if w := lipgloss.Width(c); w > nameWidth {
			nameWidth = w
		}
	}

	revealed := s.revealedByCategory()

	var sb strings.Builder
	sb.WriteString("  " + label + "\n")
	for _, c := range categories {
		total := s.catalog.Count(c)
		done := revealed[c]
		pct := 0.0
		if total > 0 {
			pct = float64(done) / float64(total)
		}

		name := lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(nameWidth).
			Render(c)
		bar := components.NewProgressBar(pct, false, 18).View()
		count := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d/%d", done, total))

		sb.WriteString(fmt.Sprintf("  %s  %s  %s\n", name, bar, count))
	}
	return sb.String()
}

func (s *ProgressScreen) categoryNames() []string {
	var names []string
	for _, c := range s.catalog.Categories() {
		if c == catalog.AllCategory {
			continue
		}
		names = append(names, c)
	}
	return names
}

func (s *ProgressScreen) revealedByCategory() map[string]int {
	counts := make(map[string]int)
	for _, q := range s.catalog.Questions() {
		if _, ok := s.reveals.Revealed(q.ID); ok {
			counts[q.Category]++
		}
	}
	return counts
}

func (s *ProgressScreen) renderConfirm(width, height int) string {
	question := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Reset all progress?")
	detail := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("This hides every answer you have revealed.")
	keys := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render("[y] Yes    [n] No")

	card := theme.Card.Render(question + "\n" + detail + "\n\n" + keys)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (s *ProgressScreen) Title() string {
	return "Progress"
}

// KeyHints switches with the confirm state.
func (s *ProgressScreen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: "Reset"},
			{Key: "N", Description: "Keep"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Reset progress"},
		{Key: "Esc", Description: "Back"},
	}
}
