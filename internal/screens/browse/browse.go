// Package browse implements the question list screen: a category tab
// bar, a live search box and a scrollable list of matching questions.
package browse

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/catalog"
	"github.com/quizdeck/quizdeck/internal/deck"
	"github.com/quizdeck/quizdeck/internal/reveal"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/screens/question"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// BrowseScreen lists the deck's questions filtered by category and
// search term. Selecting a question pushes the question screen.
type BrowseScreen struct {
	catalog *catalog.Catalog
	reveals *reveal.Store
	tabs    components.Tabs
	search  components.SearchInput
	results []deck.Question
	cursor  int
}

var _ screen.Screen = (*BrowseScreen)(nil)

// New creates the browse screen over the full catalog.
func New(cat *catalog.Catalog, reveals *reveal.Store) *BrowseScreen {
	categories := cat.Categories()
	counts := make(map[string]int, len(categories))
	for _, c := range categories {
		counts[c] = cat.Count(c)
	}

	b := &BrowseScreen{
		catalog: cat,
		reveals: reveals,
		tabs:    components.NewTabs(categories, counts),
		search:  components.NewSearchInput("type to search...", 64),
	}
	b.refresh()
	return b
}

func (b *BrowseScreen) Init() tea.Cmd {
	return nil
}

// refresh recomputes the result list for the current term and tab.
func (b *BrowseScreen) refresh() {
	b.results = b.catalog.Filter(b.search.Value(), b.tabs.Selected())
	b.cursor = 0
}

func (b *BrowseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		// Cursor blink and similar messages belong to the input.
		var cmd tea.Cmd
		b.search, cmd = b.search.Update(msg)
		return b, cmd
	}

	if b.search.Focused() {
		return b.updateSearching(keyMsg)
	}
	return b.updateList(keyMsg)
}

// updateSearching handles keys while the search box has focus. Every
// keystroke refilters immediately.
func (b *BrowseScreen) updateSearching(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		b.search.Blur()
		return b, nil
	case "esc":
		b.search.Blur()
		b.search.Clear()
		b.refresh()
		return b, nil
	}

	var cmd tea.Cmd
	b.search, cmd = b.search.Update(msg)
	b.refresh()
	return b, cmd
}

// updateList handles keys while the list has focus.
func (b *BrowseScreen) updateList(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "/":
		return b, b.search.Focus()
	case "tab", "right", "l":
		b.tabs.Next()
		b.refresh()
	case "shift+tab", "left", "h":
		b.tabs.Prev()
		b.refresh()
	case "up", "k":
		if b.cursor > 0 {
			b.cursor--
		}
	case "down", "j":
		if b.cursor < len(b.results)-1 {
			b.cursor++
		}
	case "enter":
		if b.cursor < len(b.results) {
			s := b.questionAt(b.cursor)
			return b, func() tea.Msg {
				return router.PushScreenMsg{Screen: s}
			}
		}
	case "esc":
		return b, func() tea.Msg {
			return router.PopScreenMsg{}
		}
	}
	return b, nil
}

// questionAt builds the detail screen for the result at index i. The
// list cursor follows, and neighbor closures cover the adjacent
// results so the detail screen can step through the list in place.
// The result list cannot change while a detail screen is on top, so
// the captured indexes stay valid.
func (b *BrowseScreen) questionAt(i int) screen.Screen {
	b.cursor = i
	q := b.results[i]
	s := question.New(q, b.catalog.DisplayID(q.ID), b.reveals)

	var prev, next func() screen.Screen
	if i > 0 {
		prev = func() screen.Screen { return b.questionAt(i - 1) }
	}
	if i < len(b.results)-1 {
		next = func() screen.Screen { return b.questionAt(i + 1) }
	}
	s.SetNeighbors(prev, next)
	return s
}

func (b *BrowseScreen) View(width, height int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  " + b.search.View() + "\n")
	sb.WriteString("  " + b.tabs.View() + "\n")

	dividerWidth := width - 4
	if dividerWidth < 1 {
		dividerWidth = 1
	}
	sb.WriteString("  " + dim.Render(strings.Repeat("─", dividerWidth)) + "\n")

	visible := height - 6
	if visible < 1 {
		visible = 1
	}
	sb.WriteString(b.renderRows(width, visible))

	sb.WriteString("\n")
	sb.WriteString("  " + dim.Render(b.statusLine()) + "\n")
	return sb.String()
}

// renderRows renders the window of result rows around the cursor.
func (b *BrowseScreen) renderRows(width, visible int) string {
	if len(b.results) == 0 {
		empty := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
		return "\n  " + empty.Render("No matching questions.") + "\n"
	}

	start := 0
	if b.cursor >= visible {
		start = b.cursor - visible + 1
	}
	end := start + visible
	if end > len(b.results) {
		end = len(b.results)
	}

	showCategory := b.tabs.Selected() == catalog.AllCategory

	var sb strings.Builder
	for i := start; i < end; i++ {
		sb.WriteString(b.renderRow(b.results[i], i == b.cursor, showCategory, width))
		sb.WriteString("\n")
	}
	// Pad so the status line stays anchored at the bottom.
	for i := end - start; i < visible; i++ {
		sb.WriteString("\n")
	}
	return sb.String()
}

func (b *BrowseScreen) renderRow(q deck.Question, selected, showCategory bool, width int) string {
	marker := "  "
	if selected {
		marker = "▸ "
	}

	mark := "  "
	if _, ok := b.reveals.Revealed(q.ID); ok {
		mark = "✓ "
	}

	id := fmt.Sprintf("#%-4d", b.catalog.DisplayID(q.ID))

	tag := ""
	if showCategory && q.Category != "" {
		tag = "  · " + q.Category
	}

	// Backticks are inline-code markers in question text; the list
	// shows plain text only.
	text := strings.ReplaceAll(q.Text, "`", "")
	budget := width - 4 - len(marker) - len(id) - 2 - lipgloss.Width(tag)
	text = truncate(text, budget)

	line := marker + id + mark + text + tag
	if selected {
		return "  " + theme.Selected.Render(line)
	}

	idStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	markStyle := lipgloss.NewStyle().Foreground(theme.Success)
	tagStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	return "  " + marker + idStyle.Render(id) + markStyle.Render(mark) +
		theme.Unselected.Render(text) + tagStyle.Render(tag)
}

func (b *BrowseScreen) statusLine() string {
	term := b.search.Value()
	if term != "" {
		return fmt.Sprintf("%d of %d questions match %q", len(b.results), b.catalog.Len(), term)
	}
	if b.tabs.Selected() == catalog.AllCategory {
		return fmt.Sprintf("%d questions", len(b.results))
	}
	return fmt.Sprintf("%d questions in %s", len(b.results), b.tabs.Selected())
}

func (b *BrowseScreen) Title() string {
	return "Browse"
}

// KeyHints adapts the footer to search or list mode.
func (b *BrowseScreen) KeyHints() []layout.KeyHint {
	if b.search.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Clear"},
		}
	}
	return []layout.KeyHint{
		{Key: "/", Description: "Search"},
		{Key: "Tab", Description: "Category"},
		{Key: "↑/↓", Description: "Move"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

// truncate cuts s to at most max cells, appending an ellipsis when
// anything was removed.
func truncate(s string, max int) string {
	if max <= 1 {
		return "…"
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
