package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/quizdeck/quizdeck/internal/catalog"
	"github.com/quizdeck/quizdeck/internal/reveal"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/screens/browse"
	"github.com/quizdeck/quizdeck/internal/screens/progress"
	"github.com/quizdeck/quizdeck/internal/ui/components"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deckTitle  string
	catalog    *catalog.Catalog
	reveals    *reveal.Store
	menu       components.Menu
	menuLabels []string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen for the given deck catalog.
func New(deckTitle string, cat *catalog.Catalog, reveals *reveal.Store) *HomeScreen {
	menuLabels := []string{"BROWSE QUESTIONS", "PROGRESS", "RESET PROGRESS", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: browse.New(cat, reveals)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progress.New(cat, reveals)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progress.NewConfirming(cat, reveals)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deckTitle:  deckTitle,
		catalog:    cat,
		reveals:    reveals,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	// Stats are read live so the bar stays current after a browse
	// session reveals more answers.
	prog := h.reveals.Progress()
	categories := len(h.catalog.Categories()) - 1 // "All" is synthetic

	var sections []string

	sections = append(sections,
		renderBanner(cw, compact)+"\n"+renderSubtitle(h.deckTitle, cw))

	sections = append(sections, renderStatsBar(
		h.catalog.Len(), categories, prog.Percent, cw, compact))

	sections = append(sections, renderHomeMenu(
		h.menuLabels, h.menu.Selected, cw))

	content := strings.Join(sections, "\n\n")

	// Wrap in the double-border frame, centered in the full area
	return renderHomeFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
