package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/quizdeck/quizdeck/internal/catalog"
	"github.com/quizdeck/quizdeck/internal/deck"
	"github.com/quizdeck/quizdeck/internal/reveal"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/screens/browse"
	"github.com/quizdeck/quizdeck/internal/screens/progress"
	"github.com/quizdeck/quizdeck/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestScreen(t *testing.T) (*HomeScreen, *reveal.Store) {
	t.Helper()

	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	d := &deck.Deck{
		Title:         "Fixture",
		CategoryOrder: []string{"Sync"},
		Questions: []deck.Question{
			{ID: 1, Category: "Other", Text: "one", Options: []string{"a", "b"}, CorrectAnswer: 0},
			{ID: 2, Category: "Sync", Text: "two", Options: []string{"a", "b"}, CorrectAnswer: 0},
			{ID: 3, Category: "Sync", Text: "three", Options: []string{"a", "b"}, CorrectAnswer: 1},
		},
	}
	cat := catalog.New(d)

	rev, err := reveal.Load(context.Background(), st.Slots(), cat.Len())
	if err != nil {
		t.Fatalf("load reveal state: %v", err)
	}
	return New("Fixture", cat, rev), rev
}

func update(t *testing.T, h *HomeScreen, msg tea.Msg) (*HomeScreen, tea.Cmd) {
	t.Helper()
	var scr screen.Screen = h
	scr, cmd := scr.Update(msg)
	next, ok := scr.(*HomeScreen)
	if !ok {
		t.Fatalf("Update returned %T, want *HomeScreen", scr)
	}
	return next, cmd
}

func TestMenuSelectionMovesAndClamps(t *testing.T) {
	h, _ := newTestScreen(t)

	if h.menu.Selected != 0 {
		t.Fatalf("initial selection = %d, want 0", h.menu.Selected)
	}

	h, _ = update(t, h, keyPress('j'))
	h, _ = update(t, h, keyPress('j'))
	if h.menu.Selected != 2 {
		t.Fatalf("selection after jj = %d, want 2", h.menu.Selected)
	}

	for i := 0; i < 5; i++ {
		h, _ = update(t, h, keyPress('j'))
	}
	if h.menu.Selected != 3 {
		t.Errorf("selection = %d past last item, want 3", h.menu.Selected)
	}

	for i := 0; i < 6; i++ {
		h, _ = update(t, h, keyPress('k'))
	}
	if h.menu.Selected != 0 {
		t.Errorf("selection = %d past first item, want 0", h.menu.Selected)
	}
}

func TestBrowseEntryPushesBrowseScreen(t *testing.T) {
	h, _ := newTestScreen(t)

	_, cmd := update(t, h, specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("enter produced no command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("enter produced %T, want PushScreenMsg", cmd())
	}
	if _, ok := push.Screen.(*browse.BrowseScreen); !ok {
		t.Errorf("pushed %T, want *browse.BrowseScreen", push.Screen)
	}
}

func TestProgressEntryPushesProgressScreen(t *testing.T) {
	h, _ := newTestScreen(t)

	h, _ = update(t, h, keyPress('j'))
	_, cmd := update(t, h, specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("enter produced no command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("enter produced %T, want PushScreenMsg", cmd())
	}
	if _, ok := push.Screen.(*progress.ProgressScreen); !ok {
		t.Errorf("pushed %T, want *progress.ProgressScreen", push.Screen)
	}
}

func TestResetEntryOpensConfirmPrompt(t *testing.T) {
	h, _ := newTestScreen(t)

	h, _ = update(t, h, keyPress('j'))
	h, _ = update(t, h, keyPress('j'))
	_, cmd := update(t, h, specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("enter produced no command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("enter produced %T, want PushScreenMsg", cmd())
	}
	if !strings.Contains(push.Screen.View(80, 24), "Reset all progress?") {
		t.Error("pushed screen does not show the reset prompt")
	}
}

func TestExitQuits(t *testing.T) {
	h, _ := newTestScreen(t)

	for i := 0; i < 3; i++ {
		h, _ = update(t, h, keyPress('j'))
	}
	_, cmd := update(t, h, specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("enter produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("enter produced %T, want tea.QuitMsg", cmd())
	}
}

func TestViewShowsLiveStats(t *testing.T) {
	h, rev := newTestScreen(t)

	if err := rev.Reveal(context.Background(), 2, 0); err != nil {
		t.Fatalf("reveal: %v", err)
	}

	view := h.View(100, 32)
	for _, want := range []string{
		"Fixture",
		"3 QUESTIONS",
		"2 CATEGORIES",
		"33% REVEALED",
		"▸ BROWSE QUESTIONS",
		"RESET PROGRESS",
		"EXIT",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestCompactViewDropsBlockBanner(t *testing.T) {
	h, _ := newTestScreen(t)

	view := h.View(60, 18)
	if !strings.Contains(view, bannerCompact) {
		t.Error("compact view missing inline title")
	}
	if strings.Contains(view, "██") {
		t.Error("compact view still renders the block banner")
	}
}

func TestTitle(t *testing.T) {
	h, _ := newTestScreen(t)
	if h.Title() != "Home" {
		t.Errorf("Title() = %q, want Home", h.Title())
	}
}
