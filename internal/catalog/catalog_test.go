package catalog

import (
	"reflect"
	"sort"
	"testing"

	"github.com/quizdeck/quizdeck/internal/deck"
)

// syncDeck is the smallest deck that exercises declared order, the fallback
// category, and display numbering at once.
func syncDeck() *deck.Deck {
	return &deck.Deck{
		Questions: []deck.Question{
			{ID: 1, Category: "Sync", Text: "first", Options: []string{"a"}, CorrectAnswer: 0},
			{ID: 2, Text: "second", Options: []string{"a"}, CorrectAnswer: 0},
			{ID: 3, Category: "Sync", Text: "third", Options: []string{"a"}, CorrectAnswer: 0},
		},
		CategoryOrder: []string{"Sync"},
	}
}

func TestCategoriesDeclaredThenAlphabetical(t *testing.T) {
	c := New(&deck.Deck{
		Questions: []deck.Question{
			{ID: 1, Category: "Slices"},
			{ID: 2, Category: "Basics"},
			{ID: 3, Category: "Maps"},
			{ID: 4},
			{ID: 5, Category: "Basics"},
		},
		CategoryOrder: []string{"Maps", "Basics"},
	})
	want := []string{AllCategory, "Maps", "Basics", "Other", "Slices"}
	if got := c.Categories(); !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}

func TestCategoriesNoDeclaredOrder(t *testing.T) {
	c := New(&deck.Deck{
		Questions: []deck.Question{
			{ID: 1, Category: "Slices"},
			{ID: 2, Category: "Basics"},
			{ID: 3},
		},
	})
	want := []string{AllCategory, "Basics", "Other", "Slices"}
	if got := c.Categories(); !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}

func TestCategoriesEmptyDeck(t *testing.T) {
	c := New(&deck.Deck{})
	want := []string{AllCategory}
	if got := c.Categories(); !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestCategoriesSkipAbsentAndDuplicateDeclared(t *testing.T) {
	c := New(&deck.Deck{
		Questions: []deck.Question{
			{ID: 1, Category: "Maps"},
			{ID: 2, Category: "Basics"},
		},
		CategoryOrder: []string{"Channels", "Maps", "Maps"},
	})
	want := []string{AllCategory, "Maps", "Basics"}
	if got := c.Categories(); !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}

func TestDisplayIDsFollowCanonicalOrder(t *testing.T) {
	c := New(syncDeck())

	wantCats := []string{AllCategory, "Sync", "Other"}
	if got := c.Categories(); !reflect.DeepEqual(got, wantCats) {
		t.Errorf("Categories() = %v, want %v", got, wantCats)
	}

	want := map[int]int{1: 1, 3: 2, 2: 3}
	for id, n := range want {
		if got := c.DisplayID(id); got != n {
			t.Errorf("DisplayID(%d) = %d, want %d", id, got, n)
		}
	}
	if got := c.DisplayID(99); got != 0 {
		t.Errorf("DisplayID(99) = %d, want 0", got)
	}
}

func TestDisplayIDsAreABijection(t *testing.T) {
	d := deck.Default()
	c := New(d)

	got := make([]int, 0, c.Len())
	for _, q := range d.Questions {
		got = append(got, c.DisplayID(q.ID))
	}
	sort.Ints(got)
	for i, n := range got {
		if n != i+1 {
			t.Fatalf("display numbers are not 1..%d: %v", c.Len(), got)
		}
	}
}

func TestDisplayIDsIgnoreFilterState(t *testing.T) {
	c := New(syncDeck())
	before := map[int]int{1: c.DisplayID(1), 2: c.DisplayID(2), 3: c.DisplayID(3)}

	c.Filter("third", "Sync")
	c.Filter("", "Other")

	for id, n := range before {
		if got := c.DisplayID(id); got != n {
			t.Errorf("DisplayID(%d) changed from %d to %d after filtering", id, n, got)
		}
	}
}

func TestCounts(t *testing.T) {
	c := New(syncDeck())
	tests := []struct {
		category string
		want     int
	}{
		{AllCategory, 3},
		{"Sync", 2},
		{"Other", 1},
		{"Missing", 0},
	}
	for _, tt := range tests {
		if got := c.Count(tt.category); got != tt.want {
			t.Errorf("Count(%q) = %d, want %d", tt.category, got, tt.want)
		}
	}
}

func TestCountsIgnoreFilterState(t *testing.T) {
	c := New(syncDeck())
	c.Filter("third", AllCategory)
	if got := c.Count("Sync"); got != 2 {
		t.Errorf("Count(Sync) = %d after filtering, want 2", got)
	}
}

func TestQuestionsReturnsCanonicalListing(t *testing.T) {
	c := New(syncDeck())
	var ids []int
	for _, q := range c.Questions() {
		ids = append(ids, q.ID)
	}
	want := []int{1, 3, 2}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("canonical ids = %v, want %v", ids, want)
	}
}

func TestNewCopiesTheDeck(t *testing.T) {
	d := syncDeck()
	c := New(d)
	d.Questions[0].Category = "Mutated"
	if got := c.Filter("", "Sync"); len(got) != 2 {
		t.Errorf("catalog shares storage with the deck: Filter(Sync) = %d questions, want 2", len(got))
	}
}
