package catalog

import (
	"testing"

	"github.com/quizdeck/quizdeck/internal/deck"
)

func searchDeck() *deck.Deck {
	return &deck.Deck{
		Questions: []deck.Question{
			{
				ID:       1,
				Category: "Arrays",
				Text:     "How do you iterate?",
				Code:     "foreach (var x in int[] array)",
				Options:  []string{"loop", "array"},
			},
			{
				ID:       2,
				Category: "Strings",
				Text:     "What does Trim do?",
				Options:  []string{"a", "b"},
			},
			{
				ID:       3,
				Category: "Arrays",
				Text:     "ARRAY bounds are checked when?",
				Options:  []string{"a", "b"},
			},
		},
	}
}

func filteredIDs(qs []deck.Question) []int {
	ids := make([]int, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	return ids
}

func TestFilterSearch(t *testing.T) {
	c := New(searchDeck())
	tests := []struct {
		name     string
		term     string
		category string
		want     []int
	}{
		{"empty term matches everything", "", AllCategory, []int{1, 2, 3}},
		{"matches question text", "trim", AllCategory, []int{2}},
		{"case insensitive both ways", "array", AllCategory, []int{1, 3}},
		{"matches code body", "foreach", AllCategory, []int{1}},
		{"never matches option text", "loop", AllCategory, nil},
		{"never matches category name", "strings", AllCategory, nil},
		{"term and category combine", "array", "Arrays", []int{1, 3}},
		{"category excludes text match", "trim", "Arrays", nil},
		{"exact category only", "", "Strings", []int{2}},
		{"unknown category is empty", "", "Pointers", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filteredIDs(c.Filter(tt.term, tt.category))
			if len(got) != len(tt.want) {
				t.Fatalf("Filter(%q, %q) = %v, want %v", tt.term, tt.category, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Filter(%q, %q) = %v, want %v", tt.term, tt.category, got, tt.want)
				}
			}
		})
	}
}

// A term that appears only in a question's code sample still matches, even
// though the question text never mentions it.
func TestFilterSearchReachesIntoCode(t *testing.T) {
	c := New(&deck.Deck{
		Questions: []deck.Question{
			{ID: 1, Text: "What prints?", Code: "int[] array = new int[3];"},
			{ID: 2, Text: "No sample here"},
		},
	})
	got := filteredIDs(c.Filter("array", AllCategory))
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("Filter(array, All) = %v, want [1]", got)
	}
}

func TestFilterAllResortsOnlyWithDeclaredOrder(t *testing.T) {
	questions := []deck.Question{
		{ID: 1, Category: "Zebra", Text: "z1"},
		{ID: 2, Category: "Apple", Text: "a1"},
		{ID: 3, Category: "Zebra", Text: "z2"},
	}

	t.Run("declared order resorts stably", func(t *testing.T) {
		c := New(&deck.Deck{Questions: questions, CategoryOrder: []string{"Zebra"}})
		got := filteredIDs(c.Filter("", AllCategory))
		want := []int{1, 3, 2}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("Filter order = %v, want %v", got, want)
			}
		}
	})

	t.Run("no declared order keeps dataset order", func(t *testing.T) {
		c := New(&deck.Deck{Questions: questions})
		got := filteredIDs(c.Filter("", AllCategory))
		want := []int{1, 2, 3}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("Filter order = %v, want %v", got, want)
			}
		}
	})

	t.Run("specific category keeps dataset order", func(t *testing.T) {
		c := New(&deck.Deck{Questions: questions, CategoryOrder: []string{"Zebra"}})
		got := filteredIDs(c.Filter("", "Zebra"))
		want := []int{1, 3}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("Filter order = %v, want %v", got, want)
			}
		}
	})
}

func TestFilterNormalizesMissingCategory(t *testing.T) {
	c := New(&deck.Deck{
		Questions: []deck.Question{
			{ID: 1, Text: "categorized", Category: "Maps"},
			{ID: 2, Text: "uncategorized"},
		},
	})
	got := filteredIDs(c.Filter("", deck.FallbackCategory))
	if len(got) != 1 || got[0] != 2 {
		t.Errorf("Filter(\"\", Other) = %v, want [2]", got)
	}
}
