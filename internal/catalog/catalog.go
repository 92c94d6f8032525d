// Package catalog derives browsing state from a deck: the ordered category
// list, stable display numbers, and filtered question views. A catalog is
// computed once per deck load and is read-only afterwards.
package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/quizdeck/quizdeck/internal/deck"
)

// AllCategory is the synthetic first entry of every category list. Selecting
// it shows the whole deck.
const AllCategory = "All"

// Catalog holds the values derived from a static deck. Questions keep their
// dataset order internally; the canonical listing fixes each question's
// display number for the life of the session.
type Catalog struct {
	questions  []deck.Question // dataset order, categories normalized
	canonical  []deck.Question // category-ordered listing behind display numbers
	categories []string
	counts     map[string]int
	rank       map[string]int
	displayID  map[int]int
	declared   bool
}

// New builds a catalog from a deck. The deck is copied, so later mutation of
// the argument does not affect the catalog.
func New(d *deck.Deck) *Catalog {
	c := &Catalog{
		questions: make([]deck.Question, len(d.Questions)),
		counts:    make(map[string]int),
		displayID: make(map[int]int, len(d.Questions)),
		declared:  len(d.CategoryOrder) > 0,
	}
	copy(c.questions, d.Questions)
	for i := range c.questions {
		c.questions[i].Category = deck.NormalizeCategory(c.questions[i].Category)
		c.counts[c.questions[i].Category]++
	}

	c.categories, c.rank = resolveCategories(c.counts, d.CategoryOrder)

	c.canonical = make([]deck.Question, len(c.questions))
	copy(c.canonical, c.questions)
	sort.SliceStable(c.canonical, func(i, j int) bool {
		return c.rank[c.canonical[i].Category] < c.rank[c.canonical[j].Category]
	})
	for i, q := range c.canonical {
		c.displayID[q.ID] = i + 1
	}
	return c
}

// resolveCategories orders the distinct categories of the deck: declared
// precedence entries first, in declared order, then everything else
// alphabetically. Declared entries matching no question drop out, duplicates
// collapse to their first occurrence. The returned rank maps each category
// to its position in that order.
func resolveCategories(counts map[string]int, declared []string) ([]string, map[string]int) {
	ordered := make([]string, 0, len(counts))
	seen := make(map[string]bool, len(declared))
	for _, cat := range declared {
		if counts[cat] > 0 && !seen[cat] {
			ordered = append(ordered, cat)
			seen[cat] = true
		}
	}
	rest := make([]string, 0, len(counts))
	for cat := range counts {
		if !seen[cat] {
			rest = append(rest, cat)
		}
	}
	collate.New(language.English).SortStrings(rest)
	ordered = append(ordered, rest...)

	rank := make(map[string]int, len(ordered))
	for i, cat := range ordered {
		rank[cat] = i
	}
	return append([]string{AllCategory}, ordered...), rank
}

// Categories returns the category tabs in display order, AllCategory first.
// An empty deck yields just AllCategory.
func (c *Catalog) Categories() []string {
	return c.categories
}

// Count reports how many deck questions carry the given category, always
// over the full deck regardless of any active filter. Count of AllCategory
// is the deck size.
func (c *Catalog) Count(category string) int {
	if category == AllCategory {
		return len(c.questions)
	}
	return c.counts[category]
}

// Len returns the number of questions in the deck.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// DisplayID returns the stable 1-based number a question is shown under. The
// numbering follows the canonical listing and never shifts as the search
// term or category selection changes. Unknown ids return 0.
func (c *Catalog) DisplayID(id int) int {
	return c.displayID[id]
}

// Questions returns the canonical category-ordered listing.
func (c *Catalog) Questions() []deck.Question {
	return c.canonical
}
