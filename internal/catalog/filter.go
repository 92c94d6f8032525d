package catalog

import (
	"sort"
	"strings"

	"github.com/quizdeck/quizdeck/internal/deck"
)

// Filter returns the questions visible for a search term and category
// selection. The term matches case-insensitively against question text and
// code samples, never against option text or metadata. Results keep dataset
// order, except the AllCategory view of a deck with a declared category
// order, which re-sorts by that order; the sort is stable, so questions in
// the same category stay in dataset order.
func (c *Catalog) Filter(term, category string) []deck.Question {
	needle := strings.ToLower(term)
	out := make([]deck.Question, 0, len(c.questions))
	for _, q := range c.questions {
		if category != AllCategory && q.Category != category {
			continue
		}
		if needle != "" && !matches(q, needle) {
			continue
		}
		out = append(out, q)
	}
	if category == AllCategory && c.declared {
		sort.SliceStable(out, func(i, j int) bool {
			return c.rank[out[i].Category] < c.rank[out[j].Category]
		})
	}
	return out
}

func matches(q deck.Question, needle string) bool {
	if strings.Contains(strings.ToLower(q.Text), needle) {
		return true
	}
	return q.Code != "" && strings.Contains(strings.ToLower(q.Code), needle)
}
