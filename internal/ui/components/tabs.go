package components

import (
	"fmt"
	"strings"

	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// Tabs is a horizontal category selector. Each tab shows its question count
// over the full deck, which never changes with the active filter.
type Tabs struct {
	Items  []string
	Counts map[string]int
	Active int
}

// NewTabs creates a tab row with the first tab active.
func NewTabs(items []string, counts map[string]int) Tabs {
	return Tabs{Items: items, Counts: counts}
}

// Next advances to the following tab, wrapping around.
func (t *Tabs) Next() {
	if len(t.Items) == 0 {
		return
	}
	t.Active = (t.Active + 1) % len(t.Items)
}

// Prev moves to the preceding tab, wrapping around.
func (t *Tabs) Prev() {
	if len(t.Items) == 0 {
		return
	}
	t.Active = (t.Active - 1 + len(t.Items)) % len(t.Items)
}

// Selected returns the active tab's label, or "" for an empty tab row.
func (t Tabs) Selected() string {
	if t.Active < 0 || t.Active >= len(t.Items) {
		return ""
	}
	return t.Items[t.Active]
}

// View renders the tab row.
func (t Tabs) View() string {
	parts := make([]string, 0, len(t.Items))
	for i, item := range t.Items {
		label := item
		if count, ok := t.Counts[item]; ok {
			label = fmt.Sprintf("%s (%d)", item, count)
		}
		if i == t.Active {
			parts = append(parts, theme.TabActive.Render(label))
		} else {
			parts = append(parts, theme.TabInactive.Render(label))
		}
	}
	return strings.Join(parts, " ")
}
