package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/catalog"
	"github.com/quizdeck/quizdeck/internal/config"
	"github.com/quizdeck/quizdeck/internal/reveal"
	"github.com/quizdeck/quizdeck/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show reveal progress without entering the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		d, err := loadDeck(cmd, cfg)
		if err != nil {
			return fmt.Errorf("load deck: %w", err)
		}
		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		cat := catalog.New(d)
		reveals, err := reveal.Load(ctx, st.Slots(), cat.Len())
		if err != nil {
			return err
		}

		prog := reveals.Progress()
		if d.Title != "" {
			fmt.Println("Deck:", d.Title)
		}
		fmt.Printf("Revealed %d of %d (%d%%)\n\n", prog.Revealed, prog.Total, prog.Percent)

		printCategoryTable(cat, reveals)

		events, err := st.Events().RecentReveals(ctx, 10)
		if err != nil {
			return fmt.Errorf("read events: %w", err)
		}
		if len(events) > 0 {
			fmt.Println("\nRecent activity:")
			for _, e := range events {
				fmt.Printf("  %s  %-10s %s\n",
					e.CreatedAt.Format("2006-01-02 15:04"), e.Kind, describeEvent(cat, e))
			}
		}
		return nil
	},
}

func printCategoryTable(cat *catalog.Catalog, reveals *reveal.Store) {
	revealed := make(map[string]int)
	for _, q := range cat.Questions() {
		if _, ok := reveals.Revealed(q.ID); ok {
			revealed[q.Category]++
		}
	}

	nameWidth := 0
	for _, c := range cat.Categories() {
		if c != catalog.AllCategory && len(c) > nameWidth {
			nameWidth = len(c)
		}
	}

	fmt.Println("By category:")
	for _, c := range cat.Categories() {
		if c == catalog.AllCategory {
			continue
		}
		fmt.Printf("  %-*s  %d/%d\n", nameWidth, c, revealed[c], cat.Count(c))
	}
}

// describeEvent names the question by its display number where the
// current deck still contains it.
func describeEvent(cat *catalog.Catalog, e store.RevealEvent) string {
	switch e.Kind {
	case store.EventRevealed:
		return fmt.Sprintf("%s option %c", questionRef(cat, e.QuestionID), 'A'+e.OptionIndex)
	case store.EventUnrevealed:
		return questionRef(cat, e.QuestionID)
	default:
		return ""
	}
}

func questionRef(cat *catalog.Catalog, id int) string {
	if display := cat.DisplayID(id); display != 0 {
		return fmt.Sprintf("#%d", display)
	}
	return fmt.Sprintf("id %d", id)
}
