package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/app"
	"github.com/quizdeck/quizdeck/internal/catalog"
	"github.com/quizdeck/quizdeck/internal/config"
	"github.com/quizdeck/quizdeck/internal/reveal"
	"github.com/quizdeck/quizdeck/internal/store"
)

// runApp loads the deck, opens the store, and launches the TUI.
func runApp(cmd *cobra.Command) error {
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

	cat := catalog.New(d)
	reveals, err := reveal.Load(cmd.Context(), st.Slots(), cat.Len())
	if err != nil {
		return err
	}
	reveals.Events = st.Events()
	reveals.SessionID = uuid.NewString()

	title := d.Title
	if title == "" {
		title = "QuizDeck"
	}

	return app.Run(app.Options{
		DeckTitle: title,
		Catalog:   cat,
		Reveals:   reveals,
	})
}
