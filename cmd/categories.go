package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/catalog"
	"github.com/quizdeck/quizdeck/internal/config"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the deck's resolved categories and question counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		d, err := loadDeck(cmd, cfg)
		if err != nil {
			return fmt.Errorf("load deck: %w", err)
		}

		cat := catalog.New(d)

		nameWidth := 0
		for _, c := range cat.Categories() {
			if len(c) > nameWidth {
				nameWidth = len(c)
			}
		}
		for _, c := range cat.Categories() {
			fmt.Printf("%-*s  %d\n", nameWidth, c, cat.Count(c))
		}
		return nil
	},
}
