package cmd

import (
	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/config"
	"github.com/quizdeck/quizdeck/internal/deck"
	"github.com/quizdeck/quizdeck/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizdeck",
	Short: "Interactive quiz study guide for the terminal",
	Long:  "QuizDeck is a terminal study guide that serves a deck of multiple-choice questions with searchable categories and persistent reveal tracking.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZDECK_DB and the config file)")
	rootCmd.PersistentFlags().String("deck", "", "Path to a deck JSON file (overrides QUIZDECK_DECK and the config file)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using the --db flag (highest
// priority), then QUIZDECK_DB or the config file, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// loadDeck returns the deck from the --deck flag, QUIZDECK_DECK or the
// config file, or falls back to the embedded default deck.
func loadDeck(cmd *cobra.Command, cfg *config.Config) (*deck.Deck, error) {
	path, _ := cmd.Flags().GetString("deck")
	if path == "" {
		path = cfg.DeckPath
	}
	if path == "" {
		return deck.Default(), nil
	}
	return deck.LoadFile(path)
}
