package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/deck"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a deck file against the schema and dataset invariants",
	Long: `Validate a deck JSON file while authoring it.

Runtime loading trusts the deck; this command is where malformed
entries, duplicate ids and out-of-range answers get caught.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read deck: %w", err)
		}

		findings, err := deck.Lint(data)
		if err != nil {
			return fmt.Errorf("check deck: %w", err)
		}
		if len(findings) > 0 {
			fmt.Printf("%s: %d problem(s)\n", path, len(findings))
			for _, f := range findings {
				fmt.Println("  -", f)
			}
			return fmt.Errorf("%d problem(s) found", len(findings))
		}

		d, err := deck.Parse(data)
		if err != nil {
			return fmt.Errorf("parse deck: %w", err)
		}
		fmt.Printf("%s: OK (%d questions)\n", path, d.Len())
		return nil
	},
}
