package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/config"
	"github.com/quizdeck/quizdeck/internal/reveal"
	"github.com/quizdeck/quizdeck/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all revealed answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
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
		reveals, err := reveal.Load(ctx, st.Slots(), 0)
		if err != nil {
			return err
		}

		count := reveals.Count()
		if count == 0 {
			fmt.Println("No revealed answers to clear.")
			return nil
		}

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Printf("This clears %d revealed answer(s). Continue? [y/N]: ", count)
			scanner := bufio.NewScanner(os.Stdin)
			if !scanner.Scan() {
				return nil
			}
			answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
			if answer != "y" && answer != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		reveals.Events = st.Events()
		reveals.SessionID = uuid.NewString()
		if err := reveals.ResetAll(ctx); err != nil {
			return err
		}
		fmt.Printf("Cleared %d revealed answer(s).\n", count)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
