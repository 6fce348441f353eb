package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bevuihoc/bevuihoc/internal/store"
	"github.com/bevuihoc/bevuihoc/internal/tracker"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the missed-word review pile",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		trk, err := tracker.New(st)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		n := trk.MissedCount()
		if err := trk.Reset(); err != nil {
			return err
		}
		fmt.Printf("Cleared %d missed word(s).\n", n)
		return nil
	},
}
