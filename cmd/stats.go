package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bevuihoc/bevuihoc/internal/config"
	"github.com/bevuihoc/bevuihoc/internal/roster"
	"github.com/bevuihoc/bevuihoc/internal/store"
	"github.com/bevuihoc/bevuihoc/internal/tracker"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

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

		fmt.Printf("Missed words: %d\n", trk.MissedCount())
		if n := trk.MissedCount(); n > 0 {
			sounds := make([]string, 0, n)
			for _, c := range trk.Missed() {
				sounds = append(sounds, c.Sound)
			}
			fmt.Printf("  %s\n", strings.Join(sounds, ", "))
		}
		if last := trk.LastStudy(); !last.IsZero() {
			fmt.Printf("Last study:   %s\n", last.Local().Format("2006-01-02 15:04"))
		}

		if cfg.MongoURI == "" {
			return nil
		}
		repo, disconnect, err := roster.Connect(cmd.Context(), cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Roster store unavailable:", err)
			return nil
		}
		defer disconnect(context.Background())

		students, err := repo.List(cmd.Context())
		if err != nil {
			fmt.Fprintln(os.Stderr, "Roster fetch failed:", err)
			return nil
		}
		fmt.Printf("\nClass roster: %d student(s)\n", len(students))
		for _, s := range students {
			fmt.Printf("  %s %-20s words %-4d quizzes %-4d best %d\n",
				s.Icon, s.Name, s.TotalWordsLearned, s.QuizzesTaken, s.HighScore)
		}
		return nil
	},
}
