package cmd

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bevuihoc/bevuihoc/internal/app"
	"github.com/bevuihoc/bevuihoc/internal/config"
	"github.com/bevuihoc/bevuihoc/internal/roster"
	"github.com/bevuihoc/bevuihoc/internal/screen"
	"github.com/bevuihoc/bevuihoc/internal/speech"
	"github.com/bevuihoc/bevuihoc/internal/store"
	"github.com/bevuihoc/bevuihoc/internal/tracker"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
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

	repo := roster.Repo(roster.NewMemRepo())
	if cfg.MongoURI != "" {
		mongoRepo, disconnect, err := roster.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Roster store unavailable:", err)
			fmt.Fprintln(os.Stderr, "Class profiles will not be saved between runs.")
		} else {
			repo = mongoRepo
			defer disconnect(context.Background())
		}
	}

	synth := speech.Synthesizer(speech.Noop{})
	if cfg.GeminiAPIKey != "" {
		gem, err := speech.NewGemini(ctx, cfg.GeminiAPIKey)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Speech unavailable:", err)
		} else {
			synth = gem
		}
	}

	now := time.Now()
	deps := &screen.Deps{
		RNG:     rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(os.Getpid()))),
		Tracker: trk,
		Roster:  repo,
		Speech:  synth,
	}

	return app.Run(deps)
}
