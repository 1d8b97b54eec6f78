package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/minhvu/wordvault/internal/app"
	"github.com/minhvu/wordvault/internal/deck"
	"github.com/minhvu/wordvault/internal/llm"
	"github.com/minhvu/wordvault/internal/lookup"
	"github.com/minhvu/wordvault/internal/speech"
	"github.com/minhvu/wordvault/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	events := st.Events()
	d := deck.New(st.Cards(), deck.WithReviewRecorder(events))
	if err := d.Load(ctx, time.Now().UnixMilli()); err != nil {
		return fmt.Errorf("load deck: %w", err)
	}

	opts := app.Options{
		Deck:    d,
		Speaker: speech.New(),
	}

	provider, err := llm.NewProviderFromEnv(ctx, events)
	if err != nil {
		fmt.Fprintln(os.Stderr, "AI provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Dictionary lookups will be unavailable.")
	} else {
		opts.Lookup = lookup.NewService(provider, st.Cache(), lookup.DefaultConfig())
	}

	return app.Run(opts)
}
