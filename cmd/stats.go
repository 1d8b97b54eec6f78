package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/minhvu/wordvault/internal/deck"
	"github.com/minhvu/wordvault/internal/srs"
	"github.com/minhvu/wordvault/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection and review statistics",
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

		ctx := cmd.Context()
		now := time.Now().UnixMilli()

		d := deck.New(st.Cards())
		if err := d.Load(ctx, now); err != nil {
			return fmt.Errorf("load deck: %w", err)
		}

		levels := make(map[int]int)
		for _, c := range d.Cards() {
			levels[c.SRSLevel]++
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Cards:        %d\n", d.Len())
		fmt.Fprintf(out, "Due now:      %d\n", len(d.Due(now)))
		fmt.Fprintln(out)
		for lvl := 1; lvl <= srs.MaxLevel; lvl++ {
			fmt.Fprintf(out, "Level %d:      %d\n", lvl, levels[lvl])
		}

		reviews, err := st.Events().ReviewCounts(ctx)
		if err != nil {
			return fmt.Errorf("review stats: %w", err)
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Reviews:      %d total, %d in the last 7 days\n", reviews.Total, reviews.Last7Days)
		if reviews.Total > 0 {
			pct := float64(reviews.Successes) / float64(reviews.Total) * 100
			fmt.Fprintf(out, "Success rate: %.0f%%\n", pct)
		}
		return nil
	},
}
