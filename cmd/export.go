package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/minhvu/wordvault/internal/deck"
	"github.com/minhvu/wordvault/internal/export"
	"github.com/minhvu/wordvault/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all cards to a CSV file",
	Long:  "Writes the card collection as UTF-8 CSV (with BOM) to the given file, or to stdout when no file is given.",
	Args:  cobra.MaximumNArgs(1),
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

		d := deck.New(st.Cards())
		if err := d.Load(cmd.Context(), time.Now().UnixMilli()); err != nil {
			return fmt.Errorf("load deck: %w", err)
		}

		out := os.Stdout
		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("create %s: %w", args[0], err)
			}
			defer f.Close()
			out = f
		}

		if err := export.WriteCSV(out, d.Cards()); err != nil {
			return err
		}
		if len(args) == 1 {
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d cards to %s\n", d.Len(), args[0])
		}
		return nil
	},
}
