package cmd

import (
	"github.com/spf13/cobra"

	"github.com/minhvu/wordvault/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "wordvault",
	Short: "English-Vietnamese vocabulary trainer",
	Long:  "WordVault is a terminal vocabulary trainer: look up words through an AI dictionary, save them as cards, and review them on a spaced repetition schedule.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WORDVAULT_DB env var)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then WORDVAULT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
