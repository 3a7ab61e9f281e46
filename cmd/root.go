package cmd

import (
	"github.com/dwilk016/quizdrill/internal/history"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizdrill",
	Short: "Practice quiz generator for the terminal",
	Long:  "Quizdrill builds practice quizzes from a question bank, grades your answers interactively, and tracks per-question performance across runs.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("history", "", "Path to the session history database (overrides QUIZDRILL_HISTORY env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveHistoryPath returns the history database path using --history flag
// (highest priority), then the QUIZDRILL_HISTORY env var, then the default
// XDG path.
func resolveHistoryPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("history"); p != "" {
		return p, history.EnsureDir(p)
	}
	return history.DefaultPath()
}
