package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dwilk016/quizdrill/internal/history"
	"github.com/dwilk016/quizdrill/internal/metrics"
	"github.com/dwilk016/quizdrill/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cumulative performance statistics",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().String("metrics", metrics.DefaultPath, "Path to the metrics snapshot")
}

func runStats(cmd *cobra.Command, args []string) error {
	metricsPath, _ := cmd.Flags().GetString("metrics")
	store, err := metrics.Load(metricsPath)
	if err != nil {
		var corrupt *metrics.CorruptMetricsError
		if !errors.As(err, &corrupt) {
			return err
		}
		fmt.Fprintln(os.Stderr, "metrics snapshot unreadable:", err)
		store = metrics.NewStore()
	}

	fmt.Println(theme.Title.Render("Per-question accuracy"))
	if store.Len() == 0 {
		fmt.Println(theme.Dim.Render("  no questions attempted yet"))
	}
	for _, id := range store.IDs() {
		qs := store.Get(id)
		accuracy := 100 * float64(qs.Correct) / float64(qs.Attempts)
		fmt.Printf("  question %-5d %d/%d correct (%.1f%%)\n", id, qs.Correct, qs.Attempts, accuracy)
	}

	path, err := resolveHistoryPath(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "session history unavailable:", err)
		return nil
	}
	st, err := history.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "session history unavailable:", err)
		return nil
	}
	defer st.Close()

	sessions, err := st.RecentSessions(cmd.Context(), 10)
	if err != nil {
		return fmt.Errorf("query session history: %w", err)
	}

	fmt.Println()
	fmt.Println(theme.Title.Render("Recent sessions"))
	if len(sessions) == 0 {
		fmt.Println(theme.Dim.Render("  no sessions recorded yet"))
	}
	for _, s := range sessions {
		topic := s.Topic
		if topic == "" {
			topic = "all topics"
		}
		fmt.Printf("  %s  %-15s %d/%d correct (%.1f%%)\n",
			s.FinishedAt.Local().Format("2006-01-02 15:04"), topic, s.Correct, s.Asked, s.Score)
	}
	return nil
}
