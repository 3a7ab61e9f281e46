package cmd

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dwilk016/quizdrill/internal/bank"
	"github.com/dwilk016/quizdrill/internal/history"
	"github.com/dwilk016/quizdrill/internal/metrics"
	"github.com/dwilk016/quizdrill/internal/quiz"
	"github.com/dwilk016/quizdrill/internal/selector"
	"github.com/dwilk016/quizdrill/internal/ui/theme"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run an interactive practice quiz",
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().String("bank", "questions.json", "Path to the question bank file")
	playCmd.Flags().String("topic", "", "Only include questions on this topic")
	playCmd.Flags().Int("num", 0, "Number of questions when not specifying per-difficulty counts")
	playCmd.Flags().Int("easy", 0, "Number of easy questions")
	playCmd.Flags().Int("medium", 0, "Number of medium questions")
	playCmd.Flags().Int("hard", 0, "Number of hard questions")
	playCmd.Flags().String("metrics", metrics.DefaultPath, "Path to the metrics snapshot")
	playCmd.Flags().Int64("seed", 0, "Random seed for reproducible selection (0 = time-based)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	bankPath, _ := cmd.Flags().GetString("bank")
	topic, _ := cmd.Flags().GetString("topic")
	num, _ := cmd.Flags().GetInt("num")
	easy, _ := cmd.Flags().GetInt("easy")
	medium, _ := cmd.Flags().GetInt("medium")
	hard, _ := cmd.Flags().GetInt("hard")
	metricsPath, _ := cmd.Flags().GetString("metrics")
	seed, _ := cmd.Flags().GetInt64("seed")

	// A broken bank aborts before any question is asked.
	b, err := bank.Load(bankPath)
	if err != nil {
		return err
	}

	// A corrupt metrics snapshot is recoverable: warn and start fresh.
	store, err := metrics.Load(metricsPath)
	if err != nil {
		var corrupt *metrics.CorruptMetricsError
		if !errors.As(err, &corrupt) {
			return err
		}
		fmt.Fprintln(os.Stderr, "metrics snapshot unreadable, starting fresh:", err)
		store = metrics.NewStore()
	}

	policy := selector.Policy{Topic: topic, Total: num}
	for _, dc := range []selector.DifficultyCount{
		{Difficulty: "easy", Count: easy},
		{Difficulty: "medium", Count: medium},
		{Difficulty: "hard", Count: hard},
	} {
		if dc.Count > 0 {
			policy.ByDifficulty = append(policy.ByDifficulty, dc)
		}
	}

	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}
	questions := selector.New(rng).Select(b, policy)

	session := quiz.NewSession(quiz.NewConsolePrompter(os.Stdin, os.Stdout), store)
	started := time.Now()
	result, err := session.Run(questions)
	if err != nil {
		return err
	}
	finished := time.Now()

	renderReport(os.Stdout, result)

	if err := store.Save(metricsPath); err != nil {
		return fmt.Errorf("save metrics: %w", err)
	}

	recordHistory(cmd, result, started, finished, topic)
	return nil
}

// renderReport prints the final score and the per-question detail list in
// quiz order.
func renderReport(w io.Writer, result *quiz.Result) {
	fmt.Fprintf(w, "\n%s %.1f%%\n",
		theme.Title.Render("Quiz complete. Score:"), result.Score)
	if len(result.Details) == 0 {
		return
	}
	fmt.Fprintln(w, "Details:")
	for _, d := range result.Details {
		marker := theme.Incorrect.Render("✗")
		if d.Correct {
			marker = theme.Correct.Render("✓")
		}
		fmt.Fprintf(w, " %s %s\n", marker, d.Question)
		fmt.Fprintf(w, "   your answer: %s\n", d.Answer)
		fmt.Fprintf(w, "   %s\n", theme.Dim.Render(d.Explanation))
	}
}

// recordHistory appends the completed session to the history database.
// History is best-effort: a failure is reported but does not fail the run.
func recordHistory(cmd *cobra.Command, result *quiz.Result, started, finished time.Time, topic string) {
	path, err := resolveHistoryPath(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "session history unavailable:", err)
		return
	}
	st, err := history.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "session history unavailable:", err)
		return
	}
	defer st.Close()

	correct := 0
	answers := make([]history.AnswerRecord, 0, len(result.Answered))
	for _, aq := range result.Answered {
		if aq.Correct {
			correct++
		}
		answers = append(answers, history.AnswerRecord{
			QuestionID: aq.Question.ID,
			Response:   aq.Answer,
			Correct:    aq.Correct,
		})
	}

	rec := history.SessionRecord{
		ID:         uuid.NewString(),
		StartedAt:  started,
		FinishedAt: finished,
		Topic:      topic,
		Asked:      len(result.Answered),
		Correct:    correct,
		Score:      result.Score,
	}
	if err := st.AppendSession(cmd.Context(), rec, answers); err != nil {
		fmt.Fprintln(os.Stderr, "record session history:", err)
	}
}
