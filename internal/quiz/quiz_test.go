package quiz

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/dwilk016/quizdrill/internal/bank"
	"github.com/dwilk016/quizdrill/internal/metrics"
	"github.com/dwilk016/quizdrill/internal/selector"
)

// knowItAllPrompter answers every multiple-choice question correctly.
type knowItAllPrompter struct {
	last bank.Question
}

func (p *knowItAllPrompter) ShowQuestion(q bank.Question) { p.last = q }

func (p *knowItAllPrompter) ShowFeedback(bool, string) {}

func (p *knowItAllPrompter) RequestAnswer() (string, error) {
	return strconv.Itoa(p.last.Correct + 1), nil
}

func TestSelectAndRunEndToEnd(t *testing.T) {
	easy1 := mcq(1, 0, "a", "b")
	easy1.Difficulty = "easy"
	easy2 := mcq(2, 1, "a", "b")
	easy2.Difficulty = "easy"
	hard := mcq(3, 0, "a", "b")
	hard.Difficulty = "hard"

	b, err := bank.New([]bank.Question{easy1, easy2, hard})
	if err != nil {
		t.Fatalf("build bank: %v", err)
	}

	sel := selector.New(rand.New(rand.NewSource(11)))
	questions := sel.Select(b, selector.Policy{
		ByDifficulty: []selector.DifficultyCount{{Difficulty: "easy", Count: 2}},
	})

	if len(questions) != 2 {
		t.Fatalf("selected %d questions, want 2", len(questions))
	}
	for _, q := range questions {
		if q.Difficulty != "easy" {
			t.Fatalf("selected %s question %d, want only easy", q.Difficulty, q.ID)
		}
	}

	store := metrics.NewStore()
	result, err := NewSession(&knowItAllPrompter{}, store).Run(questions)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if result.Score != 100.0 {
		t.Errorf("score = %v, want 100.0", result.Score)
	}
	for _, q := range questions {
		if got := store.Get(q.ID); got.Attempts != 1 || got.Correct != 1 {
			t.Errorf("stats for %d = %+v, want attempts 1 correct 1", q.ID, got)
		}
	}
}
