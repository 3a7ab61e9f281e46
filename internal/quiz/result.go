package quiz

import "github.com/dwilk016/quizdrill/internal/bank"

// AnsweredQuestion pairs a question with the graded response it received.
type AnsweredQuestion struct {
	Question bank.Question
	Answer   string
	Correct  bool
}

// Detail is the per-question line item reported after a quiz, in quiz order.
type Detail struct {
	Question    string
	Answer      string
	Correct     bool
	Explanation string
}

// Result is the final outcome of one quiz run. Constructed once; immutable.
type Result struct {
	Answered []AnsweredQuestion
	Score    float64
	Details  []Detail
}

// newResult assembles a Result from the answered questions, computing the
// score percentage. An empty quiz scores 0.0 rather than dividing by zero.
func newResult(answered []AnsweredQuestion) *Result {
	correct := 0
	details := make([]Detail, 0, len(answered))
	for _, aq := range answered {
		if aq.Correct {
			correct++
		}
		details = append(details, Detail{
			Question:    aq.Question.Text,
			Answer:      aq.Answer,
			Correct:     aq.Correct,
			Explanation: aq.Question.Explanation,
		})
	}

	score := 0.0
	if len(answered) > 0 {
		score = 100 * float64(correct) / float64(len(answered))
	}

	return &Result{
		Answered: answered,
		Score:    score,
		Details:  details,
	}
}
