// Package grader evaluates raw user responses against questions.
package grader

import (
	"strconv"
	"strings"

	"github.com/dwilk016/quizdrill/internal/bank"
)

// Result carries the normalized response that was graded and its correctness.
type Result struct {
	Answer  string
	Correct bool
}

// Grade evaluates a raw response against a question.
//
// Multiple choice: the response is a 1-based ordinal. Non-numeric input is a
// graded wrong answer recorded as given, never an error. A parsed ordinal is
// converted to a zero-based index and compared for exact equality, so
// out-of-range indices are simply unequal.
//
// Free text: response and canonical answer are both trimmed and lower-cased
// before exact comparison. No fuzzy matching.
func Grade(q bank.Question, raw string) Result {
	if q.Type == bank.TypeMultipleChoice {
		return gradeMultipleChoice(q, raw)
	}
	return gradeFreeText(q, raw)
}

func gradeMultipleChoice(q bank.Question, raw string) Result {
	trimmed := strings.TrimSpace(raw)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return Result{Answer: trimmed}
	}
	idx := n - 1
	return Result{
		Answer:  strconv.Itoa(idx),
		Correct: idx == q.Correct,
	}
}

func gradeFreeText(q bank.Question, raw string) Result {
	normalized := normalize(raw)
	return Result{
		Answer:  normalized,
		Correct: normalized == normalize(q.Answer),
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
