package grader

import (
	"testing"

	"github.com/dwilk016/quizdrill/internal/bank"
)

var capitalMCQ = bank.Question{
	ID:      1,
	Text:    "Capital of France?",
	Type:    bank.TypeMultipleChoice,
	Choices: []string{"Rome", "Paris", "Berlin"},
	Correct: 1,
}

var riverShort = bank.Question{
	ID:     2,
	Text:   "Longest river in France?",
	Type:   bank.TypeFreeText,
	Answer: "Loire",
}

func TestGradeMultipleChoice(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantAnswer  string
		wantCorrect bool
	}{
		{"exact correct ordinal", "2", "1", true},
		{"correct ordinal with whitespace", "  2 ", "1", true},
		{"wrong ordinal", "1", "0", false},
		{"out of range high", "9", "8", false},
		{"zero is out of range", "0", "-1", false},
		{"non-numeric input", "paris", "paris", false},
		{"empty input", "", "", false},
		{"decimal input", "1.5", "1.5", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Grade(capitalMCQ, tt.raw)
			if got.Correct != tt.wantCorrect {
				t.Errorf("Grade(%q).Correct = %v, want %v", tt.raw, got.Correct, tt.wantCorrect)
			}
			if got.Answer != tt.wantAnswer {
				t.Errorf("Grade(%q).Answer = %q, want %q", tt.raw, got.Answer, tt.wantAnswer)
			}
		})
	}
}

func TestGradeFreeText(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantAnswer  string
		wantCorrect bool
	}{
		{"exact match", "Loire", "loire", true},
		{"lower case", "loire", "loire", true},
		{"upper case", "LOIRE", "loire", true},
		{"surrounding whitespace", "  Loire  ", "loire", true},
		{"wrong answer", "Seine", "seine", false},
		{"empty answer", "", "", false},
		{"no fuzzy matching", "the Loire", "the loire", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Grade(riverShort, tt.raw)
			if got.Correct != tt.wantCorrect {
				t.Errorf("Grade(%q).Correct = %v, want %v", tt.raw, got.Correct, tt.wantCorrect)
			}
			if got.Answer != tt.wantAnswer {
				t.Errorf("Grade(%q).Answer = %q, want %q", tt.raw, got.Answer, tt.wantAnswer)
			}
		})
	}
}

func TestGradeFreeTextCanonicalAnswerNormalized(t *testing.T) {
	q := bank.Question{
		ID:     3,
		Type:   bank.TypeFreeText,
		Answer: "  PARIS ",
	}
	if got := Grade(q, "paris"); !got.Correct {
		t.Error("expected the canonical answer to be trimmed and case-folded too")
	}
}
