package bank

import (
	"errors"
	"strings"
	"testing"
)

func mcq(id int, topic, difficulty string, correct int, choices ...string) Question {
	return Question{
		ID:          id,
		Text:        "question text",
		Type:        TypeMultipleChoice,
		Difficulty:  difficulty,
		Topic:       topic,
		Tags:        []string{topic},
		Explanation: "because",
		Choices:     choices,
		Correct:     correct,
	}
}

func short(id int, topic, difficulty, answer string) Question {
	return Question{
		ID:          id,
		Text:        "question text",
		Type:        TypeFreeText,
		Difficulty:  difficulty,
		Topic:       topic,
		Tags:        []string{topic},
		Explanation: "because",
		Answer:      answer,
	}
}

func testBank(t *testing.T) *QuestionBank {
	t.Helper()
	b, err := New([]Question{
		mcq(1, "geo", "easy", 0, "Paris", "Rome"),
		short(2, "geo", "hard", "Danube"),
		mcq(3, "math", "easy", 1, "3", "4"),
		short(4, "math", "medium", "12"),
	})
	if err != nil {
		t.Fatalf("build test bank: %v", err)
	}
	return b
}

func ids(qs []Question) []int {
	out := make([]int, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	b := testBank(t)

	tests := []struct {
		name       string
		topic      string
		difficulty string
		want       []int
	}{
		{"no criteria returns full bank", "", "", []int{1, 2, 3, 4}},
		{"topic only", "geo", "", []int{1, 2}},
		{"topic with no matches", "easy", "", nil},
		{"difficulty only", "", "easy", []int{1, 3}},
		{"topic and difficulty", "math", "easy", []int{3}},
		{"no matches", "history", "easy", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(b.Filter(tt.topic, tt.difficulty))
			if len(got) != len(tt.want) {
				t.Fatalf("Filter(%q, %q) = %v, want %v", tt.topic, tt.difficulty, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Filter(%q, %q) = %v, want %v", tt.topic, tt.difficulty, got, tt.want)
					break
				}
			}
		})
	}
}

func TestFilterReturnsFreshSlice(t *testing.T) {
	b := testBank(t)
	got := b.Filter("", "")
	got[0], got[3] = got[3], got[0]

	if b.Questions[0].ID != 1 || b.Questions[3].ID != 4 {
		t.Error("reordering a filter result mutated the bank")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		q          Question
		wantReason string // empty means valid
	}{
		{"valid mcq", mcq(1, "geo", "easy", 1, "a", "b"), ""},
		{"valid free text", short(2, "geo", "easy", "Paris"), ""},
		{"mcq without choices", mcq(3, "geo", "easy", 0), "no choices"},
		{"mcq correct negative", mcq(4, "geo", "easy", -1, "a", "b"), "out of range"},
		{"mcq correct past end", mcq(5, "geo", "easy", 2, "a", "b"), "out of range"},
		{"free text without answer", short(6, "geo", "easy", ""), "no canonical answer"},
		{"unknown type", Question{ID: 7, Type: "essay"}, "unknown question type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.q.Validate()
			if tt.wantReason == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			var malformed *MalformedBankError
			if !errors.As(err, &malformed) {
				t.Fatalf("Validate() error type = %T, want *MalformedBankError", err)
			}
			if !strings.Contains(err.Error(), tt.wantReason) {
				t.Errorf("Validate() error = %q, want it to mention %q", err, tt.wantReason)
			}
		})
	}
}

func TestNewRejectsInvalidQuestion(t *testing.T) {
	_, err := New([]Question{
		mcq(1, "geo", "easy", 0, "a", "b"),
		short(2, "geo", "easy", ""),
	})
	var malformed *MalformedBankError
	if !errors.As(err, &malformed) {
		t.Fatalf("New() error = %v, want *MalformedBankError", err)
	}
}
