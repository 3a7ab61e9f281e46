package bank

import "fmt"

// QuestionType discriminates how a question is answered and graded.
type QuestionType string

const (
	// TypeMultipleChoice questions carry enumerated choices and are answered
	// by a 1-based ordinal.
	TypeMultipleChoice QuestionType = "mcq"

	// TypeFreeText questions carry a canonical answer string and are answered
	// with free text.
	TypeFreeText QuestionType = "short"
)

// Question is a single bank entry. Immutable once loaded.
type Question struct {
	ID          int
	Text        string
	Type        QuestionType
	Difficulty  string
	Topic       string
	Tags        []string
	Explanation string

	// Choices and Correct apply to multiple-choice questions only. Correct is
	// the zero-based index of the right choice.
	Choices []string
	Correct int

	// Answer is the canonical answer for free-text questions only.
	Answer string
}

// Validate checks the type-specific invariants of a question record.
// A multiple-choice question must have at least one choice and a correct
// index within bounds; a free-text question must have a canonical answer.
func (q Question) Validate() error {
	switch q.Type {
	case TypeMultipleChoice:
		if len(q.Choices) == 0 {
			return &MalformedBankError{
				Reason: fmt.Sprintf("question %d: multiple-choice question has no choices", q.ID),
			}
		}
		if q.Correct < 0 || q.Correct >= len(q.Choices) {
			return &MalformedBankError{
				Reason: fmt.Sprintf("question %d: correct index %d out of range (%d choices)", q.ID, q.Correct, len(q.Choices)),
			}
		}
	case TypeFreeText:
		if q.Answer == "" {
			return &MalformedBankError{
				Reason: fmt.Sprintf("question %d: free-text question has no canonical answer", q.ID),
			}
		}
	default:
		return &MalformedBankError{
			Reason: fmt.Sprintf("question %d: unknown question type %q", q.ID, q.Type),
		}
	}
	return nil
}

// MalformedBankError reports a question bank that cannot be loaded: a record
// missing required type-specific fields, an out-of-range correct index, or a
// file that does not match the bank schema.
type MalformedBankError struct {
	Reason string
	Err    error
}

func (e *MalformedBankError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed question bank: %s: %v", e.Reason, e.Err)
	}
	return "malformed question bank: " + e.Reason
}

func (e *MalformedBankError) Unwrap() error {
	return e.Err
}
