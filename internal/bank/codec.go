package bank

import (
	"encoding/json"
	"fmt"
	"os"
)

// bankFile is the on-disk shape of a question bank.
type bankFile struct {
	Questions []questionRecord `json:"questions"`
}

// questionRecord mirrors Question field-for-field on the wire. Type-specific
// fields are omitted when not applicable, so a round trip reproduces the
// original records exactly.
type questionRecord struct {
	ID          int      `json:"id"`
	Question    string   `json:"question"`
	Type        string   `json:"type"`
	Difficulty  string   `json:"difficulty"`
	Topic       string   `json:"topic"`
	Tags        []string `json:"tags"`
	Explanation string   `json:"explanation"`
	Choices     []string `json:"choices,omitempty"`
	Correct     *int     `json:"correct,omitempty"`
	Answer      string   `json:"answer,omitempty"`
}

// Load reads and validates a question bank file. Any structural problem —
// unreadable JSON, records failing the bank schema, missing type-specific
// fields, or an out-of-range correct index — yields a *MalformedBankError.
func Load(path string) (*QuestionBank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &MalformedBankError{Reason: "invalid JSON", Err: err}
	}
	if err := validateBankShape(parsed); err != nil {
		return nil, err
	}

	var file bankFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, &MalformedBankError{Reason: "decode bank file", Err: err}
	}

	questions := make([]Question, 0, len(file.Questions))
	for _, rec := range file.Questions {
		q, err := rec.toQuestion()
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return New(questions)
}

// Save writes the bank back to disk in the same record shape Load reads.
func Save(b *QuestionBank, path string) error {
	file := bankFile{Questions: make([]questionRecord, 0, len(b.Questions))}
	for _, q := range b.Questions {
		file.Questions = append(file.Questions, toRecord(q))
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("encode bank file: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write bank file: %w", err)
	}
	return nil
}

func (rec questionRecord) toQuestion() (Question, error) {
	q := Question{
		ID:          rec.ID,
		Text:        rec.Question,
		Type:        QuestionType(rec.Type),
		Difficulty:  rec.Difficulty,
		Topic:       rec.Topic,
		Tags:        rec.Tags,
		Explanation: rec.Explanation,
		Choices:     rec.Choices,
		Answer:      rec.Answer,
	}
	if q.Type == TypeMultipleChoice {
		if rec.Correct == nil {
			return Question{}, &MalformedBankError{
				Reason: fmt.Sprintf("question %d: multiple-choice question has no correct index", rec.ID),
			}
		}
		q.Correct = *rec.Correct
	}
	if err := q.Validate(); err != nil {
		return Question{}, err
	}
	return q, nil
}

func toRecord(q Question) questionRecord {
	tags := q.Tags
	if tags == nil {
		// The schema wants an array, not null.
		tags = []string{}
	}
	rec := questionRecord{
		ID:          q.ID,
		Question:    q.Text,
		Type:        string(q.Type),
		Difficulty:  q.Difficulty,
		Topic:       q.Topic,
		Tags:        tags,
		Explanation: q.Explanation,
	}
	if q.Type == TypeMultipleChoice {
		correct := q.Correct
		rec.Choices = q.Choices
		rec.Correct = &correct
	} else {
		rec.Answer = q.Answer
	}
	return rec
}
