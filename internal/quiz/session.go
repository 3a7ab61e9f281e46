// Package quiz runs interactive quiz sessions over an abstract prompt
// interface.
package quiz

import (
	"fmt"

	"github.com/dwilk016/quizdrill/internal/bank"
	"github.com/dwilk016/quizdrill/internal/grader"
	"github.com/dwilk016/quizdrill/internal/metrics"
)

// State identifies where a session is in its question loop.
type State int

const (
	StatePending   State = iota // Created, not yet running
	StateAsking                 // Displaying a question, awaiting a response
	StateGrading                // Evaluating the received response
	StateRecorded               // Metrics updated for the graded answer
	StateCompleted              // All questions asked
)

// Prompter is the interactive seam between a session and the user. A console
// implementation drives a terminal; tests use a scripted fake.
type Prompter interface {
	// ShowQuestion displays the question and, for multiple choice, its
	// choices enumerated 1..N.
	ShowQuestion(q bank.Question)

	// RequestAnswer blocks until the user supplies a response. A response is
	// mandatory to proceed; an error means the input source is gone.
	RequestAnswer() (string, error)

	// ShowFeedback reports the outcome of the last answer: "Correct!" when
	// correct, otherwise the question's explanation.
	ShowFeedback(correct bool, explanation string)
}

// Session asks a selected question sequence one question at a time, grading
// each answer and recording it in the metrics store.
type Session struct {
	prompter Prompter
	metrics  *metrics.Store
	state    State
}

// NewSession creates a session in the pending state.
func NewSession(p Prompter, m *metrics.Store) *Session {
	return &Session{prompter: p, metrics: m, state: StatePending}
}

// State returns the session's current state.
func (s *Session) State() State {
	return s.state
}

// Run asks every question in sequence order, exactly once each. For each
// question it displays the prompt, blocks for a response, grades it, updates
// the metrics store (attempts always, correct only on a right answer), and
// shows immediate feedback. Returns the assembled result, or an error if the
// input source fails mid-quiz.
func (s *Session) Run(questions []bank.Question) (*Result, error) {
	answered := make([]AnsweredQuestion, 0, len(questions))

	for _, q := range questions {
		s.state = StateAsking
		s.prompter.ShowQuestion(q)
		raw, err := s.prompter.RequestAnswer()
		if err != nil {
			return nil, fmt.Errorf("read answer for question %d: %w", q.ID, err)
		}

		s.state = StateGrading
		res := grader.Grade(q, raw)

		s.state = StateRecorded
		s.metrics.Record(q.ID, res.Correct)
		s.prompter.ShowFeedback(res.Correct, q.Explanation)

		answered = append(answered, AnsweredQuestion{
			Question: q,
			Answer:   res.Answer,
			Correct:  res.Correct,
		})
	}

	s.state = StateCompleted
	return newResult(answered), nil
}
