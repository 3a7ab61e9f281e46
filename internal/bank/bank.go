package bank

// QuestionBank owns an ordered collection of validated questions.
// It never mutates its questions after construction.
type QuestionBank struct {
	Questions []Question
}

// New builds a bank from the given questions, validating each record.
// Returns a *MalformedBankError on the first invalid record.
func New(questions []Question) (*QuestionBank, error) {
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, err
		}
	}
	return &QuestionBank{Questions: questions}, nil
}

// Filter returns every question matching all supplied criteria, in bank
// order. An empty topic or difficulty matches everything; supplying neither
// returns the full bank. The returned slice is freshly allocated and may be
// reordered by the caller.
func (b *QuestionBank) Filter(topic, difficulty string) []Question {
	out := make([]Question, 0, len(b.Questions))
	for _, q := range b.Questions {
		if topic != "" && q.Topic != topic {
			continue
		}
		if difficulty != "" && q.Difficulty != difficulty {
			continue
		}
		out = append(out, q)
	}
	return out
}

// Len returns the number of questions in the bank.
func (b *QuestionBank) Len() int {
	return len(b.Questions)
}
