// Package metrics tracks cumulative per-question performance across runs.
package metrics

import "sort"

// QuestionStats accumulates lifetime attempt counts for one question.
// Both counters are monotonically non-decreasing.
type QuestionStats struct {
	Attempts int `json:"attempts"`
	Correct  int `json:"correct"`
}

// Store maps question ids to cumulative stats. It is loaded from a snapshot
// at startup and written back after a session; there are no concurrent
// writers.
type Store struct {
	stats map[int]*QuestionStats
}

// NewStore creates an empty metrics store.
func NewStore() *Store {
	return &Store{stats: make(map[int]*QuestionStats)}
}

// Record notes one attempt at a question, counting it correct when correct
// is true. Counters start at zero on first encounter and only ever grow.
func (s *Store) Record(id int, correct bool) {
	qs := s.stats[id]
	if qs == nil {
		qs = &QuestionStats{}
		s.stats[id] = qs
	}
	qs.Attempts++
	if correct {
		qs.Correct++
	}
}

// Get returns the stats for a question, or zero stats if never attempted.
func (s *Store) Get(id int) QuestionStats {
	if qs := s.stats[id]; qs != nil {
		return *qs
	}
	return QuestionStats{}
}

// IDs returns all tracked question ids in ascending order.
func (s *Store) IDs() []int {
	ids := make([]int, 0, len(s.stats))
	for id := range s.stats {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Len returns the number of tracked questions.
func (s *Store) Len() int {
	return len(s.stats)
}
