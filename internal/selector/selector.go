// Package selector builds quizzes from a question bank by stratified or flat
// random sampling.
package selector

import (
	"math/rand"
	"time"

	"github.com/dwilk016/quizdrill/internal/bank"
)

// DifficultyCount pairs a difficulty label with a desired question count.
type DifficultyCount struct {
	Difficulty string
	Count      int
}

// Policy describes what a quiz should contain. When ByDifficulty is non-empty
// the quiz is drawn per difficulty bucket in the given order; otherwise Total
// questions are drawn from the topic-filtered pool, or the whole pool when
// Total is zero. The topic filter applies in every mode.
type Policy struct {
	Topic        string
	ByDifficulty []DifficultyCount
	Total        int
}

// Selector draws quizzes from a question bank using an injected random
// source, so selection can be made deterministic in tests.
type Selector struct {
	rng *rand.Rand
}

// New creates a Selector. A nil rng gets a time-seeded source.
func New(rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{rng: rng}
}

// Select assembles an ordered quiz from the bank according to the policy.
//
// Per-difficulty mode draws min(count, pool) questions without replacement
// from each (topic, difficulty) pool; an empty pool contributes nothing.
// Flat mode draws min(Total, pool) from the topic pool, or returns the whole
// pool when no total is set. The assembled quiz is shuffled in every mode so
// multi-difficulty quizzes do not cluster by difficulty. Shortfalls never
// error: asking for more questions than exist truncates to the pool.
func (s *Selector) Select(b *bank.QuestionBank, p Policy) []bank.Question {
	var picked []bank.Question

	if len(p.ByDifficulty) > 0 {
		for _, dc := range p.ByDifficulty {
			pool := b.Filter(p.Topic, dc.Difficulty)
			if len(pool) == 0 {
				continue
			}
			picked = append(picked, s.sample(pool, dc.Count)...)
		}
	} else {
		pool := b.Filter(p.Topic, "")
		if p.Total > 0 {
			picked = s.sample(pool, p.Total)
		} else {
			picked = pool
		}
	}

	s.rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	return picked
}

// sample draws min(n, len(pool)) questions uniformly without replacement.
func (s *Selector) sample(pool []bank.Question, n int) []bank.Question {
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]bank.Question, 0, n)
	for _, i := range s.rng.Perm(len(pool))[:n] {
		out = append(out, pool[i])
	}
	return out
}
