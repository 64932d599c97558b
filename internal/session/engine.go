// Package session implements a single pass over a vocabulary set.
package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/verte-zerg/tuidrill/internal/vocab"
)

// ErrEmptySet is returned when a session is requested over a set without items.
var ErrEmptySet = errors.New("cannot start a session over an empty set")

// Stats is a point-in-time copy of the session counters.
type Stats struct {
	Correct     int
	Incorrect   int
	Streak      int
	BestStreak  int
	SuccessRate float64
	Position    int
	Total       int
}

// Answered returns the number of scored positions.
func (s Stats) Answered() int {
	return s.Correct + s.Incorrect
}

// Engine holds the presentation order, the cursor and the running counters.
type Engine struct {
	id  string
	set vocab.Set

	order  []int
	cursor int
	scored bool

	correct    int
	incorrect  int
	streak     int
	bestStreak int
}

// Option configures an Engine.
type Option func(*engineOptions)

type engineOptions struct {
	shuffler Shuffler
}

// WithShuffler injects the randomness used when shuffling.
func WithShuffler(s Shuffler) Option {
	return func(o *engineOptions) {
		o.shuffler = s
	}
}

// New builds an engine over set. When shuffle is false items are presented in
// declaration order.
func New(set vocab.Set, shuffle bool, opts ...Option) (*Engine, error) {
	if len(set.Items) == 0 {
		return nil, ErrEmptySet
	}
	o := engineOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	order := make([]int, len(set.Items))
	for i := range order {
		order[i] = i
	}
	if shuffle {
		if o.shuffler == nil {
			o.shuffler = NewShuffler()
		}
		o.shuffler.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}

	return &Engine{
		id:    uuid.NewString(),
		set:   set,
		order: order,
	}, nil
}

// ID returns the session identifier.
func (e *Engine) ID() string {
	return e.id
}

// Order returns a copy of the presentation order.
func (e *Engine) Order() []int {
	out := make([]int, len(e.order))
	copy(out, e.order)
	return out
}

// Total returns the number of items in the session.
func (e *Engine) Total() int {
	return len(e.order)
}

// Position returns the cursor.
func (e *Engine) Position() int {
	return e.cursor
}

// CurrentItemIndex returns the index into the set of the item under the cursor.
// It panics once the session is complete.
func (e *Engine) CurrentItemIndex() int {
	if e.IsComplete() {
		panic(fmt.Sprintf("session: current item requested after completion (cursor %d of %d)", e.cursor, len(e.order)))
	}
	return e.order[e.cursor]
}

// CurrentItem returns the item under the cursor. It panics once the session is complete.
func (e *Engine) CurrentItem() vocab.Item {
	return e.set.Items[e.CurrentItemIndex()]
}

// Scored reports whether the current position has already been scored.
func (e *Engine) Scored() bool {
	return e.scored
}

// Score records the outcome for the current position. A position is scored at
// most once; later calls return false and change nothing.
func (e *Engine) Score(correct bool) bool {
	if e.IsComplete() || e.scored {
		return false
	}
	e.scored = true
	if correct {
		e.correct++
		e.streak++
		if e.streak > e.bestStreak {
			e.bestStreak = e.streak
		}
		return true
	}
	e.incorrect++
	e.streak = 0
	return true
}

// Advance moves the cursor to the next position, saturating at the end.
func (e *Engine) Advance() {
	if e.cursor >= len(e.order) {
		return
	}
	e.cursor++
	e.scored = false
}

// IsComplete reports whether every position has been passed.
func (e *Engine) IsComplete() bool {
	return e.cursor == len(e.order)
}

// SuccessRate returns the percentage of correct answers, or 0 before any score.
func (e *Engine) SuccessRate() float64 {
	return SuccessRate(e.correct, e.incorrect)
}

// Stats returns a copy of the counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Correct:     e.correct,
		Incorrect:   e.incorrect,
		Streak:      e.streak,
		BestStreak:  e.bestStreak,
		SuccessRate: e.SuccessRate(),
		Position:    e.cursor,
		Total:       len(e.order),
	}
}

// SuccessRate computes 100*correct/(correct+incorrect), or 0 when both are zero.
func SuccessRate(correct, incorrect int) float64 {
	total := correct + incorrect
	if total <= 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}
