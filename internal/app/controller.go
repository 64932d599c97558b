// Package app implements the drill state machine: Selecting -> Drilling -> Finished.
package app

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/verte-zerg/tuidrill/internal/session"
	"github.com/verte-zerg/tuidrill/internal/vocab"
)

// NoticeEmptyCatalog is shown when no usable sets were found.
const NoticeEmptyCatalog = "dictionary directory empty or unreadable"

// Catalog supplies the available vocabulary sets.
type Catalog interface {
	Entries() []vocab.Entry
	Load(id string) (vocab.Set, error)
}

// Controller owns the current state and at most one session.
type Controller struct {
	catalog       Catalog
	shuffle       bool
	shuffler      session.Shuffler
	wrapSelection bool

	state State
	// index survives a round trip through Drilling and Finished.
	index int
}

// Option configures a Controller.
type Option func(*Controller)

// WithShuffle toggles shuffled presentation order.
func WithShuffle(shuffle bool) Option {
	return func(c *Controller) {
		c.shuffle = shuffle
	}
}

// WithShuffler injects the randomness used for shuffled sessions.
func WithShuffler(s session.Shuffler) Option {
	return func(c *Controller) {
		c.shuffler = s
	}
}

// WithWrapSelection makes selection navigation wrap around instead of clamping.
func WithWrapSelection(wrap bool) Option {
	return func(c *Controller) {
		c.wrapSelection = wrap
	}
}

// New returns a controller in the Selecting state.
func New(catalog Catalog, opts ...Option) *Controller {
	c := &Controller{catalog: catalog, shuffle: true}
	for _, opt := range opts {
		opt(c)
	}
	c.toSelecting()
	return c
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode {
	return c.state.Mode()
}

// Previous moves the selection up.
func (c *Controller) Previous() {
	c.moveSelection(-1)
}

// Next moves the selection down.
func (c *Controller) Next() {
	c.moveSelection(1)
}

func (c *Controller) moveSelection(delta int) {
	st, ok := c.state.(*Selecting)
	if !ok || len(st.Catalog) == 0 {
		return
	}
	n := len(st.Catalog)
	idx := st.Index + delta
	switch {
	case c.wrapSelection:
		idx = ((idx % n) + n) % n
	case idx < 0:
		idx = 0
	case idx >= n:
		idx = n - 1
	}
	st.Index = idx
	c.index = idx
}

// Select starts a session over the highlighted set. Load failures keep the
// controller in Selecting with a notice.
func (c *Controller) Select() {
	st, ok := c.state.(*Selecting)
	if !ok || len(st.Catalog) == 0 {
		return
	}
	entry := st.Catalog[st.Index]
	set, err := c.catalog.Load(entry.ID)
	if err != nil {
		log.Printf("load %s: %v", entry.ID, err)
		st.Notice = fmt.Sprintf("failed to load %s: %v", entry.Name, err)
		return
	}
	var opts []session.Option
	if c.shuffler != nil {
		opts = append(opts, session.WithShuffler(c.shuffler))
	}
	engine, err := session.New(set, c.shuffle, opts...)
	if err != nil {
		if errors.Is(err, session.ErrEmptySet) {
			st.Notice = fmt.Sprintf("%s has no items", entry.Name)
		} else {
			st.Notice = err.Error()
		}
		return
	}
	log.Printf("session %s started: set=%q items=%d shuffle=%t", engine.ID(), set.Name, engine.Total(), c.shuffle)
	c.state = &Drilling{Set: set, Session: engine}
}

// Type appends runes to the answer buffer while no feedback is pending.
func (c *Controller) Type(runes []rune) {
	st, ok := c.state.(*Drilling)
	if !ok || st.Feedback != nil {
		return
	}
	st.Input = append(st.Input, runes...)
}

// Backspace removes the last rune of the answer buffer while no feedback is pending.
func (c *Controller) Backspace() {
	st, ok := c.state.(*Drilling)
	if !ok || st.Feedback != nil || len(st.Input) == 0 {
		return
	}
	st.Input = st.Input[:len(st.Input)-1]
}

// Confirm is the state-dependent "enter" action.
func (c *Controller) Confirm() {
	switch st := c.state.(type) {
	case *Selecting:
		c.Select()
	case *Drilling:
		if st.Feedback == nil {
			c.Submit()
			return
		}
		c.Acknowledge()
	case *Finished:
		c.Acknowledge()
	}
}

// Submit matches the buffer against the current item and scores it. Blank
// submissions are ignored.
func (c *Controller) Submit() {
	st, ok := c.state.(*Drilling)
	if !ok || st.Feedback != nil {
		return
	}
	input := string(st.Input)
	if strings.TrimSpace(input) == "" {
		return
	}
	item := st.Session.CurrentItem()
	correct := vocab.Match(item, input)
	st.Session.Score(correct)
	if correct {
		st.Feedback = &Feedback{Correct: true, Message: "Correct!"}
		return
	}
	st.Feedback = &Feedback{Message: fmt.Sprintf("Incorrect. Expected: %s", item.Answer)}
}

// Acknowledge dismisses feedback. Correct feedback advances; incorrect feedback
// waits for Retry or Skip. In Finished it returns to selection.
func (c *Controller) Acknowledge() {
	switch st := c.state.(type) {
	case *Drilling:
		if st.Feedback == nil || !st.Feedback.Correct {
			return
		}
		c.advance(st)
	case *Finished:
		c.toSelecting()
	}
}

// Retry clears incorrect feedback and the buffer without advancing.
func (c *Controller) Retry() {
	st, ok := c.state.(*Drilling)
	if !ok || st.Feedback == nil || st.Feedback.Correct {
		return
	}
	st.Feedback = nil
	st.Input = nil
}

// Skip moves past an incorrectly answered item.
func (c *Controller) Skip() {
	st, ok := c.state.(*Drilling)
	if !ok || st.Feedback == nil || st.Feedback.Correct {
		return
	}
	c.advance(st)
}

// Back returns to selection from any state, discarding an active session.
func (c *Controller) Back() {
	if st, ok := c.state.(*Drilling); ok {
		log.Printf("session %s abandoned at %d/%d", st.Session.ID(), st.Session.Position(), st.Session.Total())
	}
	if _, ok := c.state.(*Selecting); ok {
		return
	}
	c.toSelecting()
}

func (c *Controller) advance(st *Drilling) {
	st.Session.Advance()
	if st.Session.IsComplete() {
		stats := st.Session.Stats()
		log.Printf("session %s finished: correct=%d incorrect=%d rate=%.1f", st.Session.ID(), stats.Correct, stats.Incorrect, stats.SuccessRate)
		c.state = &Finished{SetName: st.Set.Name, Stats: stats}
		return
	}
	st.Input = nil
	st.Feedback = nil
}

func (c *Controller) toSelecting() {
	entries := c.catalog.Entries()
	notice := ""
	if len(entries) == 0 {
		notice = NoticeEmptyCatalog
		c.index = 0
	} else if c.index >= len(entries) {
		c.index = len(entries) - 1
	}
	c.state = &Selecting{Catalog: entries, Index: c.index, Notice: notice}
}
