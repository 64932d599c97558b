package app

import (
	"github.com/verte-zerg/tuidrill/internal/session"
	"github.com/verte-zerg/tuidrill/internal/vocab"
)

// Mode names the active state.
type Mode int

const (
	ModeSelecting Mode = iota
	ModeDrilling
	ModeFinished
)

func (m Mode) String() string {
	switch m {
	case ModeSelecting:
		return "selecting"
	case ModeDrilling:
		return "drilling"
	case ModeFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// State is one of Selecting, Drilling or Finished.
type State interface {
	Mode() Mode
	isState()
}

// Selecting lists the catalog and tracks the highlighted entry.
type Selecting struct {
	Catalog []vocab.Entry
	Index   int
	Notice  string
}

// Drilling owns the running session.
type Drilling struct {
	Set      vocab.Set
	Session  *session.Engine
	Input    []rune
	Feedback *Feedback
}

// Finished carries the final tally of the last session.
type Finished struct {
	SetName string
	Stats   session.Stats
}

// Feedback is the outcome of the last submission.
type Feedback struct {
	Correct bool
	Message string
}

// Mode implements State.
func (*Selecting) Mode() Mode { return ModeSelecting }

// Mode implements State.
func (*Drilling) Mode() Mode { return ModeDrilling }

// Mode implements State.
func (*Finished) Mode() Mode { return ModeFinished }

func (*Selecting) isState() {}
func (*Drilling) isState()  {}
func (*Finished) isState()  {}
