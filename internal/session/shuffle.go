package session

import (
	"math/rand"
	"time"
)

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// NewShuffler returns a Shuffler seeded with the current time.
func NewShuffler() Shuffler {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
