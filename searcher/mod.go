package searcher

import (
	"time"

	"golang.org/x/exp/rand"
)

// Clock returns the current time. The driver consults it only between tree
// growth steps.
type Clock func() time.Time

const (
	rootID   = 0
	noParent = -1
	noMove   = -1
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
