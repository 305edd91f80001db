package domain

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// clock stamps events and analyses. Tests freeze it with SetClock.
var clock = clockwork.NewRealClock() //nolint: gochecknoglobals

// SetClock swaps the time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()

		return
	}
	clock = c
}

func now() time.Time {
	return clock.Now().UTC()
}
