// Package clock provides an injectable time source so visibility
// decisions never read wall-clock time ambiently.
package clock

import (
	"time"
)

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// New returns a Clock backed by the system time
func New() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Fixed is a Clock frozen at a single instant, for deterministic tests
type Fixed struct {
	T time.Time
}

// NewFixed returns a Clock that always reports t
func NewFixed(t time.Time) Fixed {
	return Fixed{T: t}
}

func (f Fixed) Now() time.Time {
	return f.T
}
