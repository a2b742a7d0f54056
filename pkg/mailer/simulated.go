package mailer

import (
	"context"
	"time"
)

const defaultSimulatedDelay = time.Second

// Simulated stands in for a real transport when no credentials are
// configured. It reports success after an artificial delay so the
// calling code exercises the same asynchronous path it would with a
// real relay. This is a deliberate development-mode fallback, not an
// error condition.
type Simulated struct {
	delay time.Duration
}

// NewSimulated returns a simulated mailer. A non-positive delay selects
// the one-second default; tests pass a tiny delay instead.
func NewSimulated(delay time.Duration) *Simulated {
	if delay <= 0 {
		delay = defaultSimulatedDelay
	}
	return &Simulated{delay: delay}
}

func (s *Simulated) Name() string { return "simulated" }

func (s *Simulated) Send(ctx context.Context, _ Message) Outcome {
	select {
	case <-ctx.Done():
		return Outcome{Success: false, Error: ctx.Err().Error()}
	case <-time.After(s.delay):
		return Outcome{Success: true, Simulated: true}
	}
}
