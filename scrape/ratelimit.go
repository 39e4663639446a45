package scrape

import (
	"context"
	"time"

	"github.com/fwojciec/docgrab"
	"golang.org/x/time/rate"
)

// Ensure DelayLimiter implements docgrab.Limiter at compile time.
var _ docgrab.Limiter = (*DelayLimiter)(nil)

// DelayLimiter spaces successive operations a fixed interval apart
// using a token bucket with a burst of 1. The first Wait is immediate;
// each subsequent Wait blocks until the interval has elapsed.
type DelayLimiter struct {
	limiter *rate.Limiter
}

// NewDelayLimiter creates a DelayLimiter with the given interval.
// A zero or negative interval disables the delay entirely.
func NewDelayLimiter(interval time.Duration) *DelayLimiter {
	if interval <= 0 {
		return &DelayLimiter{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &DelayLimiter{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Wait blocks until the next operation is allowed to proceed.
// Returns an error if the context is canceled before the wait completes.
func (l *DelayLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
