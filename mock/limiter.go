package mock

import (
	"context"

	"github.com/fwojciec/docgrab"
)

var _ docgrab.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of docgrab.Limiter.
// A zero-value Limiter never waits.
type Limiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *Limiter) Wait(ctx context.Context) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx)
}
