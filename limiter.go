package docgrab

import "context"

// Limiter imposes a delay between successive operations.
type Limiter interface {
	// Wait blocks until the next operation is allowed to proceed.
	// Returns an error if the context is canceled while waiting.
	Wait(ctx context.Context) error
}
