package state

import (
	"context"
	"errors"
)

// ErrNotFound means no pending state exists for the attempt: the attempt
// was never started, already consumed, or expired.
var ErrNotFound = errors.New("state: not found")

// Store keeps the anti-forgery state pending between the authorization
// redirect and the provider callback. A stored value is single-use:
// Consume removes it, so a replayed callback finds nothing.
type Store interface {
	// Begin generates a fresh attempt id and state token and stores the
	// pair. Every call returns distinct, unpredictable values.
	Begin(ctx context.Context) (attemptID, state string, err error)

	// Consume atomically reads and deletes the pending state.
	// Returns ErrNotFound when nothing is pending.
	Consume(ctx context.Context, attemptID string) (state string, err error)
}
