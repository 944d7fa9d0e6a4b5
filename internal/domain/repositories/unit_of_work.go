package repositories

import (
	"context"
)

// UnitOfWork runs a set of repository mutations atomically.
// Every state transition commits its entity writes and audit
// entries together or not at all.
type UnitOfWork interface {
	// Do runs fn inside a transaction; repositories called with the
	// given ctx participate in it.
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
