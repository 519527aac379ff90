package cart

import (
	"context"

	"github.com/Heybro1122/ShopHub/internal/model"
)

// Store holds cart lines keyed by session. Every mutation is atomic per
// session: implementations serialize concurrent calls for the same session id
// (a mutex in memory, a lock key in Redis).
type Store interface {
	// Lines returns the session's lines in insertion order.
	Lines(ctx context.Context, sessionID string) ([]model.CartLine, error)

	// AddLine merges line into the session: an existing line for the same
	// product gets its quantity incremented and keeps its original snapshot,
	// otherwise line is appended as-is. Returns the session's item count.
	AddLine(ctx context.Context, line *model.CartLine) (int, error)

	// SetQuantity overwrites a line's quantity; quantity <= 0 deletes the
	// line. Returns model.ErrNotFound when no line matches.
	SetQuantity(ctx context.Context, sessionID, lineID string, quantity int) error

	// Remove deletes one line. Removing an absent line is not an error.
	Remove(ctx context.Context, sessionID, lineID string) error

	// Clear deletes every line of the session.
	Clear(ctx context.Context, sessionID string) error
}
