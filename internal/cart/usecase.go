package cart

import (
	"context"

	"github.com/Heybro1122/ShopHub/internal/cart/dto"
)

type UseCase interface {
	// Get returns the session's lines with derived totals.
	Get(ctx context.Context, sessionID string) (*dto.Cart, error)

	// Add looks up the product and merges it into the session's cart,
	// snapshotting name/price/image. Returns the new item count.
	Add(ctx context.Context, input *dto.AddItemInput) (int, error)

	// SetQuantity overwrites a line's quantity; <= 0 removes the line.
	SetQuantity(ctx context.Context, sessionID, lineID string, quantity int) error

	Remove(ctx context.Context, sessionID, lineID string) error
	Clear(ctx context.Context, sessionID string) error
}
