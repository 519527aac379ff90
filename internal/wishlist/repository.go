package wishlist

import (
	"context"

	"github.com/Heybro1122/ShopHub/internal/model"
)

type Repository interface {
	// List returns the user's entries with product snapshots, newest first.
	List(ctx context.Context, userID string) ([]model.WishlistItem, error)
	Find(ctx context.Context, userID, productID string) (*model.WishlistEntry, error)
	Insert(ctx context.Context, entry *model.WishlistEntry) error
	Delete(ctx context.Context, userID, productID string) error
	Clear(ctx context.Context, userID string) error
}
