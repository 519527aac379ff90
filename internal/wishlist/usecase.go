package wishlist

import (
	"context"

	"github.com/Heybro1122/ShopHub/internal/model"
)

type UseCase interface {
	List(ctx context.Context, userID string) ([]model.WishlistItem, error)
	Add(ctx context.Context, userID, productID string) (*model.WishlistItem, error)
	Remove(ctx context.Context, userID, productID string) error
	Clear(ctx context.Context, userID string) error
}
