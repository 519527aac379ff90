package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogrepo "github.com/Heybro1122/ShopHub/internal/catalog/repository"
	"github.com/Heybro1122/ShopHub/internal/model"
	"github.com/Heybro1122/ShopHub/internal/wishlist"
	wishlistrepo "github.com/Heybro1122/ShopHub/internal/wishlist/repository"
	"github.com/Heybro1122/ShopHub/pkg/logger"
)

const userID = "user-1"

func newTestUseCase() wishlist.UseCase {
	catalogRepo := catalogrepo.NewMemoryRepository()
	return NewWishlistUseCase(wishlistrepo.NewMemoryRepository(catalogRepo), catalogRepo, logger.NewNop())
}

func TestAdd(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	item, err := uc.Add(ctx, userID, "1")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "1", item.ProductID)
	require.NotNil(t, item.Product)
	assert.Equal(t, "Wireless Headphones Pro", item.Product.Name)
}

func TestAdd_Duplicate(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	_, err := uc.Add(ctx, userID, "1")
	require.NoError(t, err)

	_, err = uc.Add(ctx, userID, "1")
	assert.ErrorIs(t, err, model.ErrDuplicate)

	items, err := uc.List(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestAdd_UnknownOrInactiveProduct(t *testing.T) {
	products := catalogrepo.Fixtures()
	products[0].Status = model.ProductInactive
	catalogRepo := catalogrepo.NewMemoryRepositoryWith(products)
	uc := NewWishlistUseCase(wishlistrepo.NewMemoryRepository(catalogRepo), catalogRepo, logger.NewNop())
	ctx := context.Background()

	_, err := uc.Add(ctx, userID, "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = uc.Add(ctx, userID, products[0].ID)
	assert.ErrorIs(t, err, model.ErrNotFound, "inactive products cannot be wishlisted")
}

func TestList_NewestFirstAndScopedToUser(t *testing.T) {
	catalogRepo := catalogrepo.NewMemoryRepository()
	repo := wishlistrepo.NewMemoryRepository(catalogRepo)
	uc := NewWishlistUseCase(repo, catalogRepo, logger.NewNop())
	ctx := context.Background()

	// Insert directly with explicit times so the expected order is fixed.
	base := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	for i, productID := range []string{"1", "3", "5"} {
		require.NoError(t, repo.Insert(ctx, &model.WishlistEntry{
			ID:        productID + "-entry",
			UserID:    userID,
			ProductID: productID,
			CreatedAt: base.AddDate(0, 0, i),
		}))
	}
	require.NoError(t, repo.Insert(ctx, &model.WishlistEntry{
		ID: "other", UserID: "user-2", ProductID: "2", CreatedAt: base,
	}))

	items, err := uc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "5", items[0].ProductID)
	assert.Equal(t, "3", items[1].ProductID)
	assert.Equal(t, "1", items[2].ProductID)
}

func TestList_EmptyIsNotNil(t *testing.T) {
	uc := newTestUseCase()

	items, err := uc.List(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestRemoveAndClear(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	for _, id := range []string{"1", "2", "3"} {
		_, err := uc.Add(ctx, userID, id)
		require.NoError(t, err)
	}

	require.NoError(t, uc.Remove(ctx, userID, "2"))
	items, _ := uc.List(ctx, userID)
	assert.Len(t, items, 2)

	// Removing an absent product is not an error.
	require.NoError(t, uc.Remove(ctx, userID, "2"))

	require.NoError(t, uc.Clear(ctx, userID))
	items, _ = uc.List(ctx, userID)
	assert.Empty(t, items)
}
