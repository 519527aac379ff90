package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Heybro1122/ShopHub/internal/catalog"
	"github.com/Heybro1122/ShopHub/internal/model"
	"github.com/Heybro1122/ShopHub/internal/wishlist"
	"github.com/Heybro1122/ShopHub/pkg/logger"
)

type wishlistUseCase struct {
	repo    wishlist.Repository
	catalog catalog.Repository
	logger  logger.ZapLogger
}

func NewWishlistUseCase(repo wishlist.Repository, catalogRepo catalog.Repository, logger logger.ZapLogger) wishlist.UseCase {
	return &wishlistUseCase{
		repo:    repo,
		catalog: catalogRepo,
		logger:  logger,
	}
}

func (uc *wishlistUseCase) List(ctx context.Context, userID string) ([]model.WishlistItem, error) {
	items, err := uc.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.WishlistItem{}
	}
	return items, nil
}

func (uc *wishlistUseCase) Add(ctx context.Context, userID, productID string) (*model.WishlistItem, error) {
	product, err := uc.catalog.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.Status != model.ProductActive {
		return nil, model.ErrNotFound
	}

	existing, err := uc.repo.Find(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.ErrDuplicate
	}

	entry := &model.WishlistEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Insert(ctx, entry); err != nil {
		return nil, err
	}

	return &model.WishlistItem{WishlistEntry: *entry, Product: product}, nil
}

func (uc *wishlistUseCase) Remove(ctx context.Context, userID, productID string) error {
	return uc.repo.Delete(ctx, userID, productID)
}

func (uc *wishlistUseCase) Clear(ctx context.Context, userID string) error {
	return uc.repo.Clear(ctx, userID)
}
