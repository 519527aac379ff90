package catalog

import (
	"context"

	"github.com/Heybro1122/ShopHub/internal/catalog/dto"
	"github.com/Heybro1122/ShopHub/internal/model"
)

// Repository is the authoritative catalog store. Both the in-memory and the
// Postgres implementations must agree on filter, sort and pagination semantics.
type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindRelated(ctx context.Context, category, excludeID string, limit int) ([]model.Product, error)
	FindAll(ctx context.Context, filters *dto.ListFilters) ([]model.Product, int, error)
	Search(ctx context.Context, filters *dto.SearchFilters) ([]model.Product, int, error)

	// Dashboard support
	Count(ctx context.Context) (int, error)
	CountByCategory(ctx context.Context) (map[string]int, error)
	TopBySales(ctx context.Context, limit int) ([]model.Product, error)

	// Order-event support
	AdjustStock(ctx context.Context, productID string, delta int) error
	IncrementSales(ctx context.Context, productID string, n int) error
}
