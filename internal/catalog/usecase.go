package catalog

import (
	"context"

	"github.com/Heybro1122/ShopHub/internal/catalog/dto"
	"github.com/Heybro1122/ShopHub/internal/model"
)

type UseCase interface {
	ListProducts(ctx context.Context, filters *dto.ListFilters) (*dto.ListResult, error)
	GetProduct(ctx context.Context, id string) (*model.Product, []model.Product, error)
	SearchProducts(ctx context.Context, filters *dto.SearchFilters) (*dto.SearchResult, error)
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
}
