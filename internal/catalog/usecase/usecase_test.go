package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Heybro1122/ShopHub/internal/catalog"
	"github.com/Heybro1122/ShopHub/internal/catalog/dto"
	"github.com/Heybro1122/ShopHub/internal/catalog/repository"
	"github.com/Heybro1122/ShopHub/internal/model"
	"github.com/Heybro1122/ShopHub/pkg/logger"
)

func newTestUseCase() catalog.UseCase {
	return NewProductUseCase(repository.NewMemoryRepository(), nil, nil, logger.NewNop())
}

func TestListProducts(t *testing.T) {
	uc := newTestUseCase()

	result, err := uc.ListProducts(context.Background(), &dto.ListFilters{Page: 1, Limit: 8})
	require.NoError(t, err)

	assert.Len(t, result.Products, 8)
	assert.Equal(t, 8, result.Pagination.Total)
	assert.Equal(t, 1, result.Pagination.Pages)
	assert.Equal(t, model.Categories, result.Categories)
}

func TestListProducts_PageMath(t *testing.T) {
	uc := newTestUseCase()

	result, err := uc.ListProducts(context.Background(), &dto.ListFilters{Page: 2, Limit: 3})
	require.NoError(t, err)

	assert.Len(t, result.Products, 3)
	assert.Equal(t, 2, result.Pagination.Page)
	assert.Equal(t, 3, result.Pagination.Pages) // ceil(8/3)
}

func TestGetProduct(t *testing.T) {
	uc := newTestUseCase()

	p, related, err := uc.GetProduct(context.Background(), "1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Wireless Headphones Pro", p.Name)

	// Related products share the category and never include the product itself.
	require.NotEmpty(t, related)
	for _, r := range related {
		assert.Equal(t, p.Category, r.Category)
		assert.NotEqual(t, p.ID, r.ID)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	uc := newTestUseCase()

	_, _, err := uc.GetProduct(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestSearchProducts_BlankQuery(t *testing.T) {
	uc := newTestUseCase()

	for _, q := range []string{"", "   ", "\t"} {
		result, err := uc.SearchProducts(context.Background(), &dto.SearchFilters{
			Query: q, MaxPrice: 1000, Page: 1, Limit: 12,
		})
		require.NoError(t, err)
		assert.Equal(t, 0, result.Total)
		assert.Empty(t, result.Products)
		assert.False(t, result.HasMore)
	}
}

func TestSearchProducts_HasMore(t *testing.T) {
	uc := newTestUseCase()

	// Three products match "fitness": one by description, two by tag.
	result, err := uc.SearchProducts(context.Background(), &dto.SearchFilters{
		Query: "fitness", MaxPrice: 1000, Page: 1, Limit: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.Pages)
	assert.True(t, result.HasMore)

	result, err = uc.SearchProducts(context.Background(), &dto.SearchFilters{
		Query: "fitness", MaxPrice: 1000, Page: 2, Limit: 2,
	})
	require.NoError(t, err)
	assert.False(t, result.HasMore)
}

func TestCreateProduct(t *testing.T) {
	uc := newTestUseCase()

	p, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		Name:     "Test Lamp",
		Price:    19.99,
		Category: "Home & Living",
		Stock:    5,
	})
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	assert.Equal(t, model.ProductActive, p.Status)
	assert.Nil(t, p.OriginalPrice)
	assert.Nil(t, p.Badge)

	got, _, err := uc.GetProduct(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test Lamp", got.Name)
}

func TestCreateProduct_Invalid(t *testing.T) {
	uc := newTestUseCase()

	tests := []struct {
		name  string
		input dto.CreateProductInput
	}{
		{"missing name", dto.CreateProductInput{Price: 10}},
		{"negative price", dto.CreateProductInput{Name: "X", Price: -1}},
		{"negative stock", dto.CreateProductInput{Name: "X", Price: 1, Stock: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateProduct(context.Background(), &tt.input)
			assert.ErrorIs(t, err, model.ErrInvalid)
		})
	}
}
