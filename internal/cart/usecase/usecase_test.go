package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Heybro1122/ShopHub/internal/cart"
	"github.com/Heybro1122/ShopHub/internal/cart/dto"
	cartrepo "github.com/Heybro1122/ShopHub/internal/cart/repository"
	catalogrepo "github.com/Heybro1122/ShopHub/internal/catalog/repository"
	"github.com/Heybro1122/ShopHub/internal/model"
	"github.com/Heybro1122/ShopHub/pkg/logger"
)

const session = "sess-1"

func newTestUseCase() cart.UseCase {
	return NewCartUseCase(cartrepo.NewMemoryStore(), catalogrepo.NewMemoryRepository(), logger.NewNop())
}

func TestAdd_MergesSameProduct(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	count, err := uc.Add(ctx, &dto.AddItemInput{SessionID: session, ProductID: "1", Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = uc.Add(ctx, &dto.AddItemInput{SessionID: session, ProductID: "1", Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	c, err := uc.Get(ctx, session)
	require.NoError(t, err)
	require.Len(t, c.Items, 1, "same product merges into one line")
	assert.Equal(t, 5, c.Items[0].Quantity)
	assert.Equal(t, 5, c.Count)
}

func TestAdd_DefaultsQuantityToOne(t *testing.T) {
	uc := newTestUseCase()

	count, err := uc.Add(context.Background(), &dto.AddItemInput{SessionID: session, ProductID: "5", Quantity: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAdd_UnknownProduct(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Add(context.Background(), &dto.AddItemInput{SessionID: session, ProductID: "nope", Quantity: 1})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestAdd_SnapshotSurvivesPriceChange(t *testing.T) {
	catalogRepo := catalogrepo.NewMemoryRepositoryWith([]*model.Product{
		{
			BaseModel: model.BaseModel{ID: "p1", CreatedAt: time.Now()},
			Name:      "Widget", Price: 10.00, Stock: 5, Status: model.ProductActive,
		},
	})
	uc := NewCartUseCase(cartrepo.NewMemoryStore(), catalogRepo, logger.NewNop())
	ctx := context.Background()

	_, err := uc.Add(ctx, &dto.AddItemInput{SessionID: session, ProductID: "p1", Quantity: 1})
	require.NoError(t, err)

	// A later add with the same product keeps the line's original snapshot.
	_, err = uc.Add(ctx, &dto.AddItemInput{SessionID: session, ProductID: "p1", Quantity: 1})
	require.NoError(t, err)

	c, err := uc.Get(ctx, session)
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 10.00, c.Items[0].Price)
	assert.Equal(t, "Widget", c.Items[0].Name)
}

func TestSetQuantity(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	_, err := uc.Add(ctx, &dto.AddItemInput{SessionID: session, ProductID: "1", Quantity: 2})
	require.NoError(t, err)
	c, err := uc.Get(ctx, session)
	require.NoError(t, err)
	lineID := c.Items[0].ID

	require.NoError(t, uc.SetQuantity(ctx, session, lineID, 7))
	c, _ = uc.Get(ctx, session)
	assert.Equal(t, 7, c.Items[0].Quantity)

	// Zero or negative removes the line.
	require.NoError(t, uc.SetQuantity(ctx, session, lineID, 0))
	c, _ = uc.Get(ctx, session)
	assert.Empty(t, c.Items)

	assert.ErrorIs(t, uc.SetQuantity(ctx, session, "missing", 1), model.ErrNotFound)
}

func TestRemoveAndClear(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	_, err := uc.Add(ctx, &dto.AddItemInput{SessionID: session, ProductID: "1", Quantity: 1})
	require.NoError(t, err)
	_, err = uc.Add(ctx, &dto.AddItemInput{SessionID: session, ProductID: "3", Quantity: 1})
	require.NoError(t, err)

	c, _ := uc.Get(ctx, session)
	require.Len(t, c.Items, 2)

	require.NoError(t, uc.Remove(ctx, session, c.Items[0].ID))
	c, _ = uc.Get(ctx, session)
	assert.Len(t, c.Items, 1)

	// Removing an absent line is not an error.
	require.NoError(t, uc.Remove(ctx, session, "already-gone"))

	require.NoError(t, uc.Clear(ctx, session))
	c, _ = uc.Get(ctx, session)
	assert.Empty(t, c.Items)
	assert.Equal(t, 0, c.Count)
}

func TestSessionsAreIsolated(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()

	_, err := uc.Add(ctx, &dto.AddItemInput{SessionID: "a", ProductID: "1", Quantity: 1})
	require.NoError(t, err)

	c, err := uc.Get(ctx, "b")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		lines    []model.CartLine
		expected model.CartSummary
	}{
		{
			name:     "empty cart still charges shipping",
			lines:    nil,
			expected: model.CartSummary{Subtotal: 0, Tax: 0, Shipping: 9.99, Total: 9.99},
		},
		{
			name:     "below threshold",
			lines:    []model.CartLine{{Price: 10.00, Quantity: 2}},
			expected: model.CartSummary{Subtotal: 20.00, Tax: 1.60, Shipping: 9.99, Total: 31.59},
		},
		{
			name:     "exactly 50 still pays shipping",
			lines:    []model.CartLine{{Price: 25.00, Quantity: 2}},
			expected: model.CartSummary{Subtotal: 50.00, Tax: 4.00, Shipping: 9.99, Total: 63.99},
		},
		{
			name:     "just above 50 ships free",
			lines:    []model.CartLine{{Price: 50.01, Quantity: 1}},
			expected: model.CartSummary{Subtotal: 50.01, Tax: 4.00, Shipping: 0, Total: 54.01},
		},
		{
			name:     "multiple lines",
			lines:    []model.CartLine{{Price: 299.99, Quantity: 1}, {Price: 49.99, Quantity: 2}},
			expected: model.CartSummary{Subtotal: 399.97, Tax: 32.00, Shipping: 0, Total: 431.97},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := summarize(tt.lines)
			assert.InDelta(t, tt.expected.Subtotal, got.Subtotal, 0.001)
			assert.InDelta(t, tt.expected.Tax, got.Tax, 0.001)
			assert.InDelta(t, tt.expected.Shipping, got.Shipping, 0.001)
			assert.InDelta(t, tt.expected.Total, got.Total, 0.001)
		})
	}
}
