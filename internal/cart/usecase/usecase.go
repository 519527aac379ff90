package usecase

import (
	"context"
	"math"
	"time"

	"github.com/Heybro1122/ShopHub/internal/cart"
	"github.com/Heybro1122/ShopHub/internal/cart/dto"
	"github.com/Heybro1122/ShopHub/internal/catalog"
	"github.com/Heybro1122/ShopHub/internal/model"
	"github.com/Heybro1122/ShopHub/pkg/logger"
	"github.com/google/uuid"
)

const (
	taxRate           = 0.08
	freeShippingAbove = 50.0
	flatShipping      = 9.99
)

type cartUseCase struct {
	store   cart.Store
	catalog catalog.Repository
	logger  logger.ZapLogger
}

func NewCartUseCase(store cart.Store, catalogRepo catalog.Repository, log logger.ZapLogger) cart.UseCase {
	return &cartUseCase{
		store:   store,
		catalog: catalogRepo,
		logger:  log,
	}
}

func (uc *cartUseCase) Get(ctx context.Context, sessionID string) (*dto.Cart, error) {
	lines, err := uc.store.Lines(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &dto.Cart{
		Items:   lines,
		Summary: summarize(lines),
		Count:   itemCount(lines),
	}, nil
}

func (uc *cartUseCase) Add(ctx context.Context, input *dto.AddItemInput) (int, error) {
	product, err := uc.catalog.FindByID(ctx, input.ProductID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, model.ErrNotFound
	}

	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	line := &model.CartLine{
		ID:        uuid.New().String(),
		SessionID: input.SessionID,
		ProductID: product.ID,
		Quantity:  quantity,
		// Snapshot at add time; later price changes do not touch this line.
		Name:      product.Name,
		Price:     product.Price,
		ImageURL:  product.ImageURL,
		CreatedAt: time.Now(),
	}
	return uc.store.AddLine(ctx, line)
}

func (uc *cartUseCase) SetQuantity(ctx context.Context, sessionID, lineID string, quantity int) error {
	return uc.store.SetQuantity(ctx, sessionID, lineID, quantity)
}

func (uc *cartUseCase) Remove(ctx context.Context, sessionID, lineID string) error {
	return uc.store.Remove(ctx, sessionID, lineID)
}

func (uc *cartUseCase) Clear(ctx context.Context, sessionID string) error {
	return uc.store.Clear(ctx, sessionID)
}

// summarize derives totals: 8% tax, 9.99 flat shipping waived strictly above
// 50, all monetary values rounded to 2 decimals.
func summarize(lines []model.CartLine) model.CartSummary {
	subtotal := 0.0
	for _, l := range lines {
		subtotal += l.Price * float64(l.Quantity)
	}

	tax := subtotal * taxRate
	shipping := flatShipping
	if subtotal > freeShippingAbove {
		shipping = 0
	}

	return model.CartSummary{
		Subtotal: round2(subtotal),
		Tax:      round2(tax),
		Shipping: round2(shipping),
		Total:    round2(subtotal + tax + shipping),
	}
}

func itemCount(lines []model.CartLine) int {
	count := 0
	for _, l := range lines {
		count += l.Quantity
	}
	return count
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
