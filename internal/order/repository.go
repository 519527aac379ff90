package order

import (
	"context"
	"time"

	"github.com/Heybro1122/ShopHub/internal/model"
)

// Repository is the order store as seen by the dashboard. Orders themselves
// are written by the external checkout pipeline; this service only reads them.
type Repository interface {
	Count(ctx context.Context) (int, error)

	// SumDelivered is the revenue figure: the sum of totals over orders whose
	// status is delivered.
	SumDelivered(ctx context.Context) (float64, error)

	// DeliveredBetween returns delivered orders created within [from, to]
	// inclusive.
	DeliveredBetween(ctx context.Context, from, to time.Time) ([]model.Order, error)

	// Recent returns the most recently created orders regardless of status,
	// newest first, with customer names resolved.
	Recent(ctx context.Context, limit int) ([]model.RecentOrder, error)
}
