package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Heybro1122/ShopHub/internal/model"
)

type MemoryRepository struct {
	mu        sync.RWMutex
	orders    []model.Order
	customers map[string]string // user id -> display name
}

func NewMemoryRepository() *MemoryRepository {
	orders, customers := fixtures(time.Now())
	return NewMemoryRepositoryWith(orders, customers)
}

func NewMemoryRepositoryWith(orders []model.Order, customers map[string]string) *MemoryRepository {
	return &MemoryRepository{orders: orders, customers: customers}
}

// fixtures spreads delivered and in-flight orders over the last six months so
// the dashboard series has data in every bucket.
func fixtures(now time.Time) ([]model.Order, map[string]string) {
	customers := map[string]string{
		"user-1": "Jordan Blake",
		"user-2": "Sam Carter",
		"user-3": "Riley Quinn",
	}

	users := []string{"user-1", "user-2", "user-3"}
	statuses := []model.OrderStatus{
		model.OrderDelivered, model.OrderDelivered, model.OrderDelivered,
		model.OrderShipped, model.OrderProcessing, model.OrderPending,
	}

	var orders []model.Order
	n := 0
	for monthsAgo := 5; monthsAgo >= 0; monthsAgo-- {
		for i := 0; i < 4; i++ {
			n++
			orders = append(orders, model.Order{
				ID:        fmt.Sprintf("order-%d", n),
				UserID:    users[n%len(users)],
				Total:     float64(40 + n*17%260),
				Status:    statuses[n%len(statuses)],
				CreatedAt: now.AddDate(0, -monthsAgo, 0).Add(time.Duration(i*6) * time.Hour),
			})
		}
	}
	return orders, customers
}

func (r *MemoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders), nil
}

func (r *MemoryRepository) SumDelivered(ctx context.Context) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sum := 0.0
	for _, o := range r.orders {
		if o.Status == model.OrderDelivered {
			sum += o.Total
		}
	}
	return sum, nil
}

func (r *MemoryRepository) DeliveredBetween(ctx context.Context, from, to time.Time) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Order
	for _, o := range r.orders {
		if o.Status != model.OrderDelivered {
			continue
		}
		if o.CreatedAt.Before(from) || o.CreatedAt.After(to) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *MemoryRepository) Recent(ctx context.Context, limit int) ([]model.RecentOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sorted := make([]model.Order, len(r.orders))
	copy(sorted, r.orders)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CreatedAt.After(sorted[j].CreatedAt) })
	if limit > len(sorted) {
		limit = len(sorted)
	}

	out := make([]model.RecentOrder, 0, limit)
	for _, o := range sorted[:limit] {
		out = append(out, model.RecentOrder{
			ID:       o.ID,
			Customer: r.customers[o.UserID],
			Total:    o.Total,
			Status:   o.Status,
			Date:     o.CreatedAt.Format("1/2/2006"),
		})
	}
	return out, nil
}
