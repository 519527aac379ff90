package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/Heybro1122/ShopHub/internal/catalog"
	"github.com/Heybro1122/ShopHub/internal/dashboard"
	"github.com/Heybro1122/ShopHub/internal/model"
	"github.com/Heybro1122/ShopHub/internal/order"
	"github.com/Heybro1122/ShopHub/internal/user"
	"github.com/Heybro1122/ShopHub/pkg/logger"
)

const (
	monthlyBuckets   = 6
	topProductLimit  = 5
	recentOrderLimit = 5

	// Per-unit revenue estimate for the top-product chart. Sales counters
	// do not carry historical prices, so the chart uses a flat figure.
	revenuePerSale = 100.0
)

var categoryColors = map[string]string{
	"Electronics":   "#8b5cf6",
	"Fashion":       "#ec4899",
	"Home & Living": "#10b981",
	"Sports":        "#f59e0b",
	"Books":         "#3b82f6",
	"Toys":          "#ef4444",
}

const defaultCategoryColor = "#6b7280"

type dashboardUseCase struct {
	users   user.Repository
	orders  order.Repository
	catalog catalog.Repository
	logger  logger.ZapLogger

	// now is swappable so bucket math can be pinned in tests.
	now func() time.Time
}

func NewDashboardUseCase(users user.Repository, orders order.Repository, catalogRepo catalog.Repository, logger logger.ZapLogger) dashboard.UseCase {
	return &dashboardUseCase{
		users:   users,
		orders:  orders,
		catalog: catalogRepo,
		logger:  logger,
		now:     time.Now,
	}
}

func (uc *dashboardUseCase) ComputeSnapshot(ctx context.Context) (*model.DashboardSnapshot, error) {
	totalUsers, err := uc.users.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "dashboard: count users")
	}
	totalOrders, err := uc.orders.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "dashboard: count orders")
	}
	totalProducts, err := uc.catalog.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "dashboard: count products")
	}
	totalRevenue, err := uc.orders.SumDelivered(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "dashboard: sum revenue")
	}

	salesData, err := uc.monthlySales(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "dashboard: monthly sales")
	}
	categoryData, err := uc.categoryDistribution(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "dashboard: category distribution")
	}
	topProducts, err := uc.topProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "dashboard: top products")
	}
	recentOrders, err := uc.orders.Recent(ctx, recentOrderLimit)
	if err != nil {
		return nil, errors.Wrap(err, "dashboard: recent orders")
	}
	if recentOrders == nil {
		recentOrders = []model.RecentOrder{}
	}

	return &model.DashboardSnapshot{
		TotalUsers:    totalUsers,
		TotalOrders:   totalOrders,
		TotalProducts: totalProducts,
		TotalRevenue:  totalRevenue,
		SalesData:     salesData,
		CategoryData:  categoryData,
		TopProducts:   topProducts,
		RecentOrders:  recentOrders,
	}, nil
}

// monthlySales aggregates delivered orders into six calendar-month buckets
// ending with the current month. Buckets follow server local time.
func (uc *dashboardUseCase) monthlySales(ctx context.Context) ([]model.MonthlyBucket, error) {
	now := uc.now()

	buckets := make([]model.MonthlyBucket, 0, monthlyBuckets)
	for i := monthlyBuckets - 1; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

		orders, err := uc.orders.DeliveredBetween(ctx, start, end)
		if err != nil {
			return nil, err
		}

		bucket := model.MonthlyBucket{Name: start.Format("Jan"), Orders: len(orders)}
		for _, o := range orders {
			bucket.Sales += o.Total
		}
		buckets = append(buckets, bucket)
	}
	return buckets, nil
}

// categoryDistribution counts products per category, listing the known
// categories in their canonical order and any stragglers alphabetically.
func (uc *dashboardUseCase) categoryDistribution(ctx context.Context) ([]model.CategoryBucket, error) {
	counts, err := uc.catalog.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(model.Categories))
	out := make([]model.CategoryBucket, 0, len(counts))
	for _, name := range model.Categories {
		seen[name] = true
		if n, ok := counts[name]; ok {
			out = append(out, model.CategoryBucket{Name: name, Value: n, Color: categoryColors[name]})
		}
	}

	var extras []string
	for name := range counts {
		if !seen[name] {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	for _, name := range extras {
		out = append(out, model.CategoryBucket{Name: name, Value: counts[name], Color: defaultCategoryColor})
	}
	return out, nil
}

func (uc *dashboardUseCase) topProducts(ctx context.Context) ([]model.TopProduct, error) {
	products, err := uc.catalog.TopBySales(ctx, topProductLimit)
	if err != nil {
		return nil, err
	}

	out := make([]model.TopProduct, 0, len(products))
	for _, p := range products {
		out = append(out, model.TopProduct{
			ID:      p.ID,
			Name:    p.Name,
			Sales:   p.SalesCount,
			Revenue: float64(p.SalesCount) * revenuePerSale,
		})
	}
	return out, nil
}
