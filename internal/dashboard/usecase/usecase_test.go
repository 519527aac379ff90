package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogrepo "github.com/Heybro1122/ShopHub/internal/catalog/repository"
	"github.com/Heybro1122/ShopHub/internal/model"
	orderrepo "github.com/Heybro1122/ShopHub/internal/order/repository"
	userrepo "github.com/Heybro1122/ShopHub/internal/user/repository"
	"github.com/Heybro1122/ShopHub/pkg/logger"
)

// fixedNow keeps month-bucket expectations stable regardless of when the
// tests run. Mid-month avoids boundary surprises.
var fixedNow = time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)

func newTestUseCase(orders []model.Order) *dashboardUseCase {
	uc := &dashboardUseCase{
		users:   userrepo.NewMemoryRepository(),
		orders:  orderrepo.NewMemoryRepositoryWith(orders, map[string]string{"user-1": "Jordan Blake"}),
		catalog: catalogrepo.NewMemoryRepository(),
		logger:  logger.NewNop(),
		now:     func() time.Time { return fixedNow },
	}
	return uc
}

func orderAt(id string, total float64, status model.OrderStatus, at time.Time) model.Order {
	return model.Order{ID: id, UserID: "user-1", Total: total, Status: status, CreatedAt: at}
}

func TestComputeSnapshot_Totals(t *testing.T) {
	orders := []model.Order{
		orderAt("o1", 100, model.OrderDelivered, fixedNow.AddDate(0, -1, 0)),
		orderAt("o2", 50, model.OrderDelivered, fixedNow),
		orderAt("o3", 999, model.OrderPending, fixedNow), // not revenue
	}
	uc := newTestUseCase(orders)

	snap, err := uc.ComputeSnapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, snap.TotalUsers)
	assert.Equal(t, 3, snap.TotalOrders)
	assert.Equal(t, 8, snap.TotalProducts)
	assert.InDelta(t, 150.0, snap.TotalRevenue, 0.001, "only delivered orders count as revenue")
}

func TestComputeSnapshot_MonthlyBuckets(t *testing.T) {
	orders := []model.Order{
		orderAt("o1", 100, model.OrderDelivered, time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC)),
		orderAt("o2", 40, model.OrderDelivered, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)),
		orderAt("o3", 60, model.OrderDelivered, time.Date(2025, time.July, 31, 23, 0, 0, 0, time.UTC)),
		orderAt("o4", 500, model.OrderDelivered, time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC)), // before window
		orderAt("o5", 77, model.OrderShipped, time.Date(2025, time.July, 2, 0, 0, 0, 0, time.UTC)),        // not delivered
	}
	uc := newTestUseCase(orders)

	snap, err := uc.ComputeSnapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.SalesData, 6)
	names := make([]string, 0, 6)
	for _, b := range snap.SalesData {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{"Feb", "Mar", "Apr", "May", "Jun", "Jul"}, names)

	feb := snap.SalesData[0]
	assert.Equal(t, 1, feb.Orders)
	assert.InDelta(t, 100.0, feb.Sales, 0.001)

	jul := snap.SalesData[5]
	assert.Equal(t, 2, jul.Orders)
	assert.InDelta(t, 100.0, jul.Sales, 0.001)

	for _, b := range snap.SalesData[1:5] {
		assert.Zero(t, b.Orders)
		assert.Zero(t, b.Sales)
	}
}

func TestComputeSnapshot_CategoryDistribution(t *testing.T) {
	uc := newTestUseCase(nil)

	snap, err := uc.ComputeSnapshot(context.Background())
	require.NoError(t, err)

	// Fixture catalog covers four of the storefront categories.
	require.Len(t, snap.CategoryData, 4)
	assert.Equal(t, "Electronics", snap.CategoryData[0].Name)
	assert.Equal(t, 3, snap.CategoryData[0].Value)
	assert.Equal(t, "#8b5cf6", snap.CategoryData[0].Color)

	byName := map[string]model.CategoryBucket{}
	for _, b := range snap.CategoryData {
		byName[b.Name] = b
	}
	assert.Equal(t, "#ec4899", byName["Fashion"].Color)
	assert.Equal(t, "#10b981", byName["Home & Living"].Color)
	assert.Equal(t, "#f59e0b", byName["Sports"].Color)
}

func TestComputeSnapshot_UnknownCategoryColor(t *testing.T) {
	uc := newTestUseCase(nil)
	uc.catalog = catalogrepo.NewMemoryRepositoryWith([]*model.Product{
		{BaseModel: model.BaseModel{ID: "x1"}, Name: "Mystery", Price: 1, Category: "Collectibles", Status: model.ProductActive},
	})

	snap, err := uc.ComputeSnapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.CategoryData, 1)
	assert.Equal(t, "Collectibles", snap.CategoryData[0].Name)
	assert.Equal(t, "#6b7280", snap.CategoryData[0].Color)
}

func TestComputeSnapshot_TopProducts(t *testing.T) {
	uc := newTestUseCase(nil)

	snap, err := uc.ComputeSnapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.TopProducts, 5)
	assert.Equal(t, "Yoga Mat Premium", snap.TopProducts[0].Name)
	assert.Equal(t, 521, snap.TopProducts[0].Sales)
	assert.InDelta(t, 52100.0, snap.TopProducts[0].Revenue, 0.001)

	for i := 1; i < len(snap.TopProducts); i++ {
		assert.GreaterOrEqual(t, snap.TopProducts[i-1].Sales, snap.TopProducts[i].Sales)
	}
}

func TestComputeSnapshot_RecentOrders(t *testing.T) {
	var orders []model.Order
	for i := 0; i < 7; i++ {
		orders = append(orders, orderAt(
			"o"+string(rune('a'+i)), 10, model.OrderPending,
			fixedNow.Add(-time.Duration(i)*time.Hour),
		))
	}
	uc := newTestUseCase(orders)

	snap, err := uc.ComputeSnapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.RecentOrders, 5)
	assert.Equal(t, "oa", snap.RecentOrders[0].ID)
	assert.Equal(t, "Jordan Blake", snap.RecentOrders[0].Customer)
	assert.Equal(t, "7/15/2025", snap.RecentOrders[0].Date)
}

func TestComputeSnapshot_EmptyStore(t *testing.T) {
	uc := newTestUseCase(nil)

	snap, err := uc.ComputeSnapshot(context.Background())
	require.NoError(t, err)

	assert.Zero(t, snap.TotalRevenue)
	assert.NotNil(t, snap.RecentOrders)
	assert.Empty(t, snap.RecentOrders)
	require.Len(t, snap.SalesData, 6)
}
