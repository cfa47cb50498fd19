// internal/service/admin/application/service_test.go
package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	admininfra "sebshop/internal/service/admin/infrastructure"
	catalogdomain "sebshop/internal/service/catalog/domain"
	cataloginfra "sebshop/internal/service/catalog/infrastructure"
	checkoutdomain "sebshop/internal/service/checkout/domain"
	checkoutinfra "sebshop/internal/service/checkout/infrastructure"
)

func newAdminFixture(t *testing.T) (*AdminService, *checkoutinfra.MemoryOrderRepository) {
	t.Helper()
	ctx := context.Background()

	productRepo := cataloginfra.NewMemoryProductRepository()
	seeds := []catalogdomain.Product{
		{ID: 1, Name: "Heavyweight Tee", Price: 25.0, InStock: true},
		{ID: 2, Name: "Zip Hoodie", Price: 45.0, InStock: true},
		{ID: 3, Name: "Retired Cap", Price: 15.0, InStock: false},
	}
	for i := range seeds {
		require.NoError(t, productRepo.Create(ctx, &seeds[i]))
	}

	orderRepo := checkoutinfra.NewMemoryOrderRepository()
	return NewAdminService(productRepo, orderRepo, admininfra.NewMemorySettingsRepository()), orderRepo
}

func appendOrder(t *testing.T, repo *checkoutinfra.MemoryOrderRepository, id int64, total float64) {
	t.Helper()
	order := &checkoutdomain.Order{
		ID:     id,
		UserID: "u1",
		Total:  total,
		Status: checkoutdomain.StatusPending,
		Date:   time.Now(),
	}
	require.NoError(t, repo.Append(context.Background(), order))
}

func TestGetStats(t *testing.T) {
	svc, orderRepo := newAdminFixture(t)
	appendOrder(t, orderRepo, 1, 35.99)
	appendOrder(t, orderRepo, 2, 42.99)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 2, stats.ActiveProducts)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.InDelta(t, 78.98, stats.Revenue, 1e-9)
}

func TestRecentOrdersCapsAtTen(t *testing.T) {
	svc, orderRepo := newAdminFixture(t)
	for i := int64(1); i <= 12; i++ {
		appendOrder(t, orderRepo, i, 10.0)
	}

	orders, err := svc.RecentOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 10)
	// 取的是写入顺序的前 10 条
	assert.Equal(t, int64(1), orders[0].ID)
	assert.Equal(t, int64(10), orders[9].ID)
}

func TestSettingsRoundTrip(t *testing.T) {
	svc, _ := newAdminFixture(t)
	ctx := context.Background()

	initial, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Zero(t, initial.Subscribers)

	initial.Subscribers = 1200
	initial.Videos = 85
	require.NoError(t, svc.SaveSettings(ctx, initial))

	reloaded, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1200, reloaded.Subscribers)
	assert.Equal(t, 85, reloaded.Videos)
}
