// internal/service/cart/application/service_test.go
package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"sebshop/internal/service/cart/domain"
	"sebshop/internal/service/cart/infrastructure"
	"sebshop/internal/service/cart/port"
	catalogdomain "sebshop/internal/service/catalog/domain"
	"sebshop/internal/service/notification"
)

// stubCatalog 返回固定的商品信息，未知 ID 报 not found。
type stubCatalog struct {
	products map[int64]port.ProductInfo
}

func (s *stubCatalog) GetProduct(ctx context.Context, productID int64) (*port.ProductInfo, error) {
	if p, ok := s.products[productID]; ok {
		return &p, nil
	}
	return nil, catalogdomain.ErrProductNotFound
}

func newTestService() (*CartService, *infrastructure.MemoryCartRepository) {
	repo := infrastructure.NewMemoryCartRepository()
	catalog := &stubCatalog{products: map[int64]port.ProductInfo{
		1: {ID: 1, Name: "Heavyweight Tee", UnitPrice: 25.0, Sizes: []string{"M", "L"}, Colors: []string{"Black", "White"}, InStock: true},
		2: {ID: 2, Name: "Zip Hoodie", UnitPrice: 45.0, InStock: true},
	}}
	return NewCartService(repo, catalog, notification.Nop{}, otel.Tracer("test")), repo
}

func TestAddItemResolvesProductAndPersists(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	cart, err := svc.AddItem(ctx, "s1", AddItemRequest{ProductID: 1, Size: "L", Color: "White", Quantity: 2})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Heavyweight Tee", cart.Items[0].Name)
	assert.InDelta(t, 25.0, cart.Items[0].UnitPrice, 1e-9)
	assert.Equal(t, 2, cart.Items[0].Quantity)

	// 重新加载必须得到同样的内容
	reloaded, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, cart.Items, reloaded.Items)
}

func TestAddItemDefaultsToFirstVariant(t *testing.T) {
	svc, _ := newTestService()

	cart, err := svc.AddItem(context.Background(), "s1", AddItemRequest{ProductID: 1})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "M", cart.Items[0].Size)
	assert.Equal(t, "Black", cart.Items[0].Color)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", AddItemRequest{ProductID: 99})
	assert.ErrorIs(t, err, catalogdomain.ErrProductNotFound)

	cart, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestUpdateQuantityRemovesAtZero(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", AddItemRequest{ProductID: 1, Quantity: 3})
	require.NoError(t, err)

	key := domain.ItemKey{ProductID: 1, Size: "M", Color: "Black"}
	cart, err := svc.UpdateQuantity(ctx, "s1", key, 0)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestRemoveItemPersists(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", AddItemRequest{ProductID: 1})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "s1", AddItemRequest{ProductID: 2})
	require.NoError(t, err)

	_, err = svc.RemoveItem(ctx, "s1", domain.ItemKey{ProductID: 1, Size: "M", Color: "Black"})
	require.NoError(t, err)

	cart, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(2), cart.Items[0].ProductID)
}

func TestCartsAreIsolatedBySession(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", AddItemRequest{ProductID: 1})
	require.NoError(t, err)

	other, err := svc.GetCart(ctx, "s2")
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())
}
