// internal/service/catalog/application/service_test.go
package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"sebshop/internal/service/catalog/domain"
	"sebshop/internal/service/catalog/infrastructure"
)

func seededService(t *testing.T) *CatalogService {
	t.Helper()
	repo := infrastructure.NewMemoryProductRepository()
	ctx := context.Background()
	seeds := []domain.Product{
		{ID: 1, Name: "Heavyweight Tee", Category: "tees", Price: 25.0, InStock: true},
		{ID: 2, Name: "Zip Hoodie", Category: "hoodies", Price: 45.0, InStock: true},
		{ID: 3, Name: "Retired Cap", Category: "accessories", Price: 15.0, InStock: false},
		{ID: 4, Name: "Logo Tee", Category: "tees", Price: 20.0, InStock: true},
	}
	for i := range seeds {
		require.NoError(t, repo.Create(ctx, &seeds[i]))
	}
	return NewCatalogService(repo, otel.Tracer("test"))
}

func TestListActiveFiltersOutOfStock(t *testing.T) {
	svc := seededService(t)

	products, err := svc.ListActive(context.Background(), "all", SortDefault)
	require.NoError(t, err)
	require.Len(t, products, 3)
	for _, p := range products {
		assert.True(t, p.InStock)
	}
}

func TestListActiveFiltersByCategory(t *testing.T) {
	svc := seededService(t)

	products, err := svc.ListActive(context.Background(), "tees", SortDefault)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, int64(4), products[1].ID)
}

func TestListActiveSortsByPrice(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	low, err := svc.ListActive(ctx, "", SortPriceLow)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 1, 2}, ids(low))

	high, err := svc.ListActive(ctx, "", SortPriceHigh)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1, 4}, ids(high))
}

func TestListActiveNewestReversesInsertionOrder(t *testing.T) {
	svc := seededService(t)

	products, err := svc.ListActive(context.Background(), "", SortNewest)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 2, 1}, ids(products))
}

func ids(products []domain.Product) []int64 {
	out := make([]int64, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestCreateProductAssignsTimestampID(t *testing.T) {
	repo := infrastructure.NewMemoryProductRepository()
	svc := NewCatalogService(repo, otel.Tracer("test"))

	created, err := svc.CreateProduct(context.Background(), domain.Product{Name: "New Drop", Price: 30.0, InStock: true})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestUpdateProductKeepsImageWhenOmitted(t *testing.T) {
	repo := infrastructure.NewMemoryProductRepository()
	svc := NewCatalogService(repo, otel.Tracer("test"))
	ctx := context.Background()

	seed := domain.Product{ID: 1, Name: "Heavyweight Tee", Price: 25.0, Image: "data:image/png;base64,abc", InStock: true}
	require.NoError(t, repo.Create(ctx, &seed))

	updated, err := svc.UpdateProduct(ctx, domain.Product{ID: 1, Name: "Heavyweight Tee v2", Price: 27.0, InStock: true})
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,abc", updated.Image)
	assert.Equal(t, "Heavyweight Tee v2", updated.Name)
}

func TestUpdateMissingProduct(t *testing.T) {
	repo := infrastructure.NewMemoryProductRepository()
	svc := NewCatalogService(repo, otel.Tracer("test"))

	_, err := svc.UpdateProduct(context.Background(), domain.Product{ID: 42})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestToggleStockFlips(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	product, err := svc.ToggleStock(ctx, 1)
	require.NoError(t, err)
	assert.False(t, product.InStock)

	product, err = svc.ToggleStock(ctx, 1)
	require.NoError(t, err)
	assert.True(t, product.InStock)
}

func TestDeleteProductRemovesFromListing(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	require.NoError(t, svc.DeleteProduct(ctx, 1))
	_, err := svc.GetProduct(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
