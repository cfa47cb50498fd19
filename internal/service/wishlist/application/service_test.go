// internal/service/wishlist/application/service_test.go
package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"sebshop/internal/service/notification"
	"sebshop/internal/service/wishlist/infrastructure"
)

func TestToggleAddsThenRemoves(t *testing.T) {
	repo := infrastructure.NewMemoryWishlistRepository()
	svc := NewWishlistService(repo, notification.Nop{}, otel.Tracer("test"))
	ctx := context.Background()

	added, err := svc.Toggle(ctx, "u1", 7)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = svc.Toggle(ctx, "u1", 7)
	require.NoError(t, err)
	assert.False(t, added)

	ids, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestTogglePersistsAcrossServiceInstances(t *testing.T) {
	// 切换必须在返回前就落库，换一个服务实例也能看到
	repo := infrastructure.NewMemoryWishlistRepository()
	ctx := context.Background()

	first := NewWishlistService(repo, notification.Nop{}, otel.Tracer("test"))
	_, err := first.Toggle(ctx, "u1", 7)
	require.NoError(t, err)

	second := NewWishlistService(repo, notification.Nop{}, otel.Tracer("test"))
	contains, err := second.Contains(ctx, "u1", 7)
	require.NoError(t, err)
	assert.True(t, contains)
}

func TestWishlistKeepsInsertionOrder(t *testing.T) {
	repo := infrastructure.NewMemoryWishlistRepository()
	svc := NewWishlistService(repo, notification.Nop{}, otel.Tracer("test"))
	ctx := context.Background()

	for _, id := range []int64{3, 1, 2} {
		_, err := svc.Toggle(ctx, "u1", id)
		require.NoError(t, err)
	}

	ids, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1, 2}, ids)
}

func TestWishlistsAreIsolatedByUser(t *testing.T) {
	repo := infrastructure.NewMemoryWishlistRepository()
	svc := NewWishlistService(repo, notification.Nop{}, otel.Tracer("test"))
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "u1", 7)
	require.NoError(t, err)

	contains, err := svc.Contains(ctx, "u2", 7)
	require.NoError(t, err)
	assert.False(t, contains)
}
