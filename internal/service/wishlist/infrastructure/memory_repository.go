// internal/service/wishlist/infrastructure/memory_repository.go
package infrastructure

import (
	"context"
	"sync"

	"sebshop/internal/service/wishlist/domain"
)

// MemoryWishlistRepository 是 WishlistRepository 的进程内实现，测试用。
type MemoryWishlistRepository struct {
	mu    sync.RWMutex
	lists map[string][]int64
}

// NewMemoryWishlistRepository 创建一个空的内存仓储。
func NewMemoryWishlistRepository() *MemoryWishlistRepository {
	return &MemoryWishlistRepository{lists: make(map[string][]int64)}
}

func (r *MemoryWishlistRepository) Load(ctx context.Context, userID string) (*domain.Wishlist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids, ok := r.lists[userID]
	if !ok {
		return domain.NewWishlist(userID), nil
	}
	out := make([]int64, len(ids))
	copy(out, ids)
	return &domain.Wishlist{UserID: userID, ProductIDs: out}, nil
}

func (r *MemoryWishlistRepository) Save(ctx context.Context, wishlist *domain.Wishlist) error {
	ids := make([]int64, len(wishlist.ProductIDs))
	copy(ids, wishlist.ProductIDs)
	r.mu.Lock()
	r.lists[wishlist.UserID] = ids
	r.mu.Unlock()
	return nil
}
