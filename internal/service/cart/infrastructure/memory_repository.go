// internal/service/cart/infrastructure/memory_repository.go
package infrastructure

import (
	"context"
	"sync"

	"sebshop/internal/service/cart/domain"
)

// MemoryCartRepository 是 CartRepository 的进程内实现，测试用。
// 存取都经过编解码，行为上尽量贴近 Redis 实现。
type MemoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string][]byte
}

// NewMemoryCartRepository 创建一个空的内存仓储。
func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{carts: make(map[string][]byte)}
}

func (r *MemoryCartRepository) Load(ctx context.Context, sessionID string) (*domain.Cart, error) {
	r.mu.RLock()
	data, ok := r.carts[sessionID]
	r.mu.RUnlock()
	if !ok {
		return domain.NewCart(sessionID), nil
	}
	items, err := UnmarshalItems(data)
	if err != nil {
		return nil, err
	}
	return &domain.Cart{SessionID: sessionID, Items: items}, nil
}

func (r *MemoryCartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	data, err := MarshalItems(cart.Items)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.carts[cart.SessionID] = data
	r.mu.Unlock()
	return nil
}
