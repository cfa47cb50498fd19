// internal/service/checkout/infrastructure/memory_repository.go
package infrastructure

import (
	"context"
	"encoding/json"
	"sync"

	"sebshop/internal/service/checkout/domain"
)

// MemoryOrderRepository 是 OrderRepository 的进程内实现，测试用。
// 订单经过一轮 JSON 编解码再存，杜绝与调用方共享底层切片。
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders [][]byte
}

// NewMemoryOrderRepository 创建一个空的内存订单仓储。
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{}
}

func (r *MemoryOrderRepository) Append(ctx context.Context, order *domain.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.orders = append(r.orders, data)
	r.mu.Unlock()
	return nil
}

func (r *MemoryOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	orders := make([]domain.Order, 0, len(r.orders))
	for _, data := range r.orders {
		var order domain.Order
		if err := json.Unmarshal(data, &order); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *MemoryOrderRepository) FindByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	orders := make([]domain.Order, 0)
	for _, order := range all {
		if order.UserID == userID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

// MemoryAddressRepository 是 AddressRepository 的进程内实现，测试用。
type MemoryAddressRepository struct {
	mu        sync.RWMutex
	addresses map[string]domain.ShippingAddress
}

// NewMemoryAddressRepository 创建一个空的内存地址仓储。
func NewMemoryAddressRepository() *MemoryAddressRepository {
	return &MemoryAddressRepository{addresses: make(map[string]domain.ShippingAddress)}
}

func (r *MemoryAddressRepository) Save(ctx context.Context, userID string, address *domain.ShippingAddress) error {
	r.mu.Lock()
	r.addresses[userID] = *address
	r.mu.Unlock()
	return nil
}

func (r *MemoryAddressRepository) Load(ctx context.Context, userID string) (*domain.ShippingAddress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if address, ok := r.addresses[userID]; ok {
		a := address
		return &a, nil
	}
	return nil, nil
}
