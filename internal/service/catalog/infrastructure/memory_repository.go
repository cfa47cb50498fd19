// internal/service/catalog/infrastructure/memory_repository.go
package infrastructure

import (
	"context"
	"sync"

	"sebshop/internal/service/catalog/domain"
)

// MemoryProductRepository 是 ProductRepository 的进程内实现，测试用。
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products []domain.Product
}

// NewMemoryProductRepository 创建一个空的内存仓储。
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{}
}

func (r *MemoryProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *MemoryProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *MemoryProductRepository) Create(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = append(r.products, *product)
	return nil
}

func (r *MemoryProductRepository) Update(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products[i] = *product
			return nil
		}
	}
	return domain.ErrProductNotFound
}

func (r *MemoryProductRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return nil
}
