// internal/service/catalog/domain/product.go
package domain

import (
	"context"
	"errors"
	"time"
)

// ErrProductNotFound 表示目录中不存在该商品。
var ErrProductNotFound = errors.New("product not found")

// Product 是商品目录里的一个条目，由管理后台维护，店面只读。
type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	Image     string    `json:"image"`
	Badge     string    `json:"badge,omitempty"`
	Sizes     []string  `json:"sizes"`
	Colors    []string  `json:"colors"`
	InStock   bool      `json:"inStock"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProductRepository 定义了商品目录的持久化接口。
type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (*Product, error)
	FindAll(ctx context.Context) ([]Product, error)
	Create(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id int64) error
}
