// internal/service/cart/port/catalog.go
package port

import "context"

// ProductInfo 是购物车视角下的商品只读快照。
// 加购时按商品 ID 解析出价格、名称和图片，目录本身归管理后台所有。
type ProductInfo struct {
	ID        int64
	Name      string
	UnitPrice float64
	Image     string
	Sizes     []string
	Colors    []string
	InStock   bool
}

// CatalogService 是购物车对商品目录的出站端口。
type CatalogService interface {
	GetProduct(ctx context.Context, productID int64) (*ProductInfo, error)
}
