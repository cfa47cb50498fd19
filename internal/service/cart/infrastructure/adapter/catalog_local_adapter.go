// internal/service/cart/infrastructure/adapter/catalog_local_adapter.go
package adapter

import (
	"context"

	"sebshop/internal/service/cart/port"
	catalogapp "sebshop/internal/service/catalog/application"
)

// CatalogLocalAdapter 实现了 port.CatalogService。
// 目录服务与购物车跑在同一个进程里，所以这里是进程内调用而不是 HTTP，
// 端口仍然保留，方便将来拆分部署时换成远程适配器。
type CatalogLocalAdapter struct {
	catalog *catalogapp.CatalogService
}

// NewCatalogLocalAdapter 创建一个目录适配器。
func NewCatalogLocalAdapter(catalog *catalogapp.CatalogService) *CatalogLocalAdapter {
	return &CatalogLocalAdapter{catalog: catalog}
}

// GetProduct 按 ID 解析商品的只读快照。
func (a *CatalogLocalAdapter) GetProduct(ctx context.Context, productID int64) (*port.ProductInfo, error) {
	product, err := a.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &port.ProductInfo{
		ID:        product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Image:     product.Image,
		Sizes:     product.Sizes,
		Colors:    product.Colors,
		InStock:   product.InStock,
	}, nil
}
