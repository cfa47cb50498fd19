// internal/service/catalog/application/service.go
package application

import (
	"context"
	"sort"
	"time"

	"go.opentelemetry.io/otel/trace"

	"sebshop/internal/service/catalog/domain"
)

// SortKey 是店面商品列表支持的排序方式。
type SortKey string

const (
	SortDefault   SortKey = ""
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortNewest    SortKey = "newest"
)

// CatalogService 提供商品目录的读取与维护用例。
// 店面只用读路径；写路径挂在管理后台的路由下。
type CatalogService struct {
	productRepo domain.ProductRepository
	tracer      trace.Tracer
}

// NewCatalogService 组装一个目录应用服务。
func NewCatalogService(productRepo domain.ProductRepository, tracer trace.Tracer) *CatalogService {
	return &CatalogService{productRepo: productRepo, tracer: tracer}
}

// GetProduct 按 ID 查找商品。
func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

// ListAll 返回全部商品（管理后台的商品表格）。
func (s *CatalogService) ListAll(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.FindAll(ctx)
}

// ListActive 返回上架中的商品，可按分类过滤、按指定方式排序（店面列表）。
// category 为 "all" 或空时不过滤。
func (s *CatalogService) ListActive(ctx context.Context, category string, sortKey SortKey) ([]domain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.ListActive")
	defer span.End()

	all, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if !p.InStock {
			continue
		}
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		products = append(products, p)
	}

	switch sortKey {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case SortNewest:
		// 历史行为是把录入顺序整体倒过来，而不是按时间字段排序
		for i, j := 0, len(products)-1; i < j; i, j = i+1, j-1 {
			products[i], products[j] = products[j], products[i]
		}
	}
	return products, nil
}

// CreateProduct 录入一个新商品。ID 使用毫秒时间戳，缺省图占位由前端处理。
func (s *CatalogService) CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	product.ID = time.Now().UnixMilli()
	product.CreatedAt = time.Now()
	if err := s.productRepo.Create(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct 整体更新商品；图片字段为空时保留原图。
func (s *CatalogService) UpdateProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	existing, err := s.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	if product.Image == "" {
		product.Image = existing.Image
	}
	product.CreatedAt = existing.CreatedAt
	if err := s.productRepo.Update(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct 删除商品。
func (s *CatalogService) DeleteProduct(ctx context.Context, id int64) error {
	return s.productRepo.Delete(ctx, id)
}

// ToggleStock 切换上架状态。
func (s *CatalogService) ToggleStock(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.InStock = !product.InStock
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}
