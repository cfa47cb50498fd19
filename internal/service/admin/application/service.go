// internal/service/admin/application/service.go
package application

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"sebshop/internal/service/admin/domain"
	catalogdomain "sebshop/internal/service/catalog/domain"
	checkoutdomain "sebshop/internal/service/checkout/domain"
)

// recentOrderLimit 后台首页只展示前 10 条订单。
const recentOrderLimit = 10

// Stats 是后台仪表盘的汇总数字。
type Stats struct {
	TotalProducts  int     `json:"totalProducts"`
	ActiveProducts int     `json:"activeProducts"`
	TotalOrders    int     `json:"totalOrders"`
	Revenue        float64 `json:"revenue"`
}

// AdminService 聚合商品、订单与站点设置，为后台接口提供数据。
type AdminService struct {
	productRepo  catalogdomain.ProductRepository
	orderRepo    checkoutdomain.OrderRepository
	settingsRepo domain.SettingsRepository
	tracer       trace.Tracer
}

// NewAdminService 创建后台服务实例。
func NewAdminService(productRepo catalogdomain.ProductRepository, orderRepo checkoutdomain.OrderRepository, settingsRepo domain.SettingsRepository) *AdminService {
	return &AdminService{
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		settingsRepo: settingsRepo,
		tracer:       otel.Tracer("admin-service"),
	}
}

// GetStats 统计商品数、在售数、订单数和总营收。
func (s *AdminService) GetStats(ctx context.Context) (*Stats, error) {
	ctx, span := s.tracer.Start(ctx, "AdminService.GetStats")
	defer span.End()

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalProducts: len(products),
		TotalOrders:   len(orders),
	}
	for i := range products {
		if products[i].InStock {
			stats.ActiveProducts++
		}
	}
	for i := range orders {
		stats.Revenue += orders[i].Total
	}

	span.SetAttributes(
		attribute.Int("stats.total_orders", stats.TotalOrders),
		attribute.Float64("stats.revenue", stats.Revenue),
	)
	return stats, nil
}

// RecentOrders 返回按写入顺序排列的前 10 条订单。
func (s *AdminService) RecentOrders(ctx context.Context) ([]checkoutdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "AdminService.RecentOrders")
	defer span.End()

	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(orders) > recentOrderLimit {
		orders = orders[:recentOrderLimit]
	}
	return orders, nil
}

// AllOrders 返回全部订单，后台订单页使用。
func (s *AdminService) AllOrders(ctx context.Context) ([]checkoutdomain.Order, error) {
	return s.orderRepo.FindAll(ctx)
}

// GetSettings 返回站点展示设置，未配置过时为零值。
func (s *AdminService) GetSettings(ctx context.Context) (*domain.Settings, error) {
	return s.settingsRepo.Load(ctx)
}

// SaveSettings 覆盖保存站点展示设置。
func (s *AdminService) SaveSettings(ctx context.Context, settings *domain.Settings) error {
	ctx, span := s.tracer.Start(ctx, "AdminService.SaveSettings")
	defer span.End()

	return s.settingsRepo.Save(ctx, settings)
}
