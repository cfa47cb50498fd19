// internal/service/cart/application/service.go
package application

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"sebshop/internal/pkg/logger"
	"sebshop/internal/service/cart/domain"
	"sebshop/internal/service/cart/port"
	"sebshop/internal/service/notification"
)

// CartService 负责购物车用例的编排：读取-修改-保存在一次同步调用内完成，
// 每个变更操作返回前都已经把完整的购物车持久化。
type CartService struct {
	cartRepo domain.CartRepository
	catalog  port.CatalogService
	notifier notification.Producer
	tracer   trace.Tracer
}

// NewCartService 组装一个购物车应用服务。
func NewCartService(cartRepo domain.CartRepository, catalog port.CatalogService, notifier notification.Producer, tracer trace.Tracer) *CartService {
	return &CartService{cartRepo: cartRepo, catalog: catalog, notifier: notifier, tracer: tracer}
}

// AddItemRequest 是加购用例的输入。
// Size / Color 缺省时回落到商品的第一个可选项（对应商品卡片的一键加购）。
type AddItemRequest struct {
	ProductID int64
	Size      string
	Color     string
	Quantity  int
}

// AddItem 按商品 ID 加购：从目录解析商品信息，合并进购物车并立即持久化。
func (s *CartService) AddItem(ctx context.Context, sessionID string, req AddItemRequest) (*domain.Cart, error) {
	ctx, span := s.tracer.Start(ctx, "cart.AddItem")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("product.id", req.ProductID),
		attribute.Int("cart.add_quantity", req.Quantity),
	)

	product, err := s.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "product lookup failed")
		return nil, err
	}

	size, color := req.Size, req.Color
	if size == "" && len(product.Sizes) > 0 {
		size = product.Sizes[0]
	}
	if color == "" && len(product.Colors) > 0 {
		color = product.Colors[0]
	}

	cart, err := s.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.Add(domain.LineItem{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.UnitPrice,
		Image:     product.Image,
		Size:      size,
		Color:     color,
		Quantity:  req.Quantity,
	})

	if err := s.cartRepo.Save(ctx, cart); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to persist cart")
		return nil, err
	}

	s.notify(ctx, sessionID, fmt.Sprintf("%s added to cart!", product.Name))
	return cart, nil
}

// UpdateQuantity 修改某行数量；数量降到 0 等价于删除该行。
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, key domain.ItemKey, quantity int) (*domain.Cart, error) {
	ctx, span := s.tracer.Start(ctx, "cart.UpdateQuantity")
	defer span.End()

	cart, err := s.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	cart.UpdateQuantity(key, quantity)
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem 删除某行；身份键不存在时是 no-op 而不是错误。
func (s *CartService) RemoveItem(ctx context.Context, sessionID string, key domain.ItemKey) (*domain.Cart, error) {
	ctx, span := s.tracer.Start(ctx, "cart.RemoveItem")
	defer span.End()

	cart, err := s.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	cart.Remove(key)
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	s.notify(ctx, sessionID, "Item removed from cart")
	return cart, nil
}

// Clear 清空购物车（下单成功后由结账服务调用）。
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	ctx, span := s.tracer.Start(ctx, "cart.Clear")
	defer span.End()

	cart, err := s.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	cart.Clear()
	return s.cartRepo.Save(ctx, cart)
}

// GetCart 返回当前购物车。
func (s *CartService) GetCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	return s.cartRepo.Load(ctx, sessionID)
}

// notify 发送尽力而为的瞬时通知，失败只记日志。
func (s *CartService) notify(ctx context.Context, sessionID, message string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Send(ctx, notification.Event{UserID: sessionID, Message: message}); err != nil {
		logger.Ctx(ctx).Warn().Err(err).Msg("failed to send cart notification")
	}
}
