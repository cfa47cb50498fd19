// internal/service/checkout/application/service.go
package application

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"sebshop/internal/pkg/logger"
	cartdomain "sebshop/internal/service/cart/domain"
	"sebshop/internal/service/checkout/domain"
	"sebshop/internal/service/notification"
	"sebshop/internal/service/pricing"
)

// CheckoutService 负责把在线购物车（Draft）一次性流转为已落库的订单（Placed）。
// 这是单向流转：订单一旦写入就不可取消，后续状态由管理后台维护。
type CheckoutService struct {
	cartRepo    cartdomain.CartRepository
	orderRepo   domain.OrderRepository
	addressRepo domain.AddressRepository
	notifier    notification.Producer
	tracer      trace.Tracer

	// 模拟支付处理的固定延迟，不可取消；测试时置 0
	processingDelay time.Duration
}

// NewCheckoutService 组装一个结账应用服务。
func NewCheckoutService(
	cartRepo cartdomain.CartRepository,
	orderRepo domain.OrderRepository,
	addressRepo domain.AddressRepository,
	notifier notification.Producer,
	tracer trace.Tracer,
	processingDelay time.Duration,
) *CheckoutService {
	return &CheckoutService{
		cartRepo:        cartRepo,
		orderRepo:       orderRepo,
		addressRepo:     addressRepo,
		notifier:        notifier,
		tracer:          tracer,
		processingDelay: processingDelay,
	}
}

// PlaceOrder 执行下单流转。
// 所有校验都在持久化之前完成：校验失败时订单列表和购物车都保持原样。
// userID 为空表示未登录，订单归属到 guest。
func (s *CheckoutService) PlaceOrder(ctx context.Context, sessionID, userID string, req *PlaceOrderRequest) (*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "checkout.PlaceOrder")
	defer span.End()
	span.SetAttributes(
		attribute.String("checkout.shipping_method", string(req.ShippingMethod)),
		attribute.String("checkout.payment_method", req.PaymentMethod),
	)

	// 1. 前置条件：购物车非空
	cart, err := s.cartRepo.Load(ctx, sessionID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if cart.IsEmpty() {
		span.SetStatus(codes.Error, "empty cart")
		return nil, domain.ErrEmptyCart
	}

	// 2. 必填收货字段，快速失败
	if err := req.Shipping.Validate(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	// 3. 银行卡信息（仅 card 支付方式）
	if req.PaymentMethod == domain.PaymentMethodCard {
		if err := req.Card.Validate(); err != nil {
			span.RecordError(err)
			return nil, err
		}
	}

	// 4. 模拟支付处理延迟（固定、不可取消）
	if s.processingDelay > 0 {
		time.Sleep(s.processingDelay)
	}

	// 5. 快照购物车 + 计算报价 + 生成订单
	if userID == "" {
		userID = domain.GuestUserID
	}
	now := time.Now()
	breakdown := pricing.Quote(cart.Items, req.ShippingMethod)
	order := &domain.Order{
		ID:             now.UnixMilli(),
		UserID:         userID,
		Items:          cart.Snapshot(),
		Shipping:       req.Shipping,
		ShippingMethod: string(req.ShippingMethod),
		PaymentMethod:  req.PaymentMethod,
		Subtotal:       breakdown.Subtotal,
		ShippingCost:   breakdown.ShippingCost,
		Tax:            breakdown.Tax,
		Total:          breakdown.Total,
		Status:         domain.StatusPending,
		Date:           now,
		TrackingNumber: domain.NewTrackingNumber(now),
	}

	// 6. 追加到订单列表
	if err := s.orderRepo.Append(ctx, order); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to persist order")
		return nil, err
	}
	span.SetAttributes(attribute.Int64("order.id", order.ID))

	// 7. 登录用户顺手保存收货地址，下次结账自动填充；失败不影响下单
	if userID != domain.GuestUserID {
		if err := s.addressRepo.Save(ctx, userID, &req.Shipping); err != nil {
			logger.Ctx(ctx).Warn().Err(err).Str("user_id", userID).Msg("failed to save shipping address")
		}
	}

	// 8. 清空购物车，完成流转。走到这里订单已经落库，
	// 清空失败意味着存储层出了问题，按环境错误向上抛。
	cart.Clear()
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "order persisted but cart not cleared")
		logger.Ctx(ctx).Error().Err(err).Int64("order_id", order.ID).Msg("CRITICAL: order persisted but cart not cleared")
		return nil, err
	}

	s.notify(ctx, sessionID, fmt.Sprintf("Order placed! Tracking number: %s", order.TrackingNumber))
	logger.Ctx(ctx).Info().Int64("order_id", order.ID).Str("user_id", userID).Float64("total", order.Total).Msg("order placed")
	return order, nil
}

// SavedAddress 返回用户上次保存的收货地址，用于结账页自动填充；没有时返回 nil。
func (s *CheckoutService) SavedAddress(ctx context.Context, userID string) (*domain.ShippingAddress, error) {
	if userID == "" || userID == domain.GuestUserID {
		return nil, nil
	}
	return s.addressRepo.Load(ctx, userID)
}

// OrdersOf 返回某个用户的全部订单（"我的订单"页面）。
func (s *CheckoutService) OrdersOf(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orderRepo.FindByUser(ctx, userID)
}

func (s *CheckoutService) notify(ctx context.Context, sessionID, message string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Send(ctx, notification.Event{UserID: sessionID, Message: message}); err != nil {
		logger.Ctx(ctx).Warn().Err(err).Msg("failed to send checkout notification")
	}
}
