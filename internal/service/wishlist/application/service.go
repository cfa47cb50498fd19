// internal/service/wishlist/application/service.go
package application

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"sebshop/internal/pkg/logger"
	"sebshop/internal/service/notification"
	"sebshop/internal/service/wishlist/domain"
)

// WishlistService 负责心愿单用例。
// Toggle 在一次调用里完成变更和持久化，两者不可分离：
// 早期版本先返回再保存，保存永远执行不到，收藏在刷新后全部丢失。
type WishlistService struct {
	wishlistRepo domain.WishlistRepository
	notifier     notification.Producer
	tracer       trace.Tracer
}

// NewWishlistService 组装一个心愿单应用服务。
func NewWishlistService(wishlistRepo domain.WishlistRepository, notifier notification.Producer, tracer trace.Tracer) *WishlistService {
	return &WishlistService{wishlistRepo: wishlistRepo, notifier: notifier, tracer: tracer}
}

// Toggle 切换收藏状态并立即持久化，返回切换后是否在心愿单中。
func (s *WishlistService) Toggle(ctx context.Context, userID string, productID int64) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "wishlist.Toggle")
	defer span.End()
	span.SetAttributes(attribute.Int64("product.id", productID))

	wishlist, err := s.wishlistRepo.Load(ctx, userID)
	if err != nil {
		return false, err
	}
	added := wishlist.Toggle(productID)
	if err := s.wishlistRepo.Save(ctx, wishlist); err != nil {
		return false, err
	}

	message := "Removed from wishlist"
	if added {
		message = "Added to wishlist!"
	}
	if s.notifier != nil {
		if err := s.notifier.Send(ctx, notification.Event{UserID: userID, Message: message}); err != nil {
			logger.Ctx(ctx).Warn().Err(err).Msg("failed to send wishlist notification")
		}
	}
	return added, nil
}

// List 返回用户收藏的全部商品 ID。
func (s *WishlistService) List(ctx context.Context, userID string) ([]int64, error) {
	wishlist, err := s.wishlistRepo.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return wishlist.ProductIDs, nil
}

// Contains 判断商品是否已收藏。
func (s *WishlistService) Contains(ctx context.Context, userID string, productID int64) (bool, error) {
	wishlist, err := s.wishlistRepo.Load(ctx, userID)
	if err != nil {
		return false, err
	}
	return wishlist.Contains(productID), nil
}
