// internal/service/wishlist/infrastructure/redis_repository.go
package infrastructure

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"

	"sebshop/internal/pkg/redis"
	"sebshop/internal/service/wishlist/domain"
)

const wishlistKeyPrefix = "sebshop:wishlist:"

// RedisWishlistRepository 是 WishlistRepository 的 Redis 实现。
// 存 JSON 数组而不是 Redis set，因为加入顺序需要保留。
type RedisWishlistRepository struct {
	client *redis.Client
}

// NewRedisWishlistRepository 创建一个新的心愿单仓储实例。
func NewRedisWishlistRepository(client *redis.Client) *RedisWishlistRepository {
	return &RedisWishlistRepository{client: client}
}

func (r *RedisWishlistRepository) Load(ctx context.Context, userID string) (*domain.Wishlist, error) {
	data, err := r.client.GetClient().Get(ctx, wishlistKeyPrefix+userID).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return domain.NewWishlist(userID), nil
		}
		return nil, errors.Wrap(err, "failed to load wishlist")
	}
	var productIDs []int64
	if err := json.Unmarshal(data, &productIDs); err != nil {
		return nil, errors.Wrap(err, "corrupt wishlist payload")
	}
	return &domain.Wishlist{UserID: userID, ProductIDs: productIDs}, nil
}

func (r *RedisWishlistRepository) Save(ctx context.Context, wishlist *domain.Wishlist) error {
	data, err := json.Marshal(wishlist.ProductIDs)
	if err != nil {
		return errors.Wrap(err, "failed to marshal wishlist")
	}
	return r.client.GetClient().Set(ctx, wishlistKeyPrefix+wishlist.UserID, data, 0).Err()
}
