// internal/service/cart/infrastructure/redis_repository.go
package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"

	"sebshop/internal/pkg/redis"
	"sebshop/internal/service/cart/domain"
)

const cartKeyPrefix = "sebshop:cart:"

// RedisCartRepository 是 CartRepository 的 Redis 实现。
// 整个购物车序列化成一个 JSON 数组存在单个键下，和浏览器 localStorage
// 的存法保持一致：每次变更整体覆盖，重载后按原顺序还原。
type RedisCartRepository struct {
	client *redis.Client
}

// NewRedisCartRepository 创建一个新的购物车仓储实例。
func NewRedisCartRepository(client *redis.Client) *RedisCartRepository {
	return &RedisCartRepository{client: client}
}

func cartKey(sessionID string) string {
	return cartKeyPrefix + sessionID
}

// Load 取出购物车；键不存在时返回空购物车。
func (r *RedisCartRepository) Load(ctx context.Context, sessionID string) (*domain.Cart, error) {
	data, err := r.client.GetClient().Get(ctx, cartKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return domain.NewCart(sessionID), nil
		}
		return nil, errors.Wrap(err, "failed to load cart")
	}

	items, err := UnmarshalItems(data)
	if err != nil {
		return nil, errors.Wrapf(err, "corrupt cart payload for session %s", sessionID)
	}
	return &domain.Cart{SessionID: sessionID, Items: items}, nil
}

// Save 整体覆盖保存购物车。
func (r *RedisCartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	data, err := MarshalItems(cart.Items)
	if err != nil {
		return errors.Wrap(err, "failed to marshal cart")
	}
	if err := r.client.GetClient().Set(ctx, cartKey(cart.SessionID), data, 0).Err(); err != nil {
		return errors.Wrap(err, "failed to save cart")
	}
	return nil
}

// MarshalItems / UnmarshalItems 是购物车的线格式编解码。
// 单独拆出来是为了让往返保真性可以脱离 Redis 直接测试。

func MarshalItems(items []domain.LineItem) ([]byte, error) {
	if items == nil {
		items = []domain.LineItem{}
	}
	return json.Marshal(items)
}

func UnmarshalItems(data []byte) ([]domain.LineItem, error) {
	var items []domain.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unmarshal line items: %w", err)
	}
	if items == nil {
		items = []domain.LineItem{}
	}
	return items, nil
}
