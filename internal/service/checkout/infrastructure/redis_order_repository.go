// internal/service/checkout/infrastructure/redis_order_repository.go
package infrastructure

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"sebshop/internal/pkg/redis"
	"sebshop/internal/service/checkout/domain"
)

const ordersKey = "sebshop:orders"

// RedisOrderRepository 是 OrderRepository 的 Redis 实现。
// 订单列表是一个只追加的 Redis list，每个元素是一份订单的 JSON 快照。
type RedisOrderRepository struct {
	client *redis.Client
}

// NewRedisOrderRepository 创建一个新的订单仓储实例。
func NewRedisOrderRepository(client *redis.Client) *RedisOrderRepository {
	return &RedisOrderRepository{client: client}
}

// Append 把订单追加到列表末尾。
func (r *RedisOrderRepository) Append(ctx context.Context, order *domain.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return errors.Wrap(err, "failed to marshal order")
	}
	if err := r.client.GetClient().RPush(ctx, ordersKey, data).Err(); err != nil {
		return errors.Wrap(err, "failed to append order")
	}
	return nil
}

// FindAll 按写入顺序返回全部订单。
func (r *RedisOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	raw, err := r.client.GetClient().LRange(ctx, ordersKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load orders")
	}
	orders := make([]domain.Order, 0, len(raw))
	for _, entry := range raw {
		var order domain.Order
		if err := json.Unmarshal([]byte(entry), &order); err != nil {
			return nil, errors.Wrap(err, "corrupt order payload")
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// FindByUser 过滤出归属某个用户的订单。
func (r *RedisOrderRepository) FindByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	orders := make([]domain.Order, 0)
	for _, order := range all {
		if order.UserID == userID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}
