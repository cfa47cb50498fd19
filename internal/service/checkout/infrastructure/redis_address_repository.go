// internal/service/checkout/infrastructure/redis_address_repository.go
package infrastructure

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"

	"sebshop/internal/pkg/redis"
	"sebshop/internal/service/checkout/domain"
)

const addressKeyPrefix = "sebshop:address:"

// RedisAddressRepository 保存用户最近一次使用的收货地址。
type RedisAddressRepository struct {
	client *redis.Client
}

// NewRedisAddressRepository 创建一个新的地址仓储实例。
func NewRedisAddressRepository(client *redis.Client) *RedisAddressRepository {
	return &RedisAddressRepository{client: client}
}

func (r *RedisAddressRepository) Save(ctx context.Context, userID string, address *domain.ShippingAddress) error {
	data, err := json.Marshal(address)
	if err != nil {
		return errors.Wrap(err, "failed to marshal address")
	}
	return r.client.GetClient().Set(ctx, addressKeyPrefix+userID, data, 0).Err()
}

func (r *RedisAddressRepository) Load(ctx context.Context, userID string) (*domain.ShippingAddress, error) {
	data, err := r.client.GetClient().Get(ctx, addressKeyPrefix+userID).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to load address")
	}
	var address domain.ShippingAddress
	if err := json.Unmarshal(data, &address); err != nil {
		return nil, errors.Wrap(err, "corrupt address payload")
	}
	return &address, nil
}
