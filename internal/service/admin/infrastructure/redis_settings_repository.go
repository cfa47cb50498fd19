// internal/service/admin/infrastructure/redis_settings_repository.go
package infrastructure

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"

	"sebshop/internal/pkg/redis"
	"sebshop/internal/service/admin/domain"
)

const settingsKey = "sebshop:settings"

// RedisSettingsRepository 是 SettingsRepository 的 Redis 实现。
type RedisSettingsRepository struct {
	client *redis.Client
}

// NewRedisSettingsRepository 创建一个新的设置仓储实例。
func NewRedisSettingsRepository(client *redis.Client) *RedisSettingsRepository {
	return &RedisSettingsRepository{client: client}
}

func (r *RedisSettingsRepository) Load(ctx context.Context) (*domain.Settings, error) {
	data, err := r.client.GetClient().Get(ctx, settingsKey).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return &domain.Settings{}, nil
		}
		return nil, errors.Wrap(err, "failed to load settings")
	}
	var settings domain.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, errors.Wrap(err, "corrupt settings payload")
	}
	return &settings, nil
}

func (r *RedisSettingsRepository) Save(ctx context.Context, settings *domain.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return errors.Wrap(err, "failed to marshal settings")
	}
	return r.client.GetClient().Set(ctx, settingsKey, data, 0).Err()
}
