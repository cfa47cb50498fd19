// internal/service/auth/infrastructure/redis_repository.go
package infrastructure

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"

	"sebshop/internal/pkg/redis"
	"sebshop/internal/service/auth/domain"
)

const (
	usersKey         = "sebshop:users"
	sessionKeyPrefix = "sebshop:session:"
)

// RedisUserRepository 把全部账号存成单键下的一个 JSON 数组。
// 账号量级是个位数，整存整取比散键更贴近原始存储布局。
type RedisUserRepository struct {
	client *redis.Client
}

// NewRedisUserRepository 创建一个新的用户仓储实例。
func NewRedisUserRepository(client *redis.Client) *RedisUserRepository {
	return &RedisUserRepository{client: client}
}

func (r *RedisUserRepository) loadAll(ctx context.Context) ([]domain.User, error) {
	data, err := r.client.GetClient().Get(ctx, usersKey).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return []domain.User{}, nil
		}
		return nil, errors.Wrap(err, "failed to load users")
	}
	var users []domain.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, errors.Wrap(err, "corrupt users payload")
	}
	return users, nil
}

func (r *RedisUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *RedisUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	users, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *RedisUserRepository) Save(ctx context.Context, user *domain.User) error {
	users, err := r.loadAll(ctx)
	if err != nil {
		return err
	}
	users = append(users, *user)
	data, err := json.Marshal(users)
	if err != nil {
		return errors.Wrap(err, "failed to marshal users")
	}
	return r.client.GetClient().Set(ctx, usersKey, data, 0).Err()
}

// RedisSessionStore 把会话令牌映射到用户快照。
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore 创建一个新的会话存储实例。
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Create(ctx context.Context, user *domain.User) (string, error) {
	token := uuid.New().String()
	data, err := json.Marshal(user)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal session user")
	}
	if err := s.client.GetClient().Set(ctx, sessionKeyPrefix+token, data, 0).Err(); err != nil {
		return "", errors.Wrap(err, "failed to create session")
	}
	return token, nil
}

func (s *RedisSessionStore) Get(ctx context.Context, token string) (*domain.User, error) {
	data, err := s.client.GetClient().Get(ctx, sessionKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to load session")
	}
	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, errors.Wrap(err, "corrupt session payload")
	}
	return &user, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	return s.client.GetClient().Del(ctx, sessionKeyPrefix+token).Err()
}
