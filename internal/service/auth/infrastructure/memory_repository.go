// internal/service/auth/infrastructure/memory_repository.go
package infrastructure

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"sebshop/internal/service/auth/domain"
)

// MemoryUserRepository 是 UserRepository 的进程内实现，测试用。
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users []domain.User
}

// NewMemoryUserRepository 创建一个空的内存用户仓储。
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{}
}

func (r *MemoryUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, email) {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepository) Save(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	r.users = append(r.users, *user)
	r.mu.Unlock()
	return nil
}

// MemorySessionStore 是 SessionStore 的进程内实现，测试用。
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.User
}

// NewMemorySessionStore 创建一个空的内存会话存储。
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]domain.User)}
}

func (s *MemorySessionStore) Create(ctx context.Context, user *domain.User) (string, error) {
	token := uuid.New().String()
	s.mu.Lock()
	s.sessions[token] = *user
	s.mu.Unlock()
	return token, nil
}

func (s *MemorySessionStore) Get(ctx context.Context, token string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if user, ok := s.sessions[token]; ok {
		u := user
		return &u, nil
	}
	return nil, nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}
