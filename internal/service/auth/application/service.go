// internal/service/auth/application/service.go
package application

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"sebshop/internal/pkg/logger"
	"sebshop/internal/service/auth/domain"
)

// AuthService 负责注册、登录和会话管理。
// 凭证明文存储、无过期策略——演示系统的既定取舍。
type AuthService struct {
	userRepo domain.UserRepository
	sessions domain.SessionStore
	tracer   trace.Tracer
}

// NewAuthService 组装一个认证应用服务。
func NewAuthService(userRepo domain.UserRepository, sessions domain.SessionStore, tracer trace.Tracer) *AuthService {
	return &AuthService{userRepo: userRepo, sessions: sessions, tracer: tracer}
}

// Register 注册一个新顾客账号；邮箱已存在时返回 ErrEmailTaken。
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Register")
	defer span.End()

	email = strings.TrimSpace(strings.ToLower(email))
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	user := &domain.User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Password:  password,
		Role:      domain.RoleCustomer,
		CreatedAt: time.Now(),
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login 校验凭证并创建会话，返回会话令牌。
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	ctx, span := s.tracer.Start(ctx, "auth.Login")
	defer span.End()

	email = strings.TrimSpace(strings.ToLower(email))
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil || user.Password != password {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Logout 删除会话；令牌不存在时也不报错。
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// CurrentUser 返回令牌对应的用户；未登录时返回 (nil, nil)。
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, nil
	}
	return s.sessions.Get(ctx, token)
}

// SeedDefaultAccounts 写入演示用的管理员和顾客账号（若不存在）。
func (s *AuthService) SeedDefaultAccounts(ctx context.Context) error {
	seeds := []domain.User{
		{Name: "Admin", Email: "admin@sebknowsirl.com", Password: "admin123", Role: domain.RoleAdmin},
		{Name: "Demo Customer", Email: "customer@test.com", Password: "password123", Role: domain.RoleCustomer},
	}
	for _, seed := range seeds {
		existing, err := s.userRepo.FindByEmail(ctx, seed.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		seed.ID = uuid.New().String()
		seed.CreatedAt = time.Now()
		if err := s.userRepo.Save(ctx, &seed); err != nil {
			return err
		}
		logger.Ctx(ctx).Info().Str("email", seed.Email).Msg("seeded default account")
	}
	return nil
}
