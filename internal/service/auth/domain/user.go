// internal/service/auth/domain/user.go
package domain

import (
	"context"
	"errors"
	"time"
)

// Role 区分管理员和普通顾客。
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

var (
	// ErrEmailTaken 表示注册时邮箱已被占用。
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials 表示邮箱或密码不匹配。
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// User 是一个注册账号。
// 密码以明文存储——这是演示系统的既定取舍，安全模型明确不在范围内。
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsAdmin 判断是否管理员。
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserRepository 定义了用户账号的持久化接口。
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*User, error) // 不存在时返回 (nil, nil)
	FindByID(ctx context.Context, id string) (*User, error)       // 不存在时返回 (nil, nil)
	Save(ctx context.Context, user *User) error
}

// SessionStore 定义了登录会话的存取接口。
type SessionStore interface {
	Create(ctx context.Context, user *User) (token string, err error)
	Get(ctx context.Context, token string) (*User, error) // 会话不存在时返回 (nil, nil)
	Delete(ctx context.Context, token string) error
}
