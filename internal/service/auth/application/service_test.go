// internal/service/auth/application/service_test.go
package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"sebshop/internal/service/auth/domain"
	"sebshop/internal/service/auth/infrastructure"
)

func newAuthService() *AuthService {
	return NewAuthService(infrastructure.NewMemoryUserRepository(), infrastructure.NewMemorySessionStore(), otel.Tracer("test"))
}

func TestRegisterNormalizesEmail(t *testing.T) {
	svc := newAuthService()

	user, err := svc.Register(context.Background(), "Seb", "  Seb@Example.COM ", "secret")
	require.NoError(t, err)
	assert.Equal(t, "seb@example.com", user.Email)
	assert.Equal(t, domain.RoleCustomer, user.Role)
	assert.NotEmpty(t, user.ID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Seb", "seb@example.com", "secret")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Imposter", "SEB@example.com", "other")
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestLoginLifecycle(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Seb", "seb@example.com", "secret")
	require.NoError(t, err)

	token, user, err := svc.Login(ctx, "seb@example.com", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "Seb", user.Name)

	current, err := svc.CurrentUser(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)

	require.NoError(t, svc.Logout(ctx, token))
	current, err = svc.CurrentUser(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "Seb", "seb@example.com", "secret")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "seb@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "secret")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestCurrentUserWithoutToken(t *testing.T) {
	svc := newAuthService()

	user, err := svc.CurrentUser(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSeedDefaultAccountsIsIdempotent(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	require.NoError(t, svc.SeedDefaultAccounts(ctx))
	require.NoError(t, svc.SeedDefaultAccounts(ctx))

	token, admin, err := svc.Login(ctx, "admin@sebknowsirl.com", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, admin.IsAdmin())

	_, customer, err := svc.Login(ctx, "customer@test.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, customer.Role)
}
