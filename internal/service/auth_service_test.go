package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-curso/course-service/internal/auth"
	"github.com/tu-curso/course-service/internal/config"
	"github.com/tu-curso/course-service/internal/domain"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:  "test-secret-for-service-tests",
		TokenTTLMs: 60000,
		BcryptCost: bcrypt.MinCost,
	}
}

func TestLoginIssuesTokenWithStoredRole(t *testing.T) {
	hash, err := auth.HashPassword("secreto123", bcrypt.MinCost)
	require.NoError(t, err)

	users := &mockUserRepo{
		GetByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			return userFixture(7, email, domain.RoleAdmin, hash), nil
		},
	}
	svc := NewAuthService(testAuthConfig(), users)

	user, token, expiresAt, err := svc.Login(context.Background(), "root@example.com", "secreto123")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Minute), expiresAt, 5*time.Second)

	claims, err := svc.TokenManager().Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "root@example.com", claims.Subject)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestLoginUnknownSubject(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), &mockUserRepo{})

	_, _, _, err := svc.Login(context.Background(), "nadie@example.com", "secreto123")
	assert.ErrorIs(t, err, auth.ErrUnknownSubject)
}

func TestLoginBadPassword(t *testing.T) {
	hash, err := auth.HashPassword("secreto123", bcrypt.MinCost)
	require.NoError(t, err)

	users := &mockUserRepo{
		GetByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			return userFixture(7, email, domain.RoleUser, hash), nil
		},
	}
	svc := NewAuthService(testAuthConfig(), users)

	_, _, _, err = svc.Login(context.Background(), "ana@example.com", "otra-clave")
	assert.ErrorIs(t, err, auth.ErrBadCredentials)
}

func TestRefreshReissuesValidToken(t *testing.T) {
	hash, err := auth.HashPassword("secreto123", bcrypt.MinCost)
	require.NoError(t, err)

	users := &mockUserRepo{
		GetByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			return userFixture(7, email, domain.RoleUser, hash), nil
		},
	}
	svc := NewAuthService(testAuthConfig(), users)

	_, token, _, err := svc.Login(context.Background(), "ana@example.com", "secreto123")
	require.NoError(t, err)

	refreshed, expiresAt, err := svc.Refresh(token)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := svc.TokenManager().Parse(refreshed)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", claims.Subject)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), &mockUserRepo{})

	_, _, err := svc.Refresh("garbage")
	assert.ErrorIs(t, err, auth.ErrMalformed)
}
