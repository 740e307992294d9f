package service

import (
	"context"
	"time"

	"github.com/tu-curso/course-service/internal/auth"
	"github.com/tu-curso/course-service/internal/config"
	"github.com/tu-curso/course-service/internal/domain"
	"github.com/tu-curso/course-service/internal/repository"
)

// AuthService coordinates login and token refresh flows.
type AuthService struct {
	verifier *auth.CredentialVerifier
	tokenMgr *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository) *AuthService {
	return &AuthService{
		verifier: auth.NewCredentialVerifier(users),
		tokenMgr: auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL()),
	}
}

// Login authenticates a user and issues a session token carrying the role
// from the stored record.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.verifier.Verify(ctx, email, password)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	token, expiresAt, err := s.tokenMgr.Issue(user.Email, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expiresAt, nil
}

// Refresh re-issues a still-valid token with a fresh expiration.
func (s *AuthService) Refresh(tokenStr string) (string, time.Time, error) {
	return s.tokenMgr.Refresh(tokenStr)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
