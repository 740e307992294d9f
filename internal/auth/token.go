package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/tu-curso/course-service/internal/domain"
)

// Token parse failures. Callers must treat every kind as "unauthenticated";
// the kind exists for logging only.
var (
	ErrMalformed            = errors.New("token malformed")
	ErrInvalidSignature     = errors.New("token signature invalid")
	ErrExpired              = errors.New("token expired")
	ErrUnsupportedAlgorithm = errors.New("token algorithm not supported")
)

// TokenManager issues, parses and refreshes signed session tokens. It is the
// sole owner of the signing secret; the lifetime is fixed at construction and
// never caller-supplied.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a manager from an explicit secret and lifetime.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Claims describes the JWT payload. The subject is the user's email; the role
// claim is informational and re-resolved against the user record on every
// request.
type Claims struct {
	Role domain.Role `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Issue builds and signs a token for the subject.
func (tm *TokenManager) Issue(subject string, role domain.Role) (string, time.Time, error) {
	if subject == "" {
		return "", time.Time{}, errors.New("subject must not be empty")
	}

	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Parse verifies the signature, signing method and expiry, returning claims
// only when every check passes.
func (tm *TokenManager) Parse(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, token.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, mapParseError(err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrMalformed
	}
	if claims.Subject == "" {
		return nil, ErrMalformed
	}
	return claims, nil
}

// Refresh re-issues a token with the original subject and role but fresh
// issued-at and expiration timestamps. The incoming token must still parse;
// a token can be refreshed right up to the instant it expires and there is no
// ceiling on cumulative session age.
func (tm *TokenManager) Refresh(tokenStr string) (string, time.Time, error) {
	claims, err := tm.Parse(tokenStr)
	if err != nil {
		return "", time.Time{}, err
	}
	return tm.Issue(claims.Subject, claims.Role)
}

// TTL exposes the configured token lifetime.
func (tm *TokenManager) TTL() time.Duration {
	return tm.ttl
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, ErrUnsupportedAlgorithm):
		return ErrUnsupportedAlgorithm
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSignature
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	}
	return ErrMalformed
}
