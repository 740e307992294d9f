package auth

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"

	"github.com/tu-curso/course-service/internal/domain"
)

// ClaimsCache is a short-lived positive-result cache for parsed tokens. It
// only skips repeated signature verification; identity resolution still
// happens on every request. Entries must not outlive the token.
type ClaimsCache interface {
	Get(ctx context.Context, tokenStr string) (*Claims, bool)
	Set(ctx context.Context, tokenStr string, claims *Claims)
}

type cachedClaims struct {
	Subject   string      `json:"subject"`
	Role      domain.Role `json:"role,omitempty"`
	IssuedAt  time.Time   `json:"issued_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// RedisClaimsCache stores parsed claims keyed by the token's signature
// segment.
type RedisClaimsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClaimsCache builds a cache with the given maximum entry lifetime.
func NewRedisClaimsCache(client *redis.Client, ttl time.Duration) *RedisClaimsCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &RedisClaimsCache{client: client, ttl: ttl}
}

// Get returns cached claims for the token, rejecting entries whose token has
// expired in the meantime.
func (c *RedisClaimsCache) Get(ctx context.Context, tokenStr string) (*Claims, bool) {
	key, ok := cacheKey(tokenStr)
	if !ok {
		return nil, false
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var cached cachedClaims
	if err := json.Unmarshal(payload, &cached); err != nil {
		return nil, false
	}
	if !cached.ExpiresAt.After(time.Now()) {
		return nil, false
	}
	return cached.toClaims(), true
}

// Set stores the claims; the entry expires no later than the token itself.
func (c *RedisClaimsCache) Set(ctx context.Context, tokenStr string, claims *Claims) {
	key, ok := cacheKey(tokenStr)
	if !ok || claims.ExpiresAt == nil {
		return
	}

	ttl := c.ttl
	if remaining := time.Until(claims.ExpiresAt.Time); remaining < ttl {
		ttl = remaining
	}
	if ttl <= 0 {
		return
	}

	cached := cachedClaims{
		Subject:   claims.Subject,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		cached.IssuedAt = claims.IssuedAt.Time
	}
	payload, err := json.Marshal(cached)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, payload, ttl)
}

func (cc cachedClaims) toClaims() *Claims {
	claims := &Claims{Role: cc.Role}
	claims.Subject = cc.Subject
	claims.ExpiresAt = jwt.NewNumericDate(cc.ExpiresAt)
	if !cc.IssuedAt.IsZero() {
		claims.IssuedAt = jwt.NewNumericDate(cc.IssuedAt)
	}
	return claims
}

// cacheKey derives the cache key from the token's signature segment, which
// commits to the full token content.
func cacheKey(tokenStr string) (string, bool) {
	parts := strings.Split(tokenStr, ".")
	if len(parts) != 3 || parts[2] == "" {
		return "", false
	}
	return "auth:claims:" + parts[2], true
}
