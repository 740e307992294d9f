package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tu-curso/course-service/internal/domain"
)

const principalKey = "auth_principal"

// Principal is the identity bound to one in-flight request. It is created by
// the authenticator, read-only afterwards, and discarded with the request.
type Principal struct {
	Subject string
	Role    domain.Role
	User    *domain.User
}

// Authenticator inspects each request for a bearer token and, when the token
// parses and its subject still resolves to a user record, binds a Principal
// to the request. It never rejects a request itself; the access policy
// decides whether anonymous callers may proceed.
type Authenticator struct {
	tokens *TokenManager
	users  UserLookup
	cache  ClaimsCache
	logger *zap.Logger
}

// NewAuthenticator constructs the middleware. cache may be nil.
func NewAuthenticator(tokens *TokenManager, users UserLookup, cache ClaimsCache, logger *zap.Logger) *Authenticator {
	return &Authenticator{tokens: tokens, users: users, cache: cache, logger: logger}
}

// Handle runs once per request, before any business logic.
func (a *Authenticator) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return c.Next()
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return c.Next()
	}

	claims, err := a.parseToken(c, parts[1])
	if err != nil {
		// The failure kind stays in the logs; the caller only ever sees a
		// generic unauthorized response from the policy.
		a.logger.Debug("token rechazado", zap.String("path", c.Path()), zap.Error(err))
		return c.Next()
	}

	user, err := a.users.GetByEmail(c.Context(), claims.Subject)
	if err != nil {
		a.logger.Debug("sujeto no resuelto",
			zap.String("subject", claims.Subject),
			zap.String("path", c.Path()),
			zap.Error(err))
		return c.Next()
	}

	// The role comes from the freshly resolved record, not the token claim;
	// a role change takes effect before the token expires.
	c.Locals(principalKey, &Principal{
		Subject: user.Email,
		Role:    user.Role,
		User:    user,
	})
	return c.Next()
}

func (a *Authenticator) parseToken(c *fiber.Ctx, tokenStr string) (*Claims, error) {
	if a.cache == nil {
		return a.tokens.Parse(tokenStr)
	}

	if claims, ok := a.cache.Get(c.Context(), tokenStr); ok {
		return claims, nil
	}
	claims, err := a.tokens.Parse(tokenStr)
	if err != nil {
		return nil, err
	}
	a.cache.Set(c.Context(), tokenStr, claims)
	return claims, nil
}

// PrincipalFromContext retrieves the authenticated identity, if any.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
