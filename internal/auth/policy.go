package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tu-curso/course-service/internal/domain"
	apperrors "github.com/tu-curso/course-service/pkg/util"
)

// Access describes what a route demands from the caller.
type Access int

const (
	// AccessPublic routes are reachable without any credential.
	AccessPublic Access = iota
	// AccessAuthenticated routes accept any authenticated identity.
	AccessAuthenticated
	// AccessRole routes additionally demand a specific role.
	AccessRole
)

// Decision is the outcome of an authorization check.
type Decision int

const (
	Allow Decision = iota
	DenyUnauthorized
	DenyForbidden
)

// Rule maps a route pattern to an access requirement. A pattern ending in
// "/*" matches the prefix and everything below it; any other pattern matches
// exactly. Matching ignores the HTTP method.
type Rule struct {
	Pattern string
	Access  Access
	Role    domain.Role
}

// AccessPolicy is an ordered, immutable rule table. Rules are evaluated top
// to bottom and the first match wins; unmatched paths require authentication.
type AccessPolicy struct {
	rules []Rule
}

// NewAccessPolicy builds a policy from an ordered rule list.
func NewAccessPolicy(rules []Rule) *AccessPolicy {
	return &AccessPolicy{rules: rules}
}

// DefaultPolicy returns the service's route table: login, account creation,
// docs and health endpoints are public, the admin section demands the ADMIN
// role, everything else demands an authenticated caller.
func DefaultPolicy() *AccessPolicy {
	return NewAccessPolicy([]Rule{
		{Pattern: "/health/*", Access: AccessPublic},
		{Pattern: "/api-docs/*", Access: AccessPublic},
		{Pattern: "/swagger-ui/*", Access: AccessPublic},
		{Pattern: "/usuarios/crear", Access: AccessPublic},
		{Pattern: "/usuarios/login", Access: AccessPublic},
		{Pattern: "/usuarios/crear-admin-dev", Access: AccessPublic},
		{Pattern: "/admin/login", Access: AccessPublic},
		{Pattern: "/admin/registro-admin-dev", Access: AccessPublic},
		{Pattern: "/admin/*", Access: AccessRole, Role: domain.RoleAdmin},
	})
}

// Authorize decides whether a request to path may proceed for the given
// principal (nil means anonymous).
func (p *AccessPolicy) Authorize(path string, principal *Principal) Decision {
	for _, rule := range p.rules {
		if !matchPattern(rule.Pattern, path) {
			continue
		}
		switch rule.Access {
		case AccessPublic:
			return Allow
		case AccessAuthenticated:
			if principal == nil {
				return DenyUnauthorized
			}
			return Allow
		case AccessRole:
			if principal == nil {
				return DenyUnauthorized
			}
			if principal.Role != rule.Role {
				return DenyForbidden
			}
			return Allow
		}
	}
	if principal == nil {
		return DenyUnauthorized
	}
	return Allow
}

// Enforce returns a middleware applying the policy to every request. Denials
// are logged with the subject (when known) and route; the response body stays
// generic.
func (p *AccessPolicy) Enforce(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, _ := PrincipalFromContext(c)

		switch p.Authorize(c.Path(), principal) {
		case Allow:
			return c.Next()
		case DenyForbidden:
			logger.Info("acceso denegado",
				zap.String("subject", principal.Subject),
				zap.String("path", c.Path()),
				zap.String("reason", "insufficient role"))
			return apperrors.NewForbidden("acceso denegado")
		default:
			subject := ""
			if principal != nil {
				subject = principal.Subject
			}
			logger.Info("no autorizado",
				zap.String("subject", subject),
				zap.String("path", c.Path()))
			return apperrors.NewUnauthorized("no autorizado")
		}
	}
}

func matchPattern(pattern, path string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "/*"); ok {
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	return pattern == path
}
