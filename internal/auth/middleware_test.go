package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tu-curso/course-service/internal/domain"
	apperrors "github.com/tu-curso/course-service/pkg/util"
)

func newTestApp(t *testing.T, lookup UserLookup) (*fiber.App, *TokenManager) {
	t.Helper()

	tm := NewTokenManager(testSecret, time.Hour)
	authenticator := NewAuthenticator(tm, lookup, nil, zap.NewNop())

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"error": domainErr.Message})
		},
	})
	app.Use(authenticator.Handle)
	app.Use(DefaultPolicy().Enforce(zap.NewNop()))

	app.Get("/cursos", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/admin/dashboard", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	return app, tm
}

func doRequest(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func errorBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body["error"]
}

func TestMiddlewareAnonymousIsUnauthorized(t *testing.T) {
	lookup := &mockUserLookup{
		GetByEmailFn: func(context.Context, string) (*domain.User, error) {
			t.Error("lookup must not run without a token")
			return nil, pgx.ErrNoRows
		},
	}
	app, _ := newTestApp(t, lookup)

	resp := doRequest(t, app, "/cursos", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "no autorizado", errorBody(t, resp))
}

func TestMiddlewareValidTokenAllowsProtectedRoute(t *testing.T) {
	lookup := &mockUserLookup{
		GetByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 1, Email: email, Role: domain.RoleUser}, nil
		},
	}
	app, tm := newTestApp(t, lookup)

	token, _, err := tm.Issue("ana@example.com", domain.RoleUser)
	require.NoError(t, err)

	resp := doRequest(t, app, "/cursos", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddlewareUserRoleCannotReachAdmin(t *testing.T) {
	lookup := &mockUserLookup{
		GetByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 1, Email: email, Role: domain.RoleUser}, nil
		},
	}
	app, tm := newTestApp(t, lookup)

	token, _, err := tm.Issue("ana@example.com", domain.RoleUser)
	require.NoError(t, err)

	resp := doRequest(t, app, "/admin/dashboard", token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "acceso denegado", errorBody(t, resp))
}

func TestMiddlewareAdminRoleReachesAdmin(t *testing.T) {
	lookup := &mockUserLookup{
		GetByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 2, Email: email, Role: domain.RoleAdmin}, nil
		},
	}
	app, tm := newTestApp(t, lookup)

	token, _, err := tm.Issue("root@example.com", domain.RoleAdmin)
	require.NoError(t, err)

	resp := doRequest(t, app, "/admin/dashboard", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// A promotion recorded after the token was issued takes effect immediately
// because the role is re-resolved on every request.
func TestMiddlewareRoleComesFromFreshRecord(t *testing.T) {
	lookup := &mockUserLookup{
		GetByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 1, Email: email, Role: domain.RoleAdmin}, nil
		},
	}
	app, tm := newTestApp(t, lookup)

	token, _, err := tm.Issue("ana@example.com", domain.RoleUser)
	require.NoError(t, err)

	resp := doRequest(t, app, "/admin/dashboard", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddlewareRejectsTamperedToken(t *testing.T) {
	lookup := &mockUserLookup{
		GetByEmailFn: func(context.Context, string) (*domain.User, error) {
			t.Error("lookup must not run for an invalid token")
			return nil, pgx.ErrNoRows
		},
	}
	app, _ := newTestApp(t, lookup)

	other := NewTokenManager("a-different-secret", time.Hour)
	token, _, err := other.Issue("ana@example.com", domain.RoleUser)
	require.NoError(t, err)

	resp := doRequest(t, app, "/cursos", token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "no autorizado", errorBody(t, resp))
}

func TestMiddlewareDeletedSubjectIsAnonymous(t *testing.T) {
	lookup := &mockUserLookup{
		GetByEmailFn: func(context.Context, string) (*domain.User, error) {
			return nil, pgx.ErrNoRows
		},
	}
	app, tm := newTestApp(t, lookup)

	token, _, err := tm.Issue("borrada@example.com", domain.RoleUser)
	require.NoError(t, err)

	resp := doRequest(t, app, "/cursos", token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewarePublicRouteIgnoresBadToken(t *testing.T) {
	lookup := &mockUserLookup{
		GetByEmailFn: func(context.Context, string) (*domain.User, error) {
			return nil, pgx.ErrNoRows
		},
	}
	app, _ := newTestApp(t, lookup)

	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.SendString("alive")
	})

	resp := doRequest(t, app, "/health/live", "garbage")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
