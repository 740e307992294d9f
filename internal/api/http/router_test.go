package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-curso/course-service/internal/api/http/handlers"
	"github.com/tu-curso/course-service/internal/auth"
	"github.com/tu-curso/course-service/internal/config"
	"github.com/tu-curso/course-service/internal/domain"
	"github.com/tu-curso/course-service/internal/observability"
	"github.com/tu-curso/course-service/internal/repository"
	"github.com/tu-curso/course-service/internal/service"
)

// Stubs embed the repository interface so only the methods a test exercises
// need overriding; anything else panics loudly.
type stubUserRepo struct {
	repository.UserRepository
	byEmail map[string]*domain.User
	created []*domain.User
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if user, ok := s.byEmail[email]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = int64(len(s.created) + 100)
	s.created = append(s.created, user)
	return nil
}

func (s *stubUserRepo) Count(context.Context) (int64, error) {
	return int64(len(s.byEmail)), nil
}

type stubCourseRepo struct {
	repository.CourseRepository
	courses []domain.Course
}

func (s *stubCourseRepo) List(context.Context) ([]domain.Course, error) {
	return s.courses, nil
}

func (s *stubCourseRepo) Count(context.Context) (int64, error) {
	return int64(len(s.courses)), nil
}

type stubPomodoroRepo struct{ repository.PomodoroRepository }
type stubCheckpointRepo struct{ repository.CheckpointRepository }
type stubFriendshipRepo struct{ repository.FriendshipRepository }
type stubFriendRequestRepo struct{ repository.FriendRequestRepository }

type testEnv struct {
	app         *fiber.App
	authService *service.AuthService
	users       *stubUserRepo
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()

	hash, err := auth.HashPassword("secreto123", bcrypt.MinCost)
	require.NoError(t, err)
	adminHash, err := auth.HashPassword("clave-admin", bcrypt.MinCost)
	require.NoError(t, err)

	users := &stubUserRepo{byEmail: map[string]*domain.User{
		"ana@example.com": {
			ID: 7, Name: "Ana", Email: "ana@example.com",
			PasswordHash: hash, Role: domain.RoleUser,
		},
		"root@example.com": {
			ID: 1, Name: "Root", Email: "root@example.com",
			PasswordHash: adminHash, Role: domain.RoleAdmin,
		},
	}}
	courses := &stubCourseRepo{courses: []domain.Course{{ID: 1, Name: "Go", UserID: 7}}}

	authCfg := config.AuthConfig{
		JWTSecret:  "router-test-secret",
		TokenTTLMs: 60000,
		BcryptCost: bcrypt.MinCost,
	}

	logger := zap.NewNop()
	authService := service.NewAuthService(authCfg, users)
	userService := service.NewUserService(users, &stubFriendshipRepo{}, nil, bcrypt.MinCost)
	courseService := service.NewCourseService(courses, users)
	pomodoroService := service.NewPomodoroService(&stubPomodoroRepo{}, users)
	checkpointService := service.NewCheckpointService(&stubCheckpointRepo{}, courses, nil)
	friendRequestService := service.NewFriendRequestService(&stubFriendRequestRepo{}, &stubFriendshipRepo{}, users, nil)

	app := fiber.New()
	RegisterMiddlewares(app, logger, observability.NewMetrics(), 0)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("test", "test", nil, nil),
		Users:          handlers.NewUsersHandler(userService, authService),
		Admin:          handlers.NewAdminHandler(userService, courseService, authService),
		Courses:        handlers.NewCoursesHandler(courseService),
		Pomodoros:      handlers.NewPomodorosHandler(pomodoroService),
		Checkpoints:    handlers.NewCheckpointsHandler(checkpointService),
		FriendRequests: handlers.NewFriendRequestsHandler(friendRequestService),
		Authenticator:  auth.NewAuthenticator(authService.TokenManager(), users, nil, logger),
		Policy:         auth.DefaultPolicy(),
		Logger:         logger,
	})

	return &testEnv{app: app, authService: authService, users: users}
}

func (e *testEnv) request(t *testing.T, method, path, token, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := e.app.Test(req)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()

	resp := e.request(t, http.MethodPost, "/usuarios/login", "",
		`{"email":"`+email+`","pass":"`+password+`"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body["token"])
	return body["token"]
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

func TestLoginReturnsTokenAndExpiration(t *testing.T) {
	env := newEnv(t)

	resp := env.request(t, http.MethodPost, "/usuarios/login", "",
		`{"email":"ana@example.com","pass":"secreto123"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "7", body["id"])
	assert.NotEmpty(t, body["expiration"])

	claims, err := env.authService.TokenManager().Parse(body["token"])
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", claims.Subject)
	assert.Equal(t, domain.RoleUser, claims.Role)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	env := newEnv(t)

	wrongPassword := env.request(t, http.MethodPost, "/usuarios/login", "",
		`{"email":"ana@example.com","pass":"otra-clave"}`)
	unknownUser := env.request(t, http.MethodPost, "/usuarios/login", "",
		`{"email":"nadie@example.com","pass":"secreto123"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.StatusCode)

	wrongBody := readBody(t, wrongPassword)
	unknownBody := readBody(t, unknownUser)
	assert.JSONEq(t, `{"error":"Credenciales inválidas"}`, wrongBody)
	assert.Equal(t, wrongBody, unknownBody)
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	env := newEnv(t)

	resp := env.request(t, http.MethodGet, "/cursos", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"error":"no autorizado"}`, readBody(t, resp))
}

func TestProtectedRouteWithToken(t *testing.T) {
	env := newEnv(t)
	token := env.login(t, "ana@example.com", "secreto123")

	resp := env.request(t, http.MethodGet, "/cursos", token, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), `"nombre":"Go"`)
}

func TestAdminSectionForbiddenForUserRole(t *testing.T) {
	env := newEnv(t)
	token := env.login(t, "ana@example.com", "secreto123")

	resp := env.request(t, http.MethodGet, "/admin/dashboard", token, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.JSONEq(t, `{"error":"acceso denegado"}`, readBody(t, resp))
}

func TestAdminSectionAllowedForAdminRole(t *testing.T) {
	env := newEnv(t)
	token := env.login(t, "root@example.com", "clave-admin")

	resp := env.request(t, http.MethodGet, "/admin/dashboard", token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]int64
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(2), body["totalUsuarios"])
	assert.Equal(t, int64(1), body["totalCursos"])
}

func TestAdminLoginRejectsRegularUser(t *testing.T) {
	env := newEnv(t)

	resp := env.request(t, http.MethodPost, "/admin/login", "",
		`{"email":"ana@example.com","pass":"secreto123"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Credenciales inválidas"}`, readBody(t, resp))
}

func TestRefreshTokenReturnsRawToken(t *testing.T) {
	env := newEnv(t)
	token := env.login(t, "ana@example.com", "secreto123")

	resp := env.request(t, http.MethodPost, "/usuarios/refresh-token", token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	refreshed := readBody(t, resp)
	claims, err := env.authService.TokenManager().Parse(refreshed)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", claims.Subject)
}

func TestRefreshTokenWithoutTokenIsUnauthorized(t *testing.T) {
	env := newEnv(t)

	resp := env.request(t, http.MethodPost, "/usuarios/refresh-token", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"error":"no autorizado"}`, readBody(t, resp))
}

func TestCreateUserIsPublic(t *testing.T) {
	env := newEnv(t)

	resp := env.request(t, http.MethodPost, "/usuarios/crear", "",
		`{"nombre":"Luis","email":"luis@example.com","pass":"clave123"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Usuario creado exitosamente", readBody(t, resp))

	require.Len(t, env.users.created, 1)
	assert.Equal(t, domain.RoleUser, env.users.created[0].Role)
}

func TestHealthLiveIsPublic(t *testing.T) {
	env := newEnv(t)

	resp := env.request(t, http.MethodGet, "/health/live", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
