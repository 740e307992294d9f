package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-curso/course-service/internal/api/dto"
	"github.com/tu-curso/course-service/internal/domain"
	"github.com/tu-curso/course-service/internal/service"
)

// AdminHandler exposes the administration endpoints under /admin.
type AdminHandler struct {
	users   *service.UserService
	courses *service.CourseService
	auth    *service.AuthService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(users *service.UserService, courses *service.CourseService, authService *service.AuthService) *AdminHandler {
	return &AdminHandler{users: users, courses: courses, auth: authService}
}

// Login handles POST /admin/login. Accounts without the administrator role
// are rejected with the same response as bad credentials.
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Credenciales inválidas"})
	}

	user, token, expiresAt, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil || user.Role != domain.RoleAdmin {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Credenciales inválidas"})
	}

	return c.JSON(dto.LoginResponse{
		ID:         strconv64(user.ID),
		Token:      token,
		Expiration: expiresAt.Format(time.UnixDate),
	})
}

// RegisterAdminDev handles POST /admin/registro-admin-dev, the unauthenticated
// bootstrap route for development setups.
func (h *AdminHandler) RegisterAdminDev(c *fiber.Ctx) error {
	var req dto.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo crear el administrador")
	}

	if _, err := h.users.CreateAdmin(c.Context(), userInput(req)); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo crear el administrador")
	}
	return c.Status(http.StatusCreated).SendString("Administrador creado con éxito")
}

// Dashboard handles GET /admin/dashboard with aggregate totals.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	totalUsers, err := h.users.Count(c.Context())
	if err != nil {
		return err
	}
	totalCourses, err := h.courses.Count(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"totalUsuarios": totalUsers,
		"totalCursos":   totalCourses,
	})
}

// ListUsers handles GET /admin/usuarios.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.users.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.FromUsers(users))
}

// DeleteUser handles POST /admin/usuarios/:id/eliminar.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.users.Delete(c.Context(), id); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "No se pudo eliminar el usuario"})
	}
	return c.JSON(fiber.Map{"mensaje": "Usuario eliminado correctamente"})
}

// ChangePassword handles POST /admin/usuarios/:id/cambiar-password.
func (h *AdminHandler) ChangePassword(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req struct {
		NewPassword string `json:"nuevaContrasena"`
	}
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.NewPassword) == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "La contraseña no puede estar vacía"})
	}

	if err := h.users.ChangePassword(c.Context(), id, req.NewPassword); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "No se pudo cambiar la contraseña"})
	}
	return c.JSON(fiber.Map{"mensaje": "Contraseña cambiada correctamente"})
}
