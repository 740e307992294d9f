package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-curso/course-service/internal/api/dto"
	"github.com/tu-curso/course-service/internal/service"
)

// UsersHandler exposes account, session and friendship endpoints.
type UsersHandler struct {
	users *service.UserService
	auth  *service.AuthService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users *service.UserService, authService *service.AuthService) *UsersHandler {
	return &UsersHandler{users: users, auth: authService}
}

// Create handles POST /usuarios/crear.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo crear el usuario")
	}

	if _, err := h.users.Create(c.Context(), userInput(req)); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo crear el usuario")
	}
	return c.Status(http.StatusCreated).SendString("Usuario creado exitosamente")
}

// CreateAdmin handles POST /usuarios/crear-admin (admin only).
func (h *UsersHandler) CreateAdmin(c *fiber.Ctx) error {
	var req dto.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo crear el administrador")
	}

	if _, err := h.users.CreateAdmin(c.Context(), userInput(req)); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo crear el administrador")
	}
	return c.Status(http.StatusCreated).SendString("Administrador creado exitosamente")
}

// CreateAdminDev handles POST /usuarios/crear-admin-dev, an unauthenticated
// bootstrap endpoint for development setups.
func (h *UsersHandler) CreateAdminDev(c *fiber.Ctx) error {
	var req dto.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo crear el administrador")
	}

	if _, err := h.users.CreateAdmin(c.Context(), userInput(req)); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo crear el administrador")
	}
	return c.Status(http.StatusCreated).SendString("Administrador creado con éxito")
}

// Update handles PATCH /usuarios/:id.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo modificar el usuario")
	}

	if err := h.users.Update(c.Context(), id, service.UserInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Description: req.Description,
		Icon:        req.Icon,
	}); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo modificar el usuario")
	}
	return c.SendString("Usuario modificado exitosamente")
}

// List handles GET /usuarios.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.FromUsers(users))
}

// Login handles POST /usuarios/login. Every authentication failure looks the
// same to the caller.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Credenciales inválidas"})
	}

	user, token, expiresAt, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Credenciales inválidas"})
	}

	return c.JSON(dto.LoginResponse{
		ID:         strconv64(user.ID),
		Token:      token,
		Expiration: expiresAt.Format(time.UnixDate),
	})
}

// Refresh handles POST /usuarios/refresh-token, returning the new encoded
// token as the raw response body.
func (h *UsersHandler) Refresh(c *fiber.Ctx) error {
	tokenStr := bearerToken(c.Get(fiber.HeaderAuthorization))
	if tokenStr == "" {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "no autorizado"})
	}

	newToken, _, err := h.auth.Refresh(tokenStr)
	if err != nil {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "no autorizado"})
	}
	return c.SendString(newToken)
}

// AddFriend handles POST /usuarios/:usuarioId/amigos/:amigoId.
func (h *UsersHandler) AddFriend(c *fiber.Ctx) error {
	userID, err := parseID(c, "usuarioId")
	if err != nil {
		return err
	}
	friendID, err := parseID(c, "amigoId")
	if err != nil {
		return err
	}

	if err := h.users.AddFriend(c.Context(), userID, friendID); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo agregar el amigo")
	}
	return c.SendString("Amigo agregado exitosamente")
}

// RemoveFriend handles DELETE /usuarios/:usuarioId/amigos/:amigoId.
func (h *UsersHandler) RemoveFriend(c *fiber.Ctx) error {
	userID, err := parseID(c, "usuarioId")
	if err != nil {
		return err
	}
	friendID, err := parseID(c, "amigoId")
	if err != nil {
		return err
	}

	if err := h.users.RemoveFriend(c.Context(), userID, friendID); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo remover el amigo")
	}
	return c.SendString("Amigo removido exitosamente")
}

// Friends handles GET /usuarios/:usuarioId/amigos.
func (h *UsersHandler) Friends(c *fiber.Ctx) error {
	userID, err := parseID(c, "usuarioId")
	if err != nil {
		return err
	}

	friends, err := h.users.Friends(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromUsers(friends))
}

// SearchFriends handles GET /usuarios/:usuarioId/buscar-amigos?nombre=.
func (h *UsersHandler) SearchFriends(c *fiber.Ctx) error {
	userID, err := parseID(c, "usuarioId")
	if err != nil {
		return err
	}

	candidates, err := h.users.SearchCandidates(c.Context(), userID, c.Query("nombre"))
	if err != nil {
		return err
	}
	return c.JSON(dto.FromUsers(candidates))
}

// VerifyFriendship handles GET /usuarios/:usuarioId/amigos/:amigoId/verificar.
func (h *UsersHandler) VerifyFriendship(c *fiber.Ctx) error {
	userID, err := parseID(c, "usuarioId")
	if err != nil {
		return err
	}
	friendID, err := parseID(c, "amigoId")
	if err != nil {
		return err
	}

	areFriends, err := h.users.AreFriends(c.Context(), userID, friendID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"sonAmigos": areFriends})
}

// CountFriends handles GET /usuarios/:usuarioId/amigos/contar.
func (h *UsersHandler) CountFriends(c *fiber.Ctx) error {
	userID, err := parseID(c, "usuarioId")
	if err != nil {
		return err
	}

	count, err := h.users.CountFriends(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"cantidadAmigos": count})
}

func userInput(req dto.UserCreateRequest) service.UserInput {
	return service.UserInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Description: req.Description,
		Icon:        req.Icon,
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
