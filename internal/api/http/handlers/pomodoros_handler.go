package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-curso/course-service/internal/api/dto"
	"github.com/tu-curso/course-service/internal/service"
	apperrors "github.com/tu-curso/course-service/pkg/util"
)

// PomodorosHandler exposes pomodoro session endpoints.
type PomodorosHandler struct {
	pomodoros *service.PomodoroService
}

// NewPomodorosHandler constructs handler.
func NewPomodorosHandler(pomodoros *service.PomodoroService) *PomodorosHandler {
	return &PomodorosHandler{pomodoros: pomodoros}
}

// Create handles POST /pomodoros/crear.
func (h *PomodorosHandler) Create(c *fiber.Ctx) error {
	var req dto.PomodoroRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo crear el pomodoro")
	}

	if _, err := h.pomodoros.Create(c.Context(), req.UserID, req.StartAt, req.EndAt); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo crear el pomodoro")
	}
	return c.Status(http.StatusCreated).SendString("Pomodoro creado exitosamente")
}

// Update handles PATCH /pomodoros/:id.
func (h *PomodorosHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.PomodoroRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo modificar el pomodoro")
	}

	if err := h.pomodoros.Update(c.Context(), id, req.StartAt, req.EndAt); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo modificar el pomodoro")
	}
	return c.SendString("Pomodoro modificado exitosamente")
}

// Delete handles DELETE /pomodoros/:id.
func (h *PomodorosHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.pomodoros.Delete(c.Context(), id); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo eliminar el pomodoro")
	}
	return c.SendString("Pomodoro eliminado exitosamente")
}

// GetByID handles GET /pomodoros/:id.
func (h *PomodorosHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	pomodoro, err := h.pomodoros.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromPomodoro(*pomodoro))
}

// List handles GET /pomodoros.
func (h *PomodorosHandler) List(c *fiber.Ctx) error {
	pomodoros, err := h.pomodoros.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.FromPomodoros(pomodoros))
}

// ListByUser handles GET /pomodoros/usuario/:usuarioId.
func (h *PomodorosHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "usuarioId")
	if err != nil {
		return err
	}

	pomodoros, err := h.pomodoros.ListByUser(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromPomodoros(pomodoros))
}

// ListBetween handles GET /pomodoros/entre-fechas?inicio=&fin= with RFC 3339
// bounds.
func (h *PomodorosHandler) ListBetween(c *fiber.Ctx) error {
	from, err := time.Parse(time.RFC3339, c.Query("inicio"))
	if err != nil {
		return apperrors.NewValidationError("fecha de inicio inválida")
	}
	to, err := time.Parse(time.RFC3339, c.Query("fin"))
	if err != nil {
		return apperrors.NewValidationError("fecha de fin inválida")
	}

	pomodoros, err := h.pomodoros.ListBetween(c.Context(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromPomodoros(pomodoros))
}

// CountByUser handles GET /pomodoros/contar/usuario/:usuarioId, returning the
// bare count.
func (h *PomodorosHandler) CountByUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "usuarioId")
	if err != nil {
		return err
	}

	count, err := h.pomodoros.CountByUser(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(count)
}
