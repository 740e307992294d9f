package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-curso/course-service/internal/api/dto"
	"github.com/tu-curso/course-service/internal/service"
)

// CheckpointsHandler exposes checkpoint endpoints.
type CheckpointsHandler struct {
	checkpoints *service.CheckpointService
}

// NewCheckpointsHandler constructs handler.
func NewCheckpointsHandler(checkpoints *service.CheckpointService) *CheckpointsHandler {
	return &CheckpointsHandler{checkpoints: checkpoints}
}

// Create handles POST /puntos-de-control/crear.
func (h *CheckpointsHandler) Create(c *fiber.Ctx) error {
	var req dto.CheckpointRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo crear el punto de control")
	}

	if _, err := h.checkpoints.Create(c.Context(), req.CourseID, checkpointInput(req)); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo crear el punto de control")
	}
	return c.Status(http.StatusCreated).SendString("Punto de control creado exitosamente")
}

// Update handles PATCH /puntos-de-control/:id.
func (h *CheckpointsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.CheckpointRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo modificar el punto de control")
	}

	if err := h.checkpoints.Update(c.Context(), id, checkpointInput(req)); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo modificar el punto de control")
	}
	return c.SendString("Punto de control modificado exitosamente")
}

// SetCompleted handles PATCH /puntos-de-control/:id/completado.
func (h *CheckpointsHandler) SetCompleted(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.CheckpointCompletedRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo actualizar el punto de control")
	}

	if err := h.checkpoints.SetCompleted(c.Context(), id, req.Completed); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo actualizar el punto de control")
	}
	return c.SendString("Punto de control actualizado exitosamente")
}

// Delete handles DELETE /puntos-de-control/:id.
func (h *CheckpointsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.checkpoints.Delete(c.Context(), id); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo eliminar el punto de control")
	}
	return c.SendString("Punto de control eliminado exitosamente")
}

// GetByID handles GET /puntos-de-control/:id.
func (h *CheckpointsHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	checkpoint, err := h.checkpoints.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromCheckpoint(*checkpoint))
}

// List handles GET /puntos-de-control.
func (h *CheckpointsHandler) List(c *fiber.Ctx) error {
	checkpoints, err := h.checkpoints.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.FromCheckpoints(checkpoints))
}

// ListByCourse handles GET /puntos-de-control/curso/:cursoId.
func (h *CheckpointsHandler) ListByCourse(c *fiber.Ctx) error {
	courseID, err := parseID(c, "cursoId")
	if err != nil {
		return err
	}

	checkpoints, err := h.checkpoints.ListByCourse(c.Context(), courseID)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromCheckpoints(checkpoints))
}

// ListPending handles GET /puntos-de-control/pendientes.
func (h *CheckpointsHandler) ListPending(c *fiber.Ctx) error {
	checkpoints, err := h.checkpoints.ListPending(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.FromCheckpoints(checkpoints))
}

// CountByCourse handles GET /puntos-de-control/contar/curso/:cursoId.
func (h *CheckpointsHandler) CountByCourse(c *fiber.Ctx) error {
	courseID, err := parseID(c, "cursoId")
	if err != nil {
		return err
	}

	count, err := h.checkpoints.CountByCourse(c.Context(), courseID)
	if err != nil {
		return err
	}
	return c.JSON(count)
}

// CountCompletedByCourse handles GET /puntos-de-control/contar/completados/curso/:cursoId.
func (h *CheckpointsHandler) CountCompletedByCourse(c *fiber.Ctx) error {
	courseID, err := parseID(c, "cursoId")
	if err != nil {
		return err
	}

	count, err := h.checkpoints.CountCompletedByCourse(c.Context(), courseID)
	if err != nil {
		return err
	}
	return c.JSON(count)
}

func checkpointInput(req dto.CheckpointRequest) service.CheckpointInput {
	return service.CheckpointInput{
		Description: req.Description,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
	}
}
