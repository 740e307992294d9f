package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-curso/course-service/internal/api/dto"
	"github.com/tu-curso/course-service/internal/service"
)

// CoursesHandler exposes course CRUD endpoints.
type CoursesHandler struct {
	courses *service.CourseService
}

// NewCoursesHandler constructs handler.
func NewCoursesHandler(courses *service.CourseService) *CoursesHandler {
	return &CoursesHandler{courses: courses}
}

// Create handles POST /cursos/crear.
func (h *CoursesHandler) Create(c *fiber.Ctx) error {
	var req dto.CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo crear el curso")
	}

	if _, err := h.courses.Create(c.Context(), req.UserID, courseInput(req)); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo crear el curso")
	}
	return c.Status(http.StatusCreated).SendString("Curso creado exitosamente")
}

// Update handles PATCH /cursos/:id.
func (h *CoursesHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo modificar el curso")
	}

	if err := h.courses.Update(c.Context(), id, courseInput(req)); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo modificar el curso")
	}
	return c.SendString("Curso modificado exitosamente")
}

// Delete handles DELETE /cursos/:id.
func (h *CoursesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.courses.Delete(c.Context(), id); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo eliminar el curso")
	}
	return c.SendString("Curso eliminado exitosamente")
}

// GetByID handles GET /cursos/:id.
func (h *CoursesHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	course, err := h.courses.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromCourse(*course))
}

// List handles GET /cursos.
func (h *CoursesHandler) List(c *fiber.Ctx) error {
	courses, err := h.courses.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.FromCourses(courses))
}

// ListByUser handles GET /cursos/usuario/:usuarioId.
func (h *CoursesHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "usuarioId")
	if err != nil {
		return err
	}

	courses, err := h.courses.ListByUser(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromCourses(courses))
}

// CountByUser handles GET /cursos/contar/usuario/:usuarioId, returning the
// bare count.
func (h *CoursesHandler) CountByUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "usuarioId")
	if err != nil {
		return err
	}

	count, err := h.courses.CountByUser(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(count)
}

func courseInput(req dto.CourseRequest) service.CourseInput {
	return service.CourseInput{
		Name:     req.Name,
		Link:     req.Link,
		Price:    req.Price,
		Finished: req.Finished,
		Notes:    req.Notes,
	}
}
