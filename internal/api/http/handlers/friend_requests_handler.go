package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-curso/course-service/internal/api/dto"
	"github.com/tu-curso/course-service/internal/service"
)

// FriendRequestsHandler exposes friendship invitation endpoints.
type FriendRequestsHandler struct {
	requests *service.FriendRequestService
}

// NewFriendRequestsHandler constructs handler.
func NewFriendRequestsHandler(requests *service.FriendRequestService) *FriendRequestsHandler {
	return &FriendRequestsHandler{requests: requests}
}

// Send handles POST /solicitudes-amistad/enviar.
func (h *FriendRequestsHandler) Send(c *fiber.Ctx) error {
	var req dto.FriendRequestSendRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo enviar la solicitud")
	}

	if err := h.requests.Send(c.Context(), req.SenderID, req.ReceiverID); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo enviar la solicitud")
	}
	return c.Status(http.StatusCreated).SendString("Solicitud enviada exitosamente")
}

// Accept handles POST /solicitudes-amistad/:id/aceptar.
func (h *FriendRequestsHandler) Accept(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.requests.Accept(c.Context(), id); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo aceptar la solicitud")
	}
	return c.SendString("Solicitud aceptada exitosamente")
}

// Reject handles POST /solicitudes-amistad/:id/rechazar.
func (h *FriendRequestsHandler) Reject(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.requests.Reject(c.Context(), id); err != nil {
		return c.Status(http.StatusBadRequest).SendString("No se pudo rechazar la solicitud")
	}
	return c.SendString("Solicitud rechazada exitosamente")
}

// ListReceived handles GET /solicitudes-amistad/recibidas/:receptorId.
func (h *FriendRequestsHandler) ListReceived(c *fiber.Ctx) error {
	receiverID, err := parseID(c, "receptorId")
	if err != nil {
		return err
	}

	details, err := h.requests.ListReceived(c.Context(), receiverID)
	if err != nil {
		return err
	}
	return c.JSON(toFriendRequestResponses(details))
}

// ListSent handles GET /solicitudes-amistad/enviadas/:emisorId.
func (h *FriendRequestsHandler) ListSent(c *fiber.Ctx) error {
	senderID, err := parseID(c, "emisorId")
	if err != nil {
		return err
	}

	details, err := h.requests.ListSent(c.Context(), senderID)
	if err != nil {
		return err
	}
	return c.JSON(toFriendRequestResponses(details))
}

// ExistsPending handles GET /solicitudes-amistad/verificar-pendiente?usuario1Id=&usuario2Id=.
func (h *FriendRequestsHandler) ExistsPending(c *fiber.Ctx) error {
	userID, err := parseQueryID(c, "usuario1Id")
	if err != nil {
		return err
	}
	otherID, err := parseQueryID(c, "usuario2Id")
	if err != nil {
		return err
	}

	pending, err := h.requests.ExistsPending(c.Context(), userID, otherID)
	if err != nil {
		return err
	}
	return c.JSON(pending)
}

// CountReceived handles GET /solicitudes-amistad/contar-recibidas/:receptorId.
func (h *FriendRequestsHandler) CountReceived(c *fiber.Ctx) error {
	receiverID, err := parseID(c, "receptorId")
	if err != nil {
		return err
	}

	count, err := h.requests.CountReceived(c.Context(), receiverID)
	if err != nil {
		return err
	}
	return c.JSON(count)
}

func toFriendRequestResponses(details []service.FriendRequestDetail) []dto.FriendRequestResponse {
	out := make([]dto.FriendRequestResponse, 0, len(details))
	for _, detail := range details {
		out = append(out, dto.FriendRequestResponse{
			ID:       detail.Request.ID,
			Sender:   dto.FromUser(detail.Sender),
			Receiver: dto.FromUser(detail.Receiver),
		})
	}
	return out
}
