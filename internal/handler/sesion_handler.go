package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/marina-vidal/gimnasio-go-api/internal/dto"
	"github.com/marina-vidal/gimnasio-go-api/internal/service"
	"github.com/marina-vidal/gimnasio-go-api/internal/utils"
)

// SesionHandler exposes the per-session edit context: the "editing member
// X" flag the members page hands to the edit form.
type SesionHandler struct {
	edicion service.EditContextService
	logger  zerolog.Logger
}

// NewSesionHandler constructs the handler.
func NewSesionHandler(edicion service.EditContextService, logger zerolog.Logger) *SesionHandler {
	return &SesionHandler{
		edicion: edicion,
		logger:  logger.With().Str("component", "sesion_handler").Logger(),
	}
}

// Register attaches the edit-context routes to the router group.
func (h *SesionHandler) Register(router fiber.Router) {
	router.Put("/edicion", h.set)
	router.Get("/edicion", h.take)
	router.Delete("/edicion", h.clear)
}

func (h *SesionHandler) set(c *fiber.Ctx) error {
	var payload dto.EdicionRequest
	if err := c.BodyParser(&payload); err != nil || payload.MiembroID == 0 {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	monitorID := monitorIDFromContext(c)
	if err := h.edicion.Set(c.Context(), monitorID, payload.MiembroID); err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to set edit context")
		return utils.SendError(c, fiber.StatusInternalServerError, "no se pudo marcar el miembro en edición")
	}

	return utils.SendSuccess(c, "miembro marcado para edición", dto.EdicionResponse{MiembroID: payload.MiembroID, Pendiente: true})
}

// take consumes the flag: a second GET returns pendiente=false.
func (h *SesionHandler) take(c *fiber.Ctx) error {
	monitorID := monitorIDFromContext(c)
	miembroID, ok, err := h.edicion.Take(c.Context(), monitorID)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to take edit context")
		return utils.SendError(c, fiber.StatusInternalServerError, "no se pudo recuperar el miembro en edición")
	}

	if !ok {
		return utils.SendSuccess(c, "no hay miembro en edición", dto.EdicionResponse{Pendiente: false})
	}

	return utils.SendSuccess(c, "miembro en edición recuperado", dto.EdicionResponse{MiembroID: miembroID, Pendiente: true})
}

func (h *SesionHandler) clear(c *fiber.Ctx) error {
	monitorID := monitorIDFromContext(c)
	if err := h.edicion.Clear(c.Context(), monitorID); err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to clear edit context")
		return utils.SendError(c, fiber.StatusInternalServerError, "no se pudo descartar la edición")
	}

	return utils.SendSuccess(c, "edición descartada", dto.EdicionResponse{Pendiente: false})
}
