package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/marina-vidal/gimnasio-go-api/internal/dto"
	"github.com/marina-vidal/gimnasio-go-api/internal/service"
	"github.com/marina-vidal/gimnasio-go-api/internal/utils"
)

// CatalogoHandler serves the reference tables and the activity catalogue.
type CatalogoHandler struct {
	service service.CatalogoService
	logger  zerolog.Logger
}

// NewCatalogoHandler constructs the handler.
func NewCatalogoHandler(service service.CatalogoService, logger zerolog.Logger) *CatalogoHandler {
	return &CatalogoHandler{
		service: service,
		logger:  logger.With().Str("component", "catalogo_handler").Logger(),
	}
}

// Register attaches catalogue routes to the router group.
func (h *CatalogoHandler) Register(router fiber.Router) {
	router.Get("/secciones", h.secciones)
	router.Get("/grupos", h.grupos)
	router.Get("/turnos", h.turnos)
	router.Get("/actividades", h.actividades)
	router.Post("/actividades", h.crearActividad)
}

func (h *CatalogoHandler) secciones(c *fiber.Ctx) error {
	items, err := h.service.Secciones(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list sections")
		return utils.SendError(c, fiber.StatusInternalServerError, "no se pudieron listar las secciones")
	}

	return utils.SendSuccess(c, "secciones recuperadas", fiber.Map{"items": items})
}

func (h *CatalogoHandler) grupos(c *fiber.Ctx) error {
	items, err := h.service.Grupos(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list groups")
		return utils.SendError(c, fiber.StatusInternalServerError, "no se pudieron listar los grupos")
	}

	return utils.SendSuccess(c, "grupos recuperados", fiber.Map{"items": items})
}

func (h *CatalogoHandler) turnos(c *fiber.Ctx) error {
	items, err := h.service.Turnos(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list shifts")
		return utils.SendError(c, fiber.StatusInternalServerError, "no se pudieron listar los turnos")
	}

	return utils.SendSuccess(c, "turnos recuperados", fiber.Map{"items": items})
}

func (h *CatalogoHandler) actividades(c *fiber.Ctx) error {
	items, err := h.service.Actividades(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list activities")
		return utils.SendError(c, fiber.StatusInternalServerError, "no se pudieron listar las actividades")
	}

	message := "actividades recuperadas"
	if len(items) == 0 {
		message = "no hay actividades configuradas"
	}

	return utils.SendSuccess(c, message, fiber.Map{"items": items})
}

func (h *CatalogoHandler) crearActividad(c *fiber.Ctx) error {
	var payload dto.CrearActividadRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	actividad, err := h.service.CrearActividad(c.Context(), payload)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to create activity")
		return utils.SendError(c, fiber.StatusInternalServerError, "no se pudo crear la actividad")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "actividad creada", actividad)
}
