package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/marina-vidal/gimnasio-go-api/internal/service"
	"github.com/marina-vidal/gimnasio-go-api/internal/utils"
)

// EstadisticasHandler wires the statistics endpoints feeding the charts.
type EstadisticasHandler struct {
	service service.EstadisticasService
	logger  zerolog.Logger
}

// NewEstadisticasHandler constructs the handler.
func NewEstadisticasHandler(service service.EstadisticasService, logger zerolog.Logger) *EstadisticasHandler {
	return &EstadisticasHandler{
		service: service,
		logger:  logger.With().Str("component", "estadisticas_handler").Logger(),
	}
}

// Register attaches statistics routes to the router group.
func (h *EstadisticasHandler) Register(router fiber.Router) {
	router.Get("/por-seccion", h.porSeccion)
	router.Get("/por-grupo", h.porGrupo)
	router.Get("/miembros-sin-actividad", h.miembrosSinActividad)
}

func (h *EstadisticasHandler) porSeccion(c *fiber.Ctx) error {
	desde, hasta, err := rangoFromQuery(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	response, err := h.service.PorSeccion(c.Context(), desde, hasta)
	if err != nil {
		return h.mapError(c, err, "failed to aggregate by section")
	}

	message := "estadísticas recuperadas"
	if len(response.Items) == 0 {
		message = "no hay datos suficientes para la gráfica"
	}

	return utils.SendSuccess(c, message, response)
}

func (h *EstadisticasHandler) porGrupo(c *fiber.Ctx) error {
	desde, hasta, err := rangoFromQuery(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	response, err := h.service.PorGrupo(c.Context(), desde, hasta)
	if err != nil {
		return h.mapError(c, err, "failed to aggregate by group")
	}

	message := "estadísticas recuperadas"
	if len(response.Items) == 0 {
		message = "no hay datos suficientes para la gráfica"
	}

	return utils.SendSuccess(c, message, response)
}

func (h *EstadisticasHandler) miembrosSinActividad(c *fiber.Ctx) error {
	desde, hasta, err := rangoFromQuery(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	response, err := h.service.MiembrosSinActividad(c.Context(), desde, hasta)
	if err != nil {
		return h.mapError(c, err, "failed to list inactive members")
	}

	message := "miembros sin actividad recuperados"
	if response.Total == 0 {
		message = "todos los miembros han realizado actividades en el período"
	}

	return utils.SendSuccess(c, message, response)
}

func (h *EstadisticasHandler) mapError(c *fiber.Ctx, err error, logMessage string) error {
	if errors.Is(err, service.ErrRangoInvalido) {
		return utils.SendError(c, fiber.StatusBadRequest, "rango de fechas no válido")
	}
	requestLogger(h.logger, c).Error().Err(err).Msg(logMessage)
	return utils.SendError(c, fiber.StatusInternalServerError, "no se pudieron calcular las estadísticas")
}
