package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/marina-vidal/gimnasio-go-api/internal/service"
	"github.com/marina-vidal/gimnasio-go-api/internal/utils"
)

// DashboardHandler serves the landing-page summary.
type DashboardHandler struct {
	service service.DashboardService
	logger  zerolog.Logger
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service service.DashboardService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger.With().Str("component", "dashboard_handler").Logger(),
	}
}

// Register attaches the dashboard route to the router group.
func (h *DashboardHandler) Register(router fiber.Router) {
	router.Get("", h.resumen)
}

func (h *DashboardHandler) resumen(c *fiber.Ctx) error {
	response, err := h.service.Resumen(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to build dashboard")
		return utils.SendError(c, fiber.StatusInternalServerError, "no se pudo generar el panel")
	}

	return utils.SendSuccess(c, "panel generado", response)
}
