package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/marina-vidal/gimnasio-go-api/internal/dto"
	"github.com/marina-vidal/gimnasio-go-api/internal/service"
	"github.com/marina-vidal/gimnasio-go-api/internal/utils"
)

// RegistroHandler wires the attendance log endpoints, including the CSV
// export download.
type RegistroHandler struct {
	service service.RegistroService
	logger  zerolog.Logger
}

// NewRegistroHandler constructs the handler.
func NewRegistroHandler(service service.RegistroService, logger zerolog.Logger) *RegistroHandler {
	return &RegistroHandler{
		service: service,
		logger:  logger.With().Str("component", "registro_handler").Logger(),
	}
}

// Register attaches log routes to the router group.
func (h *RegistroHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Get("/export", h.export)
}

func (h *RegistroHandler) list(c *fiber.Ctx) error {
	desde, hasta, err := rangoFromQuery(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	response, err := h.service.ListarPorRango(c.Context(), desde, hasta)
	if err != nil {
		if errors.Is(err, service.ErrRangoInvalido) {
			return utils.SendError(c, fiber.StatusBadRequest, "rango de fechas no válido")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list log records")
		return utils.SendError(c, fiber.StatusInternalServerError, "no se pudo recuperar el registro")
	}

	message := "registros recuperados"
	if response.Total == 0 {
		message = "no hay registros para el período seleccionado"
	}

	return utils.SendSuccess(c, message, response)
}

func (h *RegistroHandler) create(c *fiber.Ctx) error {
	var payload dto.CrearRegistroRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	registro, err := h.service.Crear(c.Context(), payload, monitorIDFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMiembroNoEncontrado),
			errors.Is(err, service.ErrActividadInvalida),
			errors.Is(err, service.ErrTurnoInvalido),
			errors.Is(err, service.ErrRangoInvalido):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to create log record")
			return utils.SendError(c, fiber.StatusInternalServerError, "no se pudo agendar la actividad")
		}
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "actividad agendada", registro)
}

func (h *RegistroHandler) export(c *fiber.Ctx) error {
	desde, hasta, err := rangoFromQuery(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	exportacion, err := h.service.ExportarCSV(c.Context(), desde, hasta)
	if err != nil {
		if errors.Is(err, service.ErrRangoInvalido) {
			return utils.SendError(c, fiber.StatusBadRequest, "rango de fechas no válido")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to export log records")
		return utils.SendError(c, fiber.StatusInternalServerError, "no se pudo exportar el registro")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", exportacion.Nombre))
	return c.Send(exportacion.Contenido)
}

func rangoFromQuery(c *fiber.Ctx) (string, string, error) {
	desde := c.Query("desde")
	hasta := c.Query("hasta")
	if desde == "" || hasta == "" {
		return "", "", errors.New("los parámetros desde y hasta son obligatorios")
	}
	return desde, hasta, nil
}
