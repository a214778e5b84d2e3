package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/marina-vidal/gimnasio-go-api/internal/dto"
	"github.com/marina-vidal/gimnasio-go-api/internal/service"
	"github.com/marina-vidal/gimnasio-go-api/internal/utils"
)

// MiembroHandler wires the member management endpoints.
type MiembroHandler struct {
	service service.MiembroService
	logger  zerolog.Logger
}

// NewMiembroHandler constructs the handler.
func NewMiembroHandler(service service.MiembroService, logger zerolog.Logger) *MiembroHandler {
	return &MiembroHandler{
		service: service,
		logger:  logger.With().Str("component", "miembro_handler").Logger(),
	}
}

// Register attaches member routes to the router group.
func (h *MiembroHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Get("/:id", h.get)
	router.Put("/:id", h.update)
	router.Delete("/:id", h.delete)
}

func (h *MiembroHandler) list(c *fiber.Ctx) error {
	seccionID, err := parseQueryUint(c, "seccion_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "seccion_id no válido")
	}

	grupoID, err := parseQueryUint(c, "grupo_id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "grupo_id no válido")
	}

	req := dto.MiembroListRequest{
		SeccionID: seccionID,
		GrupoID:   grupoID,
		Buscar:    c.Query("buscar"),
	}

	response, err := h.service.List(c.Context(), req)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list members")
		return utils.SendError(c, fiber.StatusInternalServerError, "no se pudieron listar los miembros")
	}

	message := "miembros recuperados"
	if response.Total == 0 {
		message = "no hay miembros registrados"
	}

	return utils.SendSuccess(c, message, response)
}

func (h *MiembroHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "identificador no válido")
	}

	miembro, err := h.service.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMiembroNoEncontrado) {
			return utils.SendError(c, fiber.StatusNotFound, "miembro no encontrado")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to fetch member")
		return utils.SendError(c, fiber.StatusInternalServerError, "no se pudo recuperar el miembro")
	}

	return utils.SendSuccess(c, "miembro recuperado", miembro)
}

func (h *MiembroHandler) create(c *fiber.Ctx) error {
	var payload dto.CrearMiembroRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	miembro, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return h.mapWriteError(c, err, "failed to create member", "no se pudo crear el miembro")
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "miembro creado", miembro)
}

func (h *MiembroHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "identificador no válido")
	}

	var payload dto.ActualizarMiembroRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	miembro, err := h.service.Update(c.Context(), id, payload, monitorIDFromContext(c))
	if err != nil {
		return h.mapWriteError(c, err, "failed to update member", "no se pudo actualizar el miembro")
	}

	return utils.SendSuccess(c, "miembro actualizado", miembro)
}

func (h *MiembroHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "identificador no válido")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrMiembroNoEncontrado) {
			return utils.SendError(c, fiber.StatusNotFound, "miembro no encontrado")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to delete member")
		return utils.SendError(c, fiber.StatusInternalServerError, "no se pudo eliminar el miembro")
	}

	return utils.SendSuccess(c, "miembro eliminado", fiber.Map{"id": id})
}

func (h *MiembroHandler) mapWriteError(c *fiber.Ctx, err error, logMessage, fallback string) error {
	switch {
	case errors.Is(err, service.ErrMiembroNoEncontrado):
		return utils.SendError(c, fiber.StatusNotFound, "miembro no encontrado")
	case errors.Is(err, service.ErrSeccionInvalida),
		errors.Is(err, service.ErrGrupoInvalido),
		errors.Is(err, service.ErrNIPDuplicado):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	default:
		requestLogger(h.logger, c).Error().Err(err).Msg(logMessage)
		return utils.SendError(c, fiber.StatusInternalServerError, fallback)
	}
}
