package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/marina-vidal/gimnasio-go-api/internal/dto"
	"github.com/marina-vidal/gimnasio-go-api/internal/service"
	"github.com/marina-vidal/gimnasio-go-api/internal/utils"
)

// AuthHandler wires the login, logout and profile endpoints.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("component", "auth_handler").Logger(),
	}
}

// RegisterPublic attaches the unauthenticated routes.
func (h *AuthHandler) RegisterPublic(router fiber.Router) {
	router.Post("/login", h.login)
}

// RegisterProtected attaches the routes that require a session.
func (h *AuthHandler) RegisterProtected(router fiber.Router) {
	router.Post("/logout", h.logout)
	router.Get("/me", h.me)
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	var payload dto.LoginRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	sesion, err := h.service.Login(c.Context(), payload)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Same message for unknown email and wrong password.
			return utils.SendError(c, fiber.StatusUnauthorized, "credenciales incorrectas")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("login failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "no se pudo iniciar sesión")
	}

	return utils.SendSuccess(c, "sesión iniciada", sesion)
}

func (h *AuthHandler) logout(c *fiber.Ctx) error {
	monitorID := monitorIDFromContext(c)
	if err := h.service.Logout(c.Context(), monitorID); err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("logout failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "no se pudo cerrar sesión")
	}

	return utils.SendSuccess(c, "sesión cerrada", fiber.Map{"monitor_id": monitorID})
}

func (h *AuthHandler) me(c *fiber.Ctx) error {
	monitorID := monitorIDFromContext(c)
	profile, err := h.service.Profile(c.Context(), monitorID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return utils.SendError(c, fiber.StatusUnauthorized, "sesión no válida")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to fetch profile")
		return utils.SendError(c, fiber.StatusInternalServerError, "no se pudo recuperar el perfil")
	}

	return utils.SendSuccess(c, "perfil recuperado", profile)
}
