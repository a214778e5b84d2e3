package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/marina-vidal/gimnasio-go-api/internal/dto"
	"github.com/marina-vidal/gimnasio-go-api/internal/repository"
)

// ErrInvalidCredentials is returned for every authentication failure:
// unknown email, wrong password or empty input. The caller cannot tell
// which one happened.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService verifies staff credentials and issues session tokens.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.SesionResponse, error)
	Logout(ctx context.Context, monitorID uint) error
	Profile(ctx context.Context, monitorID uint) (dto.MonitorResponse, error)
}

type authService struct {
	monitores repository.MonitorRepository
	edicion   EditContextService
	secret    string
	tokenTTL  time.Duration
	logger    zerolog.Logger
	now       func() time.Time
}

// NewAuthService constructs the authentication service.
func NewAuthService(monitores repository.MonitorRepository, edicion EditContextService, secret string, tokenTTL time.Duration, logger zerolog.Logger) AuthService {
	return &authService{
		monitores: monitores,
		edicion:   edicion,
		secret:    secret,
		tokenTTL:  tokenTTL,
		logger:    logger.With().Str("component", "auth_service").Logger(),
		now:       time.Now,
	}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (dto.SesionResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return dto.SesionResponse{}, ErrInvalidCredentials
	}

	monitor, err := s.monitores.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SesionResponse{}, ErrInvalidCredentials
		}
		return dto.SesionResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(monitor.PasswordHash), []byte(req.Password)) != nil {
		return dto.SesionResponse{}, ErrInvalidCredentials
	}

	now := s.now()
	claims := jwt.MapClaims{
		"sub":   monitor.ID,
		"email": monitor.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return dto.SesionResponse{}, err
	}

	s.logger.Info().Uint("monitor_id", monitor.ID).Msg("monitor logged in")

	return dto.SesionResponse{
		Token:   token,
		Monitor: dto.NewMonitorResponse(monitor),
	}, nil
}

// Logout discards server-side session state. The token itself simply
// expires; there is no revocation list.
func (s *authService) Logout(ctx context.Context, monitorID uint) error {
	if s.edicion != nil {
		if err := s.edicion.Clear(ctx, monitorID); err != nil {
			s.logger.Warn().Err(err).Uint("monitor_id", monitorID).Msg("failed to clear edit context on logout")
		}
	}

	s.logger.Info().Uint("monitor_id", monitorID).Msg("monitor logged out")
	return nil
}

func (s *authService) Profile(ctx context.Context, monitorID uint) (dto.MonitorResponse, error) {
	monitor, err := s.monitores.GetByID(ctx, monitorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.MonitorResponse{}, ErrInvalidCredentials
		}
		return dto.MonitorResponse{}, err
	}

	return dto.NewMonitorResponse(monitor), nil
}

// HashPassword derives the stored credential for a monitor account.
// Plaintext is never persisted.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
