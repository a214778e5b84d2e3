package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/marina-vidal/gimnasio-go-api/internal/models"
	"github.com/marina-vidal/gimnasio-go-api/internal/repository"
)

var (
	// ErrSeedDisabled indicates the seeding tools are disabled by configuration.
	ErrSeedDisabled = errors.New("seeding is disabled")
	// ErrSeedUnauthorized indicates the provided token is invalid.
	ErrSeedUnauthorized = errors.New("invalid seed token")
)

// SeedResult summarises what a seeding run created.
type SeedResult struct {
	Secciones   int64 `json:"secciones"`
	Grupos      int64 `json:"grupos"`
	Turnos      int64 `json:"turnos"`
	Actividades int64 `json:"actividades"`
	Monitores   int64 `json:"monitores"`
}

// SeedService provisions the reference data the UI expects (sections,
// groups, shifts, a starter activity catalogue) plus a demo monitor
// account. Development tooling only; guarded by a flag and a token.
type SeedService interface {
	Seed(ctx context.Context, token string) (SeedResult, error)
}

type seedService struct {
	db        *gorm.DB
	monitores repository.MonitorRepository
	enabled   bool
	token     string
	logger    zerolog.Logger
}

// NewSeedService constructs the seeding service.
func NewSeedService(db *gorm.DB, monitores repository.MonitorRepository, enabled bool, token string, logger zerolog.Logger) SeedService {
	return &seedService{
		db:        db,
		monitores: monitores,
		enabled:   enabled,
		token:     token,
		logger:    logger.With().Str("component", "seed_service").Logger(),
	}
}

func (s *seedService) Seed(ctx context.Context, token string) (SeedResult, error) {
	if !s.enabled {
		return SeedResult{}, ErrSeedDisabled
	}
	if !s.validateToken(token) {
		return SeedResult{}, ErrSeedUnauthorized
	}

	var result SeedResult

	secciones := []models.Seccion{{Nombre: "Infantil"}, {Nombre: "Juvenil"}, {Nombre: "Adultos"}}
	for i := range secciones {
		created, err := firstOrCreate(ctx, s.db, &secciones[i], "nombre = ?", secciones[i].Nombre)
		if err != nil {
			return SeedResult{}, err
		}
		result.Secciones += created
	}

	grupos := []models.Grupo{{Nombre: "Grupo A"}, {Nombre: "Grupo B"}, {Nombre: "Grupo C"}}
	for i := range grupos {
		created, err := firstOrCreate(ctx, s.db, &grupos[i], "nombre = ?", grupos[i].Nombre)
		if err != nil {
			return SeedResult{}, err
		}
		result.Grupos += created
	}

	turnos := []models.Turno{{Nombre: "Mañana"}, {Nombre: "Tarde"}, {Nombre: "Noche"}}
	for i := range turnos {
		created, err := firstOrCreate(ctx, s.db, &turnos[i], "nombre = ?", turnos[i].Nombre)
		if err != nil {
			return SeedResult{}, err
		}
		result.Turnos += created
	}

	actividades := []models.Actividad{
		{Nombre: "Natación", Descripcion: "Sesión en piscina"},
		{Nombre: "Musculación", Descripcion: "Sala de pesas"},
		{Nombre: "Spinning", Descripcion: "Ciclo indoor"},
	}
	for i := range actividades {
		created, err := firstOrCreate(ctx, s.db, &actividades[i], "nombre = ?", actividades[i].Nombre)
		if err != nil {
			return SeedResult{}, err
		}
		result.Actividades += created
	}

	count, err := s.monitores.CountByEmail(ctx, "monitor@gimnasio.local")
	if err != nil {
		return SeedResult{}, err
	}
	if count == 0 {
		hash, err := HashPassword("cambiame")
		if err != nil {
			return SeedResult{}, err
		}
		monitor := models.Monitor{
			Email:        "monitor@gimnasio.local",
			PasswordHash: hash,
			Nombre:       "Monitor",
			Apellidos:    "De Prueba",
		}
		if err := s.monitores.Create(ctx, &monitor); err != nil {
			return SeedResult{}, err
		}
		result.Monitores++
	}

	s.logger.Info().
		Int64("secciones", result.Secciones).
		Int64("grupos", result.Grupos).
		Int64("turnos", result.Turnos).
		Int64("actividades", result.Actividades).
		Int64("monitores", result.Monitores).
		Msg("reference data seeded")

	return result, nil
}

func (s *seedService) validateToken(token string) bool {
	expected := strings.TrimSpace(s.token)
	if expected == "" {
		return false
	}
	return constantTimeEquals(expected, strings.TrimSpace(token))
}

func constantTimeEquals(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	mismatch := byte(0)
	for i := 0; i < len(a); i++ {
		mismatch |= a[i] ^ b[i]
	}
	return mismatch == 0
}

func firstOrCreate(ctx context.Context, db *gorm.DB, value interface{}, query string, args ...interface{}) (int64, error) {
	result := db.WithContext(ctx).Where(query, args...).FirstOrCreate(value)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
