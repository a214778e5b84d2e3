package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/marina-vidal/gimnasio-go-api/internal/dto"
	"github.com/marina-vidal/gimnasio-go-api/internal/models"
	"github.com/marina-vidal/gimnasio-go-api/internal/repository"
)

// CatalogoService exposes the static reference tables and the append-only
// activity catalogue.
type CatalogoService interface {
	Secciones(ctx context.Context) ([]dto.ReferenciaResponse, error)
	Grupos(ctx context.Context) ([]dto.ReferenciaResponse, error)
	Turnos(ctx context.Context) ([]dto.ReferenciaResponse, error)
	Actividades(ctx context.Context) ([]dto.ActividadResponse, error)
	CrearActividad(ctx context.Context, req dto.CrearActividadRequest) (dto.ActividadResponse, error)
}

type catalogoService struct {
	catalogo    repository.CatalogoRepository
	actividades repository.ActividadRepository
	validator   *validator.Validate
	sanitizer   *bluemonday.Policy
	logger      zerolog.Logger
}

// NewCatalogoService constructs the reference-data service.
func NewCatalogoService(catalogo repository.CatalogoRepository, actividades repository.ActividadRepository, validator *validator.Validate, logger zerolog.Logger) CatalogoService {
	return &catalogoService{
		catalogo:    catalogo,
		actividades: actividades,
		validator:   validator,
		sanitizer:   bluemonday.StrictPolicy(),
		logger:      logger.With().Str("component", "catalogo_service").Logger(),
	}
}

func (s *catalogoService) Secciones(ctx context.Context) ([]dto.ReferenciaResponse, error) {
	secciones, err := s.catalogo.Secciones(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ReferenciaResponse, 0, len(secciones))
	for _, seccion := range secciones {
		items = append(items, dto.NewSeccionResponse(seccion))
	}
	return items, nil
}

func (s *catalogoService) Grupos(ctx context.Context) ([]dto.ReferenciaResponse, error) {
	grupos, err := s.catalogo.Grupos(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ReferenciaResponse, 0, len(grupos))
	for _, grupo := range grupos {
		items = append(items, dto.NewGrupoResponse(grupo))
	}
	return items, nil
}

func (s *catalogoService) Turnos(ctx context.Context) ([]dto.ReferenciaResponse, error) {
	turnos, err := s.catalogo.Turnos(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ReferenciaResponse, 0, len(turnos))
	for _, turno := range turnos {
		items = append(items, dto.NewTurnoResponse(turno))
	}
	return items, nil
}

func (s *catalogoService) Actividades(ctx context.Context) ([]dto.ActividadResponse, error) {
	actividades, err := s.actividades.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ActividadResponse, 0, len(actividades))
	for _, actividad := range actividades {
		items = append(items, dto.NewActividadResponse(actividad))
	}
	return items, nil
}

func (s *catalogoService) CrearActividad(ctx context.Context, req dto.CrearActividadRequest) (dto.ActividadResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.ActividadResponse{}, err
	}

	actividad := models.Actividad{
		Nombre:      strings.TrimSpace(req.Nombre),
		Descripcion: s.sanitizer.Sanitize(strings.TrimSpace(req.Descripcion)),
	}

	if err := s.actividades.Create(ctx, &actividad); err != nil {
		return dto.ActividadResponse{}, err
	}

	s.logger.Info().Uint("actividad_id", actividad.ID).Msg("actividad creada")
	return dto.NewActividadResponse(actividad), nil
}
