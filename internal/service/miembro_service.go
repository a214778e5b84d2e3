package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/marina-vidal/gimnasio-go-api/internal/dto"
	"github.com/marina-vidal/gimnasio-go-api/internal/models"
	"github.com/marina-vidal/gimnasio-go-api/internal/repository"
)

var (
	// ErrMiembroNoEncontrado indicates the member does not exist.
	ErrMiembroNoEncontrado = errors.New("miembro no encontrado")
	// ErrSeccionInvalida indicates the referenced section does not exist.
	ErrSeccionInvalida = errors.New("la seccion indicada no existe")
	// ErrGrupoInvalido indicates the referenced group does not exist.
	ErrGrupoInvalido = errors.New("el grupo indicado no existe")
	// ErrNIPDuplicado indicates another member already holds the NIP.
	ErrNIPDuplicado = errors.New("ya existe un miembro con ese NIP")
)

// MiembroService orchestrates member management use cases.
type MiembroService interface {
	List(ctx context.Context, req dto.MiembroListRequest) (dto.MiembroListResponse, error)
	Get(ctx context.Context, id uint) (dto.MiembroResponse, error)
	Create(ctx context.Context, req dto.CrearMiembroRequest) (dto.MiembroResponse, error)
	Update(ctx context.Context, id uint, req dto.ActualizarMiembroRequest, monitorID uint) (dto.MiembroResponse, error)
	Delete(ctx context.Context, id uint) error
}

type miembroService struct {
	miembros  repository.MiembroRepository
	catalogo  repository.CatalogoRepository
	edicion   EditContextService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewMiembroService constructs the member service.
func NewMiembroService(miembros repository.MiembroRepository, catalogo repository.CatalogoRepository, edicion EditContextService, validator *validator.Validate, logger zerolog.Logger) MiembroService {
	return &miembroService{
		miembros:  miembros,
		catalogo:  catalogo,
		edicion:   edicion,
		validator: validator,
		logger:    logger.With().Str("component", "miembro_service").Logger(),
	}
}

func (s *miembroService) List(ctx context.Context, req dto.MiembroListRequest) (dto.MiembroListResponse, error) {
	filter := repository.MiembroFilter{
		SeccionID: req.SeccionID,
		GrupoID:   req.GrupoID,
		Buscar:    strings.TrimSpace(req.Buscar),
	}

	miembros, err := s.miembros.List(ctx, filter)
	if err != nil {
		return dto.MiembroListResponse{}, err
	}

	items := make([]dto.MiembroResponse, 0, len(miembros))
	for _, miembro := range miembros {
		items = append(items, dto.NewMiembroResponse(miembro))
	}

	return dto.MiembroListResponse{Items: items, Total: len(items)}, nil
}

func (s *miembroService) Get(ctx context.Context, id uint) (dto.MiembroResponse, error) {
	miembro, err := s.miembros.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.MiembroResponse{}, ErrMiembroNoEncontrado
		}
		return dto.MiembroResponse{}, err
	}

	return dto.NewMiembroResponse(miembro), nil
}

func (s *miembroService) Create(ctx context.Context, req dto.CrearMiembroRequest) (dto.MiembroResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.MiembroResponse{}, err
	}

	if err := s.checkReferencias(ctx, &req.SeccionID, &req.GrupoID); err != nil {
		return dto.MiembroResponse{}, err
	}

	if err := s.checkNIP(ctx, req.NIP, 0); err != nil {
		return dto.MiembroResponse{}, err
	}

	miembro := models.Miembro{
		NIP:       req.NIP,
		Nombre:    strings.TrimSpace(req.Nombre),
		Apellidos: strings.TrimSpace(req.Apellidos),
		SeccionID: req.SeccionID,
		GrupoID:   req.GrupoID,
	}

	if err := s.miembros.Create(ctx, &miembro); err != nil {
		return dto.MiembroResponse{}, err
	}

	created, err := s.miembros.GetByID(ctx, miembro.ID)
	if err != nil {
		return dto.MiembroResponse{}, err
	}

	s.logger.Info().Uint("miembro_id", created.ID).Uint("nip", created.NIP).Msg("miembro creado")
	return dto.NewMiembroResponse(created), nil
}

func (s *miembroService) Update(ctx context.Context, id uint, req dto.ActualizarMiembroRequest, monitorID uint) (dto.MiembroResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.MiembroResponse{}, err
	}

	if err := s.checkReferencias(ctx, req.SeccionID, req.GrupoID); err != nil {
		return dto.MiembroResponse{}, err
	}

	updates := make(map[string]interface{})
	if req.NIP != nil {
		if err := s.checkNIP(ctx, *req.NIP, id); err != nil {
			return dto.MiembroResponse{}, err
		}
		updates["nip"] = *req.NIP
	}
	if req.Nombre != nil {
		updates["nombre"] = strings.TrimSpace(*req.Nombre)
	}
	if req.Apellidos != nil {
		updates["apellidos"] = strings.TrimSpace(*req.Apellidos)
	}
	if req.SeccionID != nil {
		updates["seccion_id"] = *req.SeccionID
	}
	if req.GrupoID != nil {
		updates["grupo_id"] = *req.GrupoID
	}

	if len(updates) == 0 {
		return s.Get(ctx, id)
	}

	miembro, err := s.miembros.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.MiembroResponse{}, ErrMiembroNoEncontrado
		}
		return dto.MiembroResponse{}, err
	}

	// A committed edit always releases the session's edit target.
	if s.edicion != nil && monitorID != 0 {
		if err := s.edicion.Clear(ctx, monitorID); err != nil {
			s.logger.Warn().Err(err).Uint("monitor_id", monitorID).Msg("failed to clear edit context after update")
		}
	}

	s.logger.Info().Uint("miembro_id", id).Msg("miembro actualizado")
	return dto.NewMiembroResponse(miembro), nil
}

// Delete removes the member row only. Attendance records referencing it are
// kept as-is; the stored history stays queryable by range even when the
// member is gone.
func (s *miembroService) Delete(ctx context.Context, id uint) error {
	if err := s.miembros.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMiembroNoEncontrado
		}
		return err
	}

	s.logger.Info().Uint("miembro_id", id).Msg("miembro eliminado")
	return nil
}

func (s *miembroService) checkReferencias(ctx context.Context, seccionID, grupoID *uint) error {
	if seccionID != nil {
		exists, err := s.catalogo.SeccionExists(ctx, *seccionID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrSeccionInvalida
		}
	}

	if grupoID != nil {
		exists, err := s.catalogo.GrupoExists(ctx, *grupoID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrGrupoInvalido
		}
	}

	return nil
}

func (s *miembroService) checkNIP(ctx context.Context, nip uint, excludeID uint) error {
	count, err := s.miembros.CountByNIP(ctx, nip, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrNIPDuplicado
	}
	return nil
}
