package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/marina-vidal/gimnasio-go-api/internal/dto"
	"github.com/marina-vidal/gimnasio-go-api/internal/models"
	"github.com/marina-vidal/gimnasio-go-api/internal/repository"
)

var (
	// ErrActividadInvalida indicates the referenced activity does not exist.
	ErrActividadInvalida = errors.New("la actividad indicada no existe")
	// ErrTurnoInvalido indicates the referenced shift does not exist.
	ErrTurnoInvalido = errors.New("el turno indicado no existe")
)

// ExportacionCSV is a rendered CSV download.
type ExportacionCSV struct {
	Nombre    string
	Contenido []byte
}

// RegistroService records attendance events and serves the windowed log.
type RegistroService interface {
	Crear(ctx context.Context, req dto.CrearRegistroRequest, monitorID uint) (dto.RegistroResponse, error)
	ListarPorRango(ctx context.Context, desde, hasta string) (dto.RegistroListResponse, error)
	ExportarCSV(ctx context.Context, desde, hasta string) (ExportacionCSV, error)
}

type registroService struct {
	registros   repository.RegistroRepository
	miembros    repository.MiembroRepository
	actividades repository.ActividadRepository
	catalogo    repository.CatalogoRepository
	validator   *validator.Validate
	sanitizer   *bluemonday.Policy
	logger      zerolog.Logger
}

// NewRegistroService constructs the attendance log service.
func NewRegistroService(registros repository.RegistroRepository, miembros repository.MiembroRepository, actividades repository.ActividadRepository, catalogo repository.CatalogoRepository, validator *validator.Validate, logger zerolog.Logger) RegistroService {
	return &registroService{
		registros:   registros,
		miembros:    miembros,
		actividades: actividades,
		catalogo:    catalogo,
		validator:   validator,
		sanitizer:   bluemonday.StrictPolicy(),
		logger:      logger.With().Str("component", "registro_service").Logger(),
	}
}

func (s *registroService) Crear(ctx context.Context, req dto.CrearRegistroRequest, monitorID uint) (dto.RegistroResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return dto.RegistroResponse{}, err
	}

	fecha, err := time.ParseInLocation(dto.FechaLayout, req.Fecha, time.UTC)
	if err != nil {
		return dto.RegistroResponse{}, ErrRangoInvalido
	}

	if _, err := s.miembros.GetByID(ctx, req.MiembroID); err != nil {
		return dto.RegistroResponse{}, ErrMiembroNoEncontrado
	}

	if ok, err := s.actividades.Exists(ctx, req.ActividadID); err != nil {
		return dto.RegistroResponse{}, err
	} else if !ok {
		return dto.RegistroResponse{}, ErrActividadInvalida
	}

	if ok, err := s.catalogo.TurnoExists(ctx, req.TurnoID); err != nil {
		return dto.RegistroResponse{}, err
	} else if !ok {
		return dto.RegistroResponse{}, ErrTurnoInvalido
	}

	registro := models.RegistroActividad{
		Fecha:         datatypes.Date(fecha),
		MiembroID:     req.MiembroID,
		ActividadID:   req.ActividadID,
		TurnoID:       req.TurnoID,
		MonitorID:     monitorID,
		Observaciones: s.sanitizer.Sanitize(strings.TrimSpace(req.Observaciones)),
	}

	if err := s.registros.Create(ctx, &registro); err != nil {
		return dto.RegistroResponse{}, err
	}

	created, err := s.registros.GetByID(ctx, registro.ID)
	if err != nil {
		return dto.RegistroResponse{}, err
	}

	s.logger.Info().
		Uint("registro_id", created.ID).
		Uint("miembro_id", created.MiembroID).
		Uint("monitor_id", monitorID).
		Msg("registro de actividad creado")

	return dto.NewRegistroResponse(created), nil
}

func (s *registroService) ListarPorRango(ctx context.Context, desde, hasta string) (dto.RegistroListResponse, error) {
	response := dto.RegistroListResponse{Items: []dto.RegistroResponse{}, Desde: desde, Hasta: hasta}

	inicio, fin, vacio, err := parseRango(desde, hasta)
	if err != nil {
		return dto.RegistroListResponse{}, err
	}
	if vacio {
		return response, nil
	}

	registros, err := s.registros.ListByRango(ctx, inicio, fin)
	if err != nil {
		return dto.RegistroListResponse{}, err
	}

	for _, registro := range registros {
		response.Items = append(response.Items, dto.NewRegistroResponse(registro))
	}
	response.Total = len(response.Items)

	return response, nil
}

// ExportarCSV renders the windowed log as a CSV download. The file always
// carries the header row, even when the window is empty.
func (s *registroService) ExportarCSV(ctx context.Context, desde, hasta string) (ExportacionCSV, error) {
	listado, err := s.ListarPorRango(ctx, desde, hasta)
	if err != nil {
		return ExportacionCSV{}, err
	}

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)

	if err := writer.Write([]string{"Fecha", "Miembro", "Actividad", "Turno", "Monitor", "Observaciones"}); err != nil {
		return ExportacionCSV{}, err
	}

	for _, item := range listado.Items {
		record := []string{item.Fecha, item.Miembro, item.Actividad, item.Turno, item.Monitor, item.Observaciones}
		if err := writer.Write(record); err != nil {
			return ExportacionCSV{}, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return ExportacionCSV{}, err
	}

	return ExportacionCSV{
		Nombre:    fmt.Sprintf("registro_actividades_%s_a_%s.csv", desde, hasta),
		Contenido: buffer.Bytes(),
	}, nil
}
