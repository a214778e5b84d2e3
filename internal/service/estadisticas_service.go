package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/marina-vidal/gimnasio-go-api/internal/dto"
	"github.com/marina-vidal/gimnasio-go-api/internal/repository"
)

const estadisticasTracer = "github.com/marina-vidal/gimnasio-go-api/internal/service/estadisticas"

// EstadisticasService runs the windowed aggregation queries. Results are
// cached per range with a short TTL; the cache is best-effort and failures
// never surface to the caller.
type EstadisticasService interface {
	PorSeccion(ctx context.Context, desde, hasta string) (dto.EstadisticaResponse, error)
	PorGrupo(ctx context.Context, desde, hasta string) (dto.EstadisticaResponse, error)
	MiembrosSinActividad(ctx context.Context, desde, hasta string) (dto.MiembrosSinActividadResponse, error)
}

type estadisticasService struct {
	estadisticas repository.EstadisticasRepository
	miembros     repository.MiembroRepository
	cache        *redis.Client
	cacheTTL     time.Duration
	logger       zerolog.Logger
}

// NewEstadisticasService constructs the statistics service.
func NewEstadisticasService(estadisticas repository.EstadisticasRepository, miembros repository.MiembroRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) EstadisticasService {
	return &estadisticasService{
		estadisticas: estadisticas,
		miembros:     miembros,
		cache:        cache,
		cacheTTL:     ttl,
		logger:       logger.With().Str("component", "estadisticas_service").Logger(),
	}
}

func (s *estadisticasService) PorSeccion(ctx context.Context, desde, hasta string) (dto.EstadisticaResponse, error) {
	response := dto.EstadisticaResponse{Items: []dto.ConteoResponse{}, Desde: desde, Hasta: hasta}

	inicio, fin, vacio, err := parseRango(desde, hasta)
	if err != nil {
		return dto.EstadisticaResponse{}, err
	}
	if vacio {
		return response, nil
	}

	cacheKey := fmt.Sprintf("estadisticas:seccion:%s:%s", desde, hasta)
	if ok := s.fromCache(ctx, cacheKey, &response); ok {
		response.CacheHit = true
		return response, nil
	}

	ctx, span := otel.Tracer(estadisticasTracer).Start(ctx, "estadisticas.por_seccion")
	span.SetAttributes(attribute.String("rango.desde", desde), attribute.String("rango.hasta", hasta))
	defer span.End()

	conteos, err := s.estadisticas.ActividadesPorSeccion(ctx, inicio, fin)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "actividades_por_seccion_failed")
		return dto.EstadisticaResponse{}, err
	}

	for _, conteo := range conteos {
		response.Items = append(response.Items, dto.NewConteoPorSeccionResponse(conteo))
	}
	span.SetAttributes(attribute.Int("estadisticas.grupos", len(response.Items)))

	s.toCache(ctx, cacheKey, response)
	return response, nil
}

func (s *estadisticasService) PorGrupo(ctx context.Context, desde, hasta string) (dto.EstadisticaResponse, error) {
	response := dto.EstadisticaResponse{Items: []dto.ConteoResponse{}, Desde: desde, Hasta: hasta}

	inicio, fin, vacio, err := parseRango(desde, hasta)
	if err != nil {
		return dto.EstadisticaResponse{}, err
	}
	if vacio {
		return response, nil
	}

	cacheKey := fmt.Sprintf("estadisticas:grupo:%s:%s", desde, hasta)
	if ok := s.fromCache(ctx, cacheKey, &response); ok {
		response.CacheHit = true
		return response, nil
	}

	ctx, span := otel.Tracer(estadisticasTracer).Start(ctx, "estadisticas.por_grupo")
	span.SetAttributes(attribute.String("rango.desde", desde), attribute.String("rango.hasta", hasta))
	defer span.End()

	conteos, err := s.estadisticas.ActividadesPorGrupo(ctx, inicio, fin)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "actividades_por_grupo_failed")
		return dto.EstadisticaResponse{}, err
	}

	for _, conteo := range conteos {
		response.Items = append(response.Items, dto.NewConteoPorGrupoResponse(conteo))
	}
	span.SetAttributes(attribute.Int("estadisticas.grupos", len(response.Items)))

	s.toCache(ctx, cacheKey, response)
	return response, nil
}

// MiembrosSinActividad is the set difference between all members and the
// members with at least one log record inside the window.
func (s *estadisticasService) MiembrosSinActividad(ctx context.Context, desde, hasta string) (dto.MiembrosSinActividadResponse, error) {
	response := dto.MiembrosSinActividadResponse{Items: []dto.MiembroSinActividadResponse{}, Desde: desde, Hasta: hasta}

	inicio, fin, vacio, err := parseRango(desde, hasta)
	if err != nil {
		return dto.MiembrosSinActividadResponse{}, err
	}
	if vacio {
		return response, nil
	}

	cacheKey := fmt.Sprintf("estadisticas:sin-actividad:%s:%s", desde, hasta)
	if ok := s.fromCache(ctx, cacheKey, &response); ok {
		response.CacheHit = true
		return response, nil
	}

	ctx, span := otel.Tracer(estadisticasTracer).Start(ctx, "estadisticas.miembros_sin_actividad")
	span.SetAttributes(attribute.String("rango.desde", desde), attribute.String("rango.hasta", hasta))
	defer span.End()

	activos, err := s.estadisticas.MiembrosConActividad(ctx, inicio, fin)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "miembros_con_actividad_failed")
		return dto.MiembrosSinActividadResponse{}, err
	}

	conActividad := make(map[uint]struct{}, len(activos))
	for _, id := range activos {
		conActividad[id] = struct{}{}
	}

	todos, err := s.miembros.List(ctx, repository.MiembroFilter{})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "listar_miembros_failed")
		return dto.MiembrosSinActividadResponse{}, err
	}

	for _, miembro := range todos {
		if _, ok := conActividad[miembro.ID]; ok {
			continue
		}
		response.Items = append(response.Items, dto.NewMiembroSinActividadResponse(miembro))
	}
	response.Total = len(response.Items)
	span.SetAttributes(attribute.Int("estadisticas.sin_actividad", response.Total))

	s.toCache(ctx, cacheKey, response)
	return response, nil
}

func (s *estadisticasService) fromCache(ctx context.Context, key string, target interface{}) bool {
	if s.cache == nil {
		return false
	}

	cached, err := s.cache.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("failed to read statistics cache")
		}
		return false
	}

	return json.Unmarshal([]byte(cached), target) == nil
}

func (s *estadisticasService) toCache(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := s.cache.Set(ctx, key, payload, s.cacheTTL).Err(); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("failed to store statistics cache")
	}
}
