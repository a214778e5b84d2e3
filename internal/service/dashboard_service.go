package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/marina-vidal/gimnasio-go-api/internal/dto"
)

// DashboardService composes the landing-page payload: the recent activity
// log plus the default-window aggregations.
type DashboardService interface {
	Resumen(ctx context.Context) (dto.DashboardResponse, error)
}

type dashboardService struct {
	registros     RegistroService
	estadisticas  EstadisticasService
	recentDays    int
	inactiveDays  int
	logger        zerolog.Logger
	now           func() time.Time
}

// NewDashboardService constructs the dashboard aggregator. recentDays and
// inactiveDays are the lookback windows for the two panels (7 and 30 in the
// default configuration).
func NewDashboardService(registros RegistroService, estadisticas EstadisticasService, recentDays, inactiveDays int, logger zerolog.Logger) DashboardService {
	return &dashboardService{
		registros:    registros,
		estadisticas: estadisticas,
		recentDays:   recentDays,
		inactiveDays: inactiveDays,
		logger:       logger.With().Str("component", "dashboard_service").Logger(),
		now:          time.Now,
	}
}

func (s *dashboardService) Resumen(ctx context.Context) (dto.DashboardResponse, error) {
	now := s.now().UTC()
	hasta := now.Format(dto.FechaLayout)
	desdeReciente := now.AddDate(0, 0, -s.recentDays).Format(dto.FechaLayout)
	desdeInactivo := now.AddDate(0, 0, -s.inactiveDays).Format(dto.FechaLayout)

	recientes, err := s.registros.ListarPorRango(ctx, desdeReciente, hasta)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	sinActividad, err := s.estadisticas.MiembrosSinActividad(ctx, desdeInactivo, hasta)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	porSeccion, err := s.estadisticas.PorSeccion(ctx, desdeInactivo, hasta)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	porGrupo, err := s.estadisticas.PorGrupo(ctx, desdeInactivo, hasta)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	return dto.DashboardResponse{
		Recientes:     recientes.Items,
		SinActividad:  sinActividad.Items,
		PorSeccion:    porSeccion.Items,
		PorGrupo:      porGrupo.Items,
		DesdeReciente: desdeReciente,
		DesdeInactivo: desdeInactivo,
		Hasta:         hasta,
		GeneratedAt:   now,
	}, nil
}
