package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/marina-vidal/gimnasio-go-api/internal/models"
	"github.com/marina-vidal/gimnasio-go-api/internal/repository"
)

type fakeEstadisticasRepo struct {
	porSeccion   []repository.ConteoPorSeccion
	porGrupo     []repository.ConteoPorGrupo
	conActividad []uint
	queries      int
}

func (f *fakeEstadisticasRepo) ActividadesPorSeccion(_ context.Context, _, _ time.Time) ([]repository.ConteoPorSeccion, error) {
	f.queries++
	return append([]repository.ConteoPorSeccion(nil), f.porSeccion...), nil
}

func (f *fakeEstadisticasRepo) ActividadesPorGrupo(_ context.Context, _, _ time.Time) ([]repository.ConteoPorGrupo, error) {
	f.queries++
	return append([]repository.ConteoPorGrupo(nil), f.porGrupo...), nil
}

func (f *fakeEstadisticasRepo) MiembrosConActividad(_ context.Context, _, _ time.Time) ([]uint, error) {
	f.queries++
	return append([]uint(nil), f.conActividad...), nil
}

func TestEstadisticasServicePorSeccionCaching(t *testing.T) {
	_, client := testRedis(t)
	repo := &fakeEstadisticasRepo{
		porSeccion: []repository.ConteoPorSeccion{
			{Seccion: "Infantil", Actividad: "Natación", Total: 3},
			{Seccion: "Adultos", Actividad: "Spinning", Total: 1},
		},
	}

	svc := NewEstadisticasService(repo, &fakeMiembroRepo{}, client, time.Minute, testLogger())

	primera, err := svc.PorSeccion(context.Background(), "2026-03-01", "2026-03-31")
	require.NoError(t, err)
	require.False(t, primera.CacheHit)
	require.Len(t, primera.Items, 2)
	require.Equal(t, "Infantil", primera.Items[0].Categoria)
	require.Equal(t, int64(3), primera.Items[0].Total)

	segunda, err := svc.PorSeccion(context.Background(), "2026-03-01", "2026-03-31")
	require.NoError(t, err)
	require.True(t, segunda.CacheHit)
	require.Equal(t, primera.Items, segunda.Items)
	require.Equal(t, 1, repo.queries, "the cached window must not hit the database again")
}

func TestEstadisticasServicePorGrupoInvertedRangeIsEmpty(t *testing.T) {
	repo := &fakeEstadisticasRepo{
		porGrupo: []repository.ConteoPorGrupo{{Grupo: "Grupo A", Actividad: "Natación", Total: 5}},
	}

	svc := NewEstadisticasService(repo, &fakeMiembroRepo{}, nil, time.Minute, testLogger())

	response, err := svc.PorGrupo(context.Background(), "2026-03-31", "2026-03-01")
	require.NoError(t, err)
	require.Empty(t, response.Items)
	require.Zero(t, repo.queries, "an inverted range never queries the database")
}

func TestEstadisticasServiceRejectsMalformedDates(t *testing.T) {
	svc := NewEstadisticasService(&fakeEstadisticasRepo{}, &fakeMiembroRepo{}, nil, time.Minute, testLogger())

	_, err := svc.PorSeccion(context.Background(), "31/03/2026", "2026-03-31")
	require.ErrorIs(t, err, ErrRangoInvalido)

	_, err = svc.MiembrosSinActividad(context.Background(), "2026-03-01", "not-a-date")
	require.ErrorIs(t, err, ErrRangoInvalido)
}

func TestEstadisticasServiceMiembrosSinActividadSetDifference(t *testing.T) {
	repo := &fakeEstadisticasRepo{conActividad: []uint{1, 3}}
	miembros := &fakeMiembroRepo{
		miembros: []models.Miembro{
			{ID: 1, NIP: 10, Nombre: "Ana", Apellidos: "García", SeccionID: 1, GrupoID: 1},
			{ID: 2, NIP: 20, Nombre: "Bruno", Apellidos: "Santos", SeccionID: 1, GrupoID: 1},
			{ID: 3, NIP: 30, Nombre: "Carla", Apellidos: "Ruiz", SeccionID: 2, GrupoID: 2},
			{ID: 4, NIP: 40, Nombre: "David", Apellidos: "Mora", SeccionID: 2, GrupoID: 2},
		},
		nextID: 4,
	}

	svc := NewEstadisticasService(repo, miembros, nil, time.Minute, testLogger())

	response, err := svc.MiembrosSinActividad(context.Background(), "2026-03-01", "2026-03-31")
	require.NoError(t, err)
	require.Equal(t, 2, response.Total)

	ids := []uint{response.Items[0].ID, response.Items[1].ID}
	require.ElementsMatch(t, []uint{2, 4}, ids)
}

func TestEstadisticasServiceSurvivesCacheOutage(t *testing.T) {
	server, client := testRedis(t)
	repo := &fakeEstadisticasRepo{
		porSeccion: []repository.ConteoPorSeccion{{Seccion: "Infantil", Actividad: "Natación", Total: 1}},
	}

	svc := NewEstadisticasService(repo, &fakeMiembroRepo{}, client, time.Minute, testLogger())
	server.Close()

	response, err := svc.PorSeccion(context.Background(), "2026-03-01", "2026-03-31")
	require.NoError(t, err, "cache failures must not surface to the caller")
	require.Len(t, response.Items, 1)
}
