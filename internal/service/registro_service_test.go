package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/marina-vidal/gimnasio-go-api/internal/dto"
	"github.com/marina-vidal/gimnasio-go-api/internal/models"
)

type fakeActividadRepo struct {
	actividades []models.Actividad
	nextID      uint
}

func (f *fakeActividadRepo) List(_ context.Context) ([]models.Actividad, error) {
	return f.actividades, nil
}

func (f *fakeActividadRepo) Create(_ context.Context, actividad *models.Actividad) error {
	f.nextID++
	actividad.ID = f.nextID
	f.actividades = append(f.actividades, *actividad)
	return nil
}

func (f *fakeActividadRepo) Exists(_ context.Context, id uint) (bool, error) {
	for _, actividad := range f.actividades {
		if actividad.ID == id {
			return true, nil
		}
	}
	return false, nil
}

type fakeRegistroRepo struct {
	registros []models.RegistroActividad
	nextID    uint
	decorar   func(*models.RegistroActividad)
}

func (f *fakeRegistroRepo) Create(_ context.Context, registro *models.RegistroActividad) error {
	f.nextID++
	registro.ID = f.nextID
	if f.decorar != nil {
		f.decorar(registro)
	}
	f.registros = append(f.registros, *registro)
	return nil
}

func (f *fakeRegistroRepo) GetByID(_ context.Context, id uint) (models.RegistroActividad, error) {
	for _, registro := range f.registros {
		if registro.ID == id {
			return registro, nil
		}
	}
	return models.RegistroActividad{}, gorm.ErrRecordNotFound
}

func (f *fakeRegistroRepo) ListByRango(_ context.Context, desde, hasta time.Time) ([]models.RegistroActividad, error) {
	result := make([]models.RegistroActividad, 0, len(f.registros))
	for _, registro := range f.registros {
		fecha := time.Time(registro.Fecha)
		if fecha.Before(desde) || fecha.After(hasta) {
			continue
		}
		result = append(result, registro)
	}
	return result, nil
}

func newRegistroServiceFixture(t *testing.T) (RegistroService, *fakeRegistroRepo) {
	t.Helper()

	miembro := models.Miembro{ID: 1, NIP: 10, Nombre: "Ana", Apellidos: "García", SeccionID: 1, GrupoID: 1}
	monitor := models.Monitor{ID: 7, Email: "marina@gimnasio.local", Nombre: "Marina", Apellidos: "Vidal"}

	registros := &fakeRegistroRepo{decorar: func(registro *models.RegistroActividad) {
		registro.Miembro = miembro
		registro.Actividad = models.Actividad{ID: registro.ActividadID, Nombre: "Natación"}
		registro.Turno = models.Turno{ID: registro.TurnoID, Nombre: "Mañana"}
		registro.Monitor = monitor
	}}

	miembros := &fakeMiembroRepo{miembros: []models.Miembro{miembro}, nextID: 1}
	actividades := &fakeActividadRepo{actividades: []models.Actividad{{ID: 1, Nombre: "Natación"}}, nextID: 1}
	validate := validator.New(validator.WithRequiredStructEnabled())

	svc := NewRegistroService(registros, miembros, actividades, newFakeCatalogoRepo(), validate, testLogger())
	return svc, registros
}

func TestRegistroServiceCrearValidatesReferences(t *testing.T) {
	svc, _ := newRegistroServiceFixture(t)

	base := dto.CrearRegistroRequest{Fecha: "2026-03-10", MiembroID: 1, ActividadID: 1, TurnoID: 1}

	malMiembro := base
	malMiembro.MiembroID = 99
	_, err := svc.Crear(context.Background(), malMiembro, 7)
	require.ErrorIs(t, err, ErrMiembroNoEncontrado)

	malActividad := base
	malActividad.ActividadID = 99
	_, err = svc.Crear(context.Background(), malActividad, 7)
	require.ErrorIs(t, err, ErrActividadInvalida)

	malTurno := base
	malTurno.TurnoID = 99
	_, err = svc.Crear(context.Background(), malTurno, 7)
	require.ErrorIs(t, err, ErrTurnoInvalido)

	malFecha := base
	malFecha.Fecha = "10/03/2026"
	_, err = svc.Crear(context.Background(), malFecha, 7)
	require.Error(t, err)
}

func TestRegistroServiceCrearThenListarRoundtrip(t *testing.T) {
	svc, _ := newRegistroServiceFixture(t)

	creado, err := svc.Crear(context.Background(), dto.CrearRegistroRequest{
		Fecha:         "2026-03-10",
		MiembroID:     1,
		ActividadID:   1,
		TurnoID:       1,
		Observaciones: "primera sesión",
	}, 7)
	require.NoError(t, err)
	require.Equal(t, "2026-03-10", creado.Fecha)
	require.Equal(t, "Ana García", creado.Miembro)
	require.Equal(t, "Marina Vidal", creado.Monitor)

	listado, err := svc.ListarPorRango(context.Background(), "2026-03-01", "2026-03-31")
	require.NoError(t, err)
	require.Equal(t, 1, listado.Total)
	require.Equal(t, creado.ID, listado.Items[0].ID)

	vacio, err := svc.ListarPorRango(context.Background(), "2026-04-01", "2026-04-30")
	require.NoError(t, err)
	require.Zero(t, vacio.Total)
}

func TestRegistroServiceListarInvertedRangeIsEmpty(t *testing.T) {
	svc, _ := newRegistroServiceFixture(t)

	_, err := svc.Crear(context.Background(), dto.CrearRegistroRequest{
		Fecha: "2026-03-10", MiembroID: 1, ActividadID: 1, TurnoID: 1,
	}, 7)
	require.NoError(t, err)

	listado, err := svc.ListarPorRango(context.Background(), "2026-03-31", "2026-03-01")
	require.NoError(t, err)
	require.Zero(t, listado.Total)
	require.Empty(t, listado.Items)
}

func TestRegistroServiceExportarCSV(t *testing.T) {
	svc, _ := newRegistroServiceFixture(t)

	for _, fecha := range []string{"2026-03-10", "2026-03-11"} {
		_, err := svc.Crear(context.Background(), dto.CrearRegistroRequest{
			Fecha: fecha, MiembroID: 1, ActividadID: 1, TurnoID: 1, Observaciones: "ok",
		}, 7)
		require.NoError(t, err)
	}

	exportacion, err := svc.ExportarCSV(context.Background(), "2026-03-01", "2026-03-31")
	require.NoError(t, err)
	require.Equal(t, "registro_actividades_2026-03-01_a_2026-03-31.csv", exportacion.Nombre)

	lineas := strings.Split(strings.TrimRight(string(exportacion.Contenido), "\n"), "\n")
	require.Len(t, lineas, 3, "header plus one line per record")
	require.Equal(t, "Fecha,Miembro,Actividad,Turno,Monitor,Observaciones", lineas[0])
	require.Contains(t, lineas[1], "2026-03-10")
	require.Contains(t, lineas[1], "Ana García")
}

func TestRegistroServiceExportarCSVEmptyWindowKeepsHeader(t *testing.T) {
	svc, _ := newRegistroServiceFixture(t)

	exportacion, err := svc.ExportarCSV(context.Background(), "2026-01-01", "2026-01-31")
	require.NoError(t, err)

	lineas := strings.Split(strings.TrimRight(string(exportacion.Contenido), "\n"), "\n")
	require.Len(t, lineas, 1)
	require.Equal(t, "Fecha,Miembro,Actividad,Turno,Monitor,Observaciones", lineas[0])
}
