package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/marina-vidal/gimnasio-go-api/internal/dto"
)

func TestCatalogoServiceListsReferenceTables(t *testing.T) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewCatalogoService(newFakeCatalogoRepo(), &fakeActividadRepo{}, validate, testLogger())

	secciones, err := svc.Secciones(context.Background())
	require.NoError(t, err)
	require.Len(t, secciones, 2)
	require.Equal(t, "Infantil", secciones[0].Nombre)

	grupos, err := svc.Grupos(context.Background())
	require.NoError(t, err)
	require.Len(t, grupos, 2)

	turnos, err := svc.Turnos(context.Background())
	require.NoError(t, err)
	require.Len(t, turnos, 1)
}

func TestCatalogoServiceCrearActividadSanitizes(t *testing.T) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	actividades := &fakeActividadRepo{}
	svc := NewCatalogoService(newFakeCatalogoRepo(), actividades, validate, testLogger())

	creada, err := svc.CrearActividad(context.Background(), dto.CrearActividadRequest{
		Nombre:      " Pilates ",
		Descripcion: "Sala 2 <script>alert(1)</script>",
	})
	require.NoError(t, err)
	require.Equal(t, "Pilates", creada.Nombre)
	require.NotContains(t, creada.Descripcion, "<script>")

	listado, err := svc.Actividades(context.Background())
	require.NoError(t, err)
	require.Len(t, listado, 1)
}

func TestCatalogoServiceCrearActividadRequiresName(t *testing.T) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewCatalogoService(newFakeCatalogoRepo(), &fakeActividadRepo{}, validate, testLogger())

	_, err := svc.CrearActividad(context.Background(), dto.CrearActividadRequest{Descripcion: "sin nombre"})
	require.Error(t, err)
}
