package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/marina-vidal/gimnasio-go-api/internal/dto"
	"github.com/marina-vidal/gimnasio-go-api/internal/handler"
	"github.com/marina-vidal/gimnasio-go-api/internal/service"
)

type mockMiembroService struct {
	listado    dto.MiembroListResponse
	miembro    dto.MiembroResponse
	err        error
	lastFilter dto.MiembroListRequest
	deletedID  uint
}

func (m *mockMiembroService) List(_ context.Context, req dto.MiembroListRequest) (dto.MiembroListResponse, error) {
	m.lastFilter = req
	return m.listado, m.err
}

func (m *mockMiembroService) Get(_ context.Context, id uint) (dto.MiembroResponse, error) {
	return m.miembro, m.err
}

func (m *mockMiembroService) Create(_ context.Context, req dto.CrearMiembroRequest) (dto.MiembroResponse, error) {
	return m.miembro, m.err
}

func (m *mockMiembroService) Update(_ context.Context, id uint, req dto.ActualizarMiembroRequest, monitorID uint) (dto.MiembroResponse, error) {
	return m.miembro, m.err
}

func (m *mockMiembroService) Delete(_ context.Context, id uint) error {
	m.deletedID = id
	return m.err
}

func newMiembroApp(svc service.MiembroService) *fiber.App {
	app := fiber.New()
	group := app.Group("/api/v1/miembros", withMonitor(7))
	handler.NewMiembroHandler(svc, zerolog.New(io.Discard)).Register(group)
	return app
}

func TestMiembroHandlerListParsesFilters(t *testing.T) {
	svc := &mockMiembroService{listado: dto.MiembroListResponse{
		Items: []dto.MiembroResponse{{ID: 1, Nombre: "Ana"}},
		Total: 1,
	}}
	app := newMiembroApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/miembros?seccion_id=2&buscar=ana", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NotNil(t, svc.lastFilter.SeccionID)
	require.Equal(t, uint(2), *svc.lastFilter.SeccionID)
	require.Nil(t, svc.lastFilter.GrupoID)
	require.Equal(t, "ana", svc.lastFilter.Buscar)
}

func TestMiembroHandlerListEmptyMessage(t *testing.T) {
	svc := &mockMiembroService{listado: dto.MiembroListResponse{Items: []dto.MiembroResponse{}}}
	app := newMiembroApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/miembros", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response struct {
		Message string `json:"message"`
	}
	decodeResponse(t, resp, &response)
	require.Equal(t, "no hay miembros registrados", response.Message)
}

func TestMiembroHandlerListRejectsBadFilter(t *testing.T) {
	app := newMiembroApp(&mockMiembroService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/miembros?seccion_id=abc", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestMiembroHandlerCreate(t *testing.T) {
	svc := &mockMiembroService{miembro: dto.MiembroResponse{ID: 1, NIP: 100, Nombre: "Ana"}}
	app := newMiembroApp(svc)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/v1/miembros", dto.CrearMiembroRequest{
		NIP: 100, Nombre: "Ana", Apellidos: "García", SeccionID: 1, GrupoID: 1,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestMiembroHandlerCreateMapsDomainErrors(t *testing.T) {
	svc := &mockMiembroService{err: service.ErrNIPDuplicado}
	app := newMiembroApp(svc)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/v1/miembros", dto.CrearMiembroRequest{
		NIP: 100, Nombre: "Ana", Apellidos: "García", SeccionID: 1, GrupoID: 1,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestMiembroHandlerGetNotFound(t *testing.T) {
	svc := &mockMiembroService{err: service.ErrMiembroNoEncontrado}
	app := newMiembroApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/miembros/99", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestMiembroHandlerDelete(t *testing.T) {
	svc := &mockMiembroService{}
	app := newMiembroApp(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/miembros/3", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, uint(3), svc.deletedID)
}
