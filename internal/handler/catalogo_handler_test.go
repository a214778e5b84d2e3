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

type mockCatalogoService struct {
	referencias []dto.ReferenciaResponse
	actividades []dto.ActividadResponse
	creada      dto.ActividadResponse
	err         error
}

func (m *mockCatalogoService) Secciones(_ context.Context) ([]dto.ReferenciaResponse, error) {
	return m.referencias, m.err
}

func (m *mockCatalogoService) Grupos(_ context.Context) ([]dto.ReferenciaResponse, error) {
	return m.referencias, m.err
}

func (m *mockCatalogoService) Turnos(_ context.Context) ([]dto.ReferenciaResponse, error) {
	return m.referencias, m.err
}

func (m *mockCatalogoService) Actividades(_ context.Context) ([]dto.ActividadResponse, error) {
	return m.actividades, m.err
}

func (m *mockCatalogoService) CrearActividad(_ context.Context, req dto.CrearActividadRequest) (dto.ActividadResponse, error) {
	return m.creada, m.err
}

func newCatalogoApp(svc service.CatalogoService) *fiber.App {
	app := fiber.New()
	group := app.Group("/api/v1", withMonitor(7))
	handler.NewCatalogoHandler(svc, zerolog.New(io.Discard)).Register(group)
	return app
}

func TestCatalogoHandlerSecciones(t *testing.T) {
	svc := &mockCatalogoService{referencias: []dto.ReferenciaResponse{{ID: 1, Nombre: "Infantil"}}}
	app := newCatalogoApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/secciones", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response struct {
		Data struct {
			Items []dto.ReferenciaResponse `json:"items"`
		} `json:"data"`
	}
	decodeResponse(t, resp, &response)
	require.Len(t, response.Data.Items, 1)
	require.Equal(t, "Infantil", response.Data.Items[0].Nombre)
}

func TestCatalogoHandlerActividadesEmptyMessage(t *testing.T) {
	svc := &mockCatalogoService{actividades: []dto.ActividadResponse{}}
	app := newCatalogoApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/actividades", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response struct {
		Message string `json:"message"`
	}
	decodeResponse(t, resp, &response)
	require.Equal(t, "no hay actividades configuradas", response.Message)
}

func TestCatalogoHandlerCrearActividad(t *testing.T) {
	svc := &mockCatalogoService{creada: dto.ActividadResponse{ID: 1, Nombre: "Pilates"}}
	app := newCatalogoApp(svc)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/v1/actividades", dto.CrearActividadRequest{
		Nombre: "Pilates", Descripcion: "Sala 2",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}
