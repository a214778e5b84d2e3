package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/marina-vidal/gimnasio-go-api/internal/config"
	"github.com/marina-vidal/gimnasio-go-api/internal/handler"
	"github.com/marina-vidal/gimnasio-go-api/internal/middleware"
	"github.com/marina-vidal/gimnasio-go-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler         *handler.AuthHandler
	MiembroHandler      *handler.MiembroHandler
	CatalogoHandler     *handler.CatalogoHandler
	RegistroHandler     *handler.RegistroHandler
	EstadisticasHandler *handler.EstadisticasHandler
	DashboardHandler    *handler.DashboardHandler
	SesionHandler       *handler.SesionHandler
	SeedHandler         *handler.SeedHandler
	JWTMiddleware       fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.AuthHandler != nil {
		auth := api.Group("/auth")
		auth.Use(middleware.RateLimit("auth", 10, time.Minute))
		deps.AuthHandler.RegisterPublic(auth)

		protected := auth.Group("", jwtMiddleware)
		deps.AuthHandler.RegisterProtected(protected)
	}

	if deps.MiembroHandler != nil {
		miembros := api.Group("/miembros", jwtMiddleware)
		deps.MiembroHandler.Register(miembros)
	}

	// Reference catalogues: secciones, grupos, turnos and actividades.
	if deps.CatalogoHandler != nil {
		catalogo := api.Group("", jwtMiddleware)
		deps.CatalogoHandler.Register(catalogo)
	}

	if deps.RegistroHandler != nil {
		registros := api.Group("/registros", jwtMiddleware)
		deps.RegistroHandler.Register(registros)
	}

	if deps.EstadisticasHandler != nil {
		estadisticas := api.Group("/estadisticas", jwtMiddleware)
		deps.EstadisticasHandler.Register(estadisticas)
	}

	if deps.DashboardHandler != nil {
		dashboard := api.Group("/dashboard", jwtMiddleware)
		deps.DashboardHandler.Register(dashboard)
	}

	if deps.SesionHandler != nil {
		sesion := api.Group("/sesion", jwtMiddleware)
		deps.SesionHandler.Register(sesion)
	}

	if deps.SeedHandler != nil {
		seed := api.Group("/seed")
		deps.SeedHandler.Register(seed)
	}
}
