package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/marina-vidal/gimnasio-go-api/internal/config"
	"github.com/marina-vidal/gimnasio-go-api/internal/database"
	"github.com/marina-vidal/gimnasio-go-api/internal/handler"
	"github.com/marina-vidal/gimnasio-go-api/internal/middleware"
	"github.com/marina-vidal/gimnasio-go-api/internal/models"
	"github.com/marina-vidal/gimnasio-go-api/internal/repository"
	"github.com/marina-vidal/gimnasio-go-api/internal/router"
	"github.com/marina-vidal/gimnasio-go-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Monitor{},
		&models.Seccion{},
		&models.Grupo{},
		&models.Turno{},
		&models.Actividad{},
		&models.Miembro{},
		&models.RegistroActividad{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	validate := validator.New(validator.WithRequiredStructEnabled())

	monitorRepo := repository.NewMonitorRepository(db)
	miembroRepo := repository.NewMiembroRepository(db)
	catalogoRepo := repository.NewCatalogoRepository(db)
	actividadRepo := repository.NewActividadRepository(db)
	registroRepo := repository.NewRegistroRepository(db)
	estadisticasRepo := repository.NewEstadisticasRepository(db)

	edicionService := service.NewEditContextService(redisClient, cfg.EditContextTTL, logger)
	authService := service.NewAuthService(monitorRepo, edicionService, cfg.JWTSecret, cfg.TokenTTL, logger)
	miembroService := service.NewMiembroService(miembroRepo, catalogoRepo, edicionService, validate, logger)
	catalogoService := service.NewCatalogoService(catalogoRepo, actividadRepo, validate, logger)
	registroService := service.NewRegistroService(registroRepo, miembroRepo, actividadRepo, catalogoRepo, validate, logger)
	estadisticasService := service.NewEstadisticasService(estadisticasRepo, miembroRepo, redisClient, cfg.StatsCacheTTL, logger)
	dashboardService := service.NewDashboardService(registroService, estadisticasService, cfg.DashboardRecentDays, cfg.DashboardInactiveDays, logger)
	seedService := service.NewSeedService(db, monitorRepo, cfg.SeedEnabled, cfg.SeedToken, logger)

	authHandler := handler.NewAuthHandler(authService, logger)
	miembroHandler := handler.NewMiembroHandler(miembroService, logger)
	catalogoHandler := handler.NewCatalogoHandler(catalogoService, logger)
	registroHandler := handler.NewRegistroHandler(registroService, logger)
	estadisticasHandler := handler.NewEstadisticasHandler(estadisticasService, logger)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, logger)
	sesionHandler := handler.NewSesionHandler(edicionService, logger)
	seedHandler := handler.NewSeedHandler(seedService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:         authHandler,
		MiembroHandler:      miembroHandler,
		CatalogoHandler:     catalogoHandler,
		RegistroHandler:     registroHandler,
		EstadisticasHandler: estadisticasHandler,
		DashboardHandler:    dashboardHandler,
		SesionHandler:       sesionHandler,
		SeedHandler:         seedHandler,
		JWTMiddleware:       middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
