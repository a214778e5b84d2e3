package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName               string
	AppEnv                string
	AppPort               string
	DatabaseURL           string
	RedisURL              string
	JWTSecret             string
	TokenTTL              time.Duration
	StatsCacheTTL         time.Duration
	EditContextTTL        time.Duration
	DashboardRecentDays   int
	DashboardInactiveDays int
	SeedEnabled           bool
	SeedToken             string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("GIMNASIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Gestión de Gimnasio API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("token.ttl", "12h")
	v.SetDefault("stats.cache_ttl", "5m")
	v.SetDefault("edicion.ttl", "30m")
	v.SetDefault("dashboard.recent_days", 7)
	v.SetDefault("dashboard.inactive_days", 30)
	v.SetDefault("seed.enabled", false)

	tokenTTL, err := time.ParseDuration(v.GetString("token.ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid token ttl: %w", err)
	}

	statsTTL, err := time.ParseDuration(v.GetString("stats.cache_ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid stats cache ttl: %w", err)
	}

	edicionTTL, err := time.ParseDuration(v.GetString("edicion.ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid edit context ttl: %w", err)
	}

	cfg := Config{
		AppName:               v.GetString("app.name"),
		AppEnv:                v.GetString("app.env"),
		AppPort:               v.GetString("app.port"),
		DatabaseURL:           v.GetString("database.url"),
		RedisURL:              v.GetString("redis.url"),
		JWTSecret:             v.GetString("jwt.secret"),
		TokenTTL:              tokenTTL,
		StatsCacheTTL:         statsTTL,
		EditContextTTL:        edicionTTL,
		DashboardRecentDays:   v.GetInt("dashboard.recent_days"),
		DashboardInactiveDays: v.GetInt("dashboard.inactive_days"),
		SeedEnabled:           v.GetBool("seed.enabled"),
		SeedToken:             v.GetString("seed.token"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret must be provided")
	}

	if cfg.DashboardRecentDays <= 0 {
		cfg.DashboardRecentDays = 7
	}

	if cfg.DashboardInactiveDays <= 0 {
		cfg.DashboardInactiveDays = 30
	}

	return cfg, nil
}
