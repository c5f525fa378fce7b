package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// OpenWeatherMap credential. When empty the weather service never calls
	// the provider and serves mock data instead.
	OpenWeatherAPIKey string

	// Cache freshness windows.
	WeatherCacheTTL time.Duration
	FeedCacheTTL    time.Duration

	// FeedRefreshInterval controls the background cache re-warm job.
	// Zero or negative disables it.
	FeedRefreshInterval time.Duration

	// Timeout applied to every outbound upstream call.
	HTTPTimeout time.Duration

	// Origins allowed by the CORS middleware, comma-separated.
	CORSOrigins string

	// Environment name, surfaced by the health endpoint only.
	Environment string

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.Environment = getenvDefault("ENVIRONMENT", "development")
	cfg.Port = getenvDefault("PORT", "8080")

	var err error
	if cfg.WeatherCacheTTL, err = getenvDuration("WEATHER_CACHE_TTL", "10m"); err != nil {
		return nil, err
	}
	if cfg.FeedCacheTTL, err = getenvDuration("FEED_CACHE_TTL", "15m"); err != nil {
		return nil, err
	}
	if cfg.FeedRefreshInterval, err = getenvDuration("FEED_REFRESH_INTERVAL", "15m"); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}

	cfg.CORSOrigins = getenvDefault("CORS_ORIGINS",
		"http://localhost:3000,https://command.dulc3.tech,http://localhost:8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	v := getenvDefault(key, def)
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
