package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/dulc3/dashboard-api/internal/api/http"
	"github.com/dulc3/dashboard-api/internal/cache"
	"github.com/dulc3/dashboard-api/internal/config"
	"github.com/dulc3/dashboard-api/internal/feed"
	"github.com/dulc3/dashboard-api/internal/logging"
	"github.com/dulc3/dashboard-api/internal/scheduler"
	"github.com/dulc3/dashboard-api/internal/weather"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logging.Init(cfg.Environment)

	// Shared HTTP client for outbound upstream calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// One cache store per logical domain.
	weatherCache := cache.New()
	feedCache := cache.New()

	weatherSvc := weather.NewService(
		weatherCache,
		cfg,
		weather.NewOpenWeatherClient(httpClient, cfg.OpenWeatherAPIKey),
		weather.NewOpenMeteoClient(httpClient),
	)
	feedSvc := feed.NewService(feedCache, cfg, feed.NewRSSFetcher(httpClient))

	// Background feed cache re-warm.
	sched := scheduler.New(feedSvc, cfg.FeedRefreshInterval)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "dashboard-api",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowCredentials: true,
	}))

	// API routes.
	httpapi.RegisterRoutes(app, weatherSvc, feedSvc, cfg.Environment)

	go func() {
		logging.Logger.Info("listening", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logging.Logger.Error("fiber server stopped", "err", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logging.Logger.Error("error during shutdown", "err", err)
	}
}
