package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/i474232898/flight-duration-estimator/internal/airports"
	httpapi "github.com/i474232898/flight-duration-estimator/internal/api/http"
	"github.com/i474232898/flight-duration-estimator/internal/config"
	"github.com/i474232898/flight-duration-estimator/internal/estimator"
	"github.com/i474232898/flight-duration-estimator/internal/scheduler"
	"github.com/i474232898/flight-duration-estimator/internal/store"
	"github.com/i474232898/flight-duration-estimator/internal/weather"
	"github.com/i474232898/flight-duration-estimator/internal/weather/providers"
)

func main() {
	started := time.Now()

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider and dataset calls.
	httpClient := &http.Client{
		Timeout: cfg.WeatherTimeout,
	}

	// Airport directory, built once and shared by handlers and the scheduler.
	src := airports.Source{
		File:      cfg.AirportsFile,
		URL:       cfg.AirportsURL,
		Continent: cfg.AirportsContinent,
		Client:    &http.Client{Timeout: time.Minute},
	}
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 2*time.Minute)
	directory := airports.Load(loadCtx, src)
	cancelLoad()

	// Providers in priority order; Open-Meteo needs no key.
	opts := providers.Options{Client: httpClient, MaxRetries: cfg.WeatherMaxRetries}
	provs := []weather.Provider{providers.NewOpenMeteoProvider(opts)}
	if cfg.OpenWeatherAPIKey != "" {
		provs = append(provs, providers.NewOpenWeatherProvider(opts, cfg.OpenWeatherAPIKey))
	}
	if cfg.WeatherAPIKey != "" {
		provs = append(provs, providers.NewWeatherAPIProvider(opts, cfg.WeatherAPIKey))
	}

	weatherSvc := weather.NewService(newCache(cfg), provs)
	service := estimator.NewService(directory, weatherSvc)

	// Scheduler that refreshes the dataset and warms the weather cache.
	sched := scheduler.New(scheduler.Config{
		AirportSource:   src,
		RefreshInterval: cfg.AirportsRefreshInterval,
		WarmAirports:    cfg.WarmAirports,
		WarmInterval:    cfg.WarmInterval,
	}, directory, weatherSvc)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Weather lookups can take up to two provider timeouts per request.
	app := fiber.New(fiber.Config{
		AppName:               "flight-duration-estimator",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          2*cfg.WeatherTimeout + 10*time.Second,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	// Global middleware
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())

	app.Get("/health", httpapi.Health(started, directory.Len))

	// API routes.
	httpapi.RegisterRoutes(app, service)

	go func() {
		log.Printf("INFO: listening on :%s with %d airports and %d weather providers", cfg.Port, directory.Len(), len(provs))
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}

// newCache picks the reading cache: none, Redis, or in-memory.
func newCache(cfg *config.AppConfig) weather.Cache {
	if cfg.WeatherCacheTTL <= 0 {
		log.Println("INFO: weather cache disabled")
		return nil
	}

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		rs := store.NewRedisStore(client, cfg.WeatherCacheTTL)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := rs.Ping(ctx)
		if err == nil {
			log.Printf("INFO: caching weather in redis at %s", cfg.RedisAddr)
			return rs
		}
		log.Printf("ERROR: redis unavailable at %s, using in-memory cache: %v", cfg.RedisAddr, err)
		client.Close()
	}

	return store.NewMemoryStore(cfg.WeatherCacheTTL)
}
