package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port string

	// Airport dataset.
	AirportsFile            string
	AirportsURL             string
	AirportsContinent       string
	AirportsRefreshInterval time.Duration

	// Outbound weather calls. The default is a single attempt per provider.
	WeatherTimeout    time.Duration
	WeatherMaxRetries int
	OpenWeatherAPIKey string
	WeatherAPIKey     string

	// Reading cache; a zero TTL disables it. RedisAddr switches it to Redis.
	WeatherCacheTTL time.Duration
	RedisAddr       string

	// Airports whose weather is fetched ahead of requests.
	WarmAirports []string
	WarmInterval time.Duration
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}
	var err error

	cfg.Port = getenvDefault("PORT", "8080")

	cfg.AirportsFile = getenvDefault("AIRPORTS_FILE", "data/airports.csv")
	cfg.AirportsURL = os.Getenv("AIRPORTS_URL")
	// An explicitly empty value disables the continent filter.
	cfg.AirportsContinent = getenvOptional("AIRPORTS_CONTINENT", "EU")
	if cfg.AirportsRefreshInterval, err = getenvDuration("AIRPORTS_REFRESH_INTERVAL", "24h"); err != nil {
		return nil, err
	}

	if cfg.WeatherTimeout, err = getenvDuration("WEATHER_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	cfg.WeatherMaxRetries = getenvInt("WEATHER_MAX_RETRIES", 0)
	if cfg.WeatherMaxRetries < 0 {
		return nil, fmt.Errorf("invalid WEATHER_MAX_RETRIES: must not be negative")
	}
	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.WeatherAPIKey = os.Getenv("WEATHERAPI_API_KEY")

	if cfg.WeatherCacheTTL, err = getenvDuration("WEATHER_CACHE_TTL", "5m"); err != nil {
		return nil, err
	}
	cfg.RedisAddr = os.Getenv("REDIS_ADDR")

	cfg.WarmAirports = splitList(os.Getenv("WEATHER_WARM_AIRPORTS"))
	if cfg.WarmInterval, err = getenvDuration("WEATHER_WARM_INTERVAL", "15m"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getenvOptional is like getenvDefault but keeps an explicitly empty value.
func getenvOptional(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v)
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.ToUpper(strings.TrimSpace(part)); part != "" {
			out = append(out, part)
		}
	}
	return out
}
