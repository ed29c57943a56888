package weather

import (
	"context"
	"time"

	"github.com/i474232898/flight-duration-estimator/internal/flight"
)

// Observation is a single provider's view of the current weather. A nil
// field means the provider did not report it.
type Observation struct {
	ProviderName string
	Timestamp    time.Time

	Temperature   *float64 // °C
	WindSpeed     *float64 // km/h
	WindDirection *float64 // degrees the wind blows from
}

// Complete reports whether every field was supplied.
func (o Observation) Complete() bool {
	return o.Temperature != nil && o.WindSpeed != nil && o.WindDirection != nil
}

// Reading converts the observation into a core reading, substituting the
// default value for each missing field independently.
func (o Observation) Reading() flight.WeatherReading {
	r := flight.DefaultWeather()
	if o.Temperature != nil {
		r.Temperature = *o.Temperature
	}
	if o.WindSpeed != nil {
		r.WindSpeed = *o.WindSpeed
	}
	if o.WindDirection != nil {
		r.WindDirection = *o.WindDirection
	}
	return r
}

// Provider abstracts a weather data source (e.g. Open-Meteo, OpenWeatherMap, WeatherAPI).
type Provider interface {
	Name() string
	Fetch(ctx context.Context, pos flight.Coordinate) (Observation, error)
}

// Cache stores complete readings keyed by a rounded coordinate.
type Cache interface {
	Get(ctx context.Context, key string) (flight.WeatherReading, error)
	Set(ctx context.Context, key string, reading flight.WeatherReading) error
}
