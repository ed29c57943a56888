package estimator

import (
	"context"
	"fmt"
	"time"

	"github.com/i474232898/flight-duration-estimator/internal/airports"
	"github.com/i474232898/flight-duration-estimator/internal/flight"
)

// AirportDirectory resolves airport codes.
type AirportDirectory interface {
	Lookup(code string) (airports.Airport, error)
	List(country string) []airports.Airport
}

// WeatherSource returns the reading to use for a position. It must not fail;
// unavailable data is expected to come back as defaults.
type WeatherSource interface {
	Current(ctx context.Context, pos flight.Coordinate) flight.WeatherReading
}

// Service resolves airports and weather, then hands plain values to the
// flight package for the actual calculation.
type Service struct {
	airports AirportDirectory
	weather  WeatherSource
	now      func() time.Time
}

// NewService creates a new Service.
func NewService(dir AirportDirectory, ws WeatherSource) *Service {
	return &Service{
		airports: dir,
		weather:  ws,
		now:      time.Now,
	}
}

// Estimate computes the flight estimate between two airport codes. It fails
// only when a code is unknown (wrapping airports.ErrNotFound).
func (s *Service) Estimate(ctx context.Context, originCode, destCode string) (flight.Estimate, error) {
	origin, err := s.airports.Lookup(originCode)
	if err != nil {
		return flight.Estimate{}, fmt.Errorf("origin %s: %w", originCode, err)
	}
	dest, err := s.airports.Lookup(destCode)
	if err != nil {
		return flight.Estimate{}, fmt.Errorf("destination %s: %w", destCode, err)
	}

	return flight.NewEstimate(
		s.endpoint(ctx, origin),
		s.endpoint(ctx, dest),
		s.now(),
	), nil
}

// AirportWeather returns an airport and its current weather.
func (s *Service) AirportWeather(ctx context.Context, code string) (airports.Airport, flight.WeatherReading, error) {
	a, err := s.airports.Lookup(code)
	if err != nil {
		return airports.Airport{}, flight.WeatherReading{}, fmt.Errorf("%s: %w", code, err)
	}
	return a, s.weather.Current(ctx, a.Position), nil
}

// Airport returns a single airport.
func (s *Service) Airport(code string) (airports.Airport, error) {
	a, err := s.airports.Lookup(code)
	if err != nil {
		return airports.Airport{}, fmt.Errorf("%s: %w", code, err)
	}
	return a, nil
}

// Airports lists known airports, optionally filtered by ISO country code.
func (s *Service) Airports(country string) []airports.Airport {
	return s.airports.List(country)
}

func (s *Service) endpoint(ctx context.Context, a airports.Airport) flight.Endpoint {
	return flight.Endpoint{
		Snapshot: flight.Snapshot{
			Code:    a.Code,
			Name:    a.Name,
			Country: a.Country,
			Weather: s.weather.Current(ctx, a.Position),
		},
		Position: a.Position,
	}
}
