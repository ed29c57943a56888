package estimator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/flight-duration-estimator/internal/airports"
	"github.com/i474232898/flight-duration-estimator/internal/flight"
)

type fixedWeather map[flight.Coordinate]flight.WeatherReading

func (f fixedWeather) Current(_ context.Context, pos flight.Coordinate) flight.WeatherReading {
	if r, ok := f[pos]; ok {
		return r
	}
	return flight.DefaultWeather()
}

func newTestService(ws WeatherSource) *Service {
	s := NewService(airports.NewDirectory(airports.Fallback()), ws)
	s.now = func() time.Time { return time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC) }
	return s
}

func TestEstimateDefaultWeather(t *testing.T) {
	s := newTestService(fixedWeather{})

	est, err := s.Estimate(context.Background(), "mad", "BCN")
	require.NoError(t, err)

	assert.Equal(t, "MAD", est.Origin.Code)
	assert.Equal(t, "ES", est.Origin.Country)
	assert.Equal(t, "BCN", est.Destination.Code)
	assert.Equal(t, flight.DefaultWeather(), est.Origin.Weather)
	assert.InDelta(t, 483.8, est.DistanceKm, 1.0)
	assert.InDelta(t, 81.29, est.DurationMinutes, 0.05)
	assert.Equal(t, time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC), est.ComputedAt)
}

func TestEstimateUsesEndpointWeather(t *testing.T) {
	dir := airports.NewDirectory(airports.Fallback())
	lhr, _ := dir.Lookup("LHR")
	cdg, _ := dir.Lookup("CDG")

	ws := fixedWeather{
		lhr.Position: {Temperature: 20, WindSpeed: 20, WindDirection: 180},
		cdg.Position: {Temperature: 24, WindSpeed: 20, WindDirection: 200},
	}
	s := newTestService(ws)

	est, err := s.Estimate(context.Background(), "LHR", "CDG")
	require.NoError(t, err)

	assert.InDelta(t, 1.04, est.WindFactor, 1e-9)
	assert.Equal(t, 1.02, est.TemperatureFactor)
	km := flight.Distance(lhr.Position, cdg.Position)
	assert.Equal(t, flight.EstimateDuration(km, ws[lhr.Position], ws[cdg.Position]), est.DurationMinutes)
	assert.Equal(t, 24.0, est.Destination.Weather.Temperature)
}

func TestEstimateUnknownAirport(t *testing.T) {
	s := newTestService(fixedWeather{})

	_, err := s.Estimate(context.Background(), "XXX", "BCN")
	require.ErrorIs(t, err, airports.ErrNotFound)
	assert.Contains(t, err.Error(), "origin XXX")

	_, err = s.Estimate(context.Background(), "MAD", "YYY")
	require.ErrorIs(t, err, airports.ErrNotFound)
	assert.Contains(t, err.Error(), "destination YYY")
}

func TestAirportWeather(t *testing.T) {
	s := newTestService(fixedWeather{})

	a, w, err := s.AirportWeather(context.Background(), "ams")
	require.NoError(t, err)
	assert.Equal(t, "AMS", a.Code)
	assert.Equal(t, flight.DefaultWeather(), w)

	_, _, err = s.AirportWeather(context.Background(), "QQQ")
	assert.ErrorIs(t, err, airports.ErrNotFound)
}
