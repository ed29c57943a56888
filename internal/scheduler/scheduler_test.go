package scheduler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/flight-duration-estimator/internal/airports"
	"github.com/i474232898/flight-duration-estimator/internal/flight"
	"github.com/i474232898/flight-duration-estimator/internal/store"
	"github.com/i474232898/flight-duration-estimator/internal/weather"
)

type staticProvider struct{}

func (staticProvider) Name() string { return "static" }

func (staticProvider) Fetch(context.Context, flight.Coordinate) (weather.Observation, error) {
	t, ws, wd := 12.0, 20.0, 45.0
	return weather.Observation{Temperature: &t, WindSpeed: &ws, WindDirection: &wd}, nil
}

func TestStartWithoutJobs(t *testing.T) {
	s := New(Config{}, airports.NewDirectory(airports.Fallback()), weather.NewService(nil, nil))
	require.NoError(t, s.Start())
	s.Stop()
}

func TestWarmWeatherFillsCache(t *testing.T) {
	dir := airports.NewDirectory(airports.Fallback())
	cache := store.NewMemoryStore(time.Hour)
	svc := weather.NewService(cache, []weather.Provider{staticProvider{}})

	s := New(Config{WarmAirports: []string{"MAD", "bcn", "ZZZ"}, WarmInterval: time.Hour}, dir, svc)
	s.warmWeather()

	assert.Equal(t, 2, cache.Len())
	_, err := cache.Get(context.Background(), "40.47,-3.56")
	assert.NoError(t, err)
}

func TestRefreshAirports(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("iata_code,name,latitude_deg,longitude_deg,iso_country\nJFK,John F Kennedy International Airport,40.6398,-73.7789,US\n"))
	}))
	defer srv.Close()

	dir := airports.NewDirectory(airports.Fallback())
	s := New(Config{AirportSource: airports.Source{URL: srv.URL}, RefreshInterval: time.Hour}, dir, weather.NewService(nil, nil))
	s.refreshAirports()

	assert.Equal(t, 1, dir.Len())
	_, err := dir.Lookup("JFK")
	assert.NoError(t, err)
}

func TestRefreshAirportsFailureKeepsDirectory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	dir := airports.NewDirectory(airports.Fallback())
	s := New(Config{AirportSource: airports.Source{URL: srv.URL}, RefreshInterval: time.Hour}, dir, weather.NewService(nil, nil))
	s.refreshAirports()

	assert.Equal(t, len(airports.Fallback()), dir.Len())
}
