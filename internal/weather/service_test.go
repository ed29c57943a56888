package weather

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/flight-duration-estimator/internal/flight"
	"github.com/i474232898/flight-duration-estimator/internal/store"
)

type fakeProvider struct {
	name  string
	obs   Observation
	err   error
	delay time.Duration
	calls int32
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Fetch(ctx context.Context, _ flight.Coordinate) (Observation, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.err != nil {
		return Observation{}, f.err
	}
	o := f.obs
	o.ProviderName = f.name
	return o, nil
}

func ptr(v float64) *float64 { return &v }

var barcelona = flight.Coordinate{Latitude: 41.2974, Longitude: 2.0833}

func TestCurrentNoProvidersUsesDefaults(t *testing.T) {
	svc := NewService(nil, nil)
	assert.Equal(t, flight.DefaultWeather(), svc.Current(context.Background(), barcelona))
}

func TestCurrentAllProvidersFail(t *testing.T) {
	cache := store.NewMemoryStore(time.Minute)
	p := &fakeProvider{name: "down", err: errors.New("timeout")}
	svc := NewService(cache, []Provider{p})

	assert.Equal(t, flight.DefaultWeather(), svc.Current(context.Background(), barcelona))
	assert.Equal(t, 0, cache.Len(), "defaults are not cached")
}

func TestCurrentMergesInProviderOrder(t *testing.T) {
	// the first provider is slower, but its fields still take priority
	first := &fakeProvider{name: "a", delay: 20 * time.Millisecond, obs: Observation{Temperature: ptr(21)}}
	second := &fakeProvider{name: "b", obs: Observation{Temperature: ptr(30), WindSpeed: ptr(12), WindDirection: ptr(90)}}
	svc := NewService(nil, []Provider{first, second})

	got := svc.Current(context.Background(), barcelona)
	assert.Equal(t, flight.WeatherReading{Temperature: 21, WindSpeed: 12, WindDirection: 90}, got)
}

func TestCurrentSubstitutesMissingFieldsIndependently(t *testing.T) {
	p := &fakeProvider{name: "partial", obs: Observation{WindSpeed: ptr(33)}}
	cache := store.NewMemoryStore(time.Minute)
	svc := NewService(cache, []Provider{p})

	got := svc.Current(context.Background(), barcelona)
	assert.Equal(t, flight.WeatherReading{Temperature: 15, WindSpeed: 33, WindDirection: 180}, got)
	assert.Equal(t, 0, cache.Len(), "incomplete readings are not cached")
}

func TestCurrentCachesCompleteReadings(t *testing.T) {
	p := &fakeProvider{name: "ok", obs: Observation{Temperature: ptr(8), WindSpeed: ptr(27), WindDirection: ptr(200)}}
	cache := store.NewMemoryStore(time.Minute)
	svc := NewService(cache, []Provider{p})
	ctx := context.Background()

	first := svc.Current(ctx, barcelona)
	second := svc.Current(ctx, flight.Coordinate{Latitude: 41.2999, Longitude: 2.0811})

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&p.calls))

	cached, err := cache.Get(ctx, "41.30,2.08")
	require.NoError(t, err)
	assert.Equal(t, first, cached)
}

func TestMergeObservations(t *testing.T) {
	t1 := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(10 * time.Minute)

	merged := MergeObservations([]Observation{
		{ProviderName: "a", Timestamp: t1, WindDirection: ptr(5)},
		{ProviderName: "b", Timestamp: t2, Temperature: ptr(-3), WindDirection: ptr(355)},
	})

	assert.Equal(t, "a,b", merged.ProviderName)
	assert.Equal(t, t2, merged.Timestamp)
	assert.Equal(t, -3.0, *merged.Temperature)
	assert.Equal(t, 5.0, *merged.WindDirection)
	assert.Nil(t, merged.WindSpeed)
	assert.False(t, merged.Complete())
}

func TestCurrentLogsProviderFailures(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	svc := NewService(nil, []Provider{&fakeProvider{name: "down", err: errors.New("timeout")}})
	svc.Current(context.Background(), barcelona)

	out := buf.String()
	assert.Contains(t, out, "ERROR: provider down fetch failed for 41.30,2.08: timeout")
	assert.Contains(t, out, "INFO: no successful provider readings for 41.30,2.08")
}
