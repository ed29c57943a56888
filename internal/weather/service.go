package weather

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/i474232898/flight-duration-estimator/internal/flight"
	"github.com/i474232898/flight-duration-estimator/internal/store"
)

// Service resolves the current weather for a coordinate from the configured
// providers. It never fails: anything the providers cannot supply is replaced
// by the default reading.
type Service struct {
	cache     Cache
	providers []Provider
}

// NewService creates a new Service. cache may be nil to disable caching.
func NewService(cache Cache, providers []Provider) *Service {
	return &Service{
		cache:     cache,
		providers: providers,
	}
}

// Current returns the weather reading to use for pos.
func (s *Service) Current(ctx context.Context, pos flight.Coordinate) flight.WeatherReading {
	key := cacheKey(pos)

	if s.cache != nil {
		r, err := s.cache.Get(ctx, key)
		if err == nil {
			return r
		}
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("ERROR: weather cache get %s: %v", key, err)
		}
	}

	if len(s.providers) == 0 {
		log.Printf("ERROR: No providers available to fetch weather data for %s; using defaults", key)
		return flight.DefaultWeather()
	}

	var (
		wg      sync.WaitGroup
		results = make([]*Observation, len(s.providers))
	)

	for i, p := range s.providers {
		wg.Add(1)
		go func(i int, p Provider) {
			defer wg.Done()

			o, err := p.Fetch(ctx, pos)
			if err != nil {
				// Log and continue; other providers may still answer.
				log.Printf("ERROR: provider %s fetch failed for %s: %v", p.Name(), key, err)
				return
			}
			results[i] = &o
		}(i, p)
	}

	wg.Wait()

	obs := make([]Observation, 0, len(results))
	for _, o := range results {
		if o != nil {
			obs = append(obs, *o)
		}
	}

	if len(obs) == 0 {
		log.Printf("INFO: no successful provider readings for %s; using defaults", key)
		return flight.DefaultWeather()
	}

	merged := MergeObservations(obs)
	if !merged.Complete() {
		log.Printf("DEBUG: incomplete reading for %s from %s; missing fields use defaults", key, merged.ProviderName)
		return merged.Reading()
	}

	reading := merged.Reading()
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, reading); err != nil {
			log.Printf("ERROR: weather cache set %s: %v", key, err)
		}
	}
	return reading
}

func cacheKey(pos flight.Coordinate) string {
	return fmt.Sprintf("%.2f,%.2f", pos.Latitude, pos.Longitude)
}
