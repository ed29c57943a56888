package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/flight-duration-estimator/internal/airports"
	"github.com/i474232898/flight-duration-estimator/internal/weather"
)

// Config selects which background jobs run and how often.
type Config struct {
	// AirportSource is re-downloaded every RefreshInterval when it has a URL.
	AirportSource   airports.Source
	RefreshInterval time.Duration

	// WarmAirports have their weather fetched every WarmInterval so that
	// estimates for busy routes hit the cache.
	WarmAirports []string
	WarmInterval time.Duration
}

// Scheduler runs the periodic dataset refresh and weather warm-up jobs.
type Scheduler struct {
	scheduler *gocron.Scheduler
	directory *airports.Directory
	weather   *weather.Service
	cfg       Config
}

// New creates a new Scheduler.
func New(cfg Config, directory *airports.Directory, service *weather.Service) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		directory: directory,
		weather:   service,
		cfg:       cfg,
	}
}

// Start schedules the configured jobs and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	jobs := 0

	if s.cfg.AirportSource.URL != "" && s.cfg.RefreshInterval > 0 {
		// The directory was just loaded; wait a full interval before refreshing.
		_, err := s.scheduler.Every(s.cfg.RefreshInterval).WaitForSchedule().Do(s.refreshAirports)
		if err != nil {
			return err
		}
		jobs++
	}

	if len(s.cfg.WarmAirports) > 0 && s.cfg.WarmInterval > 0 {
		_, err := s.scheduler.Every(s.cfg.WarmInterval).Do(s.warmWeather)
		if err != nil {
			return err
		}
		jobs++
	}

	if jobs == 0 {
		log.Println("scheduler: no jobs configured; nothing to schedule")
		return nil
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

func (s *Scheduler) refreshAirports() {
	log.Println("scheduler: refreshing airport dataset")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := airports.Refresh(ctx, s.cfg.AirportSource, s.directory); err != nil {
		log.Printf("scheduler: airport refresh failed, keeping %d airports: %v", s.directory.Len(), err)
	}
}

func (s *Scheduler) warmWeather() {
	log.Println("scheduler: running weather warm-up job")

	var wg sync.WaitGroup
	for _, code := range s.cfg.WarmAirports {
		a, err := s.directory.Lookup(code)
		if err != nil {
			log.Printf("scheduler: skipping warm-up for %s: %v", code, err)
			continue
		}

		wg.Add(1)
		go func(a airports.Airport) {
			defer wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			s.weather.Current(ctx, a.Position)
		}(a)
	}
	wg.Wait()
	log.Println("scheduler: completed weather warm-up job")
}
