package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/flight-duration-estimator/internal/flight"
	"github.com/i474232898/flight-duration-estimator/internal/weather"
)

// OpenMeteoProvider implements weather.Provider for Open-Meteo. It needs no API key.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteoProvider(opts Options) *OpenMeteoProvider {
	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: "https://api.open-meteo.com/v1/forecast",
		httpCfg: opts.httpConfig(),
		circuit: newBreaker("openmeteo"),
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

func (p *OpenMeteoProvider) Fetch(ctx context.Context, pos flight.Coordinate) (weather.Observation, error) {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%f", pos.Latitude))
	values.Set("longitude", fmt.Sprintf("%f", pos.Longitude))
	values.Set("current", "temperature_2m,wind_speed_10m,wind_direction_10m")
	values.Set("timezone", "auto")

	u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, getJSON(u))
	if err != nil {
		return weather.Observation{}, err
	}
	defer resp.Body.Close()

	// wind_speed_10m is reported in km/h by default.
	var payload struct {
		UTCOffsetSeconds int `json:"utc_offset_seconds"`
		Current          *struct {
			Time          string   `json:"time"`
			Temperature   *float64 `json:"temperature_2m"`
			WindSpeed     *float64 `json:"wind_speed_10m"`
			WindDirection *float64 `json:"wind_direction_10m"`
		} `json:"current"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Observation{}, err
	}
	if payload.Current == nil {
		return weather.Observation{}, errNoCurrent
	}

	// With timezone=auto the timestamp is local time without an offset.
	ts, err := time.Parse("2006-01-02T15:04", payload.Current.Time)
	if err != nil {
		ts = time.Now().UTC()
	} else {
		ts = ts.Add(-time.Duration(payload.UTCOffsetSeconds) * time.Second)
	}

	return weather.Observation{
		ProviderName:  p.name,
		Timestamp:     ts,
		Temperature:   payload.Current.Temperature,
		WindSpeed:     payload.Current.WindSpeed,
		WindDirection: payload.Current.WindDirection,
	}, nil
}
