package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sony/gobreaker"

	"github.com/i474232898/flight-duration-estimator/internal/flight"
	"github.com/i474232898/flight-duration-estimator/internal/weather"
)

// WeatherAPIProvider implements weather.Provider for WeatherAPI.com.
type WeatherAPIProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewWeatherAPIProvider(opts Options, apiKey string) *WeatherAPIProvider {
	return &WeatherAPIProvider{
		name:    "weatherapi",
		apiKey:  apiKey,
		baseURL: "https://api.weatherapi.com/v1/current.json",
		httpCfg: opts.httpConfig(),
		circuit: newBreaker("weatherapi"),
	}
}

func (p *WeatherAPIProvider) Name() string {
	return p.name
}

func (p *WeatherAPIProvider) Fetch(ctx context.Context, pos flight.Coordinate) (weather.Observation, error) {
	if p.apiKey == "" {
		return weather.Observation{}, fmt.Errorf("weatherapi api key is not configured")
	}

	values := url.Values{}
	values.Set("key", p.apiKey)
	// WeatherAPI accepts "lat,lon" in q.
	values.Set("q", fmt.Sprintf("%f,%f", pos.Latitude, pos.Longitude))

	u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, getJSON(u))
	if err != nil {
		return weather.Observation{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Current *struct {
			LastUpdatedEpoch int64    `json:"last_updated_epoch"`
			TempC            *float64 `json:"temp_c"`
			WindKph          *float64 `json:"wind_kph"`
			WindDegree       *float64 `json:"wind_degree"`
		} `json:"current"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Observation{}, err
	}
	if payload.Current == nil {
		return weather.Observation{}, errNoCurrent
	}

	return weather.Observation{
		ProviderName:  p.name,
		Timestamp:     unixTimestamp(payload.Current.LastUpdatedEpoch),
		Temperature:   payload.Current.TempC,
		WindSpeed:     payload.Current.WindKph,
		WindDirection: payload.Current.WindDegree,
	}, nil
}
