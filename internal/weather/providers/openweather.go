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

// OpenWeatherProvider implements weather.Provider for OpenWeatherMap.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenWeatherProvider(opts Options, apiKey string) *OpenWeatherProvider {
	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5/weather",
		httpCfg: opts.httpConfig(),
		circuit: newBreaker("openweather"),
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

func (p *OpenWeatherProvider) Fetch(ctx context.Context, pos flight.Coordinate) (weather.Observation, error) {
	if p.apiKey == "" {
		return weather.Observation{}, fmt.Errorf("openweather api key is not configured")
	}

	values := url.Values{}
	values.Set("appid", p.apiKey)
	values.Set("units", "metric")
	values.Set("lat", fmt.Sprintf("%f", pos.Latitude))
	values.Set("lon", fmt.Sprintf("%f", pos.Longitude))

	u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, getJSON(u))
	if err != nil {
		return weather.Observation{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Dt   int64 `json:"dt"`
		Main *struct {
			Temp *float64 `json:"temp"`
		} `json:"main"`
		Wind *struct {
			Speed *float64 `json:"speed"`
			Deg   *float64 `json:"deg"`
		} `json:"wind"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Observation{}, err
	}
	if payload.Main == nil && payload.Wind == nil {
		return weather.Observation{}, errNoCurrent
	}

	obs := weather.Observation{
		ProviderName: p.name,
		Timestamp:    unixTimestamp(payload.Dt),
	}
	if payload.Main != nil {
		obs.Temperature = payload.Main.Temp
	}
	if payload.Wind != nil {
		// metric units report wind in m/s
		if payload.Wind.Speed != nil {
			kmh := *payload.Wind.Speed * 3.6
			obs.WindSpeed = &kmh
		}
		obs.WindDirection = payload.Wind.Deg
	}
	return obs, nil
}
