package flight

import "time"

// Coordinate is a geographic position in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinate lies within [-90,90] x [-180,180].
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// WeatherReading is the current weather at one endpoint of a flight.
// WindDirection is the compass bearing the wind blows from.
type WeatherReading struct {
	Temperature   float64 `json:"temperature"`    // °C
	WindSpeed     float64 `json:"wind_speed"`     // km/h
	WindDirection float64 `json:"wind_direction"` // degrees
}

// Baseline values substituted for anything a weather provider could not supply.
const (
	DefaultTemperature   = 15.0
	DefaultWindSpeed     = 10.0
	DefaultWindDirection = 180.0
)

// DefaultWeather returns the calm, moderate baseline reading.
func DefaultWeather() WeatherReading {
	return WeatherReading{
		Temperature:   DefaultTemperature,
		WindSpeed:     DefaultWindSpeed,
		WindDirection: DefaultWindDirection,
	}
}

// Snapshot identifies one endpoint of an estimate together with the weather used for it.
type Snapshot struct {
	Code    string         `json:"iata"`
	Name    string         `json:"name"`
	Country string         `json:"country"`
	Weather WeatherReading `json:"weather"`
}

// Endpoint is everything the estimator needs about one end of the flight.
type Endpoint struct {
	Snapshot
	Position Coordinate
}

// Estimate is the result of a single flight duration calculation.
type Estimate struct {
	Origin            Snapshot  `json:"origin"`
	Destination       Snapshot  `json:"destination"`
	DistanceKm        float64   `json:"distance_km"`
	DurationMinutes   float64   `json:"duration_min"`
	WindFactor        float64   `json:"wind_factor"`
	TemperatureFactor float64   `json:"temperature_factor"`
	ComputedAt        time.Time `json:"-"`
}
