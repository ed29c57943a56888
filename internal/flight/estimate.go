package flight

import (
	"math"
	"time"
)

const (
	// CruiseSpeedKmh is the average ground speed assumed for the airborne part.
	CruiseSpeedKmh = 800.0
	// GroundOpsMinutes covers taxi, boarding and deboarding.
	GroundOpsMinutes = 45.0
)

// EstimateDuration returns the weather-adjusted block time in minutes,
// rounded to two decimals. It is never below GroundOpsMinutes.
func EstimateDuration(distanceKm float64, origin, dest WeatherReading) float64 {
	base := distanceKm / CruiseSpeedKmh * 60
	minutes := base*WindEffect(origin, dest)*TemperatureEffect(origin, dest) + GroundOpsMinutes
	return round2(minutes)
}

// NewEstimate computes distance, weather factors and duration for a flight
// between two resolved endpoints.
func NewEstimate(origin, dest Endpoint, now time.Time) Estimate {
	km := Distance(origin.Position, dest.Position)
	return Estimate{
		Origin:            origin.Snapshot,
		Destination:       dest.Snapshot,
		DistanceKm:        round2(km),
		DurationMinutes:   EstimateDuration(km, origin.Weather, dest.Weather),
		WindFactor:        WindEffect(origin.Weather, dest.Weather),
		TemperatureFactor: TemperatureEffect(origin.Weather, dest.Weather),
		ComputedAt:        now,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
