package flight

import "math"

// WindEffect returns the multiplicative slowdown caused by wind at both airports.
//
// The direction difference is a plain absolute difference of the two bearings
// and is not wrapped around 0°/360°, so 5° against 355° counts as 350° apart.
func WindEffect(origin, dest WeatherReading) float64 {
	avg := (origin.WindSpeed + dest.WindSpeed) / 2

	var factor float64
	switch {
	case avg <= 10:
		factor = 1.0
	case avg <= 25:
		factor = 1 + avg*0.002
	case avg <= 40:
		factor = 1 + avg*0.003
	default:
		factor = 1 + avg*0.004
	}

	if math.Abs(origin.WindDirection-dest.WindDirection) > 90 {
		factor *= 1.05
	}
	return factor
}

// TemperatureEffect returns the multiplicative slowdown for the average
// temperature of both airports. Mild weather (10-20 °C) has no effect.
func TemperatureEffect(origin, dest WeatherReading) float64 {
	avg := (origin.Temperature + dest.Temperature) / 2

	switch {
	case avg >= 10 && avg <= 20:
		return 1.00
	case (avg >= 5 && avg < 10) || (avg > 20 && avg <= 25):
		return 1.02
	case (avg >= 0 && avg < 5) || (avg > 25 && avg <= 30):
		return 1.04
	case (avg >= -10 && avg < 0) || (avg > 30 && avg <= 35):
		return 1.07
	default:
		return 1.10
	}
}
