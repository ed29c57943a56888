package weather

import "time"

// MergeObservations combines provider observations field by field. Observations
// are considered in order and the first one that reports a field wins.
func MergeObservations(obs []Observation) Observation {
	var merged Observation
	for _, o := range obs {
		if merged.Temperature == nil && o.Temperature != nil {
			merged.Temperature = o.Temperature
		}
		if merged.WindSpeed == nil && o.WindSpeed != nil {
			merged.WindSpeed = o.WindSpeed
		}
		if merged.WindDirection == nil && o.WindDirection != nil {
			merged.WindDirection = o.WindDirection
		}

		if merged.ProviderName == "" {
			merged.ProviderName = o.ProviderName
		} else if o.ProviderName != "" {
			merged.ProviderName += "," + o.ProviderName
		}
		if o.Timestamp.After(merged.Timestamp) {
			merged.Timestamp = o.Timestamp
		}
	}

	if merged.Timestamp.IsZero() {
		merged.Timestamp = time.Now().UTC()
	}
	return merged
}
