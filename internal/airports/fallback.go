package airports

import "github.com/i474232898/flight-duration-estimator/internal/flight"

// Fallback returns the built-in table of major European airports used when
// no dataset can be loaded.
func Fallback() []Airport {
	return []Airport{
		{Code: "MAD", Name: "Adolfo Suárez Madrid–Barajas Airport", Country: "ES", Position: flight.Coordinate{Latitude: 40.4719, Longitude: -3.5626}},
		{Code: "BCN", Name: "Josep Tarradellas Barcelona-El Prat Airport", Country: "ES", Position: flight.Coordinate{Latitude: 41.2974, Longitude: 2.0833}},
		{Code: "LHR", Name: "London Heathrow Airport", Country: "GB", Position: flight.Coordinate{Latitude: 51.4706, Longitude: -0.461941}},
		{Code: "CDG", Name: "Charles de Gaulle International Airport", Country: "FR", Position: flight.Coordinate{Latitude: 49.0097, Longitude: 2.5479}},
		{Code: "FRA", Name: "Frankfurt am Main Airport", Country: "DE", Position: flight.Coordinate{Latitude: 50.0333, Longitude: 8.5706}},
		{Code: "MUC", Name: "Munich Airport", Country: "DE", Position: flight.Coordinate{Latitude: 48.3538, Longitude: 11.7861}},
		{Code: "AMS", Name: "Amsterdam Airport Schiphol", Country: "NL", Position: flight.Coordinate{Latitude: 52.3086, Longitude: 4.7639}},
		{Code: "FCO", Name: "Leonardo da Vinci–Fiumicino Airport", Country: "IT", Position: flight.Coordinate{Latitude: 41.8003, Longitude: 12.2389}},
		{Code: "LIS", Name: "Humberto Delgado Airport", Country: "PT", Position: flight.Coordinate{Latitude: 38.7813, Longitude: -9.1359}},
		{Code: "DUB", Name: "Dublin Airport", Country: "IE", Position: flight.Coordinate{Latitude: 53.4213, Longitude: -6.2701}},
		{Code: "ZRH", Name: "Zurich Airport", Country: "CH", Position: flight.Coordinate{Latitude: 47.4647, Longitude: 8.5492}},
		{Code: "VIE", Name: "Vienna International Airport", Country: "AT", Position: flight.Coordinate{Latitude: 48.1103, Longitude: 16.5697}},
		{Code: "CPH", Name: "Copenhagen Kastrup Airport", Country: "DK", Position: flight.Coordinate{Latitude: 55.6180, Longitude: 12.6560}},
		{Code: "ARN", Name: "Stockholm-Arlanda Airport", Country: "SE", Position: flight.Coordinate{Latitude: 59.6519, Longitude: 17.9186}},
		{Code: "ATH", Name: "Athens International Airport", Country: "GR", Position: flight.Coordinate{Latitude: 37.9364, Longitude: 23.9445}},
	}
}
