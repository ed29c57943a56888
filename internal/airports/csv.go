package airports

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/i474232898/flight-duration-estimator/internal/flight"
)

var errMissingColumn = errors.New("missing required column")

var requiredColumns = []string{"iata_code", "name", "latitude_deg", "longitude_deg", "iso_country"}

// ParseCSV reads an OurAirports-style CSV. Columns are located by header name.
// Rows without a three-letter code or with out-of-range coordinates are skipped.
// When continent is non-empty and the file has a continent column, only
// matching rows are kept.
func ParseCSV(r io.Reader, continent string) ([]Airport, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("%w: %s", errMissingColumn, c)
		}
	}
	continentCol, hasContinent := cols["continent"]
	continent = strings.ToUpper(strings.TrimSpace(continent))

	field := func(rec []string, name string) string {
		i := cols[name]
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var out []Airport
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}

		code := strings.ToUpper(field(rec, "iata_code"))
		if len(code) != 3 {
			continue
		}

		var cont string
		if hasContinent && continentCol < len(rec) {
			cont = strings.ToUpper(strings.TrimSpace(rec[continentCol]))
			if continent != "" && cont != continent {
				continue
			}
		}

		lat, err := strconv.ParseFloat(field(rec, "latitude_deg"), 64)
		if err != nil {
			continue
		}
		lon, err := strconv.ParseFloat(field(rec, "longitude_deg"), 64)
		if err != nil {
			continue
		}
		pos := flight.Coordinate{Latitude: lat, Longitude: lon}
		if !pos.Valid() {
			continue
		}

		out = append(out, Airport{
			Code:      code,
			Name:      field(rec, "name"),
			Country:   strings.ToUpper(field(rec, "iso_country")),
			Position:  pos,
			Continent: cont,
		})
	}
	return out, nil
}
