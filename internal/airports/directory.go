package airports

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/i474232898/flight-duration-estimator/internal/flight"
)

var (
	// ErrNotFound is returned when no airport is registered under a code.
	ErrNotFound = errors.New("airport not found")
)

// Airport is a single dataset record.
type Airport struct {
	Code      string
	Name      string
	Country   string // ISO 3166-1 alpha-2
	Position  flight.Coordinate
	Continent string
}

// Directory is a concurrency-safe lookup table of airports keyed by IATA code.
// It is built once at start-up and may be swapped wholesale by a refresh.
type Directory struct {
	mu     sync.RWMutex
	byCode map[string]Airport
	sorted []Airport
}

// NewDirectory builds a directory from the given records. Later duplicates
// of a code are ignored.
func NewDirectory(list []Airport) *Directory {
	d := &Directory{}
	d.Replace(list)
	return d
}

// Replace swaps the directory contents for a new table.
func (d *Directory) Replace(list []Airport) {
	byCode := make(map[string]Airport, len(list))
	sorted := make([]Airport, 0, len(list))
	for _, a := range list {
		a.Code = normalizeCode(a.Code)
		if _, dup := byCode[a.Code]; dup {
			continue
		}
		byCode[a.Code] = a
		sorted = append(sorted, a)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Code < sorted[j].Code })

	d.mu.Lock()
	defer d.mu.Unlock()
	d.byCode = byCode
	d.sorted = sorted
}

// Lookup returns the airport for a code, case-insensitively.
func (d *Directory) Lookup(code string) (Airport, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	a, ok := d.byCode[normalizeCode(code)]
	if !ok {
		return Airport{}, ErrNotFound
	}
	return a, nil
}

// List returns all airports ordered by code. An empty country returns everything.
func (d *Directory) List(country string) []Airport {
	d.mu.RLock()
	defer d.mu.RUnlock()

	country = strings.TrimSpace(country)
	out := make([]Airport, 0, len(d.sorted))
	for _, a := range d.sorted {
		if country != "" && !strings.EqualFold(a.Country, country) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Len returns the number of airports in the directory.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.sorted)
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
