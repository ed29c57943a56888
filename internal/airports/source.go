package airports

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
)

var errEmptyDataset = errors.New("dataset contains no usable airports")

// Source describes where the airport table can be loaded from.
type Source struct {
	File      string
	URL       string
	Continent string
	Client    *http.Client
}

// LoadFile parses a dataset from a local CSV file.
func (s Source) LoadFile() ([]Airport, error) {
	f, err := os.Open(s.File)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.File, err)
	}
	defer f.Close()

	list, err := ParseCSV(f, s.Continent)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.File, err)
	}
	if len(list) == 0 {
		return nil, errEmptyDataset
	}
	return list, nil
}

// Download fetches and parses the remote CSV dataset.
func (s Source) Download(ctx context.Context) ([]Airport, error) {
	if s.URL == "" {
		return nil, errors.New("no dataset url configured")
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download dataset: unexpected status code %d", resp.StatusCode)
	}

	list, err := ParseCSV(resp.Body, s.Continent)
	if err != nil {
		return nil, fmt.Errorf("parse downloaded dataset: %w", err)
	}
	if len(list) == 0 {
		return nil, errEmptyDataset
	}
	return list, nil
}

// Load tries the local file, then the remote dataset, then the built-in table.
// It always returns a usable directory.
func Load(ctx context.Context, src Source) *Directory {
	if src.File != "" {
		list, err := src.LoadFile()
		if err == nil {
			log.Printf("INFO: airports: loaded %d airports from %s", len(list), src.File)
			return NewDirectory(list)
		}
		log.Printf("INFO: airports: local dataset unavailable: %v", err)
	}

	if src.URL != "" {
		list, err := src.Download(ctx)
		if err == nil {
			log.Printf("INFO: airports: downloaded %d airports from %s", len(list), src.URL)
			return NewDirectory(list)
		}
		log.Printf("ERROR: airports: download failed: %v", err)
	}

	list := Fallback()
	log.Printf("INFO: airports: using built-in table with %d airports", len(list))
	return NewDirectory(list)
}

// Refresh re-downloads the remote dataset into d. On failure d is left untouched.
func Refresh(ctx context.Context, src Source, d *Directory) error {
	list, err := src.Download(ctx)
	if err != nil {
		return err
	}
	d.Replace(list)
	log.Printf("INFO: airports: refreshed directory with %d airports", len(list))
	return nil
}
