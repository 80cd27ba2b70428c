package main

import (
	"fmt"
	"os"

	"itinerary/internal/catalog"
	"itinerary/internal/domain/services"
)

// loadEntries reads the catalog from path, or the embedded one when path is empty
func loadEntries(path string) ([]services.UpsertPlaceRequest, error) {
	if path == "" {
		return catalog.Load()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return catalog.Parse(data)
}
