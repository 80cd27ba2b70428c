package catalog

import (
	"context"
	"embed"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"itinerary/internal/domain/services"
)

//go:embed data/*.yaml
var dataFiles embed.FS

const defaultFile = "data/places.yaml"

// File is the on-disk shape of a places catalog
type File struct {
	Places []services.UpsertPlaceRequest `yaml:"places"`
}

// Load parses the embedded starter catalog
func Load() ([]services.UpsertPlaceRequest, error) {
	data, err := dataFiles.ReadFile(defaultFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", defaultFile, err)
	}
	return Parse(data)
}

// Parse decodes catalog YAML and rejects duplicate place ids
func Parse(data []byte) ([]services.UpsertPlaceRequest, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(file.Places))
	for _, p := range file.Places {
		if _, dup := seen[p.PlaceID]; dup {
			return nil, fmt.Errorf("duplicate place_id %q in catalog", p.PlaceID)
		}
		seen[p.PlaceID] = struct{}{}
	}

	return file.Places, nil
}

// Result summarizes a seeding run
type Result struct {
	Saved  int
	Failed int
}

// Seed upserts every entry through the place service so catalog data passes
// the same validation as API writes. Individual failures are logged and counted.
func Seed(ctx context.Context, placeService services.PlaceService, places []services.UpsertPlaceRequest, logger *slog.Logger) (Result, error) {
	var result Result
	for i := range places {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		place, err := placeService.UpsertPlace(ctx, &places[i])
		if err != nil {
			result.Failed++
			logger.Warn("failed to seed place",
				"place_id", places[i].PlaceID,
				"error", err,
			)
			continue
		}

		result.Saved++
		logger.Debug("place seeded", "place_id", place.PlaceID, "name", place.Name)
	}

	return result, nil
}
