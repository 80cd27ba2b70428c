package main

import (
	"context"
	"flag"
	"log"

	"itinerary/internal/catalog"
	"itinerary/internal/config"
	"itinerary/internal/repository/postgres"
	"itinerary/internal/service/places"

	"github.com/joho/godotenv"
)

func main() {
	file := flag.String("file", "", "Seed from this YAML file instead of the embedded catalog")
	dryRun := flag.Bool("dry-run", false, "Parse and print the catalog without touching the database")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	cfg := config.Load()

	logger, logCloser, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logCloser.Close()

	entries, err := loadEntries(*file)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("🌱 Seeding %d places (environment: %s, prefix: %s)", len(entries), cfg.Environment, cfg.TablePrefix)

	if *dryRun {
		for _, e := range entries {
			log.Printf("  %s  %s", e.PlaceID, e.Name)
		}
		return
	}

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: postgres.NewTableNames(cfg.TablePrefix),
		Logger: logger,
	}
	placeService := places.NewPlaceService(postgres.NewPlaceRepository(repoConfig), logger)

	result, err := catalog.Seed(ctx, placeService, entries, logger)
	if err != nil {
		log.Fatalf("Seeding aborted: %v", err)
	}

	log.Printf("🎉 Seeding complete: %d saved, %d failed", result.Saved, result.Failed)
}
