package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"itinerary/internal/auth"
	"itinerary/internal/config"
	"itinerary/internal/domain/models"
	"itinerary/internal/handler"
	"itinerary/internal/middleware"
	"itinerary/internal/repository/postgres"
	"itinerary/internal/service/access"
	"itinerary/internal/service/places"
	"itinerary/internal/service/planner"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	logger, logCloser, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logCloser.Close()
	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// JWT verifier backed by the identity provider's JWKS endpoint
	verifier, err := auth.NewJWKSVerifier(ctx, cfg.JWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer verifier.Close()

	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()
	logger.Info("database connected",
		"max_conns", pool.Config().MaxConns,
		"min_conns", pool.Config().MinConns,
	)

	// Repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: postgres.NewTableNames(cfg.TablePrefix),
		Logger: logger,
	}
	placeRepo := postgres.NewPlaceRepository(repoConfig)
	scheduleRepo := postgres.NewScheduleRepository(repoConfig)
	checklistRepo := postgres.NewChecklistRepository(repoConfig)
	grantRepo := postgres.NewGrantRepository(repoConfig)
	txManager := postgres.NewTransactionManager(repoConfig)

	// Authorizers, one per resource kind; all share the grants table
	scheduleAccess := access.NewAuthorizer[*models.Schedule](scheduleRepo, grantRepo)
	checklistAccess := access.NewAuthorizer[*models.Checklist](checklistRepo, grantRepo)

	// Services
	placeService := places.NewPlaceService(placeRepo, logger)
	scheduleService := planner.NewScheduleService(scheduleRepo, grantRepo, txManager, logger)
	checklistService := planner.NewChecklistService(checklistRepo, logger)

	// Handlers
	placeHandler := handler.NewPlaceHandler(placeService, logger)
	scheduleHandler := handler.NewScheduleHandler(scheduleService, logger)
	checklistHandler := handler.NewChecklistHandler(checklistService, logger)

	guardSchedule := middleware.RequireAccess[*models.Schedule](scheduleAccess, logger)
	guardChecklist := middleware.RequireAccess[*models.Checklist](checklistAccess, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)

	// Places catalog
	mux.HandleFunc("GET /api/places", placeHandler.ListPlaces)
	mux.HandleFunc("GET /api/places/{placeID}", placeHandler.GetPlace)
	mux.HandleFunc("POST /api/places", placeHandler.UpsertPlace)

	// Schedule routes
	mux.HandleFunc("POST /api/schedules", scheduleHandler.CreateSchedule)
	mux.HandleFunc("GET /api/schedules", scheduleHandler.ListSchedules)
	mux.Handle("GET /api/schedules/{id}", guardSchedule(http.HandlerFunc(scheduleHandler.GetSchedule)))
	mux.Handle("PATCH /api/schedules/{id}", guardSchedule(http.HandlerFunc(scheduleHandler.UpdateSchedule)))
	mux.Handle("DELETE /api/schedules/{id}", guardSchedule(http.HandlerFunc(scheduleHandler.DeleteSchedule)))
	mux.Handle("PUT /api/schedules/{id}/editors/{userID}", guardSchedule(http.HandlerFunc(scheduleHandler.ShareSchedule)))

	// Checklist routes
	mux.HandleFunc("POST /api/checklists", checklistHandler.CreateChecklist)
	mux.Handle("PATCH /api/checklists/{id}", guardChecklist(http.HandlerFunc(checklistHandler.UpdateChecklist)))
	mux.Handle("DELETE /api/checklists/{id}", guardChecklist(http.HandlerFunc(checklistHandler.DeleteChecklist)))

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → RequestID → Recovery → Auth → Routes
	var h http.Handler = mux
	h = middleware.AuthMiddleware(verifier, logger,
		"GET /health",
		"GET /api/places",
		"GET /api/places/*",
	)(h)
	h = middleware.Recovery(logger)(h)
	h = middleware.RequestID()(h)

	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", server.Addr, err)
	}
	if err := serve(ctx, server, ln, logger, 10*time.Second); err != nil {
		logger.Error("server stopped with error", "error", err)
	}
}
