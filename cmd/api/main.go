package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartexpire/internal/catalog"
	"smartexpire/internal/config"
	"smartexpire/internal/database"
	"smartexpire/internal/handler"
	"smartexpire/internal/ocr"
	"smartexpire/internal/repository"
	"smartexpire/internal/router"
	"smartexpire/internal/service"
	"smartexpire/internal/session"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Str("store", cfg.Store.Driver).Msg("starting smartexpire API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load the recipe and disposal catalog
	cat, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	// Initialize inventory store
	var repo repository.InventoryRepository
	switch cfg.Store.Driver {
	case config.StorePostgres:
		pool, err := database.Open(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()
		repo = repository.NewInventoryRepository(pool, logger)
	default:
		repo = repository.NewMemoryRepository(logger)
	}

	// Initialize OCR extractor
	var extractor ocr.Extractor
	if cfg.OCR.Enabled() {
		extractor = ocr.NewHTTPExtractor(cfg.OCR.URL, cfg.OCR.Timeout(), logger)
	} else {
		extractor = ocr.NewDisabledExtractor()
		logger.Info().Msg("OCR service not configured, receipt uploads will fail")
	}

	// Initialize services
	now := time.Now
	validator := service.NewValidator()
	manager := session.NewManager(now, logger)

	sessionService := service.NewSessionService(manager, repo, cfg.Session.SeedSamples, now, logger)
	inventoryService := service.NewInventoryService(repo, cat, validator, now, logger)
	recipeService := service.NewRecipeService(repo, cat, validator, now, logger)
	hubService := service.NewHubService(extractor, cfg.Receipt.MaxBytes, validator, now, logger)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Session: handler.NewSessionHandler(sessionService, logger),
		Items:   handler.NewItemHandler(inventoryService, logger),
		Recipes: handler.NewRecipeHandler(recipeService, logger),
		Hub:     handler.NewHubHandler(hubService, cfg.Receipt.MaxBytes, logger),
	}

	// Initialize router
	mux := router.New(handlers, sessionService, cfg.CORS.AllowedOrigin, logger)

	// Create HTTP server. The write timeout leaves room for the OCR call.
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.OCR.Timeout() + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// loadCatalog picks the catalog source: built-in without a file, otherwise
// the local file system with optional S3 in front of it.
func loadCatalog(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*catalog.Catalog, error) {
	if cfg.Catalog.File == "" {
		logger.Info().Msg("using built-in catalog")
		return catalog.NewBuiltinLoader().Load(ctx, "")
	}

	fileLoader := catalog.NewFileLoader(logger)
	loader := fileLoader

	if cfg.S3.Enabled {
		// Create S3 loader
		s3Loader, err := catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			loader = catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, true, logger)
		}
	} else {
		logger.Info().Str("file", cfg.Catalog.File).Msg("using local file system for catalog (S3 disabled)")
	}

	return loader.Load(ctx, cfg.Catalog.File)
}
