// Package main is the entry point for the product judgment service.
// The service fuses multi-camera vision detections with load-cell
// weight deltas to decide which products a customer took from (or
// returned to) a smart vending machine.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/aivend/judge/internal/catalog"
	"github.com/aivend/judge/internal/config"
	"github.com/aivend/judge/internal/database"
	"github.com/aivend/judge/internal/engine"
	"github.com/aivend/judge/internal/events"
	"github.com/aivend/judge/internal/server"
	"github.com/aivend/judge/internal/work"
	"github.com/aivend/judge/pkg/logger"
)

func main() {
	// Load configuration first to get log level
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().
		Str("data_dir", cfg.DataDir).
		Int("port", cfg.Port).
		Bool("dev_mode", cfg.DevMode).
		Msg("Starting product judgment service")

	// Event bus wires the decision pipeline to the stream endpoints.
	bus := events.NewBus(log)
	eventManager := events.NewManager(bus, log)

	// Catalog source precedence: SQLite database, then YAML file, then
	// the builtin table.
	cat, source, dbHandle, err := loadCatalog(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load product catalog")
	}
	if dbHandle != nil {
		defer dbHandle.Close()
	}

	log.Info().Str("source", source).Int("products", cat.Len()).Msg("Catalog loaded")
	eventManager.EmitTyped(events.CatalogLoaded, "catalog", &events.CatalogLoadedData{
		Source:       source,
		ProductCount: cat.Len(),
	})

	eng := engine.New(cat, log)
	pool := work.NewPool(eng, cfg.BatchWorkers, log)

	srv := server.New(server.Config{
		Log:             log,
		Catalog:         cat,
		Engine:          eng,
		Pool:            pool,
		Bus:             bus,
		Events:          eventManager,
		Port:            cfg.Port,
		CORSOrigins:     cfg.CORSOrigins,
		CORSCredentials: cfg.CORSCredentials,
		DevMode:         cfg.DevMode,
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	// Wait for shutdown signal or server failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	case err := <-serverErr:
		log.Error().Err(err).Msg("HTTP server failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}

	log.Info().Msg("Service stopped")
}

// loadCatalog resolves the configured catalog source. The returned
// database handle is non-nil only for the SQLite source and must be
// closed by the caller.
func loadCatalog(cfg *config.Config, log zerolog.Logger) (*catalog.Catalog, string, *database.DB, error) {
	if cfg.CatalogDB != "" {
		db, err := database.New(database.Config{Path: cfg.CatalogDB, Name: "catalog"})
		if err != nil {
			return nil, "", nil, err
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, "", nil, err
		}
		cat, err := catalog.NewRepository(db, log).Load()
		if err != nil {
			db.Close()
			return nil, "", nil, err
		}
		return cat, "sqlite", db, nil
	}

	if cfg.CatalogPath != "" {
		cat, err := catalog.LoadYAML(cfg.CatalogPath)
		if err != nil {
			return nil, "", nil, err
		}
		return cat, "yaml", nil, nil
	}

	cat, err := catalog.New(catalog.Builtin())
	if err != nil {
		return nil, "", nil, err
	}
	return cat, "builtin", nil, nil
}
