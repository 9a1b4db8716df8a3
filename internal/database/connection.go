// internal/database/connection.go
package database

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/saree-sanctuary/internal/config"
	"github.com/javajoker/saree-sanctuary/internal/models"
	"github.com/javajoker/saree-sanctuary/internal/store"
)

// Initialize connects the backend named by cfg. Any failure is logged and yields an
// uninitialized handle; startup never aborts on database problems.
func Initialize(ctx context.Context, cfg config.DatabaseConfig, log logrus.FieldLogger) store.Handle {
	entry := log.WithFields(logrus.Fields{
		"driver":   string(cfg.Driver()),
		"url":      cfg.Redacted(),
		"database": cfg.Name,
	})

	if !cfg.IsConfigured() {
		entry.Warn("Database not configured, running without persistence")
		return store.Uninitialized()
	}

	backend, err := connect(ctx, cfg)
	if err != nil {
		entry.WithError(err).Warn("Database unavailable, running without persistence")
		return store.Uninitialized()
	}

	entry.Info("Database connection established successfully")
	return store.Connected(backend)
}

func connect(ctx context.Context, cfg config.DatabaseConfig) (store.Backend, error) {
	if timeout := cfg.ConnectTimeoutDuration(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	switch cfg.Driver() {
	case config.DriverMemory:
		return store.NewMemoryBackend(), nil
	case config.DriverMongo:
		return store.NewMongoBackend(ctx, store.MongoOptions{
			URI:            cfg.URL,
			Database:       cfg.Name,
			ConnectTimeout: cfg.ConnectTimeoutDuration(),
		})
	case config.DriverPostgres:
		return store.NewPostgresBackend(ctx, store.PostgresOptions{
			DSN:          cfg.PostgresDSN(),
			MaxOpenConns: cfg.MaxOpenConns,
			MaxIdleConns: cfg.MaxIdleConns,
			MaxLifetime:  cfg.MaxLifetimeDuration(),
			LogLevel:     cfg.LogLevel,
		})
	default:
		return nil, fmt.Errorf("unsupported database url scheme")
	}
}

// Close releases the store's backend, logging rather than returning failures.
func Close(ctx context.Context, s *store.Store, log logrus.FieldLogger) {
	if !s.Available() {
		return
	}
	if err := s.Close(ctx); err != nil {
		log.WithError(err).Error("Error closing database connection")
		return
	}
	log.Info("Database connection closed successfully")
}

// Indexes lists the lookup fields indexed per collection.
var Indexes = map[string][]string{
	models.KindCategory.Collection(): {"slug"},
	models.KindVendor.Collection():   {"slug"},
	models.KindProduct.Collection():  {"slug", "vendor_slug", "saree_type"},
	models.KindReview.Collection():   {"product_slug"},
	models.KindOrder.Collection():    {"vendor_slug"},
}

// RunMigrations creates collections and indexes. It is a no-op on an uninitialized store.
func RunMigrations(ctx context.Context, s *store.Store, log logrus.FieldLogger) error {
	if !s.Available() {
		return nil
	}

	log.WithField("backend", s.BackendName()).Info("Running database migrations...")
	if err := s.Migrate(ctx, Indexes); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations completed successfully")
	return nil
}
