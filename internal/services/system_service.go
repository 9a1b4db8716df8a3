// internal/services/system_service.go
package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/saree-sanctuary/internal/config"
	"github.com/javajoker/saree-sanctuary/internal/database"
	"github.com/javajoker/saree-sanctuary/internal/models"
	"github.com/javajoker/saree-sanctuary/internal/store"
)

const ServiceName = "Saree Sanctuary API"

type SystemService struct {
	store *store.Store
	db    config.DatabaseConfig
	log   logrus.FieldLogger
}

// Diagnostics describes the backing store as seen by the running process.
type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	Driver           string   `json:"driver,omitempty"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
	Error            string   `json:"error,omitempty"`
}

func NewSystemService(s *store.Store, db config.DatabaseConfig, log logrus.FieldLogger) *SystemService {
	return &SystemService{store: s, db: db, log: log}
}

func (s *SystemService) Root() map[string]string {
	return map[string]string{"name": ServiceName, "status": "ok"}
}

// Schema describes the fields of every entity kind.
func (s *SystemService) Schema() map[string]map[string]interface{} {
	out := make(map[string]map[string]interface{}, len(models.Kinds))
	for _, kind := range models.Kinds {
		out[string(kind)] = models.JSONSchema(kind)
	}
	return out
}

func (s *SystemService) Diagnostics(ctx context.Context) Diagnostics {
	d := Diagnostics{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      setOrNot(s.db.URL),
		DatabaseName:     setOrNot(s.db.Name),
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if !s.store.Available() {
		return d
	}

	d.Database = "connected"
	d.Driver = s.store.BackendName()
	d.ConnectionStatus = "connected"

	names, err := s.store.Collections(ctx)
	if err != nil {
		s.log.WithError(err).Warn("Failed to list collections")
		d.Error = err.Error()
		return d
	}
	if names != nil {
		d.Collections = names
	}
	return d
}

// Seed populates empty collections with sample data.
func (s *SystemService) Seed(ctx context.Context) (database.SeedCounts, error) {
	return database.SeedInitialData(ctx, s.store, s.log)
}

func setOrNot(v string) string {
	if v == "" {
		return "not set"
	}
	return "set"
}
