// internal/config/database.go
package config

import (
	"net/url"
	"strings"
	"time"
)

// Driver identifies the backend selected by the DATABASE_URL scheme.
type Driver string

const (
	DriverNone     Driver = ""
	DriverMongo    Driver = "mongodb"
	DriverPostgres Driver = "postgres"
	DriverMemory   Driver = "memory"
)

type DatabaseConfig struct {
	URL            string
	Name           string
	ConnectTimeout int // in seconds
	MaxOpenConns   int
	MaxIdleConns   int
	MaxLifetime    int // in seconds
	LogLevel       string
}

// Driver reports the backend named by the URL scheme, or DriverNone when the URL is
// empty or the scheme is not recognised.
func (d DatabaseConfig) Driver() Driver {
	scheme, _, ok := strings.Cut(strings.TrimSpace(d.URL), "://")
	if !ok {
		return DriverNone
	}
	switch strings.ToLower(scheme) {
	case "mongodb", "mongodb+srv":
		return DriverMongo
	case "postgres", "postgresql":
		return DriverPostgres
	case "memory":
		return DriverMemory
	default:
		return DriverNone
	}
}

// IsConfigured reports whether enough settings are present to attempt a connection.
// Only the memory backend works without a database name.
func (d DatabaseConfig) IsConfigured() bool {
	switch d.Driver() {
	case DriverMemory:
		return true
	case DriverMongo, DriverPostgres:
		return d.Name != ""
	default:
		return false
	}
}

// PostgresDSN returns the URL with its database path replaced by Name when one is set.
func (d DatabaseConfig) PostgresDSN() string {
	if d.Name == "" {
		return d.URL
	}
	u, err := url.Parse(d.URL)
	if err != nil {
		return d.URL
	}
	u.Path = "/" + d.Name
	return u.String()
}

func (d DatabaseConfig) ConnectTimeoutDuration() time.Duration {
	return time.Duration(d.ConnectTimeout) * time.Second
}

func (d DatabaseConfig) MaxLifetimeDuration() time.Duration {
	return time.Duration(d.MaxLifetime) * time.Second
}

// Redacted returns the URL with any password masked, for logging.
func (d DatabaseConfig) Redacted() string {
	u, err := url.Parse(d.URL)
	if err != nil || u.User == nil {
		return d.URL
	}
	return u.Redacted()
}
