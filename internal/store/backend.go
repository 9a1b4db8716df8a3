package store

import (
	"context"

	"github.com/javajoker/saree-sanctuary/internal/filter"
	"github.com/javajoker/saree-sanctuary/internal/models"
)

// Backend is a document database holding one collection per entity kind.
type Backend interface {
	// Name identifies the backend in diagnostics (e.g. "mongodb").
	Name() string

	// Insert persists doc under a freshly assigned identifier and returns it.
	Insert(ctx context.Context, collection string, doc models.Document) (string, error)

	// Find returns up to limit documents matching spec in insertion order. Returned
	// documents carry their identifier under models.InternalIDField.
	Find(ctx context.Context, collection string, spec filter.Spec, limit int) ([]models.Document, error)

	// Collections lists the collections that currently exist.
	Collections(ctx context.Context) ([]string, error)

	Close(ctx context.Context) error
}

// Migrator is implemented by backends that prepare collections and indexes at startup.
type Migrator interface {
	Migrate(ctx context.Context, indexes map[string][]string) error
}

// Handle is the process-wide connection to the backing store. The zero value is the
// uninitialized (degraded) state.
type Handle struct {
	backend Backend
}

// Connected wraps an initialized backend. A nil backend yields an uninitialized handle.
func Connected(b Backend) Handle {
	return Handle{backend: b}
}

// Uninitialized returns the degraded handle.
func Uninitialized() Handle {
	return Handle{}
}

func (h Handle) Available() bool {
	return h.backend != nil
}

func (h Handle) Backend() (Backend, bool) {
	return h.backend, h.backend != nil
}
