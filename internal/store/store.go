// Package store provides create/query access to the entity collections.
//
// A Store wraps a Handle that is either initialized (backed by MongoDB, PostgreSQL or
// memory) or uninitialized for the lifetime of the process. In the uninitialized state
// queries return empty results while writes fail with ErrStoreUnavailable.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/saree-sanctuary/internal/filter"
	"github.com/javajoker/saree-sanctuary/internal/models"
)

type Store struct {
	handle Handle
	log    logrus.FieldLogger
}

func New(handle Handle, log logrus.FieldLogger) *Store {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Store{handle: handle, log: log}
}

func (s *Store) Available() bool {
	return s.handle.Available()
}

// BackendName returns the active backend name, or "" when uninitialized.
func (s *Store) BackendName() string {
	if b, ok := s.handle.Backend(); ok {
		return b.Name()
	}
	return ""
}

// Create persists doc in the collection of kind and returns its new identifier.
func (s *Store) Create(ctx context.Context, kind models.Kind, doc models.Document) (string, error) {
	b, ok := s.handle.Backend()
	if !ok {
		return "", ErrStoreUnavailable
	}

	stored := doc.Clone()
	if stored == nil {
		stored = models.Document{}
	}
	delete(stored, models.InternalIDField)

	id, err := b.Insert(ctx, kind.Collection(), stored)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", kind, err)
	}

	s.log.WithFields(logrus.Fields{
		"collection": kind.Collection(),
		"id":         id,
	}).Debug("Document created")

	return id, nil
}

// Query returns up to limit documents of kind matching spec, in insertion order.
// A nil spec matches every document. An uninitialized store yields an empty result.
func (s *Store) Query(ctx context.Context, kind models.Kind, spec filter.Spec, limit int) ([]models.Document, error) {
	b, ok := s.handle.Backend()
	if !ok || limit <= 0 {
		return []models.Document{}, nil
	}
	if spec == nil {
		spec = filter.All()
	}

	docs, err := b.Find(ctx, kind.Collection(), spec, limit)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", kind, err)
	}
	if docs == nil {
		docs = []models.Document{}
	}
	if len(docs) > limit {
		docs = docs[:limit]
	}
	return docs, nil
}

// FindOne returns the first document of kind matching spec. Unlike Query it reports an
// uninitialized store as ErrStoreUnavailable, and no match as ErrNotFound.
func (s *Store) FindOne(ctx context.Context, kind models.Kind, spec filter.Spec) (models.Document, error) {
	if !s.Available() {
		return nil, ErrStoreUnavailable
	}
	docs, err := s.Query(ctx, kind, spec, 1)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	return docs[0], nil
}

// Collections lists the collections present in the backing store.
func (s *Store) Collections(ctx context.Context) ([]string, error) {
	b, ok := s.handle.Backend()
	if !ok {
		return nil, ErrStoreUnavailable
	}
	names, err := b.Collections(ctx)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}

// Migrate prepares collections and the given per-collection indexes when the backend
// supports it.
func (s *Store) Migrate(ctx context.Context, indexes map[string][]string) error {
	b, ok := s.handle.Backend()
	if !ok {
		return ErrStoreUnavailable
	}
	m, ok := b.(Migrator)
	if !ok {
		return nil
	}
	return m.Migrate(ctx, indexes)
}

func (s *Store) Close(ctx context.Context) error {
	b, ok := s.handle.Backend()
	if !ok {
		return nil
	}
	return b.Close(ctx)
}

// IsUnavailable reports whether err stems from an uninitialized store.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}
