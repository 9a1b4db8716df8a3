package store

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/javajoker/saree-sanctuary/internal/filter"
	"github.com/javajoker/saree-sanctuary/internal/models"
)

// MemoryBackend keeps collections in process memory. Identifiers are ObjectIDs so
// responses look the same as with MongoDB.
type MemoryBackend struct {
	mu          sync.RWMutex
	collections map[string][]models.Document
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{collections: make(map[string][]models.Document)}
}

func (m *MemoryBackend) Name() string { return "memory" }

func (m *MemoryBackend) Insert(_ context.Context, collection string, doc models.Document) (string, error) {
	id := primitive.NewObjectID()
	stored := doc.Clone()
	if stored == nil {
		stored = models.Document{}
	}
	stored[models.InternalIDField] = id

	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[collection] = append(m.collections[collection], stored)
	return id.Hex(), nil
}

func (m *MemoryBackend) Find(_ context.Context, collection string, spec filter.Spec, limit int) ([]models.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.Document{}
	for _, doc := range m.collections[collection] {
		if len(out) >= limit {
			break
		}
		if filter.Match(spec, doc) {
			out = append(out, doc.Clone())
		}
	}
	return out, nil
}

func (m *MemoryBackend) Collections(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *MemoryBackend) Close(context.Context) error { return nil }
