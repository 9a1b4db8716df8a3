package stitch

import (
	"context"
	"fmt"

	"github.com/javajoker/saree-sanctuary/internal/filter"
	"github.com/javajoker/saree-sanctuary/internal/models"
)

// Querier is the read side of the document store.
type Querier interface {
	Query(ctx context.Context, kind models.Kind, spec filter.Spec, limit int) ([]models.Document, error)
}

type Stitcher struct {
	store    Querier
	registry *Registry
}

// New returns a Stitcher over q. A nil registry means DefaultRegistry.
func New(q Querier, registry *Registry) *Stitcher {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Stitcher{store: q, registry: registry}
}

// Stitch returns a copy of doc with every relation of kind embedded. Each embedded field
// is always a non-nil slice; children keep insertion order and are not stitched further.
func (s *Stitcher) Stitch(ctx context.Context, kind models.Kind, doc models.Document) (models.Document, error) {
	out := doc.Clone()
	if out == nil {
		out = models.Document{}
	}

	for _, rel := range s.registry.RelationsOf(kind) {
		children, err := s.children(ctx, rel, out)
		if err != nil {
			return nil, fmt.Errorf("stitch %s.%s: %w", kind, rel.Embed, err)
		}
		out[rel.Embed] = children
	}
	return out, nil
}

// StitchAll stitches every document of docs.
func (s *Stitcher) StitchAll(ctx context.Context, kind models.Kind, docs []models.Document) ([]models.Document, error) {
	out := make([]models.Document, 0, len(docs))
	for _, doc := range docs {
		stitched, err := s.Stitch(ctx, kind, doc)
		if err != nil {
			return nil, err
		}
		out = append(out, stitched)
	}
	return out, nil
}

func (s *Stitcher) children(ctx context.Context, rel Relation, parent models.Document) ([]models.Document, error) {
	key, ok := parent.String(rel.ParentKey)
	if !ok {
		return []models.Document{}, nil
	}

	docs, err := s.store.Query(ctx, rel.Child, filter.Eq(rel.ChildKey, key), rel.limit())
	if err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []models.Document{}
	}
	return docs, nil
}
