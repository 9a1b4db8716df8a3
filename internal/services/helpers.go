// internal/services/helpers.go
package services

import (
	"context"

	"github.com/javajoker/saree-sanctuary/internal/filter"
	"github.com/javajoker/saree-sanctuary/internal/identity"
	"github.com/javajoker/saree-sanctuary/internal/models"
	"github.com/javajoker/saree-sanctuary/internal/stitch"
	"github.com/javajoker/saree-sanctuary/internal/store"
	"github.com/javajoker/saree-sanctuary/internal/validation"
)

// CreateResult is returned for every created document.
type CreateResult struct {
	ID string `json:"id"`
}

// findBySlug loads one document by slug, embeds its relations and normalizes the result.
func findBySlug(ctx context.Context, s *store.Store, st *stitch.Stitcher, kind models.Kind, slug string) (models.Document, error) {
	doc, err := s.FindOne(ctx, kind, filter.Eq("slug", slug))
	if err != nil {
		return nil, err
	}

	doc, err = st.Stitch(ctx, kind, doc)
	if err != nil {
		return nil, err
	}
	return identity.Normalize(doc), nil
}

// list queries kind and normalizes every result.
func list(ctx context.Context, s *store.Store, kind models.Kind, spec filter.Spec, limit int) ([]models.Document, error) {
	docs, err := s.Query(ctx, kind, spec, limit)
	if err != nil {
		return nil, err
	}
	return identity.NormalizeAll(docs), nil
}

// create validates payload, runs check on the validated document and persists it.
func create(ctx context.Context, s *store.Store, kind models.Kind, payload map[string]interface{},
	check func(context.Context, models.Document) error) (string, models.Document, error) {

	doc, err := validation.Validate(kind, payload)
	if err != nil {
		return "", nil, err
	}

	if check != nil {
		if err := check(ctx, doc); err != nil {
			return "", nil, err
		}
	}

	id, err := s.Create(ctx, kind, doc)
	if err != nil {
		return "", nil, err
	}
	return id, doc, nil
}
