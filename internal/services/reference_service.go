// internal/services/reference_service.go
package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/javajoker/saree-sanctuary/internal/filter"
	"github.com/javajoker/saree-sanctuary/internal/models"
	"github.com/javajoker/saree-sanctuary/internal/store"
	"github.com/javajoker/saree-sanctuary/internal/validation"
)

// ReferenceService checks slug references between documents. References are soft: unless
// enforcement is enabled every check passes.
type ReferenceService struct {
	store   *store.Store
	enforce bool
}

func NewReferenceService(s *store.Store, enforce bool) *ReferenceService {
	return &ReferenceService{store: s, enforce: enforce}
}

// Require fails with a validation error on field when no document of kind has the slug
// held in doc[field].
func (s *ReferenceService) Require(ctx context.Context, doc models.Document, field string, kind models.Kind) error {
	if !s.enforce {
		return nil
	}

	slug, _ := doc.String(field)
	_, err := s.store.FindOne(ctx, kind, filter.Eq("slug", slug))
	if errors.Is(err, store.ErrNotFound) {
		return &validation.Error{Field: field, Constraint: validation.ConstraintExists}
	}
	return err
}

// RequireItems applies Require to the product_slug of every order item.
func (s *ReferenceService) RequireItems(ctx context.Context, doc models.Document) error {
	if !s.enforce {
		return nil
	}

	items, _ := doc["items"].([]models.Document)
	for i, item := range items {
		if err := s.Require(ctx, item, "product_slug", models.KindProduct); err != nil {
			if verr, ok := validation.AsError(err); ok {
				verr.Field = "items[" + strconv.Itoa(i) + "]." + verr.Field
			}
			return err
		}
	}
	return nil
}
