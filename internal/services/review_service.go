// internal/services/review_service.go
package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/saree-sanctuary/internal/filter"
	"github.com/javajoker/saree-sanctuary/internal/models"
	"github.com/javajoker/saree-sanctuary/internal/store"
)

type ReviewService struct {
	store      *store.Store
	references *ReferenceService
	log        logrus.FieldLogger
}

func NewReviewService(s *store.Store, references *ReferenceService, log logrus.FieldLogger) *ReviewService {
	return &ReviewService{store: s, references: references, log: log}
}

// ListReviews returns the reviews of a product in the order they were written.
func (s *ReviewService) ListReviews(ctx context.Context, productSlug string, limit int) ([]models.Document, error) {
	return list(ctx, s.store, models.KindReview, filter.Eq("product_slug", productSlug), limit)
}

func (s *ReviewService) CreateReview(ctx context.Context, payload map[string]interface{}) (*CreateResult, error) {
	id, doc, err := create(ctx, s.store, models.KindReview, payload, func(ctx context.Context, doc models.Document) error {
		return s.references.Require(ctx, doc, "product_slug", models.KindProduct)
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"review_id":    id,
		"product_slug": doc["product_slug"],
		"rating":       doc["rating"],
	}).Info("Review created")

	return &CreateResult{ID: id}, nil
}
