// internal/services/product_service.go
package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/saree-sanctuary/internal/filter"
	"github.com/javajoker/saree-sanctuary/internal/models"
	"github.com/javajoker/saree-sanctuary/internal/stitch"
	"github.com/javajoker/saree-sanctuary/internal/store"
)

const (
	DefaultProductLimit = 24
	DefaultListLimit    = 20
)

type ProductService struct {
	store      *store.Store
	stitcher   *stitch.Stitcher
	references *ReferenceService
	log        logrus.FieldLogger
}

func NewProductService(s *store.Store, stitcher *stitch.Stitcher, references *ReferenceService, log logrus.FieldLogger) *ProductService {
	return &ProductService{
		store:      s,
		stitcher:   stitcher,
		references: references,
		log:        log,
	}
}

// SearchProducts lists products matching the free-text and attribute filters of q.
func (s *ProductService) SearchProducts(ctx context.Context, q filter.ProductQuery, limit int) ([]models.Document, error) {
	return list(ctx, s.store, models.KindProduct, q.Spec(), limit)
}

// GetProduct returns the product with its reviews embedded.
func (s *ProductService) GetProduct(ctx context.Context, slug string) (models.Document, error) {
	return findBySlug(ctx, s.store, s.stitcher, models.KindProduct, slug)
}

func (s *ProductService) CreateProduct(ctx context.Context, payload map[string]interface{}) (*CreateResult, error) {
	id, doc, err := create(ctx, s.store, models.KindProduct, payload, func(ctx context.Context, doc models.Document) error {
		return s.references.Require(ctx, doc, "vendor_slug", models.KindVendor)
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"product_id":  id,
		"slug":        doc["slug"],
		"vendor_slug": doc["vendor_slug"],
	}).Info("Product created")

	return &CreateResult{ID: id}, nil
}
