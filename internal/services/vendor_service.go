// internal/services/vendor_service.go
package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/saree-sanctuary/internal/models"
	"github.com/javajoker/saree-sanctuary/internal/stitch"
	"github.com/javajoker/saree-sanctuary/internal/store"
)

type VendorService struct {
	store    *store.Store
	stitcher *stitch.Stitcher
	log      logrus.FieldLogger
}

func NewVendorService(s *store.Store, stitcher *stitch.Stitcher, log logrus.FieldLogger) *VendorService {
	return &VendorService{store: s, stitcher: stitcher, log: log}
}

func (s *VendorService) ListVendors(ctx context.Context, limit int) ([]models.Document, error) {
	return list(ctx, s.store, models.KindVendor, nil, limit)
}

// GetVendor returns the vendor with a preview of its products embedded.
func (s *VendorService) GetVendor(ctx context.Context, slug string) (models.Document, error) {
	return findBySlug(ctx, s.store, s.stitcher, models.KindVendor, slug)
}

func (s *VendorService) CreateVendor(ctx context.Context, payload map[string]interface{}) (*CreateResult, error) {
	id, doc, err := create(ctx, s.store, models.KindVendor, payload, nil)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"vendor_id": id,
		"slug":      doc["slug"],
	}).Info("Vendor created")

	return &CreateResult{ID: id}, nil
}
