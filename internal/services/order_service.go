// internal/services/order_service.go
package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/saree-sanctuary/internal/models"
	"github.com/javajoker/saree-sanctuary/internal/store"
)

type OrderService struct {
	store      *store.Store
	references *ReferenceService
	log        logrus.FieldLogger
}

type OrderResult struct {
	ID     string             `json:"id"`
	Status models.OrderStatus `json:"status"`
}

func NewOrderService(s *store.Store, references *ReferenceService, log logrus.FieldLogger) *OrderService {
	return &OrderService{store: s, references: references, log: log}
}

// CreateOrder records an order. No payment is taken; the status defaults to pending.
func (s *OrderService) CreateOrder(ctx context.Context, payload map[string]interface{}) (*OrderResult, error) {
	id, doc, err := create(ctx, s.store, models.KindOrder, payload, func(ctx context.Context, doc models.Document) error {
		if err := s.references.Require(ctx, doc, "vendor_slug", models.KindVendor); err != nil {
			return err
		}
		return s.references.RequireItems(ctx, doc)
	})
	if err != nil {
		return nil, err
	}

	status, _ := doc.String("status")

	s.log.WithFields(logrus.Fields{
		"order_id":       id,
		"vendor_slug":    doc["vendor_slug"],
		"total_in_paise": doc["total_in_paise"],
		"status":         status,
	}).Info("Order created")

	return &OrderResult{ID: id, Status: models.OrderStatus(status)}, nil
}
