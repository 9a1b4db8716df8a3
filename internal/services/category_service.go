// internal/services/category_service.go
package services

import (
	"context"

	"github.com/javajoker/saree-sanctuary/internal/database"
	"github.com/javajoker/saree-sanctuary/internal/models"
	"github.com/javajoker/saree-sanctuary/internal/store"
)

type CategoryService struct {
	store *store.Store
}

func NewCategoryService(s *store.Store) *CategoryService {
	return &CategoryService{store: s}
}

// ListCategories falls back to the built-in categories while the store is unavailable.
func (s *CategoryService) ListCategories(ctx context.Context, limit int) ([]models.Document, error) {
	if !s.store.Available() {
		out := make([]models.Document, 0, len(database.DefaultCategories))
		for _, c := range database.DefaultCategories {
			out = append(out, c.Clone())
		}
		return out, nil
	}
	return list(ctx, s.store, models.KindCategory, nil, limit)
}
