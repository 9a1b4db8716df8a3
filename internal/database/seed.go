package database

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/saree-sanctuary/internal/models"
	"github.com/javajoker/saree-sanctuary/internal/store"
	"github.com/javajoker/saree-sanctuary/internal/validation"
)

// SeedCounts reports how many documents of each kind a seed run created.
type SeedCounts struct {
	Categories int `json:"categories"`
	Vendors    int `json:"vendors"`
	Products   int `json:"products"`
	Reviews    int `json:"reviews"`
}

// DefaultCategories is also served as the category list when the store is unavailable.
var DefaultCategories = []models.Document{
	{"name": "Banarasi", "slug": "banarasi"},
	{"name": "Kanjivaram", "slug": "kanjivaram"},
	{"name": "Cotton", "slug": "cotton"},
	{"name": "Silk", "slug": "silk"},
	{"name": "Organza", "slug": "organza"},
}

var sampleVendors = []map[string]interface{}{
	{"store_name": "Varanasi Weaves", "slug": "varanasi-weaves", "about": "Handwoven Banarasi sarees.", "verified": true, "region": "Varanasi"},
	{"store_name": "Kanjivaram Katha", "slug": "kanjivaram-katha", "about": "Traditional Kanjivaram silk.", "verified": true, "region": "Kanchipuram"},
	{"store_name": "Cotton Looms", "slug": "cotton-looms", "about": "Breathable cotton sarees.", "verified": false, "region": "Coimbatore"},
}

var sampleProducts = []map[string]interface{}{
	{
		"title":          "Royal Banarasi Brocade",
		"slug":           "royal-banarasi-brocade",
		"description":    "Rich zari work with traditional motifs.",
		"vendor_slug":    "varanasi-weaves",
		"price_in_paise": 899900,
		"saree_type":     "Banarasi",
		"color":          "Maroon",
		"material":       "Silk",
		"occasion":       "Wedding",
		"care":           "Dry clean only",
		"images":         []interface{}{"https://images.unsplash.com/photo-1603575448894-0474f35f9f1b?q=80&w=1200&auto=format&fit=crop"},
		"stock":          8,
	},
	{
		"title":          "Classic Kanjivaram Gold",
		"slug":           "classic-kanjivaram-gold",
		"description":    "Pure silk with gold border.",
		"vendor_slug":    "kanjivaram-katha",
		"price_in_paise": 1299900,
		"saree_type":     "Kanjivaram",
		"color":          "Indigo",
		"material":       "Silk",
		"occasion":       "Festive",
		"care":           "Dry clean only",
		"images":         []interface{}{"https://images.unsplash.com/photo-1610563166150-6ed79b3b6d62?q=80&w=1200&auto=format&fit=crop"},
		"stock":          5,
	},
	{
		"title":          "Summer Breeze Cotton",
		"slug":           "summer-breeze-cotton",
		"description":    "Lightweight cotton saree.",
		"vendor_slug":    "cotton-looms",
		"price_in_paise": 299900,
		"saree_type":     "Cotton",
		"color":          "Saffron",
		"material":       "Cotton",
		"occasion":       "Casual",
		"care":           "Machine wash gentle",
		"images":         []interface{}{"https://images.unsplash.com/photo-1585487000160-6f1a5e60e1f9?q=80&w=1200&auto=format&fit=crop"},
		"stock":          20,
	},
}

var sampleReviews = []map[string]interface{}{
	{"product_slug": "royal-banarasi-brocade", "rating": 5, "comment": "Stunning craftsmanship!", "author_name": "Asha"},
	{"product_slug": "classic-kanjivaram-gold", "rating": 4, "comment": "Luxurious and elegant.", "author_name": "Meera"},
}

// SeedInitialData fills each empty sample collection. Collections that already hold any
// document are left untouched, so repeated runs create nothing.
func SeedInitialData(ctx context.Context, s *store.Store, log logrus.FieldLogger) (SeedCounts, error) {
	var counts SeedCounts
	if !s.Available() {
		return counts, store.ErrStoreUnavailable
	}

	log.Info("Seeding initial data...")

	categories := make([]map[string]interface{}, 0, len(DefaultCategories))
	for _, c := range DefaultCategories {
		categories = append(categories, c.Clone())
	}

	steps := []struct {
		kind    models.Kind
		samples []map[string]interface{}
		count   *int
	}{
		{models.KindCategory, categories, &counts.Categories},
		{models.KindVendor, sampleVendors, &counts.Vendors},
		{models.KindProduct, sampleProducts, &counts.Products},
		{models.KindReview, sampleReviews, &counts.Reviews},
	}

	for _, step := range steps {
		n, err := seedKind(ctx, s, step.kind, step.samples)
		*step.count = n
		if err != nil {
			return counts, err
		}
	}

	log.WithFields(logrus.Fields{
		"categories": counts.Categories,
		"vendors":    counts.Vendors,
		"products":   counts.Products,
		"reviews":    counts.Reviews,
	}).Info("Initial data seeding completed")

	return counts, nil
}

func seedKind(ctx context.Context, s *store.Store, kind models.Kind, samples []map[string]interface{}) (int, error) {
	existing, err := s.Query(ctx, kind, nil, 1)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	created := 0
	for _, sample := range samples {
		doc, err := validation.Validate(kind, sample)
		if err != nil {
			return created, fmt.Errorf("seed %s: %w", kind, err)
		}
		if _, err := s.Create(ctx, kind, doc); err != nil {
			return created, fmt.Errorf("seed %s: %w", kind, err)
		}
		created++
	}
	return created, nil
}
