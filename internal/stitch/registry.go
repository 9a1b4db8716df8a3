// Package stitch embeds related child documents into parent documents.
package stitch

import "github.com/javajoker/saree-sanctuary/internal/models"

// DefaultLimit caps the number of children embedded per relation.
const DefaultLimit = 50

// Relation describes a one-to-many link resolved by slug.
type Relation struct {
	// Parent is the kind whose documents receive the children (e.g. product).
	Parent models.Kind

	// Child is the kind of the embedded documents (e.g. review).
	Child models.Kind

	// Embed is the field name the children are stored under on the parent (e.g. "reviews").
	Embed string

	// ParentKey is the parent field holding the join value (e.g. "slug").
	ParentKey string

	// ChildKey is the child field that references the parent (e.g. "product_slug").
	ChildKey string

	// Limit caps embedded children; zero means DefaultLimit.
	Limit int
}

func (r Relation) limit() int {
	if r.Limit <= 0 {
		return DefaultLimit
	}
	return r.Limit
}

// Registry holds the relations known to a Stitcher.
type Registry struct {
	byParent map[models.Kind][]Relation
}

func NewRegistry() *Registry {
	return &Registry{
		byParent: make(map[models.Kind][]Relation),
	}
}

func (r *Registry) Register(rel Relation) {
	r.byParent[rel.Parent] = append(r.byParent[rel.Parent], rel)
}

// RelationsOf returns the relations whose parent is kind, in registration order.
func (r *Registry) RelationsOf(kind models.Kind) []Relation {
	return r.byParent[kind]
}

// DefaultRegistry returns the marketplace relations: a product embeds its reviews and a
// vendor embeds its products.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Relation{
		Parent:    models.KindProduct,
		Child:     models.KindReview,
		Embed:     "reviews",
		ParentKey: "slug",
		ChildKey:  "product_slug",
		Limit:     DefaultLimit,
	})
	r.Register(Relation{
		Parent:    models.KindVendor,
		Child:     models.KindProduct,
		Embed:     "products",
		ParentKey: "slug",
		ChildKey:  "vendor_slug",
		Limit:     DefaultLimit,
	})
	return r
}
