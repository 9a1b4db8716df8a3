package filter

// SearchFields are the product fields scanned by the free-text parameter q.
var SearchFields = []string{"title", "description"}

// ProductQuery holds the optional listing parameters for products. Empty strings are
// treated as absent.
type ProductQuery struct {
	Q         string
	SareeType string
	Color     string
	Material  string
	Occasion  string
}

// Spec combines every present parameter into one conjunction.
func (p ProductQuery) Spec() Spec {
	var clauses []Spec

	if p.Q != "" {
		clauses = append(clauses, SubstringAny{Fields: SearchFields, Needle: p.Q})
	}

	exact := []struct {
		field string
		value string
	}{
		{"saree_type", p.SareeType},
		{"color", p.Color},
		{"material", p.Material},
		{"occasion", p.Occasion},
	}
	for _, e := range exact {
		if e.value != "" {
			clauses = append(clauses, Equals{Field: e.field, Value: e.value})
		}
	}

	return And{Clauses: clauses}
}
