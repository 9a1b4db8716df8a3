package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/saree-sanctuary/internal/filter"
	"github.com/javajoker/saree-sanctuary/internal/models"
)

var catalog = []models.Document{
	{"title": "Royal Banarasi Brocade", "description": "Rich zari work with traditional motifs.", "saree_type": "Banarasi", "color": "Maroon", "material": "Silk", "occasion": "Wedding"},
	{"title": "Classic Kanjivaram Gold", "description": "Pure silk with gold border.", "saree_type": "Kanjivaram", "color": "Indigo", "material": "Silk", "occasion": "Festive"},
	{"title": "Summer Breeze Cotton", "description": "Lightweight cotton saree.", "saree_type": "Cotton", "color": "Saffron", "material": "Cotton", "occasion": "Casual"},
	{"title": "Untitled", "saree_type": "cotton"},
}

func titles(spec filter.Spec) []string {
	var out []string
	for _, doc := range catalog {
		if filter.Match(spec, doc) {
			out = append(out, doc["title"].(string))
		}
	}
	return out
}

func TestProductQuery_NoParametersMatchesEverything(t *testing.T) {
	spec := filter.ProductQuery{}.Spec()
	assert.Len(t, titles(spec), len(catalog))
	assert.True(t, filter.Match(spec, models.Document{}))
	assert.True(t, filter.Match(nil, models.Document{"anything": 1}))
}

func TestProductQuery_ExactMatchIsCaseSensitive(t *testing.T) {
	spec := filter.ProductQuery{SareeType: "Cotton"}.Spec()
	assert.Equal(t, []string{"Summer Breeze Cotton"}, titles(spec))
}

func TestProductQuery_FreeText(t *testing.T) {
	spec := filter.ProductQuery{Q: "banarasi"}.Spec()
	assert.Equal(t, []string{"Royal Banarasi Brocade"}, titles(spec))

	// description is searched too
	spec = filter.ProductQuery{Q: "GOLD BORDER"}.Spec()
	assert.Equal(t, []string{"Classic Kanjivaram Gold"}, titles(spec))

	spec = filter.ProductQuery{Q: "paithani"}.Spec()
	assert.Empty(t, titles(spec))
}

func TestProductQuery_ClausesAreConjunctive(t *testing.T) {
	spec := filter.ProductQuery{Q: "silk", Material: "Silk", Occasion: "Festive"}.Spec()
	assert.Equal(t, []string{"Classic Kanjivaram Gold"}, titles(spec))

	and, ok := spec.(filter.And)
	require.True(t, ok)
	assert.Len(t, and.Clauses, 3)
}

func TestProductQuery_SpecShape(t *testing.T) {
	spec := filter.ProductQuery{Q: "zari", Color: "Maroon"}.Spec()
	assert.Equal(t, filter.And{Clauses: []filter.Spec{
		filter.SubstringAny{Fields: []string{"title", "description"}, Needle: "zari"},
		filter.Equals{Field: "color", Value: "Maroon"},
	}}, spec)
}

func TestMatch_NonStringValues(t *testing.T) {
	doc := models.Document{"stock": int64(5), "title": nil}
	assert.False(t, filter.Match(filter.Eq("stock", "5"), doc))
	assert.False(t, filter.Match(filter.SubstringAny{Fields: []string{"title"}, Needle: ""}, doc))
}

func TestMatch_SubstringWithoutFieldsMatchesNothing(t *testing.T) {
	assert.False(t, filter.Match(filter.SubstringAny{Needle: "silk"}, catalog[0]))
}

type recorder struct{ seen []string }

func (r *recorder) Equals(filter.Equals) error {
	r.seen = append(r.seen, "equals")
	return nil
}

func (r *recorder) SubstringAny(filter.SubstringAny) error {
	r.seen = append(r.seen, "substring")
	return nil
}

func (r *recorder) And(filter.And) error {
	r.seen = append(r.seen, "and")
	return nil
}

func TestVisit(t *testing.T) {
	r := &recorder{}
	require.NoError(t, filter.Visit(nil, r))
	require.NoError(t, filter.Visit(filter.Eq("slug", "x"), r))
	require.NoError(t, filter.Visit(filter.SubstringAny{}, r))
	assert.Equal(t, []string{"and", "equals", "substring"}, r.seen)
}
