// Package identity rewrites store identifiers into the external "id" field on the way out.
package identity

import (
	"fmt"

	"github.com/javajoker/saree-sanctuary/internal/models"
)

// Normalize returns a copy of doc where the internal identifier has been replaced by
// its string form under models.ExternalIDField. Documents embedded one level down
// (stitched relations) are normalized as well. Already normalized documents are
// returned unchanged.
func Normalize(doc models.Document) models.Document {
	if doc == nil {
		return nil
	}
	out := swapID(doc.Clone())
	for key, value := range out {
		if embedded, ok := value.([]models.Document); ok {
			out[key] = normalizeEmbedded(embedded)
		}
	}
	return out
}

// NormalizeAll normalizes every document of docs; the result is never nil.
func NormalizeAll(docs []models.Document) []models.Document {
	out := make([]models.Document, 0, len(docs))
	for _, doc := range docs {
		out = append(out, Normalize(doc))
	}
	return out
}

func normalizeEmbedded(docs []models.Document) []models.Document {
	out := make([]models.Document, 0, len(docs))
	for _, doc := range docs {
		if doc == nil {
			out = append(out, nil)
			continue
		}
		out = append(out, swapID(doc.Clone()))
	}
	return out
}

func swapID(doc models.Document) models.Document {
	if raw, ok := doc[models.InternalIDField]; ok {
		delete(doc, models.InternalIDField)
		doc[models.ExternalIDField] = String(raw)
	}
	return doc
}

// String renders a store identifier. ObjectIDs use their hex form.
func String(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case interface{ Hex() string }:
		return v.Hex()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
