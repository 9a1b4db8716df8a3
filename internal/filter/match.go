package filter

import (
	"strings"

	"github.com/javajoker/saree-sanctuary/internal/models"
)

// Match reports whether doc satisfies s. Only string-valued fields can match Equals or
// SubstringAny; a nil Spec matches everything.
func Match(s Spec, doc models.Document) bool {
	m := &matcher{doc: doc}
	if err := Visit(s, m); err != nil {
		return false
	}
	return m.ok
}

type matcher struct {
	doc models.Document
	ok  bool
}

func (m *matcher) Equals(e Equals) error {
	v, ok := m.doc.String(e.Field)
	m.ok = ok && v == e.Value
	return nil
}

func (m *matcher) SubstringAny(s SubstringAny) error {
	needle := strings.ToLower(s.Needle)
	m.ok = false
	for _, field := range s.Fields {
		if v, ok := m.doc.String(field); ok && strings.Contains(strings.ToLower(v), needle) {
			m.ok = true
			return nil
		}
	}
	return nil
}

func (m *matcher) And(a And) error {
	for _, clause := range a.Clauses {
		if !Match(clause, m.doc) {
			m.ok = false
			return nil
		}
	}
	m.ok = true
	return nil
}
