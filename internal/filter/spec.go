// Package filter describes document predicates as a closed set of variants.
//
// A Spec is one of Equals, SubstringAny or And. Store backends translate a Spec into
// their native query language; Match evaluates it against an in-memory document.
package filter

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned by backends that receive a Spec outside the closed set.
var ErrUnsupported = errors.New("filter: unsupported spec")

// Spec is a document predicate. Only the types in this package implement it.
type Spec interface {
	spec()
}

// Equals matches documents whose Field holds exactly Value (case-sensitive).
type Equals struct {
	Field string
	Value string
}

// SubstringAny matches documents where Needle is a case-insensitive substring of at
// least one of Fields.
type SubstringAny struct {
	Fields []string
	Needle string
}

// And matches documents satisfying every clause. An empty And matches everything.
type And struct {
	Clauses []Spec
}

func (Equals) spec()       {}
func (SubstringAny) spec() {}
func (And) spec()          {}

// All matches every document.
func All() Spec {
	return And{}
}

func Eq(field, value string) Spec {
	return Equals{Field: field, Value: value}
}

// Visitor receives the variant held by a Spec.
type Visitor interface {
	Equals(Equals) error
	SubstringAny(SubstringAny) error
	And(And) error
}

// Visit dispatches s to v. A nil Spec is visited as All.
func Visit(s Spec, v Visitor) error {
	switch spec := s.(type) {
	case nil:
		return v.And(And{})
	case Equals:
		return v.Equals(spec)
	case SubstringAny:
		return v.SubstringAny(spec)
	case And:
		return v.And(spec)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupported, s)
	}
}
