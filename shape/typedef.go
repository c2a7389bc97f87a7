// Package shape resolves the cross-type traversal relation over declarative
// type-shape descriptions.
//
// A shape description lists a type's variants and fields, each field tagged
// with its declared type. Given a set of descriptions and requested
// (host, target) relations, Resolve answers, per field, whether a traversal
// from the host to the target must enter that field: a field is entered if
// and only if its type can reach the target. The walk-into set is never
// configured by hand; it is derived from the descriptions alone.
//
// Mutually recursive types form a cluster and are resolved together, so a
// type's decision never depends on an unprocessed dependency.
package shape

import (
	"fmt"
	"strings"
)

// RefKind distinguishes the forms a field type reference can take.
type RefKind int

const (
	// Named references a type by name: a described type or an opaque
	// leaf such as string.
	Named RefKind = iota
	// Slice is a []T reference.
	Slice
	// Pointer is a *T reference.
	Pointer
	// Map is a map[K]V reference.
	Map
)

// TypeRef is a field's declared type.
type TypeRef struct {
	Kind RefKind
	Name string   // Named
	Key  *TypeRef // Map
	Elem *TypeRef // Slice, Pointer, Map
}

// Field is one named field of a variant.
type Field struct {
	Name string
	Type TypeRef
}

// Variant is one shape a type's values can take. Plain struct types have a
// single variant.
type Variant struct {
	Name   string
	Fields []Field
}

// TypeDef describes one type's variants and fields.
type TypeDef struct {
	Name     string
	Variants []Variant
}

// Target requests resolution of the relation from Host values to the
// values of type To inside them.
type Target struct {
	Host string
	To   string
}

// ParseTypeRef parses the compact reference syntax: a bare name, []T, *T,
// or map[K]V, nested arbitrarily.
func ParseTypeRef(s string) (TypeRef, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return TypeRef{}, fmt.Errorf("%w: empty reference", ErrBadTypeRef)
	case strings.HasPrefix(s, "[]"):
		elem, err := ParseTypeRef(s[2:])
		if err != nil {
			return TypeRef{}, err
		}
		return TypeRef{Kind: Slice, Elem: &elem}, nil
	case strings.HasPrefix(s, "*"):
		elem, err := ParseTypeRef(s[1:])
		if err != nil {
			return TypeRef{}, err
		}
		return TypeRef{Kind: Pointer, Elem: &elem}, nil
	case strings.HasPrefix(s, "map["):
		rest := s[len("map["):]
		depth := 1
		for i := 0; i < len(rest); i++ {
			switch rest[i] {
			case '[':
				depth++
			case ']':
				depth--
				if depth == 0 {
					key, err := ParseTypeRef(rest[:i])
					if err != nil {
						return TypeRef{}, err
					}
					elem, err := ParseTypeRef(rest[i+1:])
					if err != nil {
						return TypeRef{}, err
					}
					return TypeRef{Kind: Map, Key: &key, Elem: &elem}, nil
				}
			}
		}
		return TypeRef{}, fmt.Errorf("%w: unbalanced map key in %q", ErrBadTypeRef, s)
	case strings.ContainsAny(s, "[]* \t"):
		return TypeRef{}, fmt.Errorf("%w: %q", ErrBadTypeRef, s)
	default:
		return TypeRef{Name: s}, nil
	}
}

// String renders the reference in the syntax ParseTypeRef accepts.
func (r TypeRef) String() string {
	switch r.Kind {
	case Named:
		return r.Name
	case Slice:
		return "[]" + r.Elem.String()
	case Pointer:
		return "*" + r.Elem.String()
	case Map:
		return "map[" + r.Key.String() + "]" + r.Elem.String()
	}
	return fmt.Sprintf("TypeRef(%d)", int(r.Kind))
}

// names collects the named types referenced by r, in syntactic order.
func (r TypeRef) names() []string {
	switch r.Kind {
	case Named:
		return []string{r.Name}
	case Slice, Pointer:
		return r.Elem.names()
	case Map:
		return append(r.Key.names(), r.Elem.names()...)
	}
	return nil
}
