// Package gosrc extracts shape descriptions from Go source, so the
// resolver can work directly off a package's type declarations instead of
// a hand-written description file.
package gosrc

import (
	"fmt"
	"go/types"
	"slices"

	"golang.org/x/tools/go/packages"

	"github.com/signadot/go-plate/debug"
	"github.com/signadot/go-plate/shape"
)

// Load loads the package matching pattern and extracts descriptions for
// the given type names. A struct becomes a single-variant description. An
// interface becomes a multi-variant description, one variant per concrete
// type in the package that implements it, in name order.
func Load(pattern string, typeNames ...string) ([]shape.TypeDef, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedImports |
			packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", pattern, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("%w: no package matches %q", shape.ErrUnknownType, pattern)
	}
	pkg := pkgs[0]
	for _, e := range pkg.Errors {
		return nil, fmt.Errorf("load %q: %s", pattern, e.Msg)
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("load %q: no type information", pattern)
	}
	if debug.Load() {
		debug.Logf("gosrc: loaded %s", pkg.PkgPath)
	}

	ld := &loader{scope: pkg.Types.Scope()}
	var defs []shape.TypeDef
	for _, name := range typeNames {
		def, err := ld.typeDef(name)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

type loader struct {
	scope *types.Scope
}

func (ld *loader) typeDef(name string) (shape.TypeDef, error) {
	obj := ld.scope.Lookup(name)
	if obj == nil {
		return shape.TypeDef{}, fmt.Errorf("%w: %s", shape.ErrUnknownType, name)
	}
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return shape.TypeDef{}, fmt.Errorf("%w: %s is not a type name", shape.ErrBadShape, name)
	}
	switch u := tn.Type().Underlying().(type) {
	case *types.Struct:
		v, err := ld.variant(name, u)
		if err != nil {
			return shape.TypeDef{}, err
		}
		return shape.TypeDef{Name: name, Variants: []shape.Variant{v}}, nil
	case *types.Interface:
		return ld.interfaceDef(name, u)
	default:
		return shape.TypeDef{}, fmt.Errorf("%w: %s is neither struct nor interface", shape.ErrBadShape, name)
	}
}

// interfaceDef collects the concrete types in the package implementing
// iface, each as one variant.
func (ld *loader) interfaceDef(name string, iface *types.Interface) (shape.TypeDef, error) {
	var impls []string
	for _, n := range ld.scope.Names() {
		tn, ok := ld.scope.Lookup(n).(*types.TypeName)
		if !ok || n == name {
			continue
		}
		if _, ok := tn.Type().Underlying().(*types.Struct); !ok {
			continue
		}
		if types.Implements(tn.Type(), iface) || types.Implements(types.NewPointer(tn.Type()), iface) {
			impls = append(impls, n)
		}
	}
	slices.Sort(impls)
	if len(impls) == 0 {
		return shape.TypeDef{}, fmt.Errorf("%w: no implementations of %s", shape.ErrBadShape, name)
	}
	def := shape.TypeDef{Name: name}
	for _, n := range impls {
		st := ld.scope.Lookup(n).(*types.TypeName).Type().Underlying().(*types.Struct)
		v, err := ld.variant(n, st)
		if err != nil {
			return shape.TypeDef{}, err
		}
		def.Variants = append(def.Variants, v)
	}
	if debug.Load() {
		debug.Logf("gosrc: %s implemented by %v", name, impls)
	}
	return def, nil
}

func (ld *loader) variant(name string, st *types.Struct) (shape.Variant, error) {
	v := shape.Variant{Name: name}
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if !f.Exported() {
			continue
		}
		ref, err := typeRef(f.Type())
		if err != nil {
			return shape.Variant{}, fmt.Errorf("%s.%s: %w", name, f.Name(), err)
		}
		v.Fields = append(v.Fields, shape.Field{Name: f.Name(), Type: ref})
	}
	return v, nil
}

// typeRef maps a Go type to the reference model. Named types keep their
// local name; unsupported forms such as channels or functions are
// rejected.
func typeRef(t types.Type) (shape.TypeRef, error) {
	switch t := t.(type) {
	case *types.Named:
		return shape.TypeRef{Name: t.Obj().Name()}, nil
	case *types.Basic:
		return shape.TypeRef{Name: t.Name()}, nil
	case *types.Pointer:
		elem, err := typeRef(t.Elem())
		if err != nil {
			return shape.TypeRef{}, err
		}
		return shape.TypeRef{Kind: shape.Pointer, Elem: &elem}, nil
	case *types.Slice:
		elem, err := typeRef(t.Elem())
		if err != nil {
			return shape.TypeRef{}, err
		}
		return shape.TypeRef{Kind: shape.Slice, Elem: &elem}, nil
	case *types.Map:
		key, err := typeRef(t.Key())
		if err != nil {
			return shape.TypeRef{}, err
		}
		elem, err := typeRef(t.Elem())
		if err != nil {
			return shape.TypeRef{}, err
		}
		return shape.TypeRef{Kind: shape.Map, Key: &key, Elem: &elem}, nil
	default:
		return shape.TypeRef{}, fmt.Errorf("%w: unsupported type %s", shape.ErrBadShape, t)
	}
}
