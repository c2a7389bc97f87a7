package shape

import (
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/go-plate/debug"
)

// Resolution answers reachability and walk-into questions for a resolved
// set of type descriptions. It is what a decomposition generator consumes:
// by the time it exists, every requested relation is known resolvable.
type Resolution struct {
	defs    map[string]*TypeDef
	edges   map[string][]string
	order   []string
	targets []Target
	reach   map[string]map[string]bool // target -> names reaching it
}

// FieldDecision is the resolved role of one field in a host-to-target
// relation.
type FieldDecision struct {
	Variant string
	Field   string
	Type    string
	// Direct reports that the field's type is the target itself.
	Direct bool
	// Enter reports that a traversal must walk into the field because
	// its type can reach the target. Direct fields are always entered.
	Enter bool
}

// Resolve checks the descriptions, orders them so that every type's
// dependencies are available before the type itself (mutually recursive
// clusters become available together), and verifies that each requested
// target is reachable from its host. An unreachable target is a
// generation-time failure, reported here as ErrNoPath.
func Resolve(defs []TypeDef, targets []Target) (*Resolution, error) {
	r := &Resolution{
		defs:    make(map[string]*TypeDef, len(defs)),
		edges:   make(map[string][]string, len(defs)),
		targets: targets,
		reach:   map[string]map[string]bool{},
	}
	for i := range defs {
		def := &defs[i]
		if _, ok := r.defs[def.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateType, def.Name)
		}
		r.defs[def.Name] = def
	}
	for _, def := range defs {
		r.edges[def.Name] = dependencies(&def)
	}
	r.order = sccOrder(r.defs, r.edges)
	if debug.Resolve() {
		debug.Logf("shape: order %s", strings.Join(r.order, " "))
	}

	for _, t := range targets {
		if _, ok := r.defs[t.Host]; !ok {
			return nil, fmt.Errorf("%w: target host %s", ErrUnknownType, t.Host)
		}
		if !r.Reaches(t.Host, t.To) {
			return nil, fmt.Errorf("%w: %s has no %s", ErrNoPath, t.Host, t.To)
		}
	}
	return r, nil
}

// dependencies returns the distinct named types referenced by def's
// fields, in declared order.
func dependencies(def *TypeDef) []string {
	var deps []string
	seen := map[string]bool{}
	for _, v := range def.Variants {
		for _, f := range v.Fields {
			for _, name := range f.Type.names() {
				if !seen[name] {
					seen[name] = true
					deps = append(deps, name)
				}
			}
		}
	}
	return deps
}

// Order returns the described type names with dependencies first. Members
// of a mutually recursive cluster are adjacent, ordered by name.
func (r *Resolution) Order() []string {
	return slices.Clone(r.order)
}

// Targets returns the requested relations.
func (r *Resolution) Targets() []Target {
	return slices.Clone(r.targets)
}

// Reaches reports whether values of type to occur inside values of type
// host. A type always reaches itself.
func (r *Resolution) Reaches(host, to string) bool {
	if host == to {
		return true
	}
	return r.reachSet(to)[host]
}

// reachSet returns the set of names that can reach to, computing and
// caching it on first use. The set always contains to itself.
func (r *Resolution) reachSet(to string) map[string]bool {
	if set, ok := r.reach[to]; ok {
		return set
	}
	set := map[string]bool{to: true}
	for changed := true; changed; {
		changed = false
		for name, deps := range r.edges {
			if set[name] {
				continue
			}
			for _, dep := range deps {
				if set[dep] {
					set[name] = true
					changed = true
					break
				}
			}
		}
	}
	if debug.Resolve() {
		names := make([]string, 0, len(set))
		for name := range set {
			names = append(names, name)
		}
		slices.Sort(names)
		debug.Logf("shape: reach(%s) = %s", to, strings.Join(names, " "))
	}
	r.reach[to] = set
	return set
}

// refReaches reports whether a field typed ref can contain a value of
// type to.
func (r *Resolution) refReaches(ref TypeRef, to string) bool {
	for _, name := range ref.names() {
		if r.Reaches(name, to) {
			return true
		}
	}
	return false
}

// WalkInto reports whether a traversal from host to to must enter the
// given field. It returns ErrUnknownType when host, its variant, or the
// field is not described.
func (r *Resolution) WalkInto(host, variant, field, to string) (bool, error) {
	def, ok := r.defs[host]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownType, host)
	}
	for _, v := range def.Variants {
		if v.Name != variant {
			continue
		}
		for _, f := range v.Fields {
			if f.Name == field {
				return r.refReaches(f.Type, to), nil
			}
		}
		return false, fmt.Errorf("%w: field %s.%s.%s", ErrUnknownType, host, variant, field)
	}
	return false, fmt.Errorf("%w: variant %s.%s", ErrUnknownType, host, variant)
}

// Decisions returns the per-field resolution of the relation from host to
// to, covering every variant in declared order.
func (r *Resolution) Decisions(host, to string) ([]FieldDecision, error) {
	def, ok := r.defs[host]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, host)
	}
	var ds []FieldDecision
	for _, v := range def.Variants {
		for _, f := range v.Fields {
			ds = append(ds, FieldDecision{
				Variant: v.Name,
				Field:   f.Name,
				Type:    f.Type.String(),
				Direct:  f.Type.Kind == Named && f.Type.Name == to,
				Enter:   r.refReaches(f.Type, to),
			})
		}
	}
	return ds, nil
}

// sccOrder orders the described types so that dependencies precede
// dependents, collapsing strongly connected clusters: Tarjan emits each
// cluster only after everything it depends on, so concatenating clusters
// in emission order gives a valid generation order. Iteration is sorted
// for determinism.
func sccOrder(defs map[string]*TypeDef, edges map[string][]string) []string {
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	slices.Sort(names)

	t := &tarjan{
		defs:    defs,
		edges:   edges,
		index:   map[string]int{},
		lowlink: map[string]int{},
		onStack: map[string]bool{},
	}
	for _, name := range names {
		if _, visited := t.index[name]; !visited {
			t.visit(name)
		}
	}

	var order []string
	for _, scc := range t.sccs {
		slices.Sort(scc)
		order = append(order, scc...)
	}
	return order
}

type tarjan struct {
	defs    map[string]*TypeDef
	edges   map[string][]string
	index   map[string]int
	lowlink map[string]int
	onStack map[string]bool
	stack   []string
	next    int
	sccs    [][]string
}

func (t *tarjan) visit(name string) {
	t.index[name] = t.next
	t.lowlink[name] = t.next
	t.next++
	t.stack = append(t.stack, name)
	t.onStack[name] = true

	for _, dep := range t.edges[name] {
		if _, ok := t.defs[dep]; !ok {
			// opaque leaf, not part of the order
			continue
		}
		if _, visited := t.index[dep]; !visited {
			t.visit(dep)
			t.lowlink[name] = min(t.lowlink[name], t.lowlink[dep])
		} else if t.onStack[dep] {
			t.lowlink[name] = min(t.lowlink[name], t.index[dep])
		}
	}

	if t.lowlink[name] == t.index[name] {
		var scc []string
		for {
			top := t.stack[len(t.stack)-1]
			t.stack = t.stack[:len(t.stack)-1]
			t.onStack[top] = false
			scc = append(scc, top)
			if top == name {
				break
			}
		}
		t.sccs = append(t.sccs, scc)
	}
}
