package workgraph

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"

	"github.com/dagforge/reduce/internal/dagnode"
)

// Graph is the mutable working graph (§3, §4.2). It is keyed by reference
// identity of the node instances inserted into it: since our Node
// implementations use pointer receivers (see dagnode), reference identity
// is exactly Go pointer identity, and Graph can therefore key its identity
// map directly on dagnode.Node values.
type Graph struct {
	entries []entry
	byNode  map[dagnode.Node]Handle

	outputs      []Handle
	placeholders []Handle
}

// NewFromOutputs builds a working graph from the stored-parent closure of
// outputs (§4.2 "Build from output set"), collecting every Placeholder in
// that closure into the placeholder list. It checks the kind-of-parents
// invariant from §3 on every node and aggregates every such violation into
// a single error via go-multierror, rather than failing on the first one,
// so a caller debugging a hand-built graph sees every problem at once. A
// cycle stops the build at once and is returned on its own.
func NewFromOutputs(outputs []dagnode.Node) (*Graph, error) {
	g := &Graph{byNode: make(map[dagnode.Node]Handle)}

	var errs *multierror.Error
	visiting := make(map[dagnode.Node]bool)

	var visit func(n dagnode.Node) (Handle, error)
	visit = func(n dagnode.Node) (Handle, error) {
		if h, ok := g.byNode[n]; ok {
			return h, nil
		}
		if visiting[n] {
			return invalidHandle, fmt.Errorf("cycle detected at node of kind %s", n.Kind())
		}
		visiting[n] = true
		defer delete(visiting, n)

		if err := validateKindShape(n); err != nil {
			errs = multierror.Append(errs, err)
		}

		parentNodes := n.ParentsAsStored()
		parentHandles := make([]Handle, 0, len(parentNodes))
		for _, p := range parentNodes {
			ph, err := visit(p)
			if err != nil {
				return invalidHandle, err
			}
			parentHandles = append(parentHandles, ph)
		}

		h := Handle(len(g.entries))
		g.entries = append(g.entries, entry{node: n, parents: parentHandles})
		g.byNode[n] = h
		for _, ph := range parentHandles {
			g.entries[ph].children = append(g.entries[ph].children, h)
		}
		if n.Kind() == dagnode.KindPlaceholder {
			g.placeholders = append(g.placeholders, h)
		}
		return h, nil
	}

	for _, out := range outputs {
		h, err := visit(out)
		if err != nil {
			return nil, err
		}
		g.outputs = append(g.outputs, h)
	}

	if errs.ErrorOrNil() != nil {
		return nil, errs.ErrorOrNil()
	}
	return g, nil
}

// validateKindShape checks the per-kind structural invariants from §3 that
// don't require the working graph to already exist: a Placeholder/Generator
// has zero parents, and a TransformerView has exactly one parent which is a
// PreparableTransformer.
func validateKindShape(n dagnode.Node) error {
	switch n.Kind() {
	case dagnode.KindPlaceholder, dagnode.KindGenerator:
		if len(n.ParentsAsStored()) != 0 {
			return &dagnode.MalformedNodeError{Kind: n.Kind(), Reason: "source nodes must have zero parents"}
		}
	case dagnode.KindTransformerView:
		parents := n.ParentsAsStored()
		if len(parents) != 1 {
			return &dagnode.MalformedNodeError{Kind: n.Kind(), Reason: "a view must have exactly one parent"}
		}
		if _, ok := parents[0].(dagnode.Preparable); !ok {
			return &dagnode.MalformedNodeError{Kind: n.Kind(), Reason: "a view's parent must be a PreparableTransformer"}
		}
	}
	return nil
}

// NodeAt returns the node currently occupying h, or nil if h does not
// identify a live entry.
func (g *Graph) NodeAt(h Handle) dagnode.Node {
	if !g.live(h) {
		return nil
	}
	return g.entries[h].node
}

// HandleOf returns the handle for n, if n is currently a live entry.
func (g *Graph) HandleOf(n dagnode.Node) (Handle, bool) {
	h, ok := g.byNode[n]
	if !ok || !g.live(h) {
		return invalidHandle, false
	}
	return h, true
}

func (g *Graph) live(h Handle) bool {
	return h >= 0 && int(h) < len(g.entries) && !g.entries[h].removed
}

// ParentHandles returns h's current working-graph parents, in order,
// possibly with duplicates.
func (g *Graph) ParentHandles(h Handle) []Handle {
	if !g.live(h) {
		return nil
	}
	out := make([]Handle, len(g.entries[h].parents))
	copy(out, g.entries[h].parents)
	return out
}

// ParentNodes is ParentHandles resolved to node values.
func (g *Graph) ParentNodes(h Handle) []dagnode.Node {
	handles := g.ParentHandles(h)
	out := make([]dagnode.Node, len(handles))
	for i, ph := range handles {
		out[i] = g.NodeAt(ph)
	}
	return out
}

// ChildHandles returns h's current children, as a multiset (a parent used
// more than once by the same child appears once per use).
func (g *Graph) ChildHandles(h Handle) []Handle {
	if !g.live(h) {
		return nil
	}
	out := make([]Handle, len(g.entries[h].children))
	copy(out, g.entries[h].children)
	return out
}

// IsViewed reports whether h currently has at least one
// KindTransformerView child.
func (g *Graph) IsViewed(h Handle) bool {
	for _, ch := range g.ChildHandles(h) {
		if g.NodeAt(ch).Kind() == dagnode.KindTransformerView {
			return true
		}
	}
	return false
}

// Outputs returns the working graph's ordered output handles.
func (g *Graph) Outputs() []Handle {
	out := make([]Handle, len(g.outputs))
	copy(out, g.outputs)
	return out
}

// Placeholders returns every live KindPlaceholder handle, in the order they
// were first discovered while building the graph (build order is stable;
// rewrites never reorder it, they can only add to or remove from it).
func (g *Graph) Placeholders() []Handle {
	out := make([]Handle, 0, len(g.placeholders))
	for _, h := range g.placeholders {
		if g.live(h) {
			out = append(out, h)
		}
	}
	return out
}

// Handles returns every live handle, in insertion order.
func (g *Graph) Handles() []Handle {
	out := make([]Handle, 0, len(g.entries))
	for h := range g.entries {
		if g.live(Handle(h)) {
			out = append(out, Handle(h))
		}
	}
	return out
}

// TopoOrder returns an ordering of every live handle where every node
// follows all of its current working-graph parents (§4.2). Ties are broken
// by insertion order, which is deterministic and stable across calls on an
// unchanged graph.
func (g *Graph) TopoOrder() []Handle {
	visited := make(map[Handle]bool, len(g.entries))
	order := make([]Handle, 0, len(g.entries))

	var visit func(h Handle)
	visit = func(h Handle) {
		if visited[h] || !g.live(h) {
			return
		}
		visited[h] = true
		for _, p := range g.entries[h].parents {
			visit(p)
		}
		order = append(order, h)
	}

	handles := g.Handles()
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	for _, h := range handles {
		visit(h)
	}
	return order
}
