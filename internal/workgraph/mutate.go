package workgraph

import (
	"fmt"

	"github.com/dagforge/reduce/internal/dagnode"
)

// ReplaceInPlace swaps the node value occupying h for newNode without
// touching any edges. Callers (reduceengine) are responsible for enforcing
// that newNode has the same Kind and Arity as the node it's replacing and
// that newNode's stored parents already match h's current working-graph
// parents — this method trusts that and only updates the identity map.
func (g *Graph) ReplaceInPlace(h Handle, newNode dagnode.Node) error {
	if !g.live(h) {
		return fmt.Errorf("handle %d is not live", h)
	}
	old := g.entries[h].node
	delete(g.byNode, old)
	g.entries[h].node = newNode
	g.byNode[newNode] = h
	return nil
}

// Replace rewires every edge that currently points at h so that it points
// at replacement instead, inserting replacement (and transitively, any of
// its stored parents not already present by reference identity) if
// necessary, and sweeping h and any ancestor of h that becomes unreachable
// from every output as a result.
//
// If replacement is reference-identical to a node already live in the
// graph, that existing entry is reused and its current working-graph
// parents are kept (its stored parents, if different, are ignored) — this
// is the "reference-equal to an existing entry" case from §4.4's
// description of Replace.
//
// Replace returns the handle replacement now occupies.
func (g *Graph) Replace(h Handle, replacement dagnode.Node) (Handle, error) {
	if !g.live(h) {
		return invalidHandle, fmt.Errorf("handle %d is not live", h)
	}
	newH, err := g.resolveOrInsert(replacement)
	if err != nil {
		return invalidHandle, err
	}
	if newH == h {
		// A rule replacing a node with itself (or with something that
		// resolves back to the same entry) is a no-op.
		return h, nil
	}

	oldParents := g.entries[h].parents

	// Repoint every occurrence of h in any child's parent list, and in
	// the outputs list, to newH.
	for _, c := range g.ChildHandles(h) {
		parents := g.entries[c].parents
		for i, p := range parents {
			if p == h {
				parents[i] = newH
				g.entries[newH].children = append(g.entries[newH].children, c)
			}
		}
	}
	for i, out := range g.outputs {
		if out == h {
			g.outputs[i] = newH
		}
	}

	// h itself is now disconnected: clear its own parent edges (removing
	// it from each former parent's children multiset) and mark it
	// removed.
	g.disconnectParentEdges(h, oldParents)
	g.removeEntry(h)

	// Cascade: any former parent of h that's no longer reachable from
	// any output is swept too.
	g.sweepUnreachable(oldParents)

	return newH, nil
}

// resolveOrInsert returns the handle for n, inserting n (and, recursively,
// any of its stored parents not already present) if it isn't already a
// live entry. Matching an existing entry is always by reference identity,
// never by value equality (§4.4, §9 open question 1).
func (g *Graph) resolveOrInsert(n dagnode.Node) (Handle, error) {
	if h, ok := g.byNode[n]; ok && g.live(h) {
		return h, nil
	}
	if err := validateKindShape(n); err != nil {
		return invalidHandle, err
	}
	parentNodes := n.ParentsAsStored()
	parentHandles := make([]Handle, 0, len(parentNodes))
	for _, p := range parentNodes {
		ph, err := g.resolveOrInsert(p)
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

// disconnectParentEdges removes h from the children multiset of each of
// its former parents. oldParents is passed explicitly (rather than
// re-reading g.entries[h].parents) because by the time this is called h's
// own parent list is about to be discarded.
func (g *Graph) disconnectParentEdges(h Handle, oldParents []Handle) {
	for _, p := range oldParents {
		if !g.live(p) {
			continue
		}
		children := g.entries[p].children
		for i, c := range children {
			if c == h {
				g.entries[p].children = append(children[:i], children[i+1:]...)
				break
			}
		}
	}
}

func (g *Graph) removeEntry(h Handle) {
	delete(g.byNode, g.entries[h].node)
	g.entries[h] = entry{removed: true}
}

// sweepUnreachable removes every handle in candidates (and, transitively,
// their own former parents) that is no longer reachable from any output,
// implementing the "effects of mutation" rule from §4.4: any previously
// connected node that becomes unreachable is removed from the graph.
func (g *Graph) sweepUnreachable(candidates []Handle) {
	queue := append([]Handle{}, candidates...)
	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]
		if !g.live(h) {
			continue
		}
		if g.isOutput(h) || len(g.entries[h].children) > 0 {
			continue
		}
		oldParents := g.entries[h].parents
		g.disconnectParentEdges(h, oldParents)
		g.removeEntry(h)
		queue = append(queue, oldParents...)
	}
}

func (g *Graph) isOutput(h Handle) bool {
	for _, out := range g.outputs {
		if out == h {
			return true
		}
	}
	return false
}
