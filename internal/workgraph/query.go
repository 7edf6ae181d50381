package workgraph

import "github.com/dagforge/reduce/internal/dagnode"

// AncestorsByKind returns every ancestor of h (via working-graph parent
// edges) within maxDepth hops whose ancestry includes tag. maxDepth < 0
// means unbounded. h itself is never included.
func (g *Graph) AncestorsByKind(h Handle, tag dagnode.Tag, maxDepth int) []Handle {
	var out []Handle
	seen := map[Handle]bool{h: true}
	type frame struct {
		h     Handle
		depth int
	}
	queue := []frame{{h, 0}}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		if maxDepth >= 0 && f.depth >= maxDepth {
			continue
		}
		for _, p := range g.ParentHandles(f.h) {
			if seen[p] {
				continue
			}
			seen[p] = true
			if hasTag(g.NodeAt(p), tag) {
				out = append(out, p)
			}
			queue = append(queue, frame{p, f.depth + 1})
		}
	}
	return out
}

// AncestorsShortestPaths performs a breadth-first search from h and returns,
// for every ancestor within maxDepth hops, the single shortest descent
// chain of nodes from h to that ancestor (h first, ancestor last).
// maxDepth < 0 means unbounded.
func (g *Graph) AncestorsShortestPaths(h Handle, maxDepth int) [][]dagnode.Node {
	type frame struct {
		h    Handle
		path []Handle
	}
	var out [][]dagnode.Node
	seen := map[Handle]bool{h: true}
	queue := []frame{{h, []Handle{h}}}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		if maxDepth >= 0 && len(f.path)-1 >= maxDepth {
			continue
		}
		for _, p := range g.ParentHandles(f.h) {
			if seen[p] {
				continue
			}
			seen[p] = true
			path := append(append([]Handle{}, f.path...), p)
			nodes := make([]dagnode.Node, len(path))
			for i, ph := range path {
				nodes[i] = g.NodeAt(ph)
			}
			out = append(out, nodes)
			queue = append(queue, frame{p, path})
		}
	}
	return out
}

// IsAncestorOrSelf reports whether candidate is target itself or reachable
// from target via working-graph parent edges. This backs the
// DanglingReference check: every mutation primitive requires its "existing"
// argument to satisfy this relationship to the rule's target.
func (g *Graph) IsAncestorOrSelf(target, candidate Handle) bool {
	if target == candidate {
		return true
	}
	seen := map[Handle]bool{target: true}
	queue := []Handle{target}
	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]
		for _, p := range g.ParentHandles(h) {
			if p == candidate {
				return true
			}
			if seen[p] {
				continue
			}
			seen[p] = true
			queue = append(queue, p)
		}
	}
	return false
}

func hasTag(n dagnode.Node, tag dagnode.Tag) bool {
	for _, t := range dagnode.AncestryOf(n.Kind(), n.Capabilities()) {
		if t == tag {
			return true
		}
	}
	return false
}

// HasTag exposes hasTag for callers outside this package that need the same
// ancestry-matching logic the query methods use internally (the reduction
// context's ParentsByKind filters on it).
func HasTag(n dagnode.Node, tag dagnode.Tag) bool {
	return hasTag(n, tag)
}
