// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package graphviz

import (
	"bufio"
	"cmp"
	"io"
	"maps"
	"slices"

	"github.com/dagforge/reduce/internal/dagnode"
	"github.com/dagforge/reduce/internal/workgraph"
)

// Graph annotates a *workgraph.Graph with the extra information needed to
// render it in the Graphviz language.
type Graph struct {
	Content *workgraph.Graph

	Attrs            Attributes
	DefaultNodeAttrs Attributes
	DefaultEdgeAttrs Attributes

	DefaultEdgeDirectionIn  EdgeAttachmentDirection
	DefaultEdgeDirectionOut EdgeAttachmentDirection

	// NodeAttrs, if set, returns additional per-node attributes beyond
	// DefaultNodeAttrs and the default "label" attribute (the node's
	// dagnode.Kind). A returned "label" entry overrides the default.
	NodeAttrs func(h workgraph.Handle, n dagnode.Node) Attributes
}

// WriteDirectedGraph generates a Graphviz-language representation of g on
// w.
//
// If this function returns an error then an unspecified amount of partial
// data might already have been written to the writer before returning it.
func WriteDirectedGraph(g *Graph, w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString("digraph {\n"); err != nil {
		return err
	}
	if len(g.Attrs) != 0 {
		names := slices.Collect(maps.Keys(g.Attrs))
		slices.Sort(names)
		for _, name := range names {
			if _, err := bw.WriteString("  "); err != nil {
				return err
			}
			if err := writeGraphvizAttr(name, g.Attrs[name], bw); err != nil {
				return err
			}
			if _, err := bw.WriteString(";\n"); err != nil {
				return err
			}
		}
	}
	if len(g.DefaultNodeAttrs) != 0 {
		if _, err := bw.WriteString("  node ["); err != nil {
			return err
		}
		if err := writeGraphvizAttrList(g.DefaultNodeAttrs, bw); err != nil {
			return err
		}
		if _, err := bw.WriteString("];\n"); err != nil {
			return err
		}
	}
	if len(g.DefaultEdgeAttrs) != 0 {
		if _, err := bw.WriteString("  edge ["); err != nil {
			return err
		}
		if err := writeGraphvizAttrList(g.DefaultEdgeAttrs, bw); err != nil {
			return err
		}
		if _, err := bw.WriteString("];\n"); err != nil {
			return err
		}
	}

	// We'll write the nodes out in handle order, which is stable across
	// calls on an unchanged graph, so output is deterministic for easier
	// unit testing.
	handles := g.Content.Handles()
	slices.SortFunc(handles, func(a, b workgraph.Handle) int { return cmp.Compare(a, b) })

	for _, h := range handles {
		n := g.Content.NodeAt(h)
		attrs := Attributes{"label": Val(n.Kind().String())}
		if g.NodeAttrs != nil {
			for k, v := range g.NodeAttrs(h, n) {
				attrs[k] = v
			}
		}
		if _, err := bw.WriteString("  "); err != nil {
			return err
		}
		if _, err := bw.WriteString(quoteForGraphviz(idFor(h))); err != nil {
			return err
		}
		if len(attrs) != 0 {
			if _, err := bw.WriteString(" ["); err != nil {
				return err
			}
			if err := writeGraphvizAttrList(attrs, bw); err != nil {
				return err
			}
			if _, err := bw.WriteString("]"); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(";\n"); err != nil {
			return err
		}
	}

	// Edges run from a parent (the producer) to the child that depends on
	// it, sorted lexically by (from, to) for the same determinism reason.
	type edge struct{ from, to workgraph.Handle }
	var edges []edge
	for _, h := range handles {
		for _, p := range g.Content.ParentHandles(h) {
			edges = append(edges, edge{from: p, to: h})
		}
	}
	slices.SortFunc(edges, func(a, b edge) int {
		if c := cmp.Compare(a.from, b.from); c != 0 {
			return c
		}
		return cmp.Compare(a.to, b.to)
	})
	for _, e := range edges {
		if _, err := bw.WriteString("  "); err != nil {
			return err
		}
		if _, err := bw.WriteString(quoteForGraphviz(idFor(e.from))); err != nil {
			return err
		}
		if _, err := bw.WriteString(string(g.DefaultEdgeDirectionOut)); err != nil {
			return err
		}
		if _, err := bw.WriteString(" -> "); err != nil {
			return err
		}
		if _, err := bw.WriteString(quoteForGraphviz(idFor(e.to))); err != nil {
			return err
		}
		if _, err := bw.WriteString(string(g.DefaultEdgeDirectionIn)); err != nil {
			return err
		}
		if _, err := bw.WriteString(";\n"); err != nil {
			return err
		}
	}

	if _, err := bw.WriteString("}\n"); err != nil {
		return err
	}

	return bw.Flush()
}
