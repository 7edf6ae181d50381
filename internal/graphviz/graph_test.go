// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package graphviz

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dagforge/reduce/internal/dagnode"
	"github.com/dagforge/reduce/internal/workgraph"
)

func TestWriteDirectedGraph(t *testing.T) {
	a := &dagnode.PlaceholderNode{Name: "a", ResultTy: dagnode.SimpleResultType("number")}
	b := &dagnode.PlaceholderNode{Name: "b", ResultTy: dagnode.SimpleResultType("number")}
	sum := &dagnode.Transformer{
		Op:       "Sum",
		Parents:  []dagnode.Node{a, b},
		ResultTy: dagnode.SimpleResultType("number"),
		ArityC:   dagnode.Variadic(1),
	}

	wg, err := workgraph.NewFromOutputs([]dagnode.Node{sum})
	if err != nil {
		t.Fatal(err)
	}

	g := &Graph{
		Content: wg,
		Attrs: map[string]Value{
			"rankdir": Val("LR"),
			"pad":     Val(1),
		},
		DefaultNodeAttrs: map[string]Value{
			"shape": Val("rectangle"),
		},
		DefaultEdgeAttrs: map[string]Value{
			"color": Val("red"),
		},
		DefaultEdgeDirectionOut: EdgeAttachmentSouth,
		DefaultEdgeDirectionIn:  EdgeAttachmentNorth,
		NodeAttrs: func(h workgraph.Handle, n dagnode.Node) Attributes {
			if p, ok := n.(*dagnode.PlaceholderNode); ok {
				return Attributes{"label": Val(p.Name)}
			}
			return nil
		},
	}

	var buf strings.Builder
	if err := WriteDirectedGraph(g, &buf); err != nil {
		t.Fatal(err)
	}

	got := strings.TrimSpace(buf.String())
	want := strings.TrimSpace(`
digraph {
  pad="1";
  rankdir=LR;
  node [shape=rectangle];
  edge [color=red];
  n0 [label=a];
  n1 [label=b];
  n2 [label=PreparedTransformer];
  n0:s -> n2:n;
  n1:s -> n2:n;
}
`)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error("wrong result:\n" + diff)
	}
}
