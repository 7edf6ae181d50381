// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package graphviz renders a *workgraph.Graph as a Graphviz-language
// "digraph", for visual inspection of a working graph before or after a
// reduction.
//
// [WriteDirectedGraph] writes every live node (labeled by its dagnode.Kind
// by default, with optional caller-supplied attributes via Graph.NodeAttrs)
// and every working-graph edge from a parent to the child that depends on
// it.
package graphviz
