// Package graphspec parses a small TOML graph description into a set of
// output dagnode.Node values built from the nodes package's vocabulary, so
// cmd/dagreduce can read a graph from a file rather than hard-coding one.
package graphspec

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/zclconf/go-cty/cty"

	"github.com/dagforge/reduce/internal/dagnode"
	"github.com/dagforge/reduce/nodes"
)

// fileFormat mirrors the on-disk TOML shape:
//
//	outputs = ["total"]
//
//	[[node]]
//	id = "a"
//	kind = "placeholder"
//	result_type = "number"
//
//	[[node]]
//	id = "b"
//	kind = "constant"
//	value = 3.5
//
//	[[node]]
//	id = "total"
//	kind = "sum"
//	parents = ["a", "b"]
type fileFormat struct {
	Outputs []string     `toml:"outputs"`
	Nodes   []nodeRecord `toml:"node"`
}

type nodeRecord struct {
	ID         string   `toml:"id"`
	Kind       string   `toml:"kind"`
	ResultType string   `toml:"result_type"`
	Parents    []string `toml:"parents"`
	Value      float64  `toml:"value"`
}

// Graph is a parsed spec: every named node, plus the subset that are
// outputs.
type Graph struct {
	ByID    map[string]dagnode.Node
	Outputs []dagnode.Node
}

// Parse decodes a TOML graph description.
func Parse(data []byte) (*Graph, error) {
	var raw fileFormat
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("parsing graph spec: %w", err)
	}

	byID := make(map[string]dagnode.Node, len(raw.Nodes))
	for _, rec := range raw.Nodes {
		if rec.ID == "" {
			return nil, fmt.Errorf("node with empty id")
		}
		if _, exists := byID[rec.ID]; exists {
			return nil, fmt.Errorf("duplicate node id %q", rec.ID)
		}
		n, err := buildNode(rec, byID)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", rec.ID, err)
		}
		byID[rec.ID] = n
	}

	outputs := make([]dagnode.Node, len(raw.Outputs))
	for i, id := range raw.Outputs {
		n, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("output %q: no such node", id)
		}
		outputs[i] = n
	}

	return &Graph{ByID: byID, Outputs: outputs}, nil
}

func buildNode(rec nodeRecord, byID map[string]dagnode.Node) (dagnode.Node, error) {
	parents := make([]dagnode.Node, len(rec.Parents))
	for i, id := range rec.Parents {
		p, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("parent %q not yet defined (nodes must be listed after their parents)", id)
		}
		parents[i] = p
	}

	switch rec.Kind {
	case "placeholder":
		return nodes.Placeholder(rec.ID, resultTypeOf(rec.ResultType)), nil
	case "input":
		return nodes.Input(rec.ID), nil
	case "constant":
		return nodes.Constant(cty.NumberFloatVal(rec.Value)), nil
	case "sum":
		return nodes.Sum(parents...), nil
	case "variadic_identity":
		return nodes.VariadicIdentity(resultTypeOf(rec.ResultType), parents...), nil
	case "composite":
		return nodes.Composite(parents...), nil
	case "densify":
		return nodes.Densify(parents...), nil
	default:
		return nil, fmt.Errorf("unknown node kind %q", rec.Kind)
	}
}

func resultTypeOf(s string) dagnode.ResultType {
	if s == "" {
		return nodes.Dyn
	}
	return dagnode.SimpleResultType(s)
}
