package graphspec_test

import (
	"testing"

	"github.com/dagforge/reduce/internal/graphspec"
	"github.com/dagforge/reduce/nodes"
)

const spec = `
outputs = ["total"]

[[node]]
id = "a"
kind = "placeholder"
result_type = "number"

[[node]]
id = "b"
kind = "constant"
value = 3.5

[[node]]
id = "total"
kind = "sum"
parents = ["a", "b"]
`

func TestParseBuildsGraph(t *testing.T) {
	g, err := graphspec.Parse([]byte(spec))
	if err != nil {
		t.Fatal(err)
	}
	if len(g.ByID) != 3 {
		t.Fatalf("want 3 nodes, got %d", len(g.ByID))
	}
	if len(g.Outputs) != 1 {
		t.Fatalf("want 1 output, got %d", len(g.Outputs))
	}
	sum, ok := g.Outputs[0].(*nodes.SumNode)
	if !ok {
		t.Fatalf("want *SumNode output, got %T", g.Outputs[0])
	}
	if len(sum.Parents) != 2 {
		t.Fatalf("want 2 parents, got %d", len(sum.Parents))
	}
}

func TestParseRejectsUnknownOutput(t *testing.T) {
	const bad = `
outputs = ["missing"]

[[node]]
id = "a"
kind = "placeholder"
`
	if _, err := graphspec.Parse([]byte(bad)); err == nil {
		t.Fatal("expected an error for an undefined output")
	}
}

func TestParseRejectsForwardParentReference(t *testing.T) {
	const bad = `
outputs = ["total"]

[[node]]
id = "total"
kind = "sum"
parents = ["a"]

[[node]]
id = "a"
kind = "placeholder"
`
	if _, err := graphspec.Parse([]byte(bad)); err == nil {
		t.Fatal("expected an error for a parent referenced before its definition")
	}
}
