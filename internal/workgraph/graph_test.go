package workgraph_test

import (
	"testing"

	"github.com/dagforge/reduce/internal/dagnode"
	"github.com/dagforge/reduce/internal/workgraph"
)

func num(name string) *dagnode.PlaceholderNode {
	return &dagnode.PlaceholderNode{Name: name, ResultTy: dagnode.SimpleResultType("number")}
}

func TestNewFromOutputsSharesIdenticalParents(t *testing.T) {
	a := num("a")
	sum := &dagnode.Transformer{Op: "Sum", Parents: []dagnode.Node{a, a}, ResultTy: dagnode.SimpleResultType("number"), ArityC: dagnode.Variadic(1)}

	g, err := workgraph.NewFromOutputs([]dagnode.Node{sum})
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Handles()) != 2 {
		t.Fatalf("want 2 live handles (a shared), got %d", len(g.Handles()))
	}
}

func TestNewFromOutputsDetectsCycle(t *testing.T) {
	// Build a self-referential Transformer by constructing it in two steps:
	// WithNewParents always returns a fresh copy, so a true cycle can only
	// be forced here by hand-building two structs that reference each other.
	a := &dagnode.Transformer{Op: "A", ResultTy: dagnode.SimpleResultType("number"), ArityC: dagnode.Variadic(0)}
	b := &dagnode.Transformer{Op: "B", Parents: []dagnode.Node{a}, ResultTy: dagnode.SimpleResultType("number"), ArityC: dagnode.Variadic(0)}
	a.Parents = []dagnode.Node{b}

	if _, err := workgraph.NewFromOutputs([]dagnode.Node{a}); err == nil {
		t.Fatal("expected a cycle detection error")
	}
}

func TestIsAncestorOrSelf(t *testing.T) {
	a := num("a")
	b := num("b")
	sum := &dagnode.Transformer{Op: "Sum", Parents: []dagnode.Node{a, b}, ResultTy: dagnode.SimpleResultType("number"), ArityC: dagnode.Variadic(1)}

	g, err := workgraph.NewFromOutputs([]dagnode.Node{sum})
	if err != nil {
		t.Fatal(err)
	}
	sumH, _ := g.HandleOf(sum)
	aH, _ := g.HandleOf(a)

	if !g.IsAncestorOrSelf(sumH, aH) {
		t.Error("a should be an ancestor of sum")
	}
	if !g.IsAncestorOrSelf(sumH, sumH) {
		t.Error("sum should be an ancestor of itself")
	}
	if g.IsAncestorOrSelf(aH, sumH) {
		t.Error("sum should not be an ancestor of a")
	}
}

func TestReplaceSweepsUnreachableParents(t *testing.T) {
	a := num("a")
	b := num("b")
	sum := &dagnode.Transformer{Op: "Sum", Parents: []dagnode.Node{a, b}, ResultTy: dagnode.SimpleResultType("number"), ArityC: dagnode.Variadic(1)}

	g, err := workgraph.NewFromOutputs([]dagnode.Node{sum})
	if err != nil {
		t.Fatal(err)
	}
	sumH, _ := g.HandleOf(sum)
	replacement := num("c")

	if _, err := g.Replace(sumH, replacement); err != nil {
		t.Fatal(err)
	}
	if _, ok := g.HandleOf(a); ok {
		t.Error("a should have been swept once unreachable")
	}
	if _, ok := g.HandleOf(b); ok {
		t.Error("b should have been swept once unreachable")
	}
	if h, ok := g.HandleOf(replacement); !ok || g.Outputs()[0] != h {
		t.Error("replacement should now be the sole output")
	}
}

func TestReplaceKeepsSharedAncestorAlive(t *testing.T) {
	a := num("a")
	left := &dagnode.Transformer{Op: "Neg", Parents: []dagnode.Node{a}, ResultTy: dagnode.SimpleResultType("number"), ArityC: dagnode.Fixed(1)}
	right := &dagnode.Transformer{Op: "Abs", Parents: []dagnode.Node{a}, ResultTy: dagnode.SimpleResultType("number"), ArityC: dagnode.Fixed(1)}

	g, err := workgraph.NewFromOutputs([]dagnode.Node{left, right})
	if err != nil {
		t.Fatal(err)
	}
	leftH, _ := g.HandleOf(left)
	replacement := num("c")

	if _, err := g.Replace(leftH, replacement); err != nil {
		t.Fatal(err)
	}
	if _, ok := g.HandleOf(a); !ok {
		t.Error("a is still reachable through right and must survive")
	}
}
