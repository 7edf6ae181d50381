package dag_test

import (
	"errors"
	"testing"

	"github.com/zclconf/go-cty/cty"

	"github.com/dagforge/reduce/dag"
	"github.com/dagforge/reduce/internal/dagnode"
	"github.com/dagforge/reduce/internal/dagrule/builtin"
	"github.com/dagforge/reduce/internal/reduceengine/rerr"
	"github.com/dagforge/reduce/nodes"
)

func TestWithInputSubstitutesPlaceholder(t *testing.T) {
	ph := nodes.Placeholder("x", nodes.Number)
	sum := nodes.Sum(ph)

	d, err := dag.WithOutputs([]dagnode.Node{sum})
	if err != nil {
		t.Fatal(err)
	}
	if err := d.WithInput("x", nodes.Constant(cty.NumberIntVal(5))); err != nil {
		t.Fatalf("WithInput: %v", err)
	}

	producers := d.Producers()
	found := false
	for _, chain := range producers {
		if len(chain) == 0 {
			t.Fatal("producer chain should never be empty")
		}
		if c, ok := chain[len(chain)-1].(*nodes.ConstantNode); ok && c.Value.RawEquals(cty.NumberIntVal(5)) {
			found = true
		}
	}
	if !found {
		t.Fatal("substituted constant should appear among the producers")
	}
}

func TestWithInputRejectsUnknownName(t *testing.T) {
	ph := nodes.Input("x")
	sum := nodes.Sum(ph)

	d, err := dag.WithOutputs([]dagnode.Node{sum})
	if err != nil {
		t.Fatal(err)
	}
	if err := d.WithInput("y", nodes.Constant(cty.NumberIntVal(1))); err == nil {
		t.Fatal("substituting an unknown placeholder name should fail")
	}
}

func TestProducersReflectsReduction(t *testing.T) {
	a := nodes.Constant(cty.NumberIntVal(2))
	b := nodes.Constant(cty.NumberIntVal(3))
	sum := nodes.Sum(a, b)

	d, err := dag.WithOutputs([]dagnode.Node{sum})
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Reduce(dagnode.Expensive); err != nil {
		t.Fatal(err)
	}
	producers := d.Producers()
	if len(producers) != 1 {
		t.Fatalf("folding should leave a single producer, got %d", len(producers))
	}
	chain := producers[0]
	if len(chain) != 1 {
		t.Fatalf("the sole output is also the sole producer, so its chain should have length 1, got %d", len(chain))
	}
}

func TestProducersYieldsShortestPathChains(t *testing.T) {
	a := nodes.Constant(cty.NumberIntVal(1))
	b := nodes.Constant(cty.NumberIntVal(2))
	c := nodes.Constant(cty.NumberIntVal(3))
	inner := nodes.Sum(a, b)
	outer := nodes.Sum(inner, c)

	d, err := dag.WithOutputs([]dagnode.Node{outer})
	if err != nil {
		t.Fatal(err)
	}

	producers := d.Producers()
	if len(producers) != 5 {
		t.Fatalf("want one chain per distinct node (outer, inner, a, b, c), got %d", len(producers))
	}

	var forA dag.ProducerChain
	for _, chain := range producers {
		if v, ok := chain[len(chain)-1].(*nodes.ConstantNode); ok && v.Value.RawEquals(cty.NumberIntVal(1)) {
			forA = chain
		}
	}
	if forA == nil {
		t.Fatal("no chain ended at the constant node holding 1")
	}
	if len(forA) != 3 {
		t.Fatalf("the shortest path from the output to a should have 3 links (outer, inner, a), got %d: %v", len(forA), forA)
	}
	if forA[0] != dagnode.Node(outer) {
		t.Fatalf("chain should start at the output, got %v", forA[0])
	}
	if forA[1] != dagnode.Node(inner) {
		t.Fatalf("chain should pass through inner, got %v", forA[1])
	}
	if forA[2] != dagnode.Node(a) {
		t.Fatalf("chain should end at a, got %v", forA[2])
	}

	var forOuter dag.ProducerChain
	for _, chain := range producers {
		if len(chain) == 1 {
			forOuter = chain
		}
	}
	if forOuter == nil || forOuter[0] != dagnode.Node(outer) {
		t.Fatal("the output itself should get a trivial one-element chain")
	}
}

// A rule that tries to introduce a PreparableTransformer via ctx.Replace
// must be rejected once prepared-DAG mode is on, even though the same
// rewrite would be allowed outside of it.
func TestPreparedDAGModeRejectsPreparableInjection(t *testing.T) {
	newTarget := func() *dagnode.Transformer {
		target := &dagnode.Transformer{Op: "InjectsPreparable", ArityC: dagnode.Fixed(0), ResultTy: dagnode.SimpleResultType("number")}
		target.Rules = []dagnode.Rule{&builtin.ReplacementReducer{
			Importance: dagnode.Essential,
			Decide: func(dagnode.Node, dagnode.Context) (dagnode.Node, bool, error) {
				return nodes.Preparable(nodes.Number, func(parents []dagnode.Node) (dagnode.Node, error) {
					return nodes.Sum(parents...), nil
				}), true, nil
			},
		}}
		return target
	}

	strict, err := dag.WithOutputs([]dagnode.Node{newTarget()}, dag.WithPreparedDAGMode(true))
	if err != nil {
		t.Fatal(err)
	}
	err = strict.Reduce(dagnode.Expensive)
	if err == nil || !errors.As(err, new(*rerr.ReductionAborted)) {
		t.Fatalf("want a ReductionAborted wrapping PreparableInjection, got %v", err)
	}

	loose, err := dag.WithOutputs([]dagnode.Node{newTarget()}, dag.WithPreparedDAGMode(false))
	if err != nil {
		t.Fatal(err)
	}
	if err := loose.Reduce(dagnode.Expensive); err != nil {
		t.Fatalf("the same rewrite should succeed outside prepared-DAG mode: %v", err)
	}
}
