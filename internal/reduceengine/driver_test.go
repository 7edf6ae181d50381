package reduceengine_test

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/dagforge/reduce/internal/dagnode"
	"github.com/dagforge/reduce/internal/dagrule"
	"github.com/dagforge/reduce/internal/reduceengine"
	"github.com/dagforge/reduce/internal/workgraph"
)

// fakeNode is a minimal zero-parent PreparedTransformer carrying one
// instance rule, for driving the rewrite loop without any domain vocabulary.
type fakeNode struct {
	rule dagnode.Rule
}

func (n *fakeNode) Kind() dagnode.Kind              { return dagnode.KindPreparedTransformer }
func (n *fakeNode) ParentsAsStored() []dagnode.Node { return nil }
func (n *fakeNode) Arity() dagnode.Arity            { return dagnode.Fixed(0) }
func (n *fakeNode) Capabilities() dagnode.Capability { return 0 }
func (n *fakeNode) ResultType() dagnode.ResultType  { return dagnode.SimpleResultType("number") }
func (n *fakeNode) Equal(other dagnode.Node) bool   { return n == other }

func (n *fakeNode) InstanceRules() []dagnode.Rule {
	if n.rule == nil {
		return nil
	}
	return []dagnode.Rule{n.rule}
}

func (n *fakeNode) WithNewParents(parents []dagnode.Node) (dagnode.Node, error) {
	if len(parents) != 0 {
		return nil, dagnode.NewArityError(n.Kind(), n.Arity(), len(parents))
	}
	return n, nil
}

func TestDriverSkipsRulesBelowImportanceFloor(t *testing.T) {
	ctrl := gomock.NewController(t)
	rule := NewMockRule(ctrl)
	rule.EXPECT().ImportanceLevel().Return(dagnode.Expensive).AnyTimes()
	// Apply must never be called: the floor below excludes Expensive.

	n := &fakeNode{rule: rule}
	g, err := workgraph.NewFromOutputs([]dagnode.Node{n})
	if err != nil {
		t.Fatal(err)
	}

	d := reduceengine.NewDriver(dagrule.NewClassRuleTable(), reduceengine.Settings{
		MinimumImportance: dagnode.Essential,
		CompleteReduction: true,
		PassBudget:        10,
	}, nil)

	if err := d.Run(g); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestDriverAppliesRuleAtItsOwnImportance(t *testing.T) {
	ctrl := gomock.NewController(t)
	rule := NewMockRule(ctrl)
	rule.EXPECT().ImportanceLevel().Return(dagnode.Normal).AnyTimes()
	rule.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(nil).MinTimes(1)

	n := &fakeNode{rule: rule}
	g, err := workgraph.NewFromOutputs([]dagnode.Node{n})
	if err != nil {
		t.Fatal(err)
	}

	d := reduceengine.NewDriver(dagrule.NewClassRuleTable(), reduceengine.Settings{
		MinimumImportance: dagnode.Normal,
		CompleteReduction: true,
		PassBudget:        10,
	}, nil)

	if err := d.Run(g); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestDriverPassBudgetExceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	rule := NewMockRule(ctrl)
	rule.EXPECT().ImportanceLevel().Return(dagnode.Normal).AnyTimes()
	// Every Apply call marks the context dirty by replacing the node with
	// a fresh fakeNode carrying the same rule, so the driver never reaches
	// a fixed point.
	rule.EXPECT().Apply(gomock.Any(), gomock.Any()).DoAndReturn(
		func(target dagnode.Node, ctx dagnode.Context) error {
			return ctx.ReplaceSameKind(target, &fakeNode{rule: rule})
		},
	).AnyTimes()

	n := &fakeNode{rule: rule}
	g, err := workgraph.NewFromOutputs([]dagnode.Node{n})
	if err != nil {
		t.Fatal(err)
	}

	d := reduceengine.NewDriver(dagrule.NewClassRuleTable(), reduceengine.Settings{
		MinimumImportance: dagnode.Normal,
		CompleteReduction: true,
		PassBudget:        3,
	}, nil)

	err = d.Run(g)
	if err == nil {
		t.Fatal("expected pass budget exceeded error")
	}
}
