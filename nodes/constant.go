package nodes

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/dagforge/reduce/internal/dagnode"
)

// ConstantNode is a zero-parent PreparedTransformer wrapping a cty.Value,
// the way execgraph-adjacent tooling in the retrieval pack represents
// dynamic values rather than reaching for interface{}.
type ConstantNode struct {
	Value cty.Value
}

var _ dagnode.Node = (*ConstantNode)(nil)

// Constant wraps v as a zero-parent, always-constant producer.
func Constant(v cty.Value) *ConstantNode {
	return &ConstantNode{Value: v}
}

func (n *ConstantNode) Kind() dagnode.Kind              { return dagnode.KindPreparedTransformer }
func (n *ConstantNode) ParentsAsStored() []dagnode.Node { return nil }
func (n *ConstantNode) Arity() dagnode.Arity            { return dagnode.Fixed(0) }
func (n *ConstantNode) InstanceRules() []dagnode.Rule   { return nil }

func (n *ConstantNode) Capabilities() dagnode.Capability {
	return dagnode.CapConstantResult.
		With(dagnode.CapAlwaysConstantResult).
		With(dagnode.CapHasTrivialEquality)
}

func (n *ConstantNode) ResultType() dagnode.ResultType {
	return resultTypeOf(n.Value.Type())
}

func (n *ConstantNode) WithNewParents(parents []dagnode.Node) (dagnode.Node, error) {
	if len(parents) != 0 {
		return nil, dagnode.NewArityError(dagnode.KindPreparedTransformer, n.Arity(), len(parents))
	}
	return n, nil
}

func (n *ConstantNode) Equal(other dagnode.Node) bool {
	o, ok := other.(*ConstantNode)
	return ok && n.Value.RawEquals(o.Value)
}

func resultTypeOf(t cty.Type) dagnode.ResultType {
	switch {
	case t == cty.Number:
		return Number
	case t == cty.String:
		return String
	case t == cty.Bool:
		return Bool
	default:
		return Dyn
	}
}
