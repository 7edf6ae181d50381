package nodes

import (
	"github.com/dagforge/reduce/internal/dagnode"
	"github.com/dagforge/reduce/internal/dagrule/builtin"
)

// VariadicIdentityNode passes its operands through unchanged when there's
// more than one, but is semantically just its single operand when there's
// exactly one; it contributes RemoveIfUnaryReducer so the reduction
// collapses that case away (§8 scenario 2).
type VariadicIdentityNode struct {
	Parents  []dagnode.Node
	ResultTy dagnode.ResultType
}

var _ dagnode.Node = (*VariadicIdentityNode)(nil)

// VariadicIdentity returns a VariadicIdentityNode over parents, which must
// all share resultTy.
func VariadicIdentity(resultTy dagnode.ResultType, parents ...dagnode.Node) *VariadicIdentityNode {
	return &VariadicIdentityNode{Parents: parents, ResultTy: resultTy}
}

func (n *VariadicIdentityNode) Kind() dagnode.Kind              { return dagnode.KindPreparedTransformer }
func (n *VariadicIdentityNode) ParentsAsStored() []dagnode.Node { return n.Parents }
func (n *VariadicIdentityNode) Arity() dagnode.Arity            { return dagnode.Variadic(1) }
func (n *VariadicIdentityNode) ResultType() dagnode.ResultType  { return n.ResultTy }
func (n *VariadicIdentityNode) InstanceRules() []dagnode.Rule   { return variadicIdentityRules }

func (n *VariadicIdentityNode) Capabilities() dagnode.Capability {
	return dagnode.CapIdentityWhenUnary
}

func (n *VariadicIdentityNode) WithNewParents(parents []dagnode.Node) (dagnode.Node, error) {
	if !n.Arity().Accepts(len(parents)) {
		return nil, dagnode.NewArityError(n.Kind(), n.Arity(), len(parents))
	}
	return &VariadicIdentityNode{Parents: parents, ResultTy: n.ResultTy}, nil
}

func (n *VariadicIdentityNode) Equal(other dagnode.Node) bool {
	o, ok := other.(*VariadicIdentityNode)
	if !ok || len(o.Parents) != len(n.Parents) {
		return false
	}
	for i := range n.Parents {
		if !n.Parents[i].Equal(o.Parents[i]) {
			return false
		}
	}
	return true
}

var variadicIdentityRules = []dagnode.Rule{
	builtin.RemoveIfUnaryReducer{Importance: dagnode.Normal},
}
