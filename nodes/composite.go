package nodes

import (
	"github.com/dagforge/reduce/internal/dagnode"
	"github.com/dagforge/reduce/internal/dagrule/builtin"
)

// CompositeNode and DensifyNode are two distinct variadic aggregation
// kinds that nonetheless belong to the same associative family: a
// Composite nested inside a Densify (or vice versa) flattens exactly as if
// they were the same operator (§8 scenario 3), since AssociativeClassReducer
// dispatches on AssociativeFamily rather than concrete type.
type CompositeNode struct {
	Parents []dagnode.Node
}

type DensifyNode struct {
	Parents []dagnode.Node
}

var (
	_ dagnode.Node         = (*CompositeNode)(nil)
	_ builtin.Associative  = (*CompositeNode)(nil)
	_ dagnode.Node         = (*DensifyNode)(nil)
	_ builtin.Associative  = (*DensifyNode)(nil)
)

func Composite(parents ...dagnode.Node) *CompositeNode { return &CompositeNode{Parents: parents} }
func Densify(parents ...dagnode.Node) *DensifyNode     { return &DensifyNode{Parents: parents} }

func (n *CompositeNode) Kind() dagnode.Kind              { return dagnode.KindPreparedTransformer }
func (n *CompositeNode) ParentsAsStored() []dagnode.Node { return n.Parents }
func (n *CompositeNode) Arity() dagnode.Arity            { return dagnode.Variadic(1) }
func (n *CompositeNode) Capabilities() dagnode.Capability { return 0 }
func (n *CompositeNode) ResultType() dagnode.ResultType  { return Dyn }
func (n *CompositeNode) InstanceRules() []dagnode.Rule   { return compositeFamilyRules }
func (n *CompositeNode) AssociativeFamily() dagnode.Tag  { return compositeFamily }

func (n *CompositeNode) WithNewParents(parents []dagnode.Node) (dagnode.Node, error) {
	if !n.Arity().Accepts(len(parents)) {
		return nil, dagnode.NewArityError(n.Kind(), n.Arity(), len(parents))
	}
	return &CompositeNode{Parents: parents}, nil
}

func (n *CompositeNode) Equal(other dagnode.Node) bool {
	o, ok := other.(*CompositeNode)
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

func (n *DensifyNode) Kind() dagnode.Kind              { return dagnode.KindPreparedTransformer }
func (n *DensifyNode) ParentsAsStored() []dagnode.Node { return n.Parents }
func (n *DensifyNode) Arity() dagnode.Arity            { return dagnode.Variadic(1) }
func (n *DensifyNode) Capabilities() dagnode.Capability { return 0 }
func (n *DensifyNode) ResultType() dagnode.ResultType  { return Dyn }
func (n *DensifyNode) InstanceRules() []dagnode.Rule   { return compositeFamilyRules }
func (n *DensifyNode) AssociativeFamily() dagnode.Tag  { return compositeFamily }

func (n *DensifyNode) WithNewParents(parents []dagnode.Node) (dagnode.Node, error) {
	if !n.Arity().Accepts(len(parents)) {
		return nil, dagnode.NewArityError(n.Kind(), n.Arity(), len(parents))
	}
	return &DensifyNode{Parents: parents}, nil
}

func (n *DensifyNode) Equal(other dagnode.Node) bool {
	o, ok := other.(*DensifyNode)
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

var compositeFamilyRules = []dagnode.Rule{
	builtin.AssociativeClassReducer{Importance: dagnode.Normal},
}
