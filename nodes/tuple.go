package nodes

import (
	"github.com/dagforge/reduce/internal/dagnode"
	"github.com/dagforge/reduce/internal/dagrule/builtin"
)

// Tupled2Node pairs two parents into a single result; SecondOfTupleNode
// extracts the second element back out, and is each other's inverse (§8
// scenario 4): SecondOfTuple(Tupled2(a, b)) reduces to b directly.
type Tupled2Node struct {
	A, B dagnode.Node
}

type SecondOfTupleNode struct {
	Parent   dagnode.Node
	ResultTy dagnode.ResultType
}

var (
	_ dagnode.Node      = (*Tupled2Node)(nil)
	_ dagnode.Node      = (*SecondOfTupleNode)(nil)
	_ builtin.InverseOf = (*SecondOfTupleNode)(nil)
)

func Tupled2(a, b dagnode.Node) *Tupled2Node { return &Tupled2Node{A: a, B: b} }

// SecondOfTuple returns a node projecting t's second element; resultTy
// describes what that element's type is expected to be.
func SecondOfTuple(t dagnode.Node, resultTy dagnode.ResultType) *SecondOfTupleNode {
	return &SecondOfTupleNode{Parent: t, ResultTy: resultTy}
}

func (n *Tupled2Node) Kind() dagnode.Kind              { return dagnode.KindPreparedTransformer }
func (n *Tupled2Node) ParentsAsStored() []dagnode.Node { return []dagnode.Node{n.A, n.B} }
func (n *Tupled2Node) Arity() dagnode.Arity            { return dagnode.Fixed(2) }
func (n *Tupled2Node) Capabilities() dagnode.Capability { return 0 }
func (n *Tupled2Node) ResultType() dagnode.ResultType  { return Tuple }
func (n *Tupled2Node) InstanceRules() []dagnode.Rule   { return nil }

func (n *Tupled2Node) WithNewParents(parents []dagnode.Node) (dagnode.Node, error) {
	if len(parents) != 2 {
		return nil, dagnode.NewArityError(n.Kind(), n.Arity(), len(parents))
	}
	return &Tupled2Node{A: parents[0], B: parents[1]}, nil
}

func (n *Tupled2Node) Equal(other dagnode.Node) bool {
	o, ok := other.(*Tupled2Node)
	return ok && n.A.Equal(o.A) && n.B.Equal(o.B)
}

func (n *SecondOfTupleNode) Kind() dagnode.Kind              { return dagnode.KindPreparedTransformer }
func (n *SecondOfTupleNode) ParentsAsStored() []dagnode.Node { return []dagnode.Node{n.Parent} }
func (n *SecondOfTupleNode) Arity() dagnode.Arity            { return dagnode.Fixed(1) }
func (n *SecondOfTupleNode) Capabilities() dagnode.Capability { return 0 }
func (n *SecondOfTupleNode) ResultType() dagnode.ResultType  { return n.ResultTy }
func (n *SecondOfTupleNode) InstanceRules() []dagnode.Rule   { return secondOfTupleRules }

func (n *SecondOfTupleNode) WithNewParents(parents []dagnode.Node) (dagnode.Node, error) {
	if len(parents) != 1 {
		return nil, dagnode.NewArityError(n.Kind(), n.Arity(), len(parents))
	}
	return &SecondOfTupleNode{Parent: parents[0], ResultTy: n.ResultTy}, nil
}

func (n *SecondOfTupleNode) Equal(other dagnode.Node) bool {
	o, ok := other.(*SecondOfTupleNode)
	return ok && n.Parent.Equal(o.Parent)
}

// CancelAgainst implements builtin.InverseOf: if parent is a *Tupled2Node,
// SecondOfTuple(Tupled2(a, b)) cancels to b.
func (n *SecondOfTupleNode) CancelAgainst(parent dagnode.Node) (dagnode.Node, bool) {
	t, ok := parent.(*Tupled2Node)
	if !ok {
		return nil, false
	}
	return t.B, true
}

var secondOfTupleRules = []dagnode.Rule{
	builtin.InverseClassReducer{Importance: dagnode.Normal},
}
