package dagnode

import "reflect"

// Transformer is the generic implementation of KindPreparedTransformer: a
// pure function of its ordered parents. The core reduction engine never
// calls the function itself — evaluation is the executor's job — so
// Transformer only needs to carry enough identity to support value
// equality, arity/kind checking, and instance rule contribution.
//
// Op identifies the operation this instance performs (e.g. "Sum",
// "Constant") and participates in value equality alongside Config, which
// holds whatever extra, comparable configuration distinguishes one
// instance from another of the same Op (for example a Constant's literal
// value). Two *Transformer values are Equal iff they have the same Op, a
// reflect.DeepEqual Config, and pairwise-Equal parents, even though they
// remain reference-distinct (different pointers).
type Transformer struct {
	Op       string
	Parents  []Node
	Config   any
	Caps     Capability
	ResultTy ResultType
	ArityC   Arity
	Rules    []Rule

	// ValidateParents, if set, is consulted by WithNewParents after the
	// arity check passes, to reject parent lists with an incompatible
	// kind in some slot.
	ValidateParents func(parents []Node) error
}

var _ Node = (*Transformer)(nil)

func (n *Transformer) Kind() Kind               { return KindPreparedTransformer }
func (n *Transformer) ParentsAsStored() []Node  { return n.Parents }
func (n *Transformer) Arity() Arity             { return n.ArityC }
func (n *Transformer) Capabilities() Capability { return n.Caps }
func (n *Transformer) InstanceRules() []Rule    { return n.Rules }
func (n *Transformer) ResultType() ResultType   { return n.ResultTy }

func (n *Transformer) WithNewParents(parents []Node) (Node, error) {
	if !n.ArityC.Accepts(len(parents)) {
		return nil, NewArityError(KindPreparedTransformer, n.ArityC, len(parents))
	}
	if n.ValidateParents != nil {
		if err := n.ValidateParents(parents); err != nil {
			return nil, &MalformedNodeError{Kind: KindPreparedTransformer, Reason: err.Error()}
		}
	}
	cp := *n
	cp.Parents = parents
	return &cp, nil
}

func (n *Transformer) Equal(other Node) bool {
	o, ok := other.(*Transformer)
	if !ok || o.Op != n.Op || len(o.Parents) != len(n.Parents) {
		return false
	}
	if !reflect.DeepEqual(o.Config, n.Config) {
		return false
	}
	for i := range n.Parents {
		if !n.Parents[i].Equal(o.Parents[i]) {
			return false
		}
	}
	return true
}
