package dagnode

import "reflect"

// PreparableTransformer is the generic implementation of
// KindPreparableTransformer: a two-phase node whose preparation (PrepareFn)
// derives a prepared projection — a Node with Kind() == KindPreparedTransformer
// — from its current parents.
//
// Equality and arity/kind handling mirror Transformer.
type PreparableTransformer struct {
	Op      string
	Parents []Node
	Config  any
	Caps    Capability
	ArityC  Arity
	Rules   []Rule

	// PreparedResultTy is the result type of the projection PrepareFn
	// will produce; it's exposed up front (without running PrepareFn) so
	// ReplacePreparable can check type compatibility between an existing
	// preparable and its replacement before preparation ever runs.
	PreparedResultTy ResultType

	// PrepareFn derives this node's prepared projection. It must return a
	// Node with Kind() == KindPreparedTransformer.
	PrepareFn func(parents []Node) (Node, error)

	ValidateParents func(parents []Node) error
}

var _ Preparable = (*PreparableTransformer)(nil)

func (n *PreparableTransformer) Kind() Kind               { return KindPreparableTransformer }
func (n *PreparableTransformer) ParentsAsStored() []Node  { return n.Parents }
func (n *PreparableTransformer) Arity() Arity             { return n.ArityC }
func (n *PreparableTransformer) Capabilities() Capability { return n.Caps }
func (n *PreparableTransformer) InstanceRules() []Rule    { return n.Rules }

// ResultType reports the result type of the prepared projection this node
// will eventually produce, since a PreparableTransformer behaves as its
// projection once prepared and replacements are checked against that
// eventual type, not against "being a PreparableTransformer" in the
// abstract.
func (n *PreparableTransformer) ResultType() ResultType { return n.PreparedResultTy }

func (n *PreparableTransformer) WithNewParents(parents []Node) (Node, error) {
	if !n.ArityC.Accepts(len(parents)) {
		return nil, NewArityError(KindPreparableTransformer, n.ArityC, len(parents))
	}
	if n.ValidateParents != nil {
		if err := n.ValidateParents(parents); err != nil {
			return nil, &MalformedNodeError{Kind: KindPreparableTransformer, Reason: err.Error()}
		}
	}
	cp := *n
	cp.Parents = parents
	return &cp, nil
}

func (n *PreparableTransformer) Prepare() (Node, error) {
	projection, err := n.PrepareFn(n.Parents)
	if err != nil {
		return nil, err
	}
	if projection.Kind() != KindPreparedTransformer {
		return nil, &MalformedNodeError{
			Kind:   KindPreparableTransformer,
			Reason: "prepared projection must be a PreparedTransformer",
		}
	}
	return projection, nil
}

func (n *PreparableTransformer) Equal(other Node) bool {
	o, ok := other.(*PreparableTransformer)
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
