package dagnode

// ViewNode is the generic implementation of KindTransformerView: a node
// depending on a single Preparable parent and observing its prepared
// projection rather than its value.
type ViewNode struct {
	Parent Preparable
	Rules  []Rule
}

var _ View = (*ViewNode)(nil)

func (n *ViewNode) Kind() Kind               { return KindTransformerView }
func (n *ViewNode) ParentsAsStored() []Node  { return []Node{n.Parent} }
func (n *ViewNode) Arity() Arity             { return Fixed(1) }
func (n *ViewNode) Capabilities() Capability { return 0 }
func (n *ViewNode) InstanceRules() []Rule    { return n.Rules }
func (n *ViewNode) Preparable() Preparable   { return n.Parent }

// ResultType reports the same result type as the projection the parent
// Preparable will eventually produce, since a view observes that
// projection directly.
func (n *ViewNode) ResultType() ResultType { return n.Parent.ResultType() }

func (n *ViewNode) WithNewParents(parents []Node) (Node, error) {
	if len(parents) != 1 {
		return nil, NewArityError(KindTransformerView, n.Arity(), len(parents))
	}
	p, ok := parents[0].(Preparable)
	if !ok {
		return nil, NewParentKindError(KindTransformerView, 0, KindPreparableTransformer, parents[0].Kind())
	}
	cp := *n
	cp.Parent = p
	return &cp, nil
}

func (n *ViewNode) Equal(other Node) bool {
	o, ok := other.(*ViewNode)
	return ok && n.Parent.Equal(o.Parent)
}
