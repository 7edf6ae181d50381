package dagnode

// GeneratorNode is the generic implementation of KindGenerator: a node that
// produces a value purely as a function of the example index, with no
// parents. It carries no compute function: producing the value is the
// executor's job, and the reduction engine only needs the node's name,
// result type, capabilities and rules.
type GeneratorNode struct {
	Name     string
	ResultTy ResultType
	Caps     Capability
	Rules    []Rule
}

var _ Node = (*GeneratorNode)(nil)

func (n *GeneratorNode) Kind() Kind               { return KindGenerator }
func (n *GeneratorNode) ParentsAsStored() []Node  { return nil }
func (n *GeneratorNode) Arity() Arity             { return Fixed(0) }
func (n *GeneratorNode) Capabilities() Capability { return n.Caps }
func (n *GeneratorNode) InstanceRules() []Rule    { return n.Rules }
func (n *GeneratorNode) ResultType() ResultType   { return n.ResultTy }

func (n *GeneratorNode) WithNewParents(parents []Node) (Node, error) {
	if len(parents) != 0 {
		return nil, NewArityError(KindGenerator, n.Arity(), len(parents))
	}
	return n, nil
}

func (n *GeneratorNode) Equal(other Node) bool {
	o, ok := other.(*GeneratorNode)
	return ok && o.Name == n.Name
}
