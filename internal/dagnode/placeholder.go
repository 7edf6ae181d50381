package dagnode

// PlaceholderNode is the generic implementation of KindPlaceholder: a named
// external input with no parents. Two distinct *PlaceholderNode instances
// with the same Name are value-equal but remain reference-distinct; the
// working graph indexes by the pointer, per §3.
//
// Node implementations in this package use pointer receivers throughout so
// that "reference identity" (§3: the working graph's indexing key) has a
// direct Go analogue: the pointer itself.
type PlaceholderNode struct {
	Name     string
	ResultTy ResultType
	Rules    []Rule
}

var _ Node = (*PlaceholderNode)(nil)

func (n *PlaceholderNode) Kind() Kind               { return KindPlaceholder }
func (n *PlaceholderNode) ParentsAsStored() []Node  { return nil }
func (n *PlaceholderNode) Arity() Arity             { return Fixed(0) }
func (n *PlaceholderNode) Capabilities() Capability { return 0 }
func (n *PlaceholderNode) InstanceRules() []Rule    { return n.Rules }
func (n *PlaceholderNode) ResultType() ResultType   { return n.ResultTy }

func (n *PlaceholderNode) WithNewParents(parents []Node) (Node, error) {
	if len(parents) != 0 {
		return nil, NewArityError(KindPlaceholder, n.Arity(), len(parents))
	}
	return n, nil
}

func (n *PlaceholderNode) Equal(other Node) bool {
	o, ok := other.(*PlaceholderNode)
	return ok && o.Name == n.Name
}
