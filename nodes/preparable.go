package nodes

import "github.com/dagforge/reduce/internal/dagnode"

// Preparable returns a two-phase transformer whose prepared projection is
// derived by prepareFn from its current parents (§8 scenarios 5 and 6).
// The generic dagnode.PreparableTransformer already implements the full
// contract; this constructor just gives the example domain a named entry
// point for it.
func Preparable(preparedResultTy dagnode.ResultType, prepareFn func([]dagnode.Node) (dagnode.Node, error), parents ...dagnode.Node) *dagnode.PreparableTransformer {
	return &dagnode.PreparableTransformer{
		Op:               "nodes.Preparable",
		Parents:          parents,
		ArityC:           dagnode.Variadic(0),
		PreparedResultTy: preparedResultTy,
		PrepareFn:        prepareFn,
	}
}

// View returns a node observing preparable's eventual prepared projection
// rather than its pre-preparation value.
func View(preparable dagnode.Preparable) *dagnode.ViewNode {
	return &dagnode.ViewNode{Parent: preparable}
}
