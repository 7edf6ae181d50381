package builtin

import "github.com/dagforge/reduce/internal/dagnode"

// InverseOf is implemented by a node that can recognize when one of its
// parents undoes it — applying this node's operation to something an
// inverse operation produced cancels both, leaving the original operand.
// CancelAgainst is given one current parent at a time and reports the
// node that should replace the whole application if that parent is this
// node's inverse, or ok=false if it isn't.
type InverseOf interface {
	dagnode.Node
	CancelAgainst(parent dagnode.Node) (replacement dagnode.Node, ok bool)
}

// InverseClassReducer cancels a node against whichever of its parents is
// its inverse, per CancelAgainst. Registered as a class rule under the tag
// shared by every node kind that can participate in such a cancellation.
type InverseClassReducer struct {
	Importance dagnode.Importance
}

func (r InverseClassReducer) ImportanceLevel() dagnode.Importance { return r.Importance }

func (r InverseClassReducer) Apply(target dagnode.Node, ctx dagnode.Context) error {
	inv, ok := target.(InverseOf)
	if !ok {
		return nil
	}
	for _, p := range ctx.Parents(target) {
		if ctx.IsViewed(p) {
			continue
		}
		replacement, ok := inv.CancelAgainst(p)
		if !ok {
			continue
		}
		return ctx.ReplaceUnviewed(target, replacement)
	}
	return nil
}
