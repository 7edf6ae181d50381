package builtin

import "github.com/dagforge/reduce/internal/dagnode"

// RemoveIfUnaryReducer collapses a variadic node carrying
// dagnode.CapIdentityWhenUnary down to its single operand once it has
// exactly one current parent. Registered as a class rule under
// dagnode.TagAny (or any tag the relevant operator families share), it is
// a no-op on every node that isn't variadic, doesn't declare the
// capability, or still has two or more operands.
type RemoveIfUnaryReducer struct {
	Importance dagnode.Importance
}

func (r RemoveIfUnaryReducer) ImportanceLevel() dagnode.Importance { return r.Importance }

func (r RemoveIfUnaryReducer) Apply(target dagnode.Node, ctx dagnode.Context) error {
	if !target.Arity().IsVariadic() || !target.Capabilities().Has(dagnode.CapIdentityWhenUnary) {
		return nil
	}
	parents := ctx.Parents(target)
	if len(parents) != 1 {
		return nil
	}
	return ctx.ReplaceUnviewed(target, parents[0])
}
