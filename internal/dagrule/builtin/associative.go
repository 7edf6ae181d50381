// Package builtin provides the generic, reusable rewrite rules from §6:
// rules that know nothing about any particular domain node and instead
// dispatch through small marker interfaces a concrete node opts into.
package builtin

import "github.com/dagforge/reduce/internal/dagnode"

// Associative is implemented by nodes belonging to an associative operator
// family: applying the operator to a mix of plain operands and nested
// applications of the same family is equivalent to applying it once to the
// flattened operand list. AssociativeFamily distinguishes unrelated
// operators that happen to share a Kind (e.g. two different
// PreparedTransformer "Op" values) from genuinely flattenable ones.
type Associative interface {
	dagnode.Node
	AssociativeFamily() dagnode.Tag
}

// AssociativeClassReducer flattens nested applications of the same
// associative operator family. Registered as a class rule under the tag
// shared by every node in the family, it fires on a target t whenever one
// of t's current parents belongs to the same family and isn't viewed (a
// viewed parent must keep its own identity, since a view observes it
// directly): the parent's operands are spliced into t's operand list in
// its place.
//
// Only one flattening happens per Apply call; the driver's fixed-point
// loop re-applies the rule until no parent is flattenable, so deeply
// nested chains flatten one level per pass rather than all at once.
type AssociativeClassReducer struct {
	Importance dagnode.Importance
}

func (r AssociativeClassReducer) ImportanceLevel() dagnode.Importance { return r.Importance }

func (r AssociativeClassReducer) Apply(target dagnode.Node, ctx dagnode.Context) error {
	assoc, ok := target.(Associative)
	if !ok {
		return nil
	}
	family := assoc.AssociativeFamily()
	parents := ctx.Parents(target)

	for i, p := range parents {
		pAssoc, ok := p.(Associative)
		if !ok || pAssoc.AssociativeFamily() != family {
			continue
		}
		if ctx.IsViewed(p) {
			continue
		}
		flattened := make([]dagnode.Node, 0, len(parents)-1+len(p.ParentsAsStored()))
		flattened = append(flattened, parents[:i]...)
		flattened = append(flattened, p.ParentsAsStored()...)
		flattened = append(flattened, parents[i+1:]...)

		replacement, err := target.WithNewParents(flattened)
		if err != nil {
			return err
		}
		return ctx.ReplaceUnviewed(target, replacement)
	}
	return nil
}
