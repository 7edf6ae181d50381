package builtin

import "github.com/dagforge/reduce/internal/dagnode"

// ReplacementReducer is the generic conditional-rewrite rule: it runs
// Decide against the target, and if Decide reports a replacement, performs
// it through ctx.ReplaceUnviewed. It's the building block most domain
// rules are written on top of — constant folding, algebraic
// simplification, and any other "if this specific shape holds, rewrite to
// that" rule that doesn't need one of the other builtin reducers' specific
// wiring.
//
// Decide must not mutate anything itself; all it returns is a candidate
// replacement node and whether to apply it.
//
// Construct and register this (and any other rule carrying a func field)
// as a *ReplacementReducer, not a value: ClassRuleTable.Has compares rules
// by interface equality, which panics on a non-comparable concrete type,
// and an interface holding a pointer is always comparable regardless of
// what the pointer refers to.
type ReplacementReducer struct {
	Importance dagnode.Importance
	Decide     func(target dagnode.Node, ctx dagnode.Context) (replacement dagnode.Node, ok bool, err error)
}

func (r ReplacementReducer) ImportanceLevel() dagnode.Importance { return r.Importance }

func (r ReplacementReducer) Apply(target dagnode.Node, ctx dagnode.Context) error {
	replacement, ok, err := r.Decide(target, ctx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return ctx.ReplaceUnviewed(target, replacement)
}
