// Package rerr is the reduction engine's error taxonomy (§7): the errors a
// Context's mutation primitives and the rewrite driver return when a rule
// or a caller violates one of the engine's preconditions.
package rerr

import (
	"errors"
	"fmt"

	"github.com/dagforge/reduce/internal/dagnode"
)

// PlaceholderInjection is returned when a mutation would introduce a new
// Placeholder node into the working graph in a position that wasn't
// already a Placeholder (§4.4: a rule may replace a node with a Placeholder
// that is already live in the graph, or a Placeholder with another
// Placeholder, but never bring in a new one anywhere else).
type PlaceholderInjection struct {
	// At is the node the rule attempted to replace.
	At dagnode.Node
}

func (e *PlaceholderInjection) Error() string {
	return fmt.Sprintf("rewrite would inject a new placeholder at a %s node that wasn't already one", e.At.Kind())
}

// PreparableInjection is returned when a mutation would introduce a
// PreparableTransformer into a working graph running in prepared-DAG
// strict mode (§4.4, §4.5), where every PreparableTransformer must already
// have been resolved to its prepared projection.
type PreparableInjection struct {
	At dagnode.Node
}

func (e *PreparableInjection) Error() string {
	return fmt.Sprintf("rewrite would inject a preparable transformer into a prepared-DAG reduction, at a %s node", e.At.Kind())
}

// ViewedNode is returned by ReplaceUnviewed (and TryReplaceUnviewed's
// non-error false path is the non-erroring sibling of this) when existing
// has one or more TransformerView children that depend on observing it
// directly.
type ViewedNode struct {
	At dagnode.Node
}

func (e *ViewedNode) Error() string {
	return fmt.Sprintf("cannot replace a %s node with an active transformer view", e.At.Kind())
}

// DanglingReference is returned when a mutation primitive's existing
// argument is neither the rule's target nor an ancestor of it (§4.4): every
// mutation may only ever touch the subgraph rooted at the node currently
// being rewritten.
type DanglingReference struct {
	Target   dagnode.Node
	Existing dagnode.Node
}

func (e *DanglingReference) Error() string {
	return fmt.Sprintf("%s is not the rewrite target or one of its ancestors", e.Existing.Kind())
}

// ReductionAborted wraps an error a rule's Apply call returned, which
// unwinds the whole driver run (§4.3: "If Apply returns an error, the
// entire reduction is aborted").
type ReductionAborted struct {
	Cause error
}

func (e *ReductionAborted) Error() string {
	return fmt.Sprintf("reduction aborted: %v", e.Cause)
}

func (e *ReductionAborted) Unwrap() error {
	return e.Cause
}

// IncompatibleResultType is returned when a mutation's replacement
// produces a result type that isn't Compatible with the node it's
// replacing.
type IncompatibleResultType struct {
	Existing, Replacement dagnode.Node
}

func (e *IncompatibleResultType) Error() string {
	return fmt.Sprintf("replacement for %s node produces an incompatible result type", e.Existing.Kind())
}

// PassBudgetExceeded is returned by the driver when CompleteReduction is
// requested but the configured pass budget is exhausted before reaching a
// fixed point.
type PassBudgetExceeded struct {
	Passes int
}

func (e *PassBudgetExceeded) Error() string {
	return fmt.Sprintf("reduction did not reach a fixed point within %d passes", e.Passes)
}

// Is* helpers let callers use errors.As without importing this package's
// concrete types directly in hot call sites.
func IsPlaceholderInjection(err error) bool {
	var e *PlaceholderInjection
	return errors.As(err, &e)
}

func IsViewedNode(err error) bool {
	var e *ViewedNode
	return errors.As(err, &e)
}

func IsDanglingReference(err error) bool {
	var e *DanglingReference
	return errors.As(err, &e)
}
