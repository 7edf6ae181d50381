package reduceengine

import (
	"github.com/dagforge/reduce/internal/dagnode"
	"github.com/dagforge/reduce/internal/dagrule"
	"github.com/dagforge/reduce/internal/reduceengine/rerr"
	"github.com/dagforge/reduce/internal/workgraph"
)

// Settings are the driver-wide options a Context reports to rules through
// its query methods (§4.5).
type Settings struct {
	// MinimumImportance is the floor rules must meet to be tried.
	MinimumImportance dagnode.Importance
	// CompleteReduction requests a run to a fixed point rather than
	// stopping at PassBudget.
	CompleteReduction bool
	// PreparedDAG forbids PreparableTransformer nodes in the working
	// graph: ReplacePreparable still fails, and any mutation that would
	// otherwise introduce one is rejected with rerr.PreparableInjection.
	PreparedDAG bool
	// PassBudget caps the number of driver passes when CompleteReduction
	// is false, or is the hard ceiling past which a CompleteReduction run
	// reports rerr.PassBudgetExceeded instead of looping forever.
	PassBudget int
}

// ctx is the concrete, ephemeral dagnode.Context bound to one target node
// for the duration of a single Rule.Apply call (§4.4). A fresh ctx is
// constructed by the driver for every rule invocation; invalidate marks it
// dead the moment Apply returns, and every method panics if called after
// that, since a Rule that stashes a Context past its Apply call is a bug
// in the rule, not a condition the engine should silently tolerate.
type ctx struct {
	g        *workgraph.Graph
	classes  *dagrule.ClassRuleTable
	settings Settings
	target   dagnode.Node
	targetH  workgraph.Handle
	live     bool

	// dirty is set by every successful mutation; the driver reads it
	// after Apply returns to decide whether another pass is needed.
	dirty bool
}

func newCtx(g *workgraph.Graph, classes *dagrule.ClassRuleTable, settings Settings, targetH workgraph.Handle) *ctx {
	return &ctx{g: g, classes: classes, settings: settings, target: g.NodeAt(targetH), targetH: targetH, live: true}
}

// invalidate is called by the driver once Rule.Apply returns.
func (c *ctx) invalidate() { c.live = false }

func (c *ctx) checkLive() {
	if !c.live {
		panic("dagrule: reduction context used after its Apply call returned")
	}
}

func (c *ctx) MinimumImportance() dagnode.Importance { c.checkLive(); return c.settings.MinimumImportance }
func (c *ctx) IsCompleteReduction() bool             { c.checkLive(); return c.settings.CompleteReduction }
func (c *ctx) IsPreparedDAG() bool                   { c.checkLive(); return c.settings.PreparedDAG }

func (c *ctx) IsViewed(n dagnode.Node) bool {
	c.checkLive()
	h, ok := c.g.HandleOf(n)
	if !ok {
		return false
	}
	return c.g.IsViewed(h)
}

func (c *ctx) HasClassRule(tag dagnode.Tag, rule dagnode.Rule) bool {
	c.checkLive()
	return c.classes.Has(tag, rule)
}

func (c *ctx) Parents(n dagnode.Node) []dagnode.Node {
	c.checkLive()
	h, ok := c.g.HandleOf(n)
	if !ok {
		return nil
	}
	return c.g.ParentNodes(h)
}

func (c *ctx) ParentsByKind(n dagnode.Node, tag dagnode.Tag) []dagnode.Node {
	c.checkLive()
	var out []dagnode.Node
	for _, p := range c.Parents(n) {
		if workgraph.HasTag(p, tag) {
			out = append(out, p)
		}
	}
	return out
}

func (c *ctx) AncestorsByKind(n dagnode.Node, tag dagnode.Tag, maxDepth int) []dagnode.Node {
	c.checkLive()
	h, ok := c.g.HandleOf(n)
	if !ok {
		return nil
	}
	handles := c.g.AncestorsByKind(h, tag, maxDepth)
	out := make([]dagnode.Node, len(handles))
	for i, ah := range handles {
		out[i] = c.g.NodeAt(ah)
	}
	return out
}

func (c *ctx) AncestorsShortestPaths(n dagnode.Node, maxDepth int) [][]dagnode.Node {
	c.checkLive()
	h, ok := c.g.HandleOf(n)
	if !ok {
		return nil
	}
	return c.g.AncestorsShortestPaths(h, maxDepth)
}

func (c *ctx) WithCurrentParents(n dagnode.Node) (dagnode.Node, error) {
	c.checkLive()
	h, ok := c.g.HandleOf(n)
	if !ok {
		return n, nil
	}
	current := c.g.ParentNodes(h)
	stored := n.ParentsAsStored()
	if sameNodes(current, stored) {
		return n, nil
	}
	return n.WithNewParents(current)
}

func sameNodes(a, b []dagnode.Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// resolveExisting checks the shared precondition of every mutation
// primitive: existing must be the rule's target or an ancestor of it, and
// must currently be live in the working graph.
func (c *ctx) resolveExisting(existing dagnode.Node) (workgraph.Handle, error) {
	h, ok := c.g.HandleOf(existing)
	if !ok || !c.g.IsAncestorOrSelf(c.targetH, h) {
		return 0, &rerr.DanglingReference{Target: c.target, Existing: existing}
	}
	return h, nil
}

// checkResultType enforces that replacement's result type is Compatible
// with existing's (§4.4's shared "replacement must produce a compatible
// result" precondition).
func checkResultType(existing, replacement dagnode.Node) error {
	if !existing.ResultType().Compatible(replacement.ResultType()) {
		return &rerr.IncompatibleResultType{Existing: existing, Replacement: replacement}
	}
	return nil
}

// checkPlaceholderInjection enforces that a mutation may only put a
// Placeholder where one already stood, unless that Placeholder is already
// live in the working graph.
func (c *ctx) checkPlaceholderInjection(existing, replacement dagnode.Node) error {
	if _, live := c.g.HandleOf(replacement); live {
		return nil
	}
	if replacement.Kind() == dagnode.KindPlaceholder && existing.Kind() != dagnode.KindPlaceholder {
		return &rerr.PlaceholderInjection{At: existing}
	}
	return nil
}

func (c *ctx) checkPreparableInjection(replacement dagnode.Node) error {
	if !c.settings.PreparedDAG {
		return nil
	}
	if replacement.Kind() == dagnode.KindPreparableTransformer {
		return &rerr.PreparableInjection{At: replacement}
	}
	for _, p := range replacement.ParentsAsStored() {
		if err := c.checkPreparableInjection(p); err != nil {
			return err
		}
	}
	return nil
}

func (c *ctx) ReplaceSameKind(existing, replacement dagnode.Node) error {
	c.checkLive()
	h, err := c.resolveExisting(existing)
	if err != nil {
		return err
	}
	if existing.Kind() != replacement.Kind() {
		return &dagnode.MalformedNodeError{Kind: replacement.Kind(), Reason: "ReplaceSameKind requires matching kinds"}
	}
	if existing.Arity() != replacement.Arity() {
		return &dagnode.MalformedNodeError{Kind: replacement.Kind(), Reason: "ReplaceSameKind requires matching arity"}
	}
	if !sameNodes(c.g.ParentNodes(h), replacement.ParentsAsStored()) {
		return &dagnode.MalformedNodeError{Kind: replacement.Kind(), Reason: "ReplaceSameKind requires replacement's stored parents to match existing's current working-graph parents"}
	}
	if err := checkResultType(existing, replacement); err != nil {
		return err
	}
	if err := c.checkPreparableInjection(replacement); err != nil {
		return err
	}
	if err := c.g.ReplaceInPlace(h, replacement); err != nil {
		return err
	}
	c.dirty = true
	return nil
}

func (c *ctx) Replace(existing, replacement dagnode.Node) error {
	c.checkLive()
	h, err := c.resolveExisting(existing)
	if err != nil {
		return err
	}
	if err := checkResultType(existing, replacement); err != nil {
		return err
	}
	if err := c.checkPlaceholderInjection(existing, replacement); err != nil {
		return err
	}
	if err := c.checkPreparableInjection(replacement); err != nil {
		return err
	}
	if _, err := c.g.Replace(h, replacement); err != nil {
		return err
	}
	c.dirty = true
	return nil
}

func (c *ctx) ReplaceView(existing dagnode.View, replacement dagnode.Node) error {
	if existing.Kind() != dagnode.KindTransformerView {
		return &dagnode.MalformedNodeError{Kind: existing.Kind(), Reason: "ReplaceView requires a TransformerView"}
	}
	return c.Replace(existing, replacement)
}

func (c *ctx) ReplacePreparable(existing, replacement dagnode.Preparable) error {
	if existing.Kind() != dagnode.KindPreparableTransformer || replacement.Kind() != dagnode.KindPreparableTransformer {
		return &dagnode.MalformedNodeError{Kind: existing.Kind(), Reason: "ReplacePreparable requires two PreparableTransformers"}
	}
	return c.Replace(existing, replacement)
}

func (c *ctx) ReplaceUnviewed(existing, replacement dagnode.Node) error {
	if c.IsViewed(existing) {
		return &rerr.ViewedNode{At: existing}
	}
	return c.Replace(existing, replacement)
}

func (c *ctx) TryReplaceUnviewed(existing dagnode.Node, supplier func() (dagnode.Node, error)) (bool, error) {
	if c.IsViewed(existing) {
		return false, nil
	}
	replacement, err := supplier()
	if err != nil {
		return false, err
	}
	if err := c.Replace(existing, replacement); err != nil {
		return false, err
	}
	return true, nil
}

var _ dagnode.Context = (*ctx)(nil)
