package dagnode

// ResultType is an opaque, comparable tag a node uses to describe the type
// of value it produces. The reduction engine never interprets a ResultType
// itself; it only ever asks whether two of them are Compatible, which is
// enough to enforce the "replacement must produce a result of a compatible
// type" precondition shared by every mutation primitive (§4.4).
type ResultType interface {
	// Compatible reports whether a value of this type may stand in for a
	// value of the other type. Implementations are expected (but not
	// required) to make this symmetric.
	Compatible(other ResultType) bool
}

// SimpleResultType is a ResultType whose compatibility is plain equality,
// which is sufficient for every example node kind in this module.
type SimpleResultType string

func (t SimpleResultType) Compatible(other ResultType) bool {
	o, ok := other.(SimpleResultType)
	return ok && o == t
}

// Node is the contract every DAG vertex satisfies, regardless of kind.
//
// Node values are immutable: "changing" a node produces a new Node via
// WithNewParents rather than mutating the receiver. The parents a Node
// reports through ParentsAsStored are advisory — the authoritative edges
// for a node that has been inserted into a working graph live there, not
// in the Node value itself, and the two may diverge until something calls
// WithCurrentParents (or an equivalent context query) to reconcile them.
type Node interface {
	// Kind reports which of the five closed node variants this is.
	Kind() Kind

	// ParentsAsStored returns the parent list this node instance
	// remembers. It may diverge from a working graph's authoritative
	// edges for this node.
	ParentsAsStored() []Node

	// Arity reports the constraint WithNewParents enforces on the
	// length of its argument.
	Arity() Arity

	// WithNewParents returns a copy of this node whose stored parents
	// are the given list, preserving kind, configuration, and
	// value-equality class. It fails with *MalformedNodeError if parents
	// violates Arity() or places an incompatible kind into a fixed slot.
	//
	// For value-equal node classes, two results built from Equal parent
	// lists must themselves be Equal.
	WithNewParents(parents []Node) (Node, error)

	// Capabilities returns the flags this node asserts about itself.
	Capabilities() Capability

	// InstanceRules returns the (possibly empty) set of rewrite rules
	// this node instance contributes, in the order they should be tried.
	InstanceRules() []Rule

	// ResultType describes the type of value this node produces, used
	// by mutation primitives to check replacement compatibility.
	ResultType() ResultType

	// Equal reports whether other represents the same node as this one.
	// Kinds that use handle (identity) equality implement this as a Go
	// identity/pointer comparison; kinds that use value equality compare
	// kind, configuration, and parents pointwise via their own Equal.
	Equal(other Node) bool
}

// Preparable is the additional contract satisfied by nodes of
// KindPreparableTransformer: a two-phase node whose preparation produces
// a prepared projection.
type Preparable interface {
	Node

	// Prepare derives this node's prepared projection from its current
	// parents. The returned Node always has Kind() ==
	// KindPreparedTransformer.
	Prepare() (Node, error)
}

// View is the additional contract satisfied by nodes of
// KindTransformerView: a node that observes a single Preparable parent's
// prepared projection rather than its value.
type View interface {
	Node

	// Preparable returns this view's single parent, which must be a
	// Preparable (KindPreparableTransformer) node. Views always have
	// exactly one parent, so this is equivalent to ParentsAsStored()[0]
	// type-asserted to Preparable, provided as a named accessor for
	// clarity at call sites.
	Preparable() Preparable
}

// Importance is the cost/benefit tier a Rule is tagged with, used as a
// floor by the reduction driver (§4.3, §6).
type Importance int

const (
	// Essential rules are always run; dropping them can change program
	// semantics (e.g. constant folding needed to satisfy a later
	// invariant) or leave the graph in a state later stages can't handle
	// (e.g. PreparableTransformer removal for prepared-DAG mode).
	Essential Importance = iota
	// Normal rules are worth running whenever cost allows but are not
	// required for correctness.
	Normal
	// Expensive rules are the costliest tier and are the first dropped
	// under a tight importance floor.
	Expensive
)

func (i Importance) String() string {
	switch i {
	case Essential:
		return "Essential"
	case Normal:
		return "Normal"
	case Expensive:
		return "Expensive"
	default:
		return "InvalidImportance"
	}
}

// Meets reports whether this importance level satisfies a floor: a rule at
// level i is admitted when floor >= i, i.e. the floor is "at least as
// permissive" as i. Essential (0) is admitted at every floor; Expensive is
// admitted only when the floor itself is Expensive.
func (i Importance) Meets(floor Importance) bool {
	return i <= floor
}

// Rule is a local rewrite rule attached either to a specific node instance
// or to a type-or-capability tag via a ClassRuleTable (§4.3).
//
// Rules must be stateless, immutable, and deterministic; they must not
// capture references to nodes across invocations, and must be safe to
// invoke concurrently across unrelated reductions (though never
// concurrently within one reduction, which is single-threaded).
type Rule interface {
	// ImportanceLevel reports this rule's cost/benefit tier.
	ImportanceLevel() Importance

	// Apply attempts one rewrite of target using ctx. Apply must either
	// be a no-op (because its precondition doesn't hold, or because a
	// prior rule in the same pass already rewrote target out from under
	// it) or invoke exactly one of ctx's mutation primitives describing
	// the rewrite. If Apply returns an error, the entire reduction is
	// aborted; Apply must not swallow errors from ctx's calls.
	Apply(target Node, ctx Context) error
}

// Context is the ephemeral façade a Rule uses to query and mutate the
// working graph during one Apply call (§4.4). A Context is bound to a
// single target node and becomes invalid as soon as Apply returns; rules
// must not store a Context past the call that provided it.
type Context interface {
	// MinimumImportance returns the floor the driver is running with.
	MinimumImportance() Importance
	// IsCompleteReduction reports whether the driver will run to a fixed
	// point rather than stopping early at a pass budget.
	IsCompleteReduction() bool
	// IsPreparedDAG reports whether PreparableTransformer nodes are
	// forbidden in the working graph.
	IsPreparedDAG() bool
	// IsViewed reports whether n currently has any TransformerView
	// children.
	IsViewed(n Node) bool
	// HasClassRule reports whether the driver will apply rule to every
	// descendant of target whose kind-or-ancestry satisfies tag.
	HasClassRule(tag Tag, rule Rule) bool

	// Parents returns n's current working-graph parents, in order,
	// possibly with duplicates.
	Parents(n Node) []Node
	// ParentsByKind returns the subset of Parents(n) whose ancestry
	// includes tag, preserving order.
	ParentsByKind(n Node, tag Tag) []Node
	// AncestorsByKind returns every ancestor of n (via working-graph
	// parent edges, not stored parents) within maxDepth hops whose
	// ancestry includes tag. maxDepth < 0 means unbounded.
	AncestorsByKind(n Node, tag Tag, maxDepth int) []Node
	// AncestorsShortestPaths performs a breadth-first search from n and
	// returns, for every ancestor within maxDepth hops, the single
	// shortest descent chain from n to that ancestor (n first, ancestor
	// last). maxDepth < 0 means unbounded.
	AncestorsShortestPaths(n Node, maxDepth int) [][]Node

	// WithCurrentParents returns a Node Equal to n but whose stored
	// parents reflect the working graph; if they already agree, it
	// returns n itself.
	WithCurrentParents(n Node) (Node, error)

	// ReplaceSameKind replaces existing with replacement in place.
	// existing and replacement must have the exact same Kind and Arity,
	// and replacement's parents (as stored) must match existing's
	// current working-graph edges. Used for property edits that don't
	// move edges.
	ReplaceSameKind(existing, replacement Node) error
	// Replace performs a general replacement. replacement's stored
	// parents become its working-graph parents, unless replacement is
	// reference-identical (the same instance, never merely Equal) to a
	// node already in the graph, in which case that node's current
	// parents are kept.
	Replace(existing, replacement Node) error
	// ReplaceView is like Replace, but existing must be a
	// KindTransformerView node.
	ReplaceView(existing View, replacement Node) error
	// ReplacePreparable is like Replace, but both existing and
	// replacement must be KindPreparableTransformer nodes, and
	// existing's prepared-projection type must be compatible with
	// replacement's.
	ReplacePreparable(existing, replacement Preparable) error
	// ReplaceUnviewed is like Replace, but fails with a ViewedNode error
	// if existing has any TransformerView children.
	ReplaceUnviewed(existing, replacement Node) error
	// TryReplaceUnviewed is ReplaceUnviewed without the failure: it
	// returns false (without invoking supplier) if existing has view
	// children, and true (after calling supplier and replacing) if not.
	TryReplaceUnviewed(existing Node, supplier func() (Node, error)) (bool, error)
}
