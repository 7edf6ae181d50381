// Package nodes is a small, concrete domain vocabulary exercising the
// reduction core end to end: named inputs, a generator, cty.Value
// constants, and a handful of transformer kinds that each contribute one
// of the built-in reducers from internal/dagrule/builtin.
package nodes

import "github.com/dagforge/reduce/internal/dagnode"

// Result types. Compatibility is plain equality (dagnode.SimpleResultType),
// which is enough for this example vocabulary; a real domain package would
// likely want a richer ResultType that can express, say, "any number" vs.
// "exactly int64".
const (
	Number dagnode.SimpleResultType = "number"
	String dagnode.SimpleResultType = "string"
	Bool   dagnode.SimpleResultType = "bool"
	Tuple  dagnode.SimpleResultType = "tuple"
	Dyn    dagnode.SimpleResultType = "dynamic"
)

// Associative family tags, shared across the node kinds that flatten
// against one another.
const (
	sumFamily       dagnode.Tag = "nodes/sum-family"
	compositeFamily dagnode.Tag = "nodes/composite-family"
)
