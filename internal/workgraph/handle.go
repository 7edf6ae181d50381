// Package workgraph implements the working graph (§3, §4.2): the mutable
// adjacency structure that is authoritative for edges during a reduction,
// keyed by reference identity of the nodes inserted into it.
//
// Go has no cheap, stable object identity the way the source system's host
// language does, so each distinct node gets an integer Handle on insertion
// (§9 design note) and every other operation in this package is expressed
// in terms of handles rather than raw node values.
package workgraph

import "github.com/dagforge/reduce/internal/dagnode"

// Handle is an opaque reference to one entry in a Graph. Handles are only
// meaningful relative to the Graph that issued them; using one against a
// different Graph is a programming error and has undefined results.
type Handle int

// invalidHandle is never issued by Graph and is used internally to signal
// "no such entry" without resorting to a pointer and its associated nilability
// footguns.
const invalidHandle Handle = -1

// entry is one node's bookkeeping inside a Graph.
type entry struct {
	node     dagnode.Node
	parents  []Handle // ordered, may contain duplicates
	children []Handle // multiset, unordered
	removed  bool     // true once disconnected and swept
}
