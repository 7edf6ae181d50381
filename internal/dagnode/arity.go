package dagnode

import "fmt"

// Arity describes how many parents a node is allowed to have. Most kinds
// have a fixed arity (Placeholder and Generator are always zero;
// TransformerView is always one); PreparedTransformer and
// PreparableTransformer may declare either a fixed arity or a variadic
// lower bound, since the built-in associative-flattening rule (§4.7) needs
// to grow a variadic node's parent list in place.
type Arity struct {
	min      int
	max      int // -1 means unbounded
}

// Fixed returns an Arity accepting exactly n parents.
func Fixed(n int) Arity { return Arity{min: n, max: n} }

// Variadic returns an Arity accepting at least min parents, with no upper
// bound.
func Variadic(min int) Arity { return Arity{min: min, max: -1} }

// Accepts reports whether n parents satisfy the arity constraint.
func (a Arity) Accepts(n int) bool {
	if n < a.min {
		return false
	}
	return a.max < 0 || n <= a.max
}

// IsVariadic reports whether the arity has no fixed upper bound.
func (a Arity) IsVariadic() bool {
	return a.max < 0
}

func (a Arity) String() string {
	if a.IsVariadic() {
		return fmt.Sprintf(">=%d", a.min)
	}
	if a.min == a.max {
		return fmt.Sprintf("=%d", a.min)
	}
	return fmt.Sprintf("%d..%d", a.min, a.max)
}
