package dagnode

// Capability is a bitset of the flags a node asserts about itself (§3).
// Capabilities are contracts: the reducer may rely on them but must never
// infer one a node hasn't declared.
type Capability uint8

const (
	// CapConstantResult marks a node whose result does not vary across
	// applications for a fixed set of parent values (but may still read
	// the example index indirectly through a parent).
	CapConstantResult Capability = 1 << iota

	// CapAlwaysConstantResult marks a node whose result never varies at
	// all, including across different example indices. Implies
	// CapConstantResult.
	CapAlwaysConstantResult

	// CapIdempotentPreparer marks a PreparableTransformer whose
	// preparation may be safely invoked more than once (e.g. by a rule
	// that speculatively re-prepares it) without changing the outcome.
	CapIdempotentPreparer

	// CapHasTrivialEquality marks a node whose value-equality check is
	// cheap (O(1) beyond comparing parents), as opposed to one that must
	// do expensive work to decide whether two configurations are equal.
	CapHasTrivialEquality

	// CapIdentityWhenUnary marks a variadic node whose semantics at arity
	// one reduce to its single operand, letting RemoveIfUnaryReducer
	// collapse it generically without knowing its concrete type.
	CapIdentityWhenUnary
)

// Has reports whether c includes every bit set in want.
func (c Capability) Has(want Capability) bool {
	return c&want == want
}

// With returns c with the given capabilities added.
func (c Capability) With(add Capability) Capability {
	return c | add
}
