package dagnode

// Tag identifies a type-or-capability marker used to dispatch class rules
// (§4.3 of the design: "a mapping from a type-or-capability tag to a set of
// rules applicable to any node whose kind-or-ancestry satisfies that tag").
//
// The ancestry of a kind is a small, fixed-length set of tags (§9 design
// note): walking it is never a search over an open hierarchy, just a lookup
// of a short constant slice.
type Tag string

const (
	// TagAny matches every node, regardless of kind. Rules registered
	// against TagAny run on the whole graph; use sparingly.
	TagAny = Tag("any")

	TagPlaceholder          = Tag("placeholder")
	TagGenerator            = Tag("generator")
	TagPreparedTransformer  = Tag("prepared-transformer")
	TagPreparableTransform  = Tag("preparable-transformer")
	TagTransformerView      = Tag("transformer-view")

	// TagConstantResult is satisfied by any node whose CapConstantResult
	// or CapAlwaysConstantResult capability is set, letting class rules
	// target "anything that behaves like a constant" without caring
	// which concrete kind it is.
	TagConstantResult = Tag("constant-result")

	// TagViewable is satisfied by every KindPreparableTransformer, since
	// only that kind can ever have a TransformerView child.
	TagViewable = Tag("viewable")
)

// kindTags gives the fixed ancestry tag set for each kind, excluding
// capability-derived tags (those are appended by AncestryOf).
var kindTags = map[Kind][]Tag{
	KindPlaceholder:           {TagPlaceholder},
	KindGenerator:             {TagGenerator},
	KindPreparedTransformer:   {TagPreparedTransformer},
	KindPreparableTransformer: {TagPreparableTransform, TagViewable},
	KindTransformerView:       {TagTransformerView},
}

// AncestryOf returns every tag a node of the given kind and capability set
// satisfies, always including TagAny. The result is a fresh slice safe for
// the caller to keep.
func AncestryOf(k Kind, caps Capability) []Tag {
	fixed := kindTags[k]
	tags := make([]Tag, 0, len(fixed)+2)
	tags = append(tags, TagAny)
	tags = append(tags, fixed...)
	if caps.Has(CapConstantResult) || caps.Has(CapAlwaysConstantResult) {
		tags = append(tags, TagConstantResult)
	}
	return tags
}
