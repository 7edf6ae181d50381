// Package dagrule holds the class-rule registry consumed by the reduction
// driver: a mapping from a type-or-capability tag to the rules that apply
// to any node whose ancestry satisfies that tag (§4.3).
package dagrule

import "github.com/dagforge/reduce/internal/dagnode"

// ClassRuleTable is a registry of rules keyed by tag. Unlike instance
// rules (carried by the node itself), class rules are registered once and
// apply to every node, present or future, whose kind-or-ancestry matches
// the tag they're registered under.
type ClassRuleTable struct {
	byTag map[dagnode.Tag][]dagnode.Rule
}

// NewClassRuleTable returns an empty table.
func NewClassRuleTable() *ClassRuleTable {
	return &ClassRuleTable{byTag: make(map[dagnode.Tag][]dagnode.Rule)}
}

// Register adds rule under tag. Rules registered under the same tag are
// tried in registration order.
func (t *ClassRuleTable) Register(tag dagnode.Tag, rule dagnode.Rule) {
	t.byTag[tag] = append(t.byTag[tag], rule)
}

// RulesFor returns every class rule whose tag is part of n's ancestry, in
// a stable order: tags are walked in the fixed order AncestryOf reports
// them, and within a tag, rules are tried in registration order.
func (t *ClassRuleTable) RulesFor(n dagnode.Node) []dagnode.Rule {
	var out []dagnode.Rule
	for _, tag := range dagnode.AncestryOf(n.Kind(), n.Capabilities()) {
		out = append(out, t.byTag[tag]...)
	}
	return out
}

// Has reports whether rule is registered under tag, used to answer
// Context.HasClassRule without exposing the table's internals to rules.
func (t *ClassRuleTable) Has(tag dagnode.Tag, rule dagnode.Rule) bool {
	for _, r := range t.byTag[tag] {
		if r == rule {
			return true
		}
	}
	return false
}
