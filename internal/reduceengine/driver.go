package reduceengine

import (
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/dagforge/reduce/internal/dagnode"
	"github.com/dagforge/reduce/internal/dagrule"
	"github.com/dagforge/reduce/internal/reduceengine/rerr"
	"github.com/dagforge/reduce/internal/workgraph"
)

// Driver runs rewrite passes over a working graph to a fixed point (§4.5).
type Driver struct {
	Classes  *dagrule.ClassRuleTable
	Settings Settings
	Logger   hclog.Logger
}

// NewDriver returns a Driver. If logger is nil, a no-op logger is used,
// matching the teacher's convention of accepting a nil logger at
// construction time rather than forcing every caller to wire one up.
func NewDriver(classes *dagrule.ClassRuleTable, settings Settings, logger hclog.Logger) *Driver {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Driver{Classes: classes, Settings: settings, Logger: logger}
}

// Run drives g to a fixed point (or, when Settings.CompleteReduction is
// false, for at most Settings.PassBudget passes), applying every instance
// and class rule whose importance meets the configured floor. It returns
// *rerr.ReductionAborted if any rule's Apply call errors, and
// *rerr.PassBudgetExceeded if CompleteReduction is requested but the graph
// hasn't reached a fixed point by the time the pass budget is exhausted.
func (d *Driver) Run(g *workgraph.Graph) error {
	runID := uuid.New().String()
	logger := d.Logger.With("run_id", runID)
	logger.Debug("starting reduction", "importance_floor", d.Settings.MinimumImportance, "prepared_dag", d.Settings.PreparedDAG)

	for pass := 0; ; pass++ {
		if pass >= d.Settings.PassBudget {
			if d.Settings.CompleteReduction {
				return &rerr.PassBudgetExceeded{Passes: pass}
			}
			logger.Debug("pass budget reached without a fixed point", "passes", pass)
			return nil
		}

		dirtyAny, err := d.runPass(g, logger.With("pass", pass))
		if err != nil {
			return &rerr.ReductionAborted{Cause: err}
		}
		if !dirtyAny {
			logger.Debug("reached fixed point", "passes", pass+1)
			return nil
		}
	}
}

// runPass applies rules to every node in a single topological sweep. As
// soon as one of a node's rules fires, the remaining rules for that node
// are skipped (since the node's handle may no longer identify it
// afterward) and the sweep moves on to the next scheduled handle; the
// rewritten region is examined again on the next pass.
func (d *Driver) runPass(g *workgraph.Graph, logger hclog.Logger) (bool, error) {
	dirtyAny := false
	for _, h := range g.TopoOrder() {
		n := g.NodeAt(h)
		if n == nil {
			// Swept earlier in this same pass as a consequence of another
			// node's rewrite.
			continue
		}

		for _, rule := range d.collectRules(n) {
			c := newCtx(g, d.Classes, d.Settings, h)
			err := rule.Apply(n, c)
			c.invalidate()
			if err != nil {
				return false, err
			}
			if c.dirty {
				dirtyAny = true
				logger.Trace("rule fired", "kind", n.Kind(), "importance", rule.ImportanceLevel())
				break
			}
		}
	}
	return dirtyAny, nil
}

// collectRules returns every rule eligible to run against n: its own
// instance rules first (in the order the node reports them), then every
// class rule whose tag is part of n's ancestry, each filtered to the
// configured importance floor.
func (d *Driver) collectRules(n dagnode.Node) []dagnode.Rule {
	var out []dagnode.Rule
	for _, r := range n.InstanceRules() {
		if r.ImportanceLevel().Meets(d.Settings.MinimumImportance) {
			out = append(out, r)
		}
	}
	for _, r := range d.Classes.RulesFor(n) {
		if r.ImportanceLevel().Meets(d.Settings.MinimumImportance) {
			out = append(out, r)
		}
	}
	return out
}
