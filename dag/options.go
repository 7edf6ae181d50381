package dag

import (
	"github.com/hashicorp/go-hclog"

	"github.com/dagforge/reduce/internal/dagnode"
	"github.com/dagforge/reduce/internal/dagrule"
	"github.com/dagforge/reduce/internal/reduceengine"
)

// Option configures a DAG at construction time.
type Option func(*DAG)

// WithLogger sets the hclog.Logger the reduction driver logs to. The
// default is a no-op logger.
func WithLogger(l hclog.Logger) Option {
	return func(d *DAG) { d.logger = l }
}

// WithImportanceFloor sets the importance floor stored in the DAG's
// settings. Reduce always replaces it with its own floor argument, so this
// option does not change which rules a Reduce call tries.
func WithImportanceFloor(i dagnode.Importance) Option {
	return func(d *DAG) { d.settings.MinimumImportance = i }
}

// WithPreparedDAGMode forbids PreparableTransformer nodes in the working
// graph when strict is true.
func WithPreparedDAGMode(strict bool) Option {
	return func(d *DAG) { d.settings.PreparedDAG = strict }
}

// WithCompleteReduction requests a run to a fixed point rather than
// stopping at the pass budget.
func WithCompleteReduction(complete bool) Option {
	return func(d *DAG) { d.settings.CompleteReduction = complete }
}

// WithPassBudget caps the number of driver passes per Reduce call.
func WithPassBudget(n int) Option {
	return func(d *DAG) { d.settings.PassBudget = n }
}

// WithClassRules registers a pre-built class rule table instead of the
// empty default, for callers with their own rule library beyond each
// node's own instance rules.
func WithClassRules(t *dagrule.ClassRuleTable) Option {
	return func(d *DAG) { d.classes = t }
}

func defaultSettings() reduceengine.Settings {
	return reduceengine.Settings{
		MinimumImportance: dagnode.Expensive,
		CompleteReduction: true,
		PreparedDAG:       false,
		PassBudget:        10000,
	}
}
