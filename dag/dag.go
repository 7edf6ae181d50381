// Package dag is the façade over the reduction core (§4.6): build a
// working graph from a set of output nodes, substitute placeholders,
// reduce it to a fixed point or to a given importance floor, and read the
// result back out as a plain Node tree.
package dag

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/dagforge/reduce/internal/dagnode"
	"github.com/dagforge/reduce/internal/dagrule"
	"github.com/dagforge/reduce/internal/reduceengine"
	"github.com/dagforge/reduce/internal/workgraph"
)

// DAG wraps a working graph together with the reduction settings and rule
// library it reduces with.
type DAG struct {
	graph    *workgraph.Graph
	settings reduceengine.Settings
	classes  *dagrule.ClassRuleTable
	logger   hclog.Logger
}

// WithOutputs builds a DAG from outputs' stored-parent closure (§4.2).
func WithOutputs(outputs []dagnode.Node, opts ...Option) (*DAG, error) {
	g, err := workgraph.NewFromOutputs(outputs)
	if err != nil {
		return nil, fmt.Errorf("building working graph: %w", err)
	}
	d := &DAG{
		graph:    g,
		settings: defaultSettings(),
		classes:  dagrule.NewClassRuleTable(),
		logger:   hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// WithInput substitutes producer for the single live placeholder named
// name. It's an error if no live placeholder has that name.
func (d *DAG) WithInput(name string, producer dagnode.Node) error {
	return d.WithPlaceholders(map[string]dagnode.Node{name: producer})
}

// WithPlaceholders substitutes, for every (name, producer) pair in
// substitutions, the live placeholder named name for producer. Unlike a
// rule-driven replacement, this bypasses the reduction context entirely:
// it's the caller wiring real producers into the graph before reduction
// ever runs, not a rewrite the engine discovered on its own.
func (d *DAG) WithPlaceholders(substitutions map[string]dagnode.Node) error {
	matched := make(map[string]bool, len(substitutions))
	for _, h := range d.graph.Placeholders() {
		ph, ok := d.graph.NodeAt(h).(*dagnode.PlaceholderNode)
		if !ok {
			continue
		}
		producer, ok := substitutions[ph.Name]
		if !ok {
			continue
		}
		if !ph.ResultType().Compatible(producer.ResultType()) {
			return fmt.Errorf("substituting placeholder %q: incompatible result type", ph.Name)
		}
		if _, err := d.graph.Replace(h, producer); err != nil {
			return fmt.Errorf("substituting placeholder %q: %w", ph.Name, err)
		}
		matched[ph.Name] = true
	}
	for name := range substitutions {
		if !matched[name] {
			return fmt.Errorf("no live placeholder named %q", name)
		}
	}
	return nil
}

// WorkingGraph exposes the underlying working graph, for callers that need
// to inspect or render it directly (internal/graphviz) rather than going
// through Materialize/Producers.
func (d *DAG) WorkingGraph() *workgraph.Graph {
	return d.graph
}

// Reduce runs the rewrite driver to a fixed point, trying every instance
// and class rule whose importance meets floor.
func (d *DAG) Reduce(floor dagnode.Importance) error {
	settings := d.settings
	settings.MinimumImportance = floor
	driver := reduceengine.NewDriver(d.classes, settings, d.logger)
	return driver.Run(d.graph)
}

// Materialize reconstructs the current output nodes as a plain Node tree,
// reflecting every working-graph edge rewrite a reduction has performed:
// any node whose current parents no longer match what it stores is
// rebuilt via WithNewParents.
func (d *DAG) Materialize() ([]dagnode.Node, error) {
	reconciled, err := reconcile(d.graph)
	if err != nil {
		return nil, err
	}
	outputs := d.graph.Outputs()
	out := make([]dagnode.Node, len(outputs))
	for i, h := range outputs {
		out[i] = reconciled[h]
	}
	return out, nil
}

// ProducerChain is the shortest lineage connecting one of a DAG's outputs
// down to a single distinct node in the working graph: the output first,
// the node itself last (§4.6: "a stream of shortest-path linked chains, one
// per distinct node in the reduced graph").
type ProducerChain []dagnode.Node

// Producers returns one ProducerChain per distinct node currently live in
// the working graph, for inspection and testing (§4.6). Each chain is the
// shortest path — by working-graph parent edges — from whichever output
// reaches that node in the fewest hops; an output itself gets the trivial
// one-element chain containing only itself. Chains are returned in
// topological order of their terminal (last) node.
//
// Unlike Materialize, Producers reports the working graph's nodes exactly
// as they currently sit in the graph, without rebuilding any node whose own
// stored parents have drifted from its working-graph edges — the chain
// itself already conveys the current edge structure.
func (d *DAG) Producers() []ProducerChain {
	best := make(map[workgraph.Handle]ProducerChain)
	for _, out := range d.graph.Outputs() {
		if _, ok := best[out]; !ok {
			best[out] = ProducerChain{d.graph.NodeAt(out)}
		}
		for _, chain := range d.graph.AncestorsShortestPaths(out, -1) {
			h, ok := d.graph.HandleOf(chain[len(chain)-1])
			if !ok {
				continue
			}
			if existing, ok := best[h]; !ok || len(chain) < len(existing) {
				best[h] = ProducerChain(chain)
			}
		}
	}

	order := d.graph.TopoOrder()
	out := make([]ProducerChain, 0, len(order))
	for _, h := range order {
		if chain, ok := best[h]; ok {
			out = append(out, chain)
		}
	}
	return out
}

// reconcile walks g in topological order, rebuilding any node whose
// current working-graph parents diverge from what it stores.
func reconcile(g *workgraph.Graph) (map[workgraph.Handle]dagnode.Node, error) {
	reconciled := make(map[workgraph.Handle]dagnode.Node)
	for _, h := range g.TopoOrder() {
		orig := g.NodeAt(h)
		parentHandles := g.ParentHandles(h)
		newParents := make([]dagnode.Node, len(parentHandles))
		for i, ph := range parentHandles {
			newParents[i] = reconciled[ph]
		}
		if sameNodes(newParents, orig.ParentsAsStored()) {
			reconciled[h] = orig
			continue
		}
		rebuilt, err := orig.WithNewParents(newParents)
		if err != nil {
			return nil, fmt.Errorf("reconciling %s node: %w", orig.Kind(), err)
		}
		reconciled[h] = rebuilt
	}
	return reconciled, nil
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
