package main

import (
	"flag"
	"fmt"

	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/dagforge/reduce/dag"
	"github.com/dagforge/reduce/internal/graphspec"
	"github.com/dagforge/reduce/internal/reduceconfig"
)

// ReduceCommand parses a graph spec, reduces it to the given importance
// floor, and prints the resulting producers.
type ReduceCommand struct {
	Ui cli.Ui
	Fs afero.Fs
}

func (c *ReduceCommand) Help() string {
	return "Usage: dagreduce reduce [options] <spec.toml>\n\n" +
		"  Reduces a graph spec and lists the resulting producers.\n\n" +
		"Options:\n" +
		"  -importance=essential|normal|expensive   Importance floor (default expensive)\n" +
		"  -prepared-dag=strict|loose                Reject PreparableTransformer injection (default loose)\n"
}

func (c *ReduceCommand) Synopsis() string {
	return "Reduce a graph spec to a fixed point"
}

func (c *ReduceCommand) Run(args []string) int {
	var importance, preparedDAG string
	flags := flag.NewFlagSet("reduce", flag.ContinueOnError)
	flags.StringVar(&importance, "importance", "expensive", "importance floor")
	flags.StringVar(&preparedDAG, "prepared-dag", "loose", "strict or loose")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() != 1 {
		c.Ui.Error("reduce requires exactly one argument: the path to a graph spec")
		return 1
	}

	data, err := afero.ReadFile(c.Fs, flags.Arg(0))
	if err != nil {
		c.Ui.Error(fmt.Sprintf("reading spec: %s", err))
		return 1
	}

	g, err := graphspec.Parse(data)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("parsing spec: %s", err))
		return 1
	}

	profile := reduceconfig.Default
	profile.ImportanceFloor = importance
	profile.PreparedDAGMode = preparedDAG == "strict"
	settings, err := profile.Settings()
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	d, err := dag.WithOutputs(g.Outputs,
		dag.WithImportanceFloor(settings.MinimumImportance),
		dag.WithPreparedDAGMode(settings.PreparedDAG),
		dag.WithCompleteReduction(settings.CompleteReduction),
		dag.WithPassBudget(settings.PassBudget),
	)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("building graph: %s", err))
		return 1
	}

	if err := d.Reduce(settings.MinimumImportance); err != nil {
		c.Ui.Error(fmt.Sprintf("reducing: %s", err))
		return 1
	}

	producers, err := d.Materialize()
	if err != nil {
		c.Ui.Error(fmt.Sprintf("materializing: %s", err))
		return 1
	}

	for _, p := range producers {
		c.Ui.Output(fmt.Sprintf("%s (%s)", p.Kind(), p.ResultType()))
	}
	return 0
}
