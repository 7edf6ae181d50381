package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/dagforge/reduce/internal/graphspec"
)

// BuildCommand parses a graph spec and prints its node and output counts
// followed by its node ids in sorted order, without building a working
// graph or running any reduction.
type BuildCommand struct {
	Ui cli.Ui
	Fs afero.Fs
}

func (c *BuildCommand) Help() string {
	return "Usage: dagreduce build <spec.toml>\n\n  Parses a graph spec and lists its node ids in sorted order."
}

func (c *BuildCommand) Synopsis() string {
	return "Parse a graph spec and list its node ids"
}

func (c *BuildCommand) Run(args []string) int {
	flags := flag.NewFlagSet("build", flag.ContinueOnError)
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() != 1 {
		c.Ui.Error("build requires exactly one argument: the path to a graph spec")
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

	var lines []string
	for id := range g.ByID {
		lines = append(lines, id)
	}
	sort.Strings(lines)
	c.Ui.Output(fmt.Sprintf("%d node(s), %d output(s)", len(g.ByID), len(g.Outputs)))
	c.Ui.Output(strings.Join(lines, ", "))
	return 0
}
