package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/dagforge/reduce/dag"
	"github.com/dagforge/reduce/internal/graphspec"
	"github.com/dagforge/reduce/internal/graphviz"
)

// DotCommand parses a graph spec and writes a Graphviz rendering of it,
// either as DOT source or as a PNG when -png is set.
type DotCommand struct {
	Ui cli.Ui
	Fs afero.Fs
}

func (c *DotCommand) Help() string {
	return "Usage: dagreduce dot [options] <spec.toml>\n\n" +
		"  Writes a Graphviz rendering of a graph spec.\n\n" +
		"Options:\n" +
		"  -out=<path>   Output path (default stdout, DOT source only)\n" +
		"  -png          Render to PNG instead of writing DOT source (requires -out)\n"
}

func (c *DotCommand) Synopsis() string {
	return "Render a graph spec with Graphviz"
}

func (c *DotCommand) Run(args []string) int {
	var out string
	var png bool
	flags := flag.NewFlagSet("dot", flag.ContinueOnError)
	flags.StringVar(&out, "out", "", "output path (default stdout)")
	flags.BoolVar(&png, "png", false, "render PNG instead of DOT source")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() != 1 {
		c.Ui.Error("dot requires exactly one argument: the path to a graph spec")
		return 1
	}
	if png && out == "" {
		c.Ui.Error("-png requires -out")
		return 1
	}

	data, err := afero.ReadFile(c.Fs, flags.Arg(0))
	if err != nil {
		c.Ui.Error(fmt.Sprintf("reading spec: %s", err))
		return 1
	}

	spec, err := graphspec.Parse(data)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("parsing spec: %s", err))
		return 1
	}

	d, err := dag.WithOutputs(spec.Outputs)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("building graph: %s", err))
		return 1
	}

	gv := &graphviz.Graph{Content: d.WorkingGraph()}

	if png {
		f, err := c.Fs.Create(out)
		if err != nil {
			c.Ui.Error(fmt.Sprintf("creating %s: %s", out, err))
			return 1
		}
		defer f.Close()
		if err := graphviz.RenderPNG(context.Background(), gv, f); err != nil {
			c.Ui.Error(fmt.Sprintf("rendering png: %s", err))
			return 1
		}
		return 0
	}

	var sb strings.Builder
	if err := graphviz.WriteDirectedGraph(gv, &sb); err != nil {
		c.Ui.Error(fmt.Sprintf("rendering dot: %s", err))
		return 1
	}

	if out == "" {
		c.Ui.Output(sb.String())
		return 0
	}
	if err := afero.WriteFile(c.Fs, out, []byte(sb.String()), 0o644); err != nil {
		c.Ui.Error(fmt.Sprintf("writing %s: %s", out, err))
		return 1
	}
	return 0
}
