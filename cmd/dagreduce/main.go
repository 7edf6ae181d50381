// Command dagreduce is a small inspection tool for the reduction engine: it
// loads a TOML graph description, optionally reduces it, and either prints
// the resulting producers or renders the graph with Graphviz. It follows
// the same mitchellh/cli shape as the teacher's own cmd/tofu entry point,
// scaled down to three subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
)

// Ui is the cli.Ui used for communicating to the outside world.
var Ui cli.Ui

// fs is the filesystem every subcommand reads its graph spec and writes its
// output through, swapped for an in-memory one in tests.
var fs = afero.NewOsFs()

func init() {
	Ui = &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}
}

func main() {
	os.Exit(realMain())
}

func realMain() int {
	c := &cli.CLI{
		Name:     "dagreduce",
		Args:     os.Args[1:],
		Commands: commands(),
	}

	exitCode, err := c.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return exitCode
}

func commands() map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"build": func() (cli.Command, error) {
			return &BuildCommand{Ui: Ui, Fs: fs}, nil
		},
		"reduce": func() (cli.Command, error) {
			return &ReduceCommand{Ui: Ui, Fs: fs}, nil
		},
		"dot": func() (cli.Command, error) {
			return &DotCommand{Ui: Ui, Fs: fs}, nil
		},
	}
}
