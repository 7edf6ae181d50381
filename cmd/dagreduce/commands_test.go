package main

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// capturingUi is a minimal cli.Ui double that records Output/Error calls
// instead of writing to a real terminal, so command tests can assert on
// what a command told the user without capturing stdout/stderr.
type capturingUi struct {
	output []string
	errors []string
}

func (u *capturingUi) Ask(string) (string, error)       { return "", nil }
func (u *capturingUi) AskSecret(string) (string, error) { return "", nil }
func (u *capturingUi) Output(s string)                  { u.output = append(u.output, s) }
func (u *capturingUi) Info(s string)                    { u.output = append(u.output, s) }
func (u *capturingUi) Error(s string)                   { u.errors = append(u.errors, s) }
func (u *capturingUi) Warn(s string)                    { u.output = append(u.output, s) }

const sampleSpec = `
outputs = ["total"]

[[node]]
id = "a"
kind = "constant"
value = 2

[[node]]
id = "b"
kind = "constant"
value = 3

[[node]]
id = "total"
kind = "sum"
parents = ["a", "b"]
`

func TestBuildCommandListsNodes(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "spec.toml", []byte(sampleSpec), 0o644); err != nil {
		t.Fatal(err)
	}
	ui := &capturingUi{}
	cmd := &BuildCommand{Ui: ui, Fs: fs}

	if code := cmd.Run([]string{"spec.toml"}); code != 0 {
		t.Fatalf("want exit 0, got %d (errors: %v)", code, ui.errors)
	}
	if len(ui.output) != 2 {
		t.Fatalf("want 2 output lines, got %v", ui.output)
	}
	if !strings.Contains(ui.output[0], "3 node(s), 1 output(s)") {
		t.Fatalf("unexpected summary line: %q", ui.output[0])
	}
}

func TestBuildCommandRequiresOneArgument(t *testing.T) {
	ui := &capturingUi{}
	cmd := &BuildCommand{Ui: ui, Fs: afero.NewMemMapFs()}

	if code := cmd.Run(nil); code == 0 {
		t.Fatal("want a nonzero exit code with no arguments")
	}
	if len(ui.errors) != 1 {
		t.Fatalf("want one error message, got %v", ui.errors)
	}
}

func TestReduceCommandFoldsConstants(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "spec.toml", []byte(sampleSpec), 0o644); err != nil {
		t.Fatal(err)
	}
	ui := &capturingUi{}
	cmd := &ReduceCommand{Ui: ui, Fs: fs}

	if code := cmd.Run([]string{"spec.toml"}); code != 0 {
		t.Fatalf("want exit 0, got %d (errors: %v)", code, ui.errors)
	}
	if len(ui.output) != 1 {
		t.Fatalf("folding should leave a single producer line, got %v", ui.output)
	}
}

func TestReduceCommandRejectsUnknownImportance(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "spec.toml", []byte(sampleSpec), 0o644); err != nil {
		t.Fatal(err)
	}
	ui := &capturingUi{}
	cmd := &ReduceCommand{Ui: ui, Fs: fs}

	if code := cmd.Run([]string{"-importance=bogus", "spec.toml"}); code == 0 {
		t.Fatal("want a nonzero exit code for an unrecognized importance floor")
	}
}

func TestDotCommandWritesDotSourceToStdout(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "spec.toml", []byte(sampleSpec), 0o644); err != nil {
		t.Fatal(err)
	}
	ui := &capturingUi{}
	cmd := &DotCommand{Ui: ui, Fs: fs}

	if code := cmd.Run([]string{"spec.toml"}); code != 0 {
		t.Fatalf("want exit 0, got %d (errors: %v)", code, ui.errors)
	}
	if len(ui.output) != 1 || !strings.Contains(ui.output[0], "digraph") {
		t.Fatalf("want DOT source on output, got %v", ui.output)
	}
}

func TestDotCommandRejectsPngWithoutOut(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "spec.toml", []byte(sampleSpec), 0o644); err != nil {
		t.Fatal(err)
	}
	ui := &capturingUi{}
	cmd := &DotCommand{Ui: ui, Fs: fs}

	if code := cmd.Run([]string{"-png", "spec.toml"}); code == 0 {
		t.Fatal("want a nonzero exit code for -png without -out")
	}
}

func TestDotCommandWritesPngFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "spec.toml", []byte(sampleSpec), 0o644); err != nil {
		t.Fatal(err)
	}
	ui := &capturingUi{}
	cmd := &DotCommand{Ui: ui, Fs: fs}

	if code := cmd.Run([]string{"-png", "-out", "graph.png", "spec.toml"}); code != 0 {
		t.Fatalf("want exit 0, got %d (errors: %v)", code, ui.errors)
	}
	info, err := fs.Stat("graph.png")
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("want a non-empty PNG file")
	}
}
