package nodes

import "github.com/dagforge/reduce/internal/dagnode"

// Placeholder returns a named external input the caller substitutes a
// concrete producer for before reduction, via dag.WithPlaceholders.
func Placeholder(name string, resultTy dagnode.ResultType) *dagnode.PlaceholderNode {
	return &dagnode.PlaceholderNode{Name: name, ResultTy: resultTy}
}

// Input is a Placeholder whose result type is left dynamic, for the common
// case of an untyped named input read from an example.
func Input(name string) *dagnode.PlaceholderNode {
	return Placeholder(name, Dyn)
}

// Generator returns a node that produces a value purely as a function of
// the example index, with no parents.
func Generator(name string, resultTy dagnode.ResultType) *dagnode.GeneratorNode {
	return &dagnode.GeneratorNode{Name: name, ResultTy: resultTy}
}
