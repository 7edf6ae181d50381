package graphviz

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/goccy/go-graphviz"
)

// RenderPNG writes g's DOT-language rendering through Graphviz as a PNG
// image, following the same graphviz.New/ParseBytes/Render sequence the
// sibling stacktower rendering package uses for its own SVG export.
func RenderPNG(ctx context.Context, g *Graph, w io.Writer) error {
	var dot bytes.Buffer
	if err := WriteDirectedGraph(g, &dot); err != nil {
		return fmt.Errorf("generating dot source: %w", err)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes(dot.Bytes())
	if err != nil {
		return fmt.Errorf("parsing generated dot source: %w", err)
	}
	defer parsed.Close()

	if err := gv.Render(ctx, parsed, graphviz.PNG, w); err != nil {
		return fmt.Errorf("rendering png: %w", err)
	}
	return nil
}
