package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/depscope/depscope/pkg/depgraph"
	"github.com/depscope/depscope/pkg/errors"
)

// ToDOT converts the internal dependency graph to Graphviz DOT. Cycle member
// edges are drawn in red so circular structures stand out; pass nil cycles to
// skip the highlighting.
func ToDOT(g *depgraph.Graph, cycles []depgraph.Cycle) string {
	hot := cycleEdges(cycles)

	var buf bytes.Buffer
	buf.WriteString("digraph deps {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, src := range g.Sources() {
		fmt.Fprintf(&buf, "  %q;\n", src)
	}

	buf.WriteString("\n")
	for _, src := range g.Sources() {
		for _, dst := range g.Targets(src) {
			if _, ok := hot[[2]string{src, dst}]; ok {
				fmt.Fprintf(&buf, "  %q -> %q [color=red, penwidth=2];\n", src, dst)
			} else {
				fmt.Fprintf(&buf, "  %q -> %q;\n", src, dst)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func cycleEdges(cycles []depgraph.Cycle) map[[2]string]struct{} {
	edges := make(map[[2]string]struct{})
	for _, c := range cycles {
		for i := 0; i+1 < len(c); i++ {
			edges[[2]string{c[i], c[i+1]}] = struct{}{}
		}
	}
	return edges
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render graph")
	}
	return buf.Bytes(), nil
}
