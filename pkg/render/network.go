// Package render turns path networks into DOT and SVG for inspection.
// The pictures answer the two questions that matter when a computation
// misbehaves: where the branch points are, and which segments the
// braids were tracked along.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/algcurve/vankampen/pkg/monodromy"
)

// Options configures network rendering.
type Options struct {
	// Detailed includes the exact rational coordinates in vertex labels.
	// When false, vertices show only their index.
	Detailed bool
}

// ToDOT converts a path network to Graphviz DOT. Vertices are pinned to
// their true plane coordinates so the drawing is the actual geometry,
// not a synthetic layout; branch points appear as filled dots.
// The resulting DOT string can be rendered using [SVG].
func ToDOT(net *monodromy.Network, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph network {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=10];\n")
	buf.WriteString("\n")

	for i, p := range net.Points {
		label := fmt.Sprintf("v%d", i)
		if opts.Detailed {
			label = fmt.Sprintf("v%d\n%s", i, net.Vertices[i])
		}
		fmt.Fprintf(&buf, "  v%d [label=%q, pos=\"%f,%f!\"];\n", i, label, real(p), imag(p))
	}

	buf.WriteString("\n")
	for i, b := range net.Branch {
		fmt.Fprintf(&buf, "  b%d [label=\"\", shape=point, width=0.12, color=firebrick, pos=\"%f,%f!\"];\n",
			i, real(b), imag(b))
	}

	buf.WriteString("\n")
	for _, seg := range net.Segments {
		fmt.Fprintf(&buf, "  v%d -- v%d;\n", seg[0], seg[1])
	}

	buf.WriteString("}\n")
	return buf.String()
}

// SVG renders a DOT graph to SVG using Graphviz.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
