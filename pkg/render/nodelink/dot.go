package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/orgchart/pkg/orgchart"
)

// HighlightColor is the fill color of highlighted employees.
const HighlightColor = "#ffd54f"

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the employee ID and report count to node labels.
	// When false, only the name is shown.
	Detailed bool

	// Highlight lists employee IDs drawn with [HighlightColor].
	Highlight []int
}

// ToDOT converts the tree rooted at root to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
// A nil root yields an empty graph.
func ToDOT(root *orgchart.Employee, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [arrowhead=none];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	var edges []string
	root.Walk(func(n, supervisor *orgchart.Employee, _ int) bool {
		attrs := fmt.Sprintf("label=%q", fmtLabel(n, opts.Detailed))
		if slices.Contains(opts.Highlight, n.ID) {
			attrs += fmt.Sprintf(", fillcolor=%q", HighlightColor)
		}
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeID(n.ID), attrs)
		if supervisor != nil {
			edges = append(edges, fmt.Sprintf("  %s -> %s;\n", nodeID(supervisor.ID), nodeID(n.ID)))
		}
		return true
	})

	if len(edges) > 0 {
		buf.WriteString("\n")
		for _, e := range edges {
			buf.WriteString(e)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(id int) string {
	if id < 0 {
		return fmt.Sprintf("e_%d", -id)
	}
	return "e" + strconv.Itoa(id)
}

func fmtLabel(e *orgchart.Employee, detailed bool) string {
	if !detailed {
		return e.Name
	}
	return fmt.Sprintf("%s\nid: %d\nreports: %d", e.Name, e.ID, len(e.Subordinates))
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
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
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the root svg tag so the drawing scales from a
// zero origin.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
