// Package nodelink renders org charts as Graphviz node-link diagrams.
//
// # Usage
//
// Convert a tree to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(chart.Root(), nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: node labels include the employee ID and the number of
//     direct reports under the name
//   - Highlight: employees drawn with a filled accent color, used to mark
//     the employee and supervisor of the last move
//
// # DOT Format
//
// The generated DOT uses top-to-bottom layout (rankdir=TB) with rounded box
// nodes and one edge per supervisor relationship. Subordinate order is kept,
// so siblings appear left to right in the order they were added.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no external Graphviz installation is needed.
package nodelink
