// Package render turns an org chart into one of the supported output
// formats.
//
// # Formats
//
//   - text: terminal tree view (see [text])
//   - dot: Graphviz DOT source (see [nodelink])
//   - svg: Graphviz drawing (see [nodelink])
//   - json, yaml: the chart interchange formats (see [io])
//
// [Chart] dispatches on the format name so commands and HTTP handlers share
// one code path:
//
//	out, err := render.Chart(ctx, chart.Root(), "svg", render.Options{})
//
// [text]: github.com/matzehuels/orgchart/pkg/render/text
// [nodelink]: github.com/matzehuels/orgchart/pkg/render/nodelink
// [io]: github.com/matzehuels/orgchart/pkg/io
package render
