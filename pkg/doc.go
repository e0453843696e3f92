// Package pkg provides the core libraries for orgchart.
//
// # Overview
//
// Orgchart keeps an organization chart in memory: a tree of employees in
// which every employee but the root reports to exactly one supervisor.
// Employees move between supervisors together with everyone reporting to
// them, and every move can be undone and redone. The pkg directory is
// organized into three areas:
//
//  1. [orgchart] - Domain logic (the tree, moves, undo/redo history)
//  2. [io], [script], [render] - Formats in and out of a chart
//  3. [cache], [observability], [metrics] - Infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	chart file (JSON/YAML)
//	         ↓
//	    [io] package (decode + validate)
//	         ↓
//	    [orgchart] package (Move / Undo / Redo)
//	         ↓
//	    [render] package (text, DOT, SVG, JSON, YAML; cached)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/orgchart/pkg/io"
//	    "github.com/matzehuels/orgchart/pkg/orgchart"
//	)
//
//	root, _ := io.Import("examples/org.json")
//	chart, _ := orgchart.New(root)
//
//	_ = chart.Move(12, 3) // Gary Styles now reports to Cassandra Reynolds
//	_ = chart.Undo()      // back under Tyler Simpson
//	_ = chart.Redo()
//
//	_ = io.WriteJSON(chart.Root(), os.Stdout)
//
// # Main Packages
//
// ## Domain Logic
//
// [orgchart] - The chart itself. [orgchart.Chart.Move] validates before it
// mutates anything and records the employee's previous supervisor, so
// [orgchart.Chart.Undo] and [orgchart.Chart.Redo] can replay moves exactly.
// A chart is not safe for concurrent use.
//
// ## Formats
//
// [io] - JSON and YAML chart documents in the {uniqueId, name, subordinates}
// shape, with validation of names and IDs.
//
// [script] - TOML scripts of move, undo, and redo steps.
//
// [render] - Output formats: a terminal tree ([render/text]), Graphviz DOT
// and SVG ([render/nodelink]), and the chart documents from [io].
//
// ## Infrastructure
//
// [cache] - Artifact cache for rendered output: file, Redis, and null
// backends behind one interface.
//
// [observability] - Hooks for chart operations, cache events, and HTTP
// requests. No-ops unless a collector is installed.
//
// [metrics] - Prometheus collector implementing the observability hooks.
//
// [errors] - Structured errors with codes, and input validation.
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/orgchart/...           # Specific package
//	go test -run Example                 # Examples only
//
// [orgchart]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/orgchart
// [io]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/io
// [script]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/script
// [render]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/render
// [render/text]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/render/text
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/render/nodelink
// [cache]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/observability
// [metrics]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/metrics
// [errors]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/errors
// [orgchart.Chart.Move]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/orgchart#Chart.Move
// [orgchart.Chart.Undo]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/orgchart#Chart.Undo
// [orgchart.Chart.Redo]: https://pkg.go.dev/github.com/matzehuels/orgchart/pkg/orgchart#Chart.Redo
package pkg
