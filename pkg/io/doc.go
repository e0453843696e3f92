// Package io reads and writes org charts as JSON or YAML documents.
//
// # Format
//
// A chart is a single nested object: the root employee with its direct
// reports under "subordinates", recursively.
//
//	{
//	  "uniqueId": 1,
//	  "name": "Mark Zuckerberg",
//	  "subordinates": [
//	    {"uniqueId": 2, "name": "Sarah Donald", "subordinates": []}
//	  ]
//	}
//
// YAML documents use the same field names.
//
// # Import
//
// Use [Import] to read a chart from a file path (the format is chosen by the
// file extension), or [ReadJSON] / [ReadYAML] to read from any io.Reader:
//
//	root, err := io.Import("org.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	chart, err := orgchart.New(root)
//
// Decoding validates every employee name and rejects duplicate IDs, so a
// successfully imported tree is always accepted by [orgchart.New].
//
// # Export
//
// Use [Export] to write a tree to a file, or [WriteJSON] / [WriteYAML] to
// write to any io.Writer. Subordinate order is preserved, so importing an
// exported chart yields an equal tree.
//
// [orgchart.New]: github.com/matzehuels/orgchart/pkg/orgchart.New
package io
