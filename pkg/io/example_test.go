package io_test

import (
	"os"
	"strings"

	"github.com/matzehuels/orgchart/pkg/io"
	"github.com/matzehuels/orgchart/pkg/orgchart"
)

func ExampleReadJSON() {
	input := `{
	  "uniqueId": 1,
	  "name": "Ada",
	  "subordinates": [{"uniqueId": 2, "name": "Brian"}]
	}`

	root, err := io.ReadJSON(strings.NewReader(input))
	if err != nil {
		panic(err)
	}
	chart, err := orgchart.New(root)
	if err != nil {
		panic(err)
	}
	_ = io.WriteYAML(chart.Root(), os.Stdout)
	// Output:
	// uniqueId: 1
	// name: Ada
	// subordinates:
	//   - uniqueId: 2
	//     name: Brian
	//     subordinates: []
}
