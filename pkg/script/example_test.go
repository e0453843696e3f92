package script_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/orgchart/pkg/orgchart"
	"github.com/matzehuels/orgchart/pkg/script"
)

func ExampleScript_Apply() {
	root := &orgchart.Employee{ID: 1, Name: "Ada", Subordinates: []*orgchart.Employee{
		{ID: 2, Name: "Brian"},
		{ID: 3, Name: "Cleo"},
	}}
	chart, _ := orgchart.New(root)

	s, err := script.Parse(strings.NewReader(`
[[step]]
op = "move"
employee = 3
supervisor = 2

[[step]]
op = "undo"
`))
	if err != nil {
		panic(err)
	}

	results, _ := s.Apply(chart)
	for _, r := range results {
		fmt.Printf("%s: undo=%d redo=%d\n", r.Step, r.UndoDepth, r.RedoDepth)
	}
	// Output:
	// move 3 under 2: undo=1 redo=0
	// undo: undo=0 redo=1
}
