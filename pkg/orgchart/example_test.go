package orgchart_test

import (
	"errors"
	"fmt"

	"github.com/matzehuels/orgchart/pkg/orgchart"
)

func ExampleChart_Move() {
	root := &orgchart.Employee{ID: 1, Name: "CEO", Subordinates: []*orgchart.Employee{
		{ID: 3, Name: "Cassandra", Subordinates: []*orgchart.Employee{
			{ID: 4, Name: "Mary"},
			{ID: 5, Name: "Bob"},
		}},
		{ID: 14, Name: "Georgina"},
	}}
	c, _ := orgchart.New(root)

	_ = c.Move(5, 14)
	fmt.Println("after move:", c.Employee(3).SubordinateIDs(), c.Employee(14).SubordinateIDs())
	_ = c.Undo()
	fmt.Println("after undo:", c.Employee(3).SubordinateIDs(), c.Employee(14).SubordinateIDs())
	_ = c.Redo()
	fmt.Println("after redo:", c.Employee(3).SubordinateIDs(), c.Employee(14).SubordinateIDs())
	// Output:
	// after move: [4] [5]
	// after undo: [4 5] []
	// after redo: [4] [5]
}

func ExampleChart_Move_errors() {
	root := &orgchart.Employee{ID: 1, Subordinates: []*orgchart.Employee{
		{ID: 2, Subordinates: []*orgchart.Employee{{ID: 3}}},
	}}
	c, _ := orgchart.New(root)

	fmt.Println(errors.Is(c.Move(2, 2), orgchart.ErrSelfSupervision))
	fmt.Println(errors.Is(c.Move(2, 3), orgchart.ErrCycle))
	fmt.Println(errors.Is(c.Move(2, 9), orgchart.ErrNotFound))
	fmt.Println(c.Move(1, 3))
	// Output:
	// true
	// true
	// true
	// move employee 1 under 3: root employee cannot be moved
}
