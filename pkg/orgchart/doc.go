// Package orgchart maintains an in-memory org chart: a rooted tree of
// employees that can be reorganized with undoable moves.
//
// # Overview
//
// A [Chart] owns the root [Employee] and two history stacks. [Chart.Move]
// relocates an employee, together with everyone reporting to them, so that
// they become the last direct report of another employee. Every successful
// move is recorded so it can be reversed with [Chart.Undo] and replayed with
// [Chart.Redo]. A new move discards any pending redo history.
//
//	root := &orgchart.Employee{ID: 1, Name: "CEO", Subordinates: []*orgchart.Employee{
//	    {ID: 2, Name: "CTO"},
//	    {ID: 3, Name: "CFO"},
//	}}
//	c, err := orgchart.New(root)
//	if err != nil {
//	    return err
//	}
//	if err := c.Move(3, 2); err != nil { // CFO now reports to CTO
//	    return err
//	}
//	_ = c.Undo() // CFO reports to CEO again, as the last direct report
//	_ = c.Redo() // and back under the CTO
//
// # History
//
// History is kept as two stacks of [Record] values. A record only stores who
// moved and the supervisor they were taken from, so an undone employee is
// appended as the last subordinate of that supervisor rather than restored
// to their original position among siblings.
//
// Undo and redo on empty stacks are no-ops.
//
// # Errors
//
// Invalid moves are rejected before anything is mutated. Errors returned
// by [Chart.Move] are [*MoveError] values wrapping one of the sentinels
// ([ErrNotFound], [ErrSelfSupervision], [ErrCycle], [ErrRootImmovable]), so
// callers can use errors.Is and errors.As.
//
// # Concurrency
//
// A Chart is not safe for concurrent use. The tree returned by [Chart.Root]
// is the live structure; callers must not modify it while the chart is in use.
package orgchart
