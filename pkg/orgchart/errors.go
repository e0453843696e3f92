package orgchart

import (
	"errors"
	"fmt"
)

var (
	// ErrNilRoot is returned by [New] when no root employee is given.
	ErrNilRoot = errors.New("root employee must not be nil")

	// ErrDuplicateID is returned by [New] when two employees share an ID.
	// IDs must be unique across the whole tree.
	ErrDuplicateID = errors.New("duplicate employee ID")

	// ErrNotFound is returned when an employee or supervisor ID does not
	// identify anyone in the chart.
	ErrNotFound = errors.New("employee not found")

	// ErrSelfSupervision is returned when an employee would report to themself.
	ErrSelfSupervision = errors.New("employee cannot supervise themself")

	// ErrCycle is returned when the new supervisor reports, directly or
	// indirectly, to the employee being moved.
	ErrCycle = errors.New("supervisor reports to the employee being moved")

	// ErrRootImmovable is returned when the root of the chart is moved.
	// The root has no supervisor to be detached from.
	ErrRootImmovable = errors.New("root employee cannot be moved")
)

// Op names a chart operation.
type Op string

const (
	OpMove Op = "move"
	OpUndo Op = "undo"
	OpRedo Op = "redo"
)

// MoveError describes a failed relocation of EmployeeID under SupervisorID.
// Err is one of the package sentinels.
type MoveError struct {
	Op           Op
	EmployeeID   int
	SupervisorID int
	Err          error
}

// Error implements the error interface.
func (e *MoveError) Error() string {
	return fmt.Sprintf("%s employee %d under %d: %v", e.Op, e.EmployeeID, e.SupervisorID, e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *MoveError) Unwrap() error { return e.Err }

// DuplicateIDError reports the first ID found twice while indexing a tree.
type DuplicateIDError struct {
	ID int
}

// Error implements the error interface.
func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("%v: %d", ErrDuplicateID, e.ID)
}

// Unwrap returns ErrDuplicateID.
func (e *DuplicateIDError) Unwrap() error { return ErrDuplicateID }
