package orgchart

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/orgchart/pkg/observability"
)

// Chart is an org chart with undoable moves. The zero value is not usable;
// create charts with [New].
type Chart struct {
	root   *Employee
	byID   map[int]*Employee
	undo   stack
	redo   stack
	logger *log.Logger
}

// Option configures a [Chart].
type Option func(*Chart)

// WithLogger sets the logger used for debug output about moves.
// If nil, log.Default() is used.
func WithLogger(l *log.Logger) Option {
	return func(c *Chart) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a chart that takes ownership of root. Returns ErrNilRoot if
// root is nil, or ErrDuplicateID if any two employees share an ID.
func New(root *Employee, opts ...Option) (*Chart, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	c := &Chart{
		root:   root,
		byID:   make(map[int]*Employee),
		logger: log.Default(),
	}
	var dup *Employee
	root.Walk(func(n, _ *Employee, _ int) bool {
		if _, exists := c.byID[n.ID]; exists {
			dup = n
			return false
		}
		c.byID[n.ID] = n
		return true
	})
	if dup != nil {
		return nil, &DuplicateIDError{ID: dup.ID}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Root returns the root of the live tree.
func (c *Chart) Root() *Employee { return c.root }

// Employee returns the employee with the given ID, or nil.
func (c *Chart) Employee(id int) *Employee { return c.byID[id] }

// Len returns the number of employees in the chart.
func (c *Chart) Len() int { return len(c.byID) }

// CanUndo reports whether there is a move to undo.
func (c *Chart) CanUndo() bool { return len(c.undo) > 0 }

// CanRedo reports whether there is an undone move to redo.
func (c *Chart) CanRedo() bool { return len(c.redo) > 0 }

// History returns a copy of the undo and redo stacks.
func (c *Chart) History() History {
	return History{Undo: c.undo.snapshot(), Redo: c.redo.snapshot()}
}

// Move makes employeeID, with everyone reporting to them, the last direct
// report of supervisorID. The move is validated before the tree is touched;
// on error nothing changes. A successful move is pushed onto the undo stack
// and clears the redo stack.
func (c *Chart) Move(employeeID, supervisorID int) error {
	start := time.Now()
	fromID, err := c.move(employeeID, supervisorID)
	observability.Chart().OnMove(employeeID, fromID, supervisorID, time.Since(start), err)
	if err != nil {
		return err
	}

	c.undo.push(Record{EmployeeID: employeeID, PreviousSupervisorID: fromID})
	c.redo.clear()
	c.logger.Debug("moved employee", "employee", employeeID, "from", fromID, "to", supervisorID)
	c.emitDepth()
	return nil
}

func (c *Chart) move(employeeID, supervisorID int) (int, error) {
	if err := c.validate(OpMove, employeeID, supervisorID); err != nil {
		return 0, err
	}
	fromID, ok := relocate(c.root, employeeID, supervisorID)
	if !ok {
		return 0, &MoveError{Op: OpMove, EmployeeID: employeeID, SupervisorID: supervisorID, Err: ErrNotFound}
	}
	return fromID, nil
}

// Undo reverses the most recent move by putting the employee back as the last
// direct report of their previous supervisor. The reversed move becomes
// available to [Chart.Redo]. Undo does nothing if there is nothing to undo.
func (c *Chart) Undo() error {
	rec, ok := c.undo.peek()
	if !ok {
		return nil
	}
	start := time.Now()
	fromID, err := c.replay(OpUndo, rec)
	observability.Chart().OnUndo(rec.EmployeeID, fromID, rec.PreviousSupervisorID, time.Since(start), err)
	if err != nil {
		return err
	}

	c.undo.drop()
	c.redo.push(Record{EmployeeID: rec.EmployeeID, PreviousSupervisorID: fromID})
	c.logger.Debug("undid move", "employee", rec.EmployeeID, "from", fromID, "to", rec.PreviousSupervisorID)
	c.emitDepth()
	return nil
}

// Redo reapplies the most recently undone move. Redo does nothing if there
// is nothing to redo.
func (c *Chart) Redo() error {
	rec, ok := c.redo.peek()
	if !ok {
		return nil
	}
	start := time.Now()
	fromID, err := c.replay(OpRedo, rec)
	observability.Chart().OnRedo(rec.EmployeeID, fromID, rec.PreviousSupervisorID, time.Since(start), err)
	if err != nil {
		return err
	}

	c.undo.push(Record{EmployeeID: rec.EmployeeID, PreviousSupervisorID: fromID})
	c.redo.drop()
	c.logger.Debug("redid move", "employee", rec.EmployeeID, "from", fromID, "to", rec.PreviousSupervisorID)
	c.emitDepth()
	return nil
}

// replay moves rec.EmployeeID back under rec.PreviousSupervisorID. Records
// are only invalid if the tree was edited behind the chart's back; in that
// case the stacks are left as they are.
func (c *Chart) replay(op Op, rec Record) (int, error) {
	if err := c.validate(op, rec.EmployeeID, rec.PreviousSupervisorID); err != nil {
		return 0, err
	}
	fromID, ok := relocate(c.root, rec.EmployeeID, rec.PreviousSupervisorID)
	if !ok {
		return 0, &MoveError{Op: op, EmployeeID: rec.EmployeeID, SupervisorID: rec.PreviousSupervisorID, Err: ErrNotFound}
	}
	return fromID, nil
}

func (c *Chart) validate(op Op, employeeID, supervisorID int) error {
	fail := func(err error) error {
		return &MoveError{Op: op, EmployeeID: employeeID, SupervisorID: supervisorID, Err: err}
	}
	if employeeID == supervisorID {
		return fail(ErrSelfSupervision)
	}
	emp, ok := c.byID[employeeID]
	if !ok {
		return fail(ErrNotFound)
	}
	if _, ok := c.byID[supervisorID]; !ok {
		return fail(ErrNotFound)
	}
	if emp == c.root {
		return fail(ErrRootImmovable)
	}
	if emp.Find(supervisorID) != nil {
		return fail(ErrCycle)
	}
	return nil
}

func (c *Chart) emitDepth() {
	observability.Chart().OnHistoryChange(len(c.undo), len(c.redo))
}
