package script

import (
	"fmt"

	"github.com/matzehuels/orgchart/pkg/orgchart"
)

// Result describes one applied step.
type Result struct {
	// Index is the zero-based position of the step in the script.
	Index int
	Step  Step

	// Changed is false for undo and redo steps that found nothing to do.
	Changed bool

	UndoDepth int
	RedoDepth int
}

// StepError reports the step at which [Script.Apply] stopped.
type StepError struct {
	Index int
	Step  Step
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index+1, e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Apply runs the steps against c in order. It stops at the first failing
// step and returns the results of the steps before it together with a
// *StepError; earlier steps stay applied. Scripts built by hand are
// validated first.
func (s *Script) Apply(c *orgchart.Chart) ([]Result, error) {
	return s.ApplyFunc(c, nil)
}

// ApplyFunc is like [Script.Apply] but calls fn after every successful step,
// while c still reflects that step. An error from fn stops the script and is
// returned as is.
func (s *Script) ApplyFunc(c *orgchart.Chart, fn func(Result) error) ([]Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(s.Steps))
	for i, st := range s.Steps {
		changed, err := step(c, st)
		if err != nil {
			return results, &StepError{Index: i, Step: st, Err: err}
		}
		h := c.History()
		res := Result{
			Index:     i,
			Step:      st,
			Changed:   changed,
			UndoDepth: len(h.Undo),
			RedoDepth: len(h.Redo),
		}
		results = append(results, res)
		if fn != nil {
			if err := fn(res); err != nil {
				return results, err
			}
		}
	}
	return results, nil
}

func step(c *orgchart.Chart, st Step) (bool, error) {
	switch st.Op {
	case orgchart.OpMove:
		return true, c.Move(*st.Employee, *st.Supervisor)
	case orgchart.OpUndo:
		ok := c.CanUndo()
		return ok, c.Undo()
	case orgchart.OpRedo:
		ok := c.CanRedo()
		return ok, c.Redo()
	default:
		return false, fmt.Errorf("unknown op %q", st.Op)
	}
}
