// Package script runs sequences of chart operations written in TOML.
//
// A script is a list of steps applied in order:
//
//	description = "move Gary to Cassandra, then take it back"
//
//	[[step]]
//	op = "move"
//	employee = 12
//	supervisor = 3
//
//	[[step]]
//	op = "undo"
//
// Move steps need both employee and supervisor; undo and redo steps take no
// arguments. Unknown keys and operations are rejected when the script is
// parsed, before anything touches a chart.
package script

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/orgchart"
)

// Step is one operation of a script.
type Step struct {
	Op         orgchart.Op `toml:"op"`
	Employee   *int        `toml:"employee"`
	Supervisor *int        `toml:"supervisor"`
}

// String formats the step for logs and tables.
func (s Step) String() string {
	if s.Op == orgchart.OpMove && s.Employee != nil && s.Supervisor != nil {
		return fmt.Sprintf("move %d under %d", *s.Employee, *s.Supervisor)
	}
	return string(s.Op)
}

// Script is a parsed, validated list of steps.
type Script struct {
	Description string `toml:"description"`
	Steps       []Step `toml:"step"`
}

// Move returns a move step.
func Move(employeeID, supervisorID int) Step {
	return Step{Op: orgchart.OpMove, Employee: &employeeID, Supervisor: &supervisorID}
}

// Undo returns an undo step.
func Undo() Step { return Step{Op: orgchart.OpUndo} }

// Redo returns a redo step.
func Redo() Step { return Step{Op: orgchart.OpRedo} }

// Parse decodes and validates a TOML script from r.
func Parse(r io.Reader) (*Script, error) {
	var s Script
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScript, err, "decode script")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidScript, "unknown keys in script: %s", strings.Join(keys, ", "))
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the script file at path.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "script %s not found", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks every step's operation and arguments.
func (s *Script) Validate() error {
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return errors.New(errors.ErrCodeInvalidScript, "step %d: %v", i+1, err)
		}
	}
	return nil
}

func (s Step) validate() error {
	switch s.Op {
	case orgchart.OpMove:
		if s.Employee == nil || s.Supervisor == nil {
			return fmt.Errorf("move needs employee and supervisor")
		}
	case orgchart.OpUndo, orgchart.OpRedo:
		if s.Employee != nil || s.Supervisor != nil {
			return fmt.Errorf("%s takes no employee or supervisor", s.Op)
		}
	case "":
		return fmt.Errorf("missing op")
	default:
		return fmt.Errorf("unknown op %q (want move, undo or redo)", s.Op)
	}
	return nil
}
