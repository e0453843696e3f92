package orgchart

import "slices"

// Record describes one applied relocation: EmployeeID was taken from
// PreviousSupervisorID. Where the employee went is not stored; it is always
// the employee's current supervisor while the record sits on a stack.
type Record struct {
	EmployeeID           int
	PreviousSupervisorID int
}

// stack is a LIFO of records, most recent last.
type stack []Record

func (s *stack) push(r Record) { *s = append(*s, r) }

func (s stack) peek() (Record, bool) {
	if len(s) == 0 {
		return Record{}, false
	}
	return s[len(s)-1], true
}

func (s *stack) drop() { *s = (*s)[:len(*s)-1] }

func (s *stack) clear() { *s = nil }

// History is a copy of a chart's undo and redo stacks, most recent last.
type History struct {
	Undo []Record
	Redo []Record
}

func (s stack) snapshot() []Record { return slices.Clone([]Record(s)) }
