package orgchart

import "slices"

// Employee is a node of the org chart. Subordinates are the employee's direct
// reports, in order. Each employee is owned by exactly one supervisor's
// Subordinates slice; the root is owned by the [Chart].
type Employee struct {
	ID           int
	Name         string
	Subordinates []*Employee
}

// Walk visits e and everyone below it in depth-first pre-order, passing each
// node with its supervisor (nil for e itself) and its depth relative to e.
// Returning false from fn stops the walk.
func (e *Employee) Walk(fn func(node, supervisor *Employee, depth int) bool) {
	if e == nil {
		return
	}
	walk(e, nil, 0, fn)
}

func walk(node, supervisor *Employee, depth int, fn func(node, supervisor *Employee, depth int) bool) bool {
	if !fn(node, supervisor, depth) {
		return false
	}
	for _, sub := range node.Subordinates {
		if !walk(sub, node, depth+1, fn) {
			return false
		}
	}
	return true
}

// Find returns the employee with the given ID in the subtree rooted at e,
// including e itself, or nil if there is none.
func (e *Employee) Find(id int) *Employee {
	var found *Employee
	e.Walk(func(n, _ *Employee, _ int) bool {
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// Supervisor returns the direct supervisor of id within the subtree rooted
// at e, or nil if id is e itself or not present.
func (e *Employee) Supervisor(id int) *Employee {
	var sup *Employee
	e.Walk(func(n, s *Employee, _ int) bool {
		if n.ID == id {
			sup = s
			return false
		}
		return true
	})
	return sup
}

// Count returns the number of employees in the subtree rooted at e.
func (e *Employee) Count() int {
	n := 0
	e.Walk(func(*Employee, *Employee, int) bool {
		n++
		return true
	})
	return n
}

// IDs returns the IDs of the subtree rooted at e in depth-first pre-order.
func (e *Employee) IDs() []int {
	var ids []int
	e.Walk(func(n, _ *Employee, _ int) bool {
		ids = append(ids, n.ID)
		return true
	})
	return ids
}

// SubordinateIDs returns the IDs of e's direct reports, in order.
func (e *Employee) SubordinateIDs() []int {
	ids := make([]int, len(e.Subordinates))
	for i, s := range e.Subordinates {
		ids[i] = s.ID
	}
	return ids
}

// Clone returns a deep copy of the subtree rooted at e.
func (e *Employee) Clone() *Employee {
	if e == nil {
		return nil
	}
	c := &Employee{ID: e.ID, Name: e.Name}
	if len(e.Subordinates) > 0 {
		c.Subordinates = make([]*Employee, len(e.Subordinates))
		for i, s := range e.Subordinates {
			c.Subordinates[i] = s.Clone()
		}
	}
	return c
}

// Equal reports whether two subtrees have the same IDs, names and shape,
// including the order of subordinates.
func (e *Employee) Equal(other *Employee) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.ID != other.ID || e.Name != other.Name {
		return false
	}
	return slices.EqualFunc(e.Subordinates, other.Subordinates, (*Employee).Equal)
}
