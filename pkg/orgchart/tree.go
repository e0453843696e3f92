package orgchart

import "slices"

// locate finds the supervisor holding targetID in its subordinates and the
// position it is held at. The search is depth-first: each node's own
// subordinates are scanned before descending into them. Only subordinate
// lists are searched, so the root itself is never matched.
func locate(root *Employee, targetID int) (supervisor *Employee, index int) {
	if i := slices.IndexFunc(root.Subordinates, func(s *Employee) bool { return s.ID == targetID }); i >= 0 {
		return root, i
	}
	for _, sub := range root.Subordinates {
		if sup, i := locate(sub, targetID); sup != nil {
			return sup, i
		}
	}
	return nil, -1
}

// detach removes the employee with targetID from its supervisor's
// subordinates, keeping the order of the remaining siblings. It returns the
// detached employee, the supervisor it was taken from and the position it
// held there. ok is false when no one holds targetID.
func detach(root *Employee, targetID int) (node, from *Employee, index int, ok bool) {
	from, index = locate(root, targetID)
	if from == nil {
		return nil, nil, -1, false
	}
	node = from.Subordinates[index]
	from.Subordinates = slices.Delete(from.Subordinates, index, index+1)
	return node, from, index, true
}

// attach appends node as the last subordinate of the employee with
// targetID. ok is false when targetID is not in the tree.
func attach(root *Employee, targetID int, node *Employee) bool {
	if root.ID == targetID {
		root.Subordinates = append(root.Subordinates, node)
		return true
	}
	for _, sub := range root.Subordinates {
		if attach(sub, targetID, node) {
			return true
		}
	}
	return false
}

// relocate moves employeeID, with its subtree, to the end of supervisorID's
// subordinates and returns the ID of the supervisor it was taken from.
// If the new supervisor cannot be found after detaching, the employee is put
// back at its old position and ok is false.
func relocate(root *Employee, employeeID, supervisorID int) (fromID int, ok bool) {
	node, from, i, ok := detach(root, employeeID)
	if !ok {
		return 0, false
	}
	if !attach(root, supervisorID, node) {
		from.Subordinates = slices.Insert(from.Subordinates, i, node)
		return from.ID, false
	}
	return from.ID, true
}
