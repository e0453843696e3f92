// Package text renders org charts as trees for the terminal.
//
//	Mark Zuckerberg
//	├── Sarah Donald
//	│   ╰── Cassandra Reynolds
//	╰── Tyler Simpson
//
// Output is built with [github.com/charmbracelet/lipgloss/tree]; colors are
// dropped automatically when the output is not a terminal.
package text

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/matzehuels/orgchart/pkg/orgchart"
)

// Options configures the tree view.
type Options struct {
	// ShowIDs appends each employee's ID to its name.
	ShowIDs bool

	// Highlight lists employee IDs rendered in the accent style.
	Highlight []int
}

var (
	styleEnumerator = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).PaddingRight(1)
	styleRoot       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleHighlight  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	styleID         = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Render returns the tree rooted at root, one employee per line.
// A nil root renders as the empty string.
func Render(root *orgchart.Employee, opts Options) string {
	if root == nil {
		return ""
	}
	t := build(root, opts).RootStyle(styleRoot)
	return t.String()
}

func build(e *orgchart.Employee, opts Options) *tree.Tree {
	t := tree.Root(label(e, opts)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(styleEnumerator)
	for _, sub := range e.Subordinates {
		if len(sub.Subordinates) == 0 {
			t.Child(label(sub, opts))
			continue
		}
		t.Child(build(sub, opts))
	}
	return t
}

func label(e *orgchart.Employee, opts Options) string {
	name := e.Name
	if slices.Contains(opts.Highlight, e.ID) {
		name = styleHighlight.Render(name)
	}
	if opts.ShowIDs {
		name += " " + styleID.Render(fmt.Sprintf("#%d", e.ID))
	}
	return name
}
