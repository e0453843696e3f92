package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/orgchart/pkg/errors"
	chartio "github.com/matzehuels/orgchart/pkg/io"
	"github.com/matzehuels/orgchart/pkg/orgchart"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listPickedStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// tuiCommand creates the tui command for reorganizing a chart interactively.
func (c *CLI) tuiCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "tui [chart]",
		Short: "Reorganize the org chart interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.chartPath(args)
			if err != nil {
				return err
			}
			chart, err := c.loadChart(cmd.Context(), path)
			if err != nil {
				return err
			}

			p := tea.NewProgram(NewChartModel(chart),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithAltScreen(),
			)
			final, err := p.Run()
			if err != nil {
				return err
			}

			m := final.(ChartModel)
			if output == "" || !m.Changed {
				return nil
			}
			if err := chartio.Export(chart.Root(), output); err != nil {
				return err
			}
			printSuccess(cmd.ErrOrStderr(), "Saved chart")
			printFile(cmd.ErrOrStderr(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "save the chart to this file (.json, .yaml) on exit")

	return cmd
}

// =============================================================================
// ChartModel - Interactive chart editing
// =============================================================================

// chartRow is one employee line of the flattened tree.
type chartRow struct {
	id    int
	name  string
	depth int
}

// ChartModel is the bubbletea model for moving employees around a chart.
// Enter picks an employee, and a second Enter moves them under the
// employee at the cursor.
type ChartModel struct {
	Chart   *orgchart.Chart
	Cursor  int
	Offset  int
	Height  int
	Changed bool

	rows   []chartRow
	picked *int
	status string
	failed bool
}

// NewChartModel creates a chart model with the cursor on the root.
func NewChartModel(chart *orgchart.Chart) ChartModel {
	m := ChartModel{Chart: chart, Height: 20}
	m.refresh()
	return m
}

// refresh rebuilds the flattened rows after the chart changed.
func (m *ChartModel) refresh() {
	m.rows = m.rows[:0]
	m.Chart.Root().Walk(func(e, _ *orgchart.Employee, depth int) bool {
		m.rows = append(m.rows, chartRow{id: e.ID, name: e.Name, depth: depth})
		return true
	})
}

// focus moves the cursor to the row of employee id.
func (m *ChartModel) focus(id int) {
	for i, r := range m.rows {
		if r.id == id {
			m.Cursor = i
			break
		}
	}
	m.scroll()
}

func (m *ChartModel) scroll() {
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m *ChartModel) report(err error, format string, args ...any) {
	if err != nil {
		m.status = errors.UserMessage(errors.FromChart(err))
		m.failed = true
		return
	}
	m.status = fmt.Sprintf(format, args...)
	m.failed = false
}

func (m ChartModel) Init() tea.Cmd {
	return nil
}

func (m ChartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.picked == nil {
				return m, tea.Quit
			}
			m.picked = nil
			m.status, m.failed = "", false
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				m.scroll()
			}
		case "down", "j":
			if m.Cursor < len(m.rows)-1 {
				m.Cursor++
				m.scroll()
			}
		case "enter", " ":
			m.choose()
		case "u":
			m.replay(orgchart.OpUndo)
		case "r", "ctrl+r":
			m.replay(orgchart.OpRedo)
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 7
		if m.Height < 5 {
			m.Height = 5
		}
		m.scroll()
	}
	return m, nil
}

// choose picks the employee at the cursor, or moves the picked employee
// under it.
func (m *ChartModel) choose() {
	row := m.rows[m.Cursor]
	if m.picked == nil {
		id := row.id
		m.picked = &id
		m.report(nil, "Moving %s: pick a new supervisor", row.name)
		return
	}

	employeeID := *m.picked
	m.picked = nil
	if err := m.Chart.Move(employeeID, row.id); err != nil {
		m.report(err, "")
		return
	}
	m.Changed = true
	m.refresh()
	m.focus(employeeID)
	m.report(nil, "Moved %s under %s", m.Chart.Employee(employeeID).Name, row.name)
}

// replay undoes or redoes the latest move and focuses the employee it moved.
func (m *ChartModel) replay(op orgchart.Op) {
	h := m.Chart.History()
	stack, do, verb := h.Undo, m.Chart.Undo, "Undid"
	if op == orgchart.OpRedo {
		stack, do, verb = h.Redo, m.Chart.Redo, "Redid"
	}
	if len(stack) == 0 {
		m.report(nil, "Nothing to %s", op)
		return
	}
	if err := do(); err != nil {
		m.report(err, "")
		return
	}
	id := stack[len(stack)-1].EmployeeID
	m.Changed = true
	m.picked = nil
	m.refresh()
	m.focus(id)
	sup := m.Chart.Root().Supervisor(id)
	m.report(nil, "%s move: %s is now under %s", verb, m.Chart.Employee(id).Name, sup.Name)
}

func (m ChartModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Org Chart"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ pick/move  u undo  r redo  esc cancel  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := m.Offset; i < end; i++ {
		r := m.rows[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%s%s %s", cursor, strings.Repeat("  ", r.depth), r.name, listDimStyle.Render(fmt.Sprintf("#%d", r.id)))

		switch {
		case m.picked != nil && *m.picked == r.id:
			b.WriteString(listPickedStyle.Render(line))
		case i == m.Cursor:
			b.WriteString(listSelectedStyle.Render(line))
		default:
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	h := m.Chart.History()
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]  undo %d · redo %d", m.Cursor+1, len(m.rows), len(h.Undo), len(h.Redo))))
	if m.status != "" {
		b.WriteString("\n")
		if m.failed {
			b.WriteString(StyleError.Render("  " + m.status))
		} else {
			b.WriteString(StyleHighlight.Render("  " + m.status))
		}
	}

	return b.String()
}
