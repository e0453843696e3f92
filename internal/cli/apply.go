package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/orgchart/pkg/errors"
	chartio "github.com/matzehuels/orgchart/pkg/io"
	"github.com/matzehuels/orgchart/pkg/orgchart"
	"github.com/matzehuels/orgchart/pkg/script"
)

// applyOpts holds the command-line flags for the apply command.
type applyOpts struct {
	output    string // where to write the final chart
	printEach bool   // print the chart as JSON after every step
}

// applyCommand creates the apply command, which runs a TOML move script
// against the chart.
func (c *CLI) applyCommand() *cobra.Command {
	var opts applyOpts

	cmd := &cobra.Command{
		Use:   "apply <script>",
		Short: "Apply a script of moves, undos, and redos to the chart",
		Example: `  orgchart apply examples/demo.toml -c examples/org.json
  orgchart apply examples/demo.toml -c examples/org.json --print-each`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runApply(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the final chart to this file (.json, .yaml)")
	cmd.Flags().BoolVar(&opts.printEach, "print-each", false, "print the chart as JSON after every step")

	return cmd
}

func (c *CLI) runApply(cmd *cobra.Command, scriptPath string, opts applyOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	w := cmd.OutOrStdout()

	chart, s, err := c.loadScript(cmd, scriptPath)
	if err != nil {
		return err
	}

	var each func(script.Result) error
	if opts.printEach {
		each = func(r script.Result) error {
			fmt.Fprintf(w, "# step %d: %s\n", r.Index+1, r.Step)
			return chartio.WriteJSON(chart.Root(), w)
		}
	}

	prog := newProgress(logger)
	results, err := s.ApplyFunc(chart, each)
	if !opts.printEach {
		fmt.Fprintln(w, resultsTable(chart, results).Render())
	}
	if err != nil {
		printError(cmd.ErrOrStderr(), "Stopped after %d of %d steps", len(results), len(s.Steps))
		return errors.FromChart(err)
	}
	prog.done(fmt.Sprintf("Applied %d steps from %s", len(results), scriptPath))

	if opts.output != "" {
		if err := chartio.Export(chart.Root(), opts.output); err != nil {
			return err
		}
		printFile(w, opts.output)
	}
	return nil
}

// loadScript loads the chart and the script at scriptPath.
func (c *CLI) loadScript(cmd *cobra.Command, scriptPath string) (*orgchart.Chart, *script.Script, error) {
	path, err := c.chartPath(nil)
	if err != nil {
		return nil, nil, err
	}
	chart, err := c.loadChart(cmd.Context(), path)
	if err != nil {
		return nil, nil, err
	}
	s, err := script.Load(scriptPath)
	if err != nil {
		return nil, nil, err
	}
	if s.Description != "" {
		loggerFromContext(cmd.Context()).Info(s.Description)
	}
	return chart, s, nil
}

// resultsTable lists what each applied step did.
func resultsTable(chart *orgchart.Chart, results []script.Result) *table.Table {
	t := newTable("#", "Step", "Supervisor now", "Changed", "Undo", "Redo")
	for _, r := range results {
		now := "-"
		if r.Step.Employee != nil {
			if sup := chart.Root().Supervisor(*r.Step.Employee); sup != nil {
				now = employeeLabel(chart, sup.ID)
			}
		}
		changed := "no"
		if r.Changed {
			changed = "yes"
		}
		t.Row(strconv.Itoa(r.Index+1), r.Step.String(), now, changed,
			strconv.Itoa(r.UndoDepth), strconv.Itoa(r.RedoDepth))
	}
	return t
}

// writeRecords renders one history stack as a table, most recent first.
func writeRecords(w io.Writer, title string, chart *orgchart.Chart, records []orgchart.Record) {
	fmt.Fprintln(w, StyleTitle.Render(title))
	if len(records) == 0 {
		printDetail(w, "empty")
		return
	}
	t := newTable("#", "Employee", "Previous supervisor", "Current supervisor")
	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		current := "-"
		if sup := chart.Root().Supervisor(r.EmployeeID); sup != nil {
			current = employeeLabel(chart, sup.ID)
		}
		t.Row(strconv.Itoa(len(records)-i), employeeLabel(chart, r.EmployeeID),
			employeeLabel(chart, r.PreviousSupervisorID), current)
	}
	fmt.Fprintln(w, t.Render())
}
