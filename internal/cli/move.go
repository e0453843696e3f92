package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/orgchart/pkg/errors"
)

// moveOpts holds the command-line flags for the move command.
type moveOpts struct {
	output string // where to write the resulting chart ("" for stdout)
	undo   bool   // undo the move afterwards
	redo   bool   // undo, then redo the move
}

// moveCommand creates the move command. It applies a single move to the
// chart file and writes the resulting chart. --undo and --redo replay the
// history within the same invocation.
func (c *CLI) moveCommand() *cobra.Command {
	var opts moveOpts

	cmd := &cobra.Command{
		Use:   "move <employee> <supervisor>",
		Short: "Move an employee (and their reports) under a new supervisor",
		Example: `  orgchart move 12 3 -c examples/org.json
  orgchart move 12 3 -c examples/org.json --undo
  orgchart move 12 3 -c examples/org.json -o reorg.yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			employeeID, err := parseID(args[0])
			if err != nil {
				return err
			}
			supervisorID, err := parseID(args[1])
			if err != nil {
				return err
			}
			return c.runMove(cmd, employeeID, supervisorID, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the resulting chart to this file (.json, .yaml) instead of stdout")
	cmd.Flags().BoolVar(&opts.undo, "undo", false, "undo the move afterwards")
	cmd.Flags().BoolVar(&opts.redo, "redo", false, "undo the move, then redo it")

	return cmd
}

func (c *CLI) runMove(cmd *cobra.Command, employeeID, supervisorID int, opts moveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	path, err := c.chartPath(nil)
	if err != nil {
		return err
	}
	chart, err := c.loadChart(ctx, path)
	if err != nil {
		return err
	}

	if err := chart.Move(employeeID, supervisorID); err != nil {
		return errors.FromChart(err)
	}
	logger.Infof("Moved %s under %s", employeeLabel(chart, employeeID), employeeLabel(chart, supervisorID))

	if opts.undo || opts.redo {
		if err := chart.Undo(); err != nil {
			return errors.FromChart(err)
		}
		logger.Info("Undid move", "employee", employeeID)
	}
	if opts.redo {
		if err := chart.Redo(); err != nil {
			return errors.FromChart(err)
		}
		logger.Info("Redid move", "employee", employeeID)
	}

	if err := writeChart(chart.Root(), opts.output, cmd.OutOrStdout()); err != nil {
		return err
	}
	if opts.output != "" {
		logger.Infof("Wrote %s", opts.output)
	}
	return nil
}

// parseID parses an employee ID argument.
func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid employee ID %q", s)
	}
	return id, nil
}
