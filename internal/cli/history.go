package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/orgchart/pkg/errors"
)

// historyCommand creates the history command. Charts hold no history on
// disk, so it applies a script and shows the undo and redo stacks it leaves.
func (c *CLI) historyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history <script>",
		Short: "Show the undo and redo stacks a script leaves behind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chart, s, err := c.loadScript(cmd, args[0])
			if err != nil {
				return err
			}
			if _, err := s.Apply(chart); err != nil {
				return errors.FromChart(err)
			}

			w := cmd.OutOrStdout()
			h := chart.History()
			writeRecords(w, "Undo", chart, h.Undo)
			fmt.Fprintln(w)
			writeRecords(w, "Redo", chart, h.Redo)
			return nil
		},
	}
}
