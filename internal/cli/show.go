package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/orgchart/pkg/render/text"
)

// showCommand creates the show command, which prints the chart as a tree.
func (c *CLI) showCommand() *cobra.Command {
	var opts text.Options

	cmd := &cobra.Command{
		Use:   "show [chart]",
		Short: "Print the org chart as a tree",
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

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, text.Render(chart.Root(), opts))
			printStats(w, chart.Len(), depth(chart.Root()), false)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.ShowIDs, "ids", false, "show employee IDs")
	cmd.Flags().IntSliceVar(&opts.Highlight, "highlight", nil, "employee IDs to highlight (comma-separated)")

	return cmd
}
