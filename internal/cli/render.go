package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/orgchart"
	"github.com/matzehuels/orgchart/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string // output file path; "-" for stdout
	format    string // text, dot, svg, json, or yaml
	detailed  bool   // show IDs and report counts in node labels
	highlight []int  // employee IDs to highlight
	noCache   bool   // bypass the artifact cache
}

// renderCommand creates the render command for generating chart artifacts.
//
// Without -o the output file is named after the chart file with the
// format's extension. SVG output goes through Graphviz and is cached.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: render.FormatSVG}

	cmd := &cobra.Command{
		Use:   "render [chart]",
		Short: "Render the org chart as text, DOT, SVG, JSON, or YAML",
		Example: `  orgchart render examples/org.json
  orgchart render examples/org.json -f dot -o -
  orgchart render examples/org.json --highlight 3,12 --detailed`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateFormat(opts.format); err != nil {
				return err
			}
			path, err := c.chartPath(args)
			if err != nil {
				return err
			}
			return c.runRender(cmd, path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file ("-" for stdout)`)
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot, text, json, yaml")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show IDs and report counts in node labels (dot, svg)")
	cmd.Flags().IntSliceVar(&opts.highlight, "highlight", nil, "employee IDs to highlight (comma-separated)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, path string, opts renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", path)

	chart, err := c.loadChart(ctx, path)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	data, cached, err := c.renderChart(ctx, cmd, chart, opts)
	if err != nil {
		return err
	}
	logger.Debugf("Generated %s: %d bytes", opts.format, len(data))

	outputPath := opts.output
	if outputPath == "" {
		outputPath = outputFor(path, opts.format)
	}
	out, err := openOutput(outputPath, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}
	if outputPath != "-" {
		prog.done(fmt.Sprintf("Rendered %s [%s]", outputPath, cacheStatus(cached)))
	}
	return nil
}

// renderChart renders through the artifact cache, drawing a spinner while
// Graphviz lays out SVG output.
func (c *CLI) renderChart(ctx context.Context, cmd *cobra.Command, chart *orgchart.Chart, opts renderOpts) ([]byte, bool, error) {
	store, err := c.openCache(ctx, opts.noCache)
	if err != nil {
		return nil, false, err
	}
	defer store.Close()

	if opts.format == render.FormatSVG {
		s := startSpinner(ctx, cmd.ErrOrStderr(), fmt.Sprintf("Laying out %d employees...", chart.Len()))
		defer s.stop()
	}

	ropts := render.Options{Detailed: opts.detailed, Highlight: opts.highlight}
	return render.Cached(ctx, store, chart.Root(), opts.format, ropts, c.Config.Cache.TTL.Duration)
}

// outputFor derives the output path from the chart path by swapping the
// extension. A chart file already ending in the target extension gets a
// ".out" infix so the input is never overwritten.
func outputFor(chartPath, format string) string {
	ext := render.Extension(format)
	base := strings.TrimSuffix(chartPath, filepath.Ext(chartPath))
	if strings.EqualFold(filepath.Ext(chartPath), ext) {
		return base + ".out" + ext
	}
	return base + ext
}
