package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/orgchart/pkg/errors"
	chartio "github.com/matzehuels/orgchart/pkg/io"
	"github.com/matzehuels/orgchart/pkg/orgchart"
)

// chartPath picks the chart file: a positional argument, then --chart, then
// the config file.
func (c *CLI) chartPath(args []string) (string, error) {
	switch {
	case len(args) > 0:
		return args[0], nil
	case c.chartFile != "":
		return c.chartFile, nil
	case c.Config.Chart != "":
		return c.Config.Chart, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "no chart given (pass a file, --chart, or set chart in the config file)")
}

// loadChart imports the chart file and builds a chart that logs through the
// context logger.
func (c *CLI) loadChart(ctx context.Context, path string) (*orgchart.Chart, error) {
	logger := loggerFromContext(ctx)

	root, err := chartio.Import(path)
	if err != nil {
		return nil, errors.FromChart(err)
	}
	chart, err := orgchart.New(root, orgchart.WithLogger(logger))
	if err != nil {
		return nil, errors.FromChart(err)
	}
	logger.Debugf("Loaded %s: %d employees", path, chart.Len())
	return chart, nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty or "-", it returns stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{stdout}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.Create(path)
}

// writeChart writes the chart to path in the format its extension names, or
// as JSON to stdout when path is empty.
func writeChart(root *orgchart.Employee, path string, stdout io.Writer) error {
	if path == "" || path == "-" {
		return chartio.WriteJSON(root, stdout)
	}
	return chartio.Export(root, path)
}
