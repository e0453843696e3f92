package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/matzehuels/orgchart/internal/server"
	"github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/metrics"
	"github.com/matzehuels/orgchart/pkg/observability"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	listen    string // address to listen on; overrides the config file
	noCache   bool   // bypass the artifact cache
	noMetrics bool   // disable /metrics and the metric hooks
}

// serveCommand creates the serve command, which exposes the chart over HTTP
// until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve [chart]",
		Short: "Serve the org chart over HTTP",
		Long: `Serve the org chart over HTTP.

Moves, undos, and redos are kept in memory only; the chart file is never
written. Routes: GET /chart, GET /chart.{json,yaml,dot,svg,txt}, GET /history,
POST /moves, POST /undo, POST /redo, GET /healthz, GET /metrics.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.chartPath(args)
			if err != nil {
				return err
			}
			return c.runServe(cmd, path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.listen, "listen", "l", "", "listen address (default from config, "+defaultListen+")")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")
	cmd.Flags().BoolVar(&opts.noMetrics, "no-metrics", false, "disable Prometheus metrics")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, path string, opts serveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	addr := opts.listen
	if addr == "" {
		addr = c.Config.Listen
	}
	if err := errors.ValidateAddr(addr); err != nil {
		return err
	}

	chart, err := c.loadChart(ctx, path)
	if err != nil {
		return err
	}

	store, err := c.openCache(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	cfg := server.Config{
		Chart:    chart,
		Cache:    store,
		CacheTTL: c.Config.Cache.TTL.Duration,
		Logger:   logger,
	}
	if !opts.noMetrics {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		collector := metrics.NewCollector()
		if err := collector.Register(reg); err != nil {
			return err
		}
		collector.Install()
		defer observability.Reset()
		cfg.Gatherer = reg
	}

	logger.Info("Serving chart", "file", path, "employees", chart.Len(), "addr", addr)
	return server.New(cfg).ListenAndServe(ctx, addr)
}
