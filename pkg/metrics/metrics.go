// Package metrics exports org chart, cache, and HTTP events as Prometheus
// metrics.
//
// A [Collector] implements the hook interfaces from
// [github.com/matzehuels/orgchart/pkg/observability]. Register it with a
// Prometheus registry and install it as the global hooks:
//
//	c := metrics.NewCollector()
//	if err := c.Register(prometheus.DefaultRegisterer); err != nil {
//	    return err
//	}
//	c.Install()
package metrics

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/orgchart/pkg/observability"
	"github.com/matzehuels/orgchart/pkg/orgchart"
)

const namespace = "orgchart"

// Collector records hook events into Prometheus metrics.
type Collector struct {
	operations    *prometheus.CounterVec
	opDuration    *prometheus.HistogramVec
	undoDepth     prometheus.Gauge
	redoDepth     prometheus.Gauge
	cacheEvents   *prometheus.CounterVec
	cacheBytes    *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
	httpDurations *prometheus.HistogramVec
}

// NewCollector creates a collector with unregistered metrics.
func NewCollector() *Collector {
	return &Collector{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Chart operations by kind and result.",
		}, []string{"op", "result"}),
		opDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Time spent in chart operations.",
			Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}, []string{"op"}),
		undoDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "undo_depth",
			Help:      "Number of moves that can be undone.",
		}),
		redoDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "redo_depth",
			Help:      "Number of undone moves that can be redone.",
		}),
		cacheEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_events_total",
			Help:      "Artifact cache lookups and writes.",
		}, []string{"event", "key_type"}),
		cacheBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_written_bytes_total",
			Help:      "Bytes written to the artifact cache.",
		}, []string{"key_type"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		httpDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets: []float64{
				0.001, 0.002, 0.005,
				0.01, 0.02, 0.05,
				0.1, 0.2, 0.5,
				1, 2, 5,
			},
		}, []string{"method", "route"}),
	}
}

// Register adds all metrics to reg.
func (c *Collector) Register(reg prometheus.Registerer) error {
	for _, m := range []prometheus.Collector{
		c.operations, c.opDuration, c.undoDepth, c.redoDepth,
		c.cacheEvents, c.cacheBytes, c.httpRequests, c.httpDurations,
	} {
		if err := reg.Register(m); err != nil {
			return err
		}
	}
	return nil
}

// Install registers c as the global chart, cache, and HTTP hooks.
func (c *Collector) Install() {
	observability.SetChartHooks(c)
	observability.SetCacheHooks(c)
	observability.SetHTTPHooks(c)
}

// Result classifies an operation error for the result label: "ok", the
// rejection reason for invalid moves, or "error".
func Result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, orgchart.ErrNotFound):
		return "not_found"
	case errors.Is(err, orgchart.ErrSelfSupervision):
		return "self_supervision"
	case errors.Is(err, orgchart.ErrCycle):
		return "cycle"
	case errors.Is(err, orgchart.ErrRootImmovable):
		return "root_immovable"
	default:
		return "error"
	}
}

func (c *Collector) observe(op orgchart.Op, d time.Duration, err error) {
	c.operations.WithLabelValues(string(op), Result(err)).Inc()
	c.opDuration.WithLabelValues(string(op)).Observe(d.Seconds())
}

// OnMove implements observability.ChartHooks.
func (c *Collector) OnMove(_, _, _ int, d time.Duration, err error) { c.observe(orgchart.OpMove, d, err) }

// OnUndo implements observability.ChartHooks.
func (c *Collector) OnUndo(_, _, _ int, d time.Duration, err error) { c.observe(orgchart.OpUndo, d, err) }

// OnRedo implements observability.ChartHooks.
func (c *Collector) OnRedo(_, _, _ int, d time.Duration, err error) { c.observe(orgchart.OpRedo, d, err) }

// OnHistoryChange implements observability.ChartHooks.
func (c *Collector) OnHistoryChange(undoDepth, redoDepth int) {
	c.undoDepth.Set(float64(undoDepth))
	c.redoDepth.Set(float64(redoDepth))
}

// OnCacheHit implements observability.CacheHooks.
func (c *Collector) OnCacheHit(_ context.Context, keyType string) {
	c.cacheEvents.WithLabelValues("hit", keyType).Inc()
}

// OnCacheMiss implements observability.CacheHooks.
func (c *Collector) OnCacheMiss(_ context.Context, keyType string) {
	c.cacheEvents.WithLabelValues("miss", keyType).Inc()
}

// OnCacheSet implements observability.CacheHooks.
func (c *Collector) OnCacheSet(_ context.Context, keyType string, size int) {
	c.cacheEvents.WithLabelValues("set", keyType).Inc()
	c.cacheBytes.WithLabelValues(keyType).Add(float64(size))
}

// OnRequest implements observability.HTTPHooks.
func (c *Collector) OnRequest(_ context.Context, method, route string, status int, d time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDurations.WithLabelValues(method, route).Observe(d.Seconds())
}

var (
	_ observability.ChartHooks = (*Collector)(nil)
	_ observability.CacheHooks = (*Collector)(nil)
	_ observability.HTTPHooks  = (*Collector)(nil)
)
