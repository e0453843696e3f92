package metrics

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/orgchart/pkg/observability"
	"github.com/matzehuels/orgchart/pkg/orgchart"
)

func newRegistered(t *testing.T) (*Collector, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	c := NewCollector()
	require.NoError(t, c.Register(reg))
	return c, reg
}

func TestRegisterTwiceFails(t *testing.T) {
	c, reg := newRegistered(t)
	assert.Error(t, c.Register(reg))
}

func TestChartHooks(t *testing.T) {
	c, _ := newRegistered(t)
	c.Install()
	defer observability.Reset()

	root := &orgchart.Employee{ID: 1, Subordinates: []*orgchart.Employee{
		{ID: 2, Subordinates: []*orgchart.Employee{{ID: 3}}},
		{ID: 4},
	}}
	chart, err := orgchart.New(root)
	require.NoError(t, err)

	require.NoError(t, chart.Move(3, 4))
	require.NoError(t, chart.Move(2, 4))
	require.NoError(t, chart.Undo())
	assert.Error(t, chart.Move(2, 2))
	assert.Error(t, chart.Move(1, 4))

	assert.Equal(t, 2.0, testutil.ToFloat64(c.operations.WithLabelValues("move", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.operations.WithLabelValues("undo", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.operations.WithLabelValues("move", "self_supervision")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.operations.WithLabelValues("move", "root_immovable")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.undoDepth))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.redoDepth))
}

func TestCacheHooks(t *testing.T) {
	c, _ := newRegistered(t)
	ctx := context.Background()

	c.OnCacheMiss(ctx, "artifact:svg")
	c.OnCacheSet(ctx, "artifact:svg", 1024)
	c.OnCacheHit(ctx, "artifact:svg")
	c.OnCacheHit(ctx, "artifact:svg")

	assert.Equal(t, 1.0, testutil.ToFloat64(c.cacheEvents.WithLabelValues("miss", "artifact:svg")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.cacheEvents.WithLabelValues("hit", "artifact:svg")))
	assert.Equal(t, 1024.0, testutil.ToFloat64(c.cacheBytes.WithLabelValues("artifact:svg")))
}

func TestHTTPHooks(t *testing.T) {
	c, reg := newRegistered(t)
	ctx := context.Background()

	c.OnRequest(ctx, "POST", "/moves", 200, 5*time.Millisecond)
	c.OnRequest(ctx, "POST", "/moves", 409, time.Millisecond)

	expected := `
# HELP orgchart_http_requests_total HTTP requests by route and status.
# TYPE orgchart_http_requests_total counter
orgchart_http_requests_total{method="POST",route="/moves",status="200"} 1
orgchart_http_requests_total{method="POST",route="/moves",status="409"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "orgchart_http_requests_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(c.httpDurations))
}

func TestResult(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{&orgchart.MoveError{Op: orgchart.OpMove, Err: orgchart.ErrNotFound}, "not_found"},
		{&orgchart.MoveError{Op: orgchart.OpMove, Err: orgchart.ErrCycle}, "cycle"},
		{orgchart.ErrSelfSupervision, "self_supervision"},
		{orgchart.ErrRootImmovable, "root_immovable"},
		{fmt.Errorf("boom"), "error"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Result(tt.err), "Result(%v)", tt.err)
	}
}
