package render

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/orgchart/pkg/cache"
	"github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/orgchart"
)

func team() *orgchart.Employee {
	return &orgchart.Employee{ID: 1, Name: "Ada", Subordinates: []*orgchart.Employee{
		{ID: 2, Name: "Brian"},
	}}
}

func TestChart(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{FormatText, "Brian"},
		{FormatDOT, "e1 -> e2;"},
		{FormatJSON, `"uniqueId": 2`},
		{FormatYAML, "uniqueId: 2"},
		{FormatSVG, "<svg"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, err := Chart(context.Background(), team(), tt.format, Options{})
			if err != nil {
				t.Fatalf("Chart(%s) error: %v", tt.format, err)
			}
			if !strings.Contains(string(out), tt.want) {
				t.Errorf("Chart(%s) output missing %q:\n%s", tt.format, tt.want, out)
			}
		})
	}
}

func TestChart_UnknownFormat(t *testing.T) {
	_, err := Chart(context.Background(), team(), "pdf", Options{})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Chart(pdf) error = %v, want %v", err, errors.ErrCodeInvalidFormat)
	}
}

func TestContentTypeAndExtension(t *testing.T) {
	tests := []struct {
		format, contentType, ext string
	}{
		{FormatText, "text/plain; charset=utf-8", ".txt"},
		{FormatSVG, "image/svg+xml", ".svg"},
		{FormatJSON, "application/json", ".json"},
		{FormatYAML, "application/yaml", ".yaml"},
		{FormatDOT, "text/vnd.graphviz; charset=utf-8", ".dot"},
	}
	for _, tt := range tests {
		if got := ContentType(tt.format); got != tt.contentType {
			t.Errorf("ContentType(%s) = %q, want %q", tt.format, got, tt.contentType)
		}
		if got := Extension(tt.format); got != tt.ext {
			t.Errorf("Extension(%s) = %q, want %q", tt.format, got, tt.ext)
		}
	}
}

func TestCached(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	root := team()

	first, hit, err := Cached(ctx, c, root, FormatDOT, Options{}, time.Hour)
	if err != nil || hit {
		t.Fatalf("first render: hit=%v err=%v, want fresh render", hit, err)
	}
	second, hit, err := Cached(ctx, c, root, FormatDOT, Options{}, time.Hour)
	if err != nil || !hit {
		t.Fatalf("second render: hit=%v err=%v, want cache hit", hit, err)
	}
	if string(first) != string(second) {
		t.Error("cached output differs from rendered output")
	}

	root.Subordinates = append(root.Subordinates, &orgchart.Employee{ID: 3, Name: "Cleo"})
	third, hit, err := Cached(ctx, c, root, FormatDOT, Options{}, time.Hour)
	if err != nil || hit {
		t.Fatalf("render after change: hit=%v err=%v, want fresh render", hit, err)
	}
	if !strings.Contains(string(third), "Cleo") {
		t.Error("render after change should include the new employee")
	}
}
