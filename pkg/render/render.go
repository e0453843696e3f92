package render

import (
	"bytes"
	"context"
	"time"

	"github.com/matzehuels/orgchart/pkg/cache"
	"github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/io"
	"github.com/matzehuels/orgchart/pkg/orgchart"
	"github.com/matzehuels/orgchart/pkg/render/nodelink"
	"github.com/matzehuels/orgchart/pkg/render/text"
)

// Format names accepted by [Chart].
const (
	FormatText = "text"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Options holds the settings shared by all formats.
type Options struct {
	// Detailed adds employee IDs to text and diagram labels.
	Detailed bool

	// Highlight lists employee IDs to emphasize.
	Highlight []int
}

// Chart renders the tree rooted at root in the named format.
// Unknown formats are reported with [errors.ErrCodeInvalidFormat].
func Chart(ctx context.Context, root *orgchart.Employee, format string, opts Options) ([]byte, error) {
	if err := errors.ValidateFormat(format); err != nil {
		return nil, err
	}

	switch format {
	case FormatText:
		return []byte(text.Render(root, text.Options{ShowIDs: opts.Detailed, Highlight: opts.Highlight}) + "\n"), nil
	case FormatDOT:
		return []byte(nodelink.ToDOT(root, dotOptions(opts))), nil
	case FormatSVG:
		return nodelink.RenderSVG(ctx, nodelink.ToDOT(root, dotOptions(opts)))
	}

	var buf bytes.Buffer
	if err := io.Write(root, &buf, io.Format(format)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Cached renders like [Chart] but serves repeated renders of an unchanged
// tree from c. The boolean reports whether the result came from the cache.
// Cache read and write failures fall back to rendering.
func Cached(ctx context.Context, c cache.Cache, root *orgchart.Employee, format string, opts Options, ttl time.Duration) ([]byte, bool, error) {
	if err := errors.ValidateFormat(format); err != nil {
		return nil, false, err
	}
	key, err := ArtifactKey(root, format, opts)
	if err != nil {
		return nil, false, err
	}
	if data, ok, err := c.Get(ctx, key); err == nil && ok {
		return data, true, nil
	}

	data, err := Chart(ctx, root, format, opts)
	if err != nil {
		return nil, false, err
	}
	_ = c.Set(ctx, key, data, ttl)
	return data, false, nil
}

// ArtifactKey returns the cache key for rendering root with format and opts.
func ArtifactKey(root *orgchart.Employee, format string, opts Options) (string, error) {
	var doc bytes.Buffer
	if err := io.WriteJSON(root, &doc); err != nil {
		return "", err
	}
	return cache.ArtifactKey(cache.Hash(doc.Bytes()), cache.ArtifactKeyOpts{
		Format:    format,
		Detailed:  opts.Detailed,
		Highlight: opts.Highlight,
	}), nil
}

func dotOptions(opts Options) nodelink.Options {
	return nodelink.Options{Detailed: opts.Detailed, Highlight: opts.Highlight}
}

// ContentType returns the MIME type for a format name.
func ContentType(format string) string {
	switch format {
	case FormatSVG:
		return "image/svg+xml"
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	case FormatDOT:
		return "text/vnd.graphviz; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Extension returns the file extension conventionally used for a format.
func Extension(format string) string {
	if format == FormatText {
		return ".txt"
	}
	return "." + format
}
