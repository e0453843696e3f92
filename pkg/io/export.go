package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/orgchart"
)

// WriteJSON encodes the tree rooted at root as indented JSON and writes it
// to w. The output can be re-imported with [ReadJSON].
func WriteJSON(root *orgchart.Employee, w io.Writer) error {
	if root == nil {
		return orgchart.ErrNilRoot
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toWire(root)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteYAML encodes the tree rooted at root as YAML and writes it to w.
func WriteYAML(root *orgchart.Employee, w io.Writer) error {
	if root == nil {
		return orgchart.ErrNilRoot
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toWire(root)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return enc.Close()
}

// Write encodes root to w in the given format.
func Write(root *orgchart.Employee, w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		return WriteJSON(root, w)
	case FormatYAML:
		return WriteYAML(root, w)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported chart format %q", format)
	}
}

// ExportJSON writes the tree to a JSON file at path.
func ExportJSON(root *orgchart.Employee, path string) error {
	return exportFile(root, path, FormatJSON)
}

// Export writes the tree to path, choosing the encoder from its extension.
func Export(root *orgchart.Employee, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return exportFile(root, path, format)
}

func exportFile(root *orgchart.Employee, path string, format Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(root, f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
