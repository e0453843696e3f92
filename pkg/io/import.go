package io

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/orgchart"
)

// ReadJSON decodes a JSON chart from r.
//
// The input must be a single employee object with "uniqueId", "name" and an
// optional "subordinates" array of nested employees. ReadJSON returns an
// error if the JSON is malformed, if any name fails [errors.ValidateName], or
// if two employees share an ID (the error wraps [orgchart.ErrDuplicateID]).
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*orgchart.Employee, error) {
	var data employee
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
	}
	return fromWire(data)
}

// ReadYAML decodes a YAML chart from r. Validation matches [ReadJSON].
func ReadYAML(r io.Reader) (*orgchart.Employee, error) {
	var data employee
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode yaml")
	}
	return fromWire(data)
}

// Read decodes a chart from r in the given format.
func Read(r io.Reader, format Format) (*orgchart.Employee, error) {
	switch format {
	case FormatJSON:
		return ReadJSON(r)
	case FormatYAML:
		return ReadYAML(r)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported chart format %q", format)
	}
}

// ImportJSON reads a JSON chart file at path.
func ImportJSON(path string) (*orgchart.Employee, error) {
	return importFile(path, FormatJSON)
}

// Import reads a chart file at path, choosing the decoder from its
// extension. A missing file is reported with [errors.ErrCodeFileNotFound].
func Import(path string) (*orgchart.Employee, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	return importFile(path, format)
}

func importFile(path string, format Format) (*orgchart.Employee, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "chart file %s not found", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	root, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}
