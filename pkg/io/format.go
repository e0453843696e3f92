package io

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/orgchart"
)

// Format identifies a chart document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the document format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer chart format from %q (want .json, .yaml or .yml)", path)
	}
}

// employee is the wire shape shared by the JSON and YAML encodings.
type employee struct {
	UniqueID     int        `json:"uniqueId" yaml:"uniqueId"`
	Name         string     `json:"name" yaml:"name"`
	Subordinates []employee `json:"subordinates" yaml:"subordinates"`
}

func toWire(e *orgchart.Employee) employee {
	out := employee{
		UniqueID:     e.ID,
		Name:         e.Name,
		Subordinates: make([]employee, len(e.Subordinates)),
	}
	for i, sub := range e.Subordinates {
		out.Subordinates[i] = toWire(sub)
	}
	return out
}

// fromWire converts a decoded document into a tree, validating names and
// ID uniqueness along the way.
func fromWire(root employee) (*orgchart.Employee, error) {
	seen := make(map[int]bool)
	var convert func(w employee) (*orgchart.Employee, error)
	convert = func(w employee) (*orgchart.Employee, error) {
		if err := errors.ValidateName(w.Name); err != nil {
			return nil, fmt.Errorf("employee %d: %w", w.UniqueID, err)
		}
		if seen[w.UniqueID] {
			return nil, fmt.Errorf("employee %d: %w", w.UniqueID, &orgchart.DuplicateIDError{ID: w.UniqueID})
		}
		seen[w.UniqueID] = true

		e := &orgchart.Employee{ID: w.UniqueID, Name: w.Name}
		if len(w.Subordinates) > 0 {
			e.Subordinates = make([]*orgchart.Employee, 0, len(w.Subordinates))
		}
		for _, sw := range w.Subordinates {
			sub, err := convert(sw)
			if err != nil {
				return nil, err
			}
			e.Subordinates = append(e.Subordinates, sub)
		}
		return e, nil
	}
	return convert(root)
}
