// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package render displays workload reports as tables, YAML or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"cloudeng.io/pqueue/internal/workload"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	Table = "table"
	YAML  = "yaml"
	JSON  = "json"
)

// Formats lists the supported output formats.
var Formats = []string{Table, YAML, JSON}

// Renderer writes formatted output to an io.Writer.
type Renderer struct {
	output io.Writer
}

// New returns a Renderer that writes to output.
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// Report renders the report in the specified format.
func (r *Renderer) Report(format string, report workload.Report) error {
	switch format {
	case Table, "":
		r.Table(reportHeader, reportRows(report))
		return nil
	case YAML:
		return r.YAML(report)
	case JSON:
		return r.JSON(report)
	}
	return fmt.Errorf("unsupported format %q, must be one of %v", format, Formats)
}

// Table renders the header and rows as a table.
func (r *Renderer) Table(header []any, rows [][]any) {
	tw := table.NewWriter()
	tw.SetOutputMirror(r.output)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row(header))
	for _, row := range rows {
		tw.AppendRow(table.Row(row))
	}
	tw.Render()
}

// YAML renders v as YAML.
func (r *Renderer) YAML(v any) error {
	enc := yaml.NewEncoder(r.output)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to render YAML: %w", err)
	}
	return enc.Close()
}

// JSON renders v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.output)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to render JSON: %w", err)
	}
	return nil
}

var reportHeader = []any{"workload", "kind", "inserted", "extracted", "merged", "validations", "duration", "status"}

func reportRows(report workload.Report) [][]any {
	rows := make([][]any, 0, len(report.Results))
	for _, res := range report.Results {
		status := "ok"
		if len(res.Error) > 0 {
			status = res.Error
		}
		rows = append(rows, []any{
			res.Workload,
			res.Kind,
			res.Inserted,
			res.Extracted,
			res.Merged,
			res.Validations,
			res.Duration.Round(time.Microsecond),
			status,
		})
	}
	return rows
}
