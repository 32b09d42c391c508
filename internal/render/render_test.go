// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package render_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"cloudeng.io/pqueue/internal/render"
	"cloudeng.io/pqueue/internal/workload"
	"gopkg.in/yaml.v3"
)

var report = workload.Report{Results: []workload.Result{
	{Workload: "sorted", Kind: workload.Binary, Inserted: 5, Extracted: 5, Validations: 10, Duration: time.Millisecond},
	{Workload: "merged", Kind: workload.Binomial, Inserted: 8, Extracted: 8, Merged: 2},
	{Workload: "broken", Kind: workload.Fibonacci, Inserted: 3, Error: "oops"},
}}

func TestTable(t *testing.T) {
	var out strings.Builder
	if err := render.New(&out).Report(render.Table, report); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// top border, header, separator, three rows and the bottom border.
	if got, want := len(lines), 7; got != want {
		t.Fatalf("got %v, want %v:\n%s", got, want, out.String())
	}
	for i, want := range [][]string{
		{"WORKLOAD", "KIND", "INSERTED", "VALIDATIONS", "STATUS"},
		{"sorted", "binary", "5", "10", "1ms", "ok"},
		{"merged", "binomial", "8", "2", "ok"},
		{"broken", "fibonacci", "3", "oops"},
	} {
		line := lines[1]
		if i > 0 {
			line = lines[i+2]
		}
		for _, w := range want {
			if !strings.Contains(line, w) {
				t.Errorf("line %q does not contain %q", line, w)
			}
		}
	}
}

func TestYAML(t *testing.T) {
	var out strings.Builder
	if err := render.New(&out).Report(render.YAML, report); err != nil {
		t.Fatal(err)
	}
	var got workload.Report
	if err := yaml.Unmarshal([]byte(out.String()), &got); err != nil {
		t.Fatal(err)
	}
	if got, want := len(got.Results), 3; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got, want := got.Results[2].Error, "oops"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if strings.Contains(out.String(), "merged: 0") {
		t.Errorf("zero merge counts should be omitted:\n%s", out.String())
	}
}

func TestJSON(t *testing.T) {
	var out strings.Builder
	if err := render.New(&out).Report(render.JSON, report); err != nil {
		t.Fatal(err)
	}
	var got workload.Report
	if err := json.Unmarshal([]byte(out.String()), &got); err != nil {
		t.Fatal(err)
	}
	if got, want := got.Results[1].Merged, 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !strings.Contains(out.String(), "\n  \"results\": [") {
		t.Errorf("output is not indented:\n%s", out.String())
	}
}

func TestUnsupportedFormat(t *testing.T) {
	var out strings.Builder
	err := render.New(&out).Report("xml", report)
	if err == nil || !strings.Contains(err.Error(), `unsupported format "xml"`) {
		t.Errorf("unexpected or missing error: %v", err)
	}
}
