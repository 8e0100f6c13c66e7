// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	stdjson "encoding/json"
	"testing"

	"clause-check/internal/compare"
	"clause-check/internal/diff"
	"clause-check/internal/formatters"
	"clause-check/internal/status"
)

func TestFormat_RoundTrips(t *testing.T) {
	results := []compare.Result{
		{Name: "a.txt", Source: "/tmp/a.txt", Status: status.Diffs, Diffs: []diff.Discrepancy{
			{Ref: "2.1", Type: diff.Changed, Similarity: 0.9312, EtalonBody: "x", CandidateBody: "y"},
		}},
	}

	out, err := NewFormatter().Format(results, formatters.FormatterOptions{Etalon: "etalon.txt"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded struct {
		GeneratedAt string `json:"generated_at"`
		Etalon      string `json:"etalon"`
		Results     []struct {
			Name   string `json:"name"`
			Status string `json:"status"`
			Diffs  []struct {
				ClauseRef  string  `json:"clause_ref"`
				DiffType   string  `json:"diff_type"`
				Similarity float64 `json:"similarity"`
			} `json:"diffs"`
		} `json:"results"`
	}
	if err := stdjson.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.Etalon != "etalon.txt" {
		t.Errorf("unexpected etalon %q", decoded.Etalon)
	}
	if decoded.GeneratedAt == "" {
		t.Error("expected a generated_at timestamp")
	}
	if len(decoded.Results) != 1 || decoded.Results[0].Status != "DIFFS" {
		t.Fatalf("unexpected results %+v", decoded.Results)
	}
	d := decoded.Results[0].Diffs[0]
	if d.ClauseRef != "2.1" || d.DiffType != "CHANGED" || d.Similarity != 0.9312 {
		t.Errorf("unexpected diff %+v", d)
	}
}

func TestFormat_EmptyResults(t *testing.T) {
	out, err := NewFormatter().Format(nil, formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]interface{}
	if err := stdjson.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
}
