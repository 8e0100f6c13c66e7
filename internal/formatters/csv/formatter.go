// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"encoding/csv"
	"fmt"
	"strings"

	"clause-check/internal/compare"
	"clause-check/internal/diff"
	"clause-check/internal/formatters"
)

func init() {
	formatters.Register(NewFormatter())
}

// Formatter implements CSV output formatting
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "One row per discrepancy, spreadsheet-friendly"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(results []compare.Result, options formatters.FormatterOptions) (string, error) {
	var builder strings.Builder
	writer := csv.NewWriter(&builder)

	header := []string{"document", "status", "clause", "diff_type", "similarity", "reason"}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, result := range results {
		if len(result.Diffs) == 0 {
			row := []string{result.Name, string(result.Status), "", "", "", result.Reason}
			if err := writer.Write(row); err != nil {
				return "", err
			}
			continue
		}
		for _, d := range result.Diffs {
			similarity := ""
			if d.Type == diff.Changed {
				similarity = fmt.Sprintf("%.4f", d.Similarity)
			}
			row := []string{result.Name, string(result.Status), d.Ref, string(d.Type), similarity, ""}
			if err := writer.Write(row); err != nil {
				return "", err
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return builder.String(), nil
}
