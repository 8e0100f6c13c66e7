// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"time"

	"clause-check/internal/compare"
	"clause-check/internal/formatters"
)

func init() {
	formatters.Register(NewFormatter())
}

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Machine-readable JSON report"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

type report struct {
	GeneratedAt string           `json:"generated_at"`
	Etalon      string           `json:"etalon,omitempty"`
	Results     []compare.Result `json:"results"`
}

func (f *Formatter) Format(results []compare.Result, options formatters.FormatterOptions) (string, error) {
	out, err := json.MarshalIndent(report{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Etalon:      options.Etalon,
		Results:     results,
	}, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
