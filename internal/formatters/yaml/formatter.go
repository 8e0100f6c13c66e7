// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"time"

	"clause-check/internal/compare"
	"clause-check/internal/formatters"

	yamlv3 "gopkg.in/yaml.v3"
)

func init() {
	formatters.Register(NewFormatter())
}

// Formatter implements YAML output formatting
type Formatter struct{}

// NewFormatter creates a new YAML formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "yaml"
}

func (f *Formatter) Description() string {
	return "Machine-readable YAML report"
}

func (f *Formatter) FileExtension() string {
	return ".yaml"
}

type report struct {
	GeneratedAt string           `yaml:"generated_at"`
	Etalon      string           `yaml:"etalon,omitempty"`
	Results     []compare.Result `yaml:"results"`
}

func (f *Formatter) Format(results []compare.Result, options formatters.FormatterOptions) (string, error) {
	out, err := yamlv3.Marshal(report{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Etalon:      options.Etalon,
		Results:     results,
	})
	if err != nil {
		return "", err
	}
	return string(out), nil
}
