// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"clause-check/internal/compare"
	"clause-check/internal/diff"
	"clause-check/internal/formatters"
	"clause-check/internal/status"

	"github.com/fatih/color"
)

func init() {
	formatters.Register(NewFormatter())
}

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colored per-document status"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(results []compare.Result, options formatters.FormatterOptions) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	var builder strings.Builder

	if options.Etalon != "" {
		builder.WriteString(fmt.Sprintf("Etalon: %s\n\n", options.Etalon))
	}

	for _, result := range results {
		f.appendResult(&builder, result, options)
	}

	builder.WriteString("\n")
	f.appendSummary(&builder, results)
	return builder.String(), nil
}

func (f *Formatter) appendResult(builder *strings.Builder, result compare.Result, options formatters.FormatterOptions) {
	statusStr := f.statusColor(result.Status).Sprintf("%-12s", string(result.Status))
	builder.WriteString(fmt.Sprintf("%s %s", statusStr, result.Name))
	if result.Reason != "" {
		builder.WriteString(fmt.Sprintf("  (%s)", result.Reason))
	}
	builder.WriteString("\n")

	if !options.Verbose {
		return
	}

	for _, d := range result.Diffs {
		line := fmt.Sprintf("    %-8s %-10s", d.Type, d.Ref)
		if d.Type == diff.Changed {
			line += fmt.Sprintf(" similarity=%.3f", d.Similarity)
		}
		builder.WriteString(line + "\n")

		if options.ShowBodies {
			if d.EtalonBody != "" {
				builder.WriteString(fmt.Sprintf("        etalon:    %s\n", formatters.Excerpt(d.EtalonBody, 80)))
			}
			if d.CandidateBody != "" {
				builder.WriteString(fmt.Sprintf("        candidate: %s\n", formatters.Excerpt(d.CandidateBody, 80)))
			}
		}
	}
}

func (f *Formatter) appendSummary(builder *strings.Builder, results []compare.Result) {
	counts := map[status.Status]int{}
	for _, r := range results {
		counts[r.Status]++
	}
	builder.WriteString(fmt.Sprintf("%d document(s): %d ok, %d with diffs, %d not applied, %d need review\n",
		len(results),
		counts[status.OK],
		counts[status.Diffs],
		counts[status.NotApplied],
		counts[status.NeedsReview]))
}

func (f *Formatter) statusColor(s status.Status) *color.Color {
	switch s {
	case status.OK:
		return f.colors["green"]
	case status.Diffs:
		return f.colors["yellow"]
	case status.NotApplied:
		return f.colors["red"]
	case status.NeedsReview:
		return f.colors["cyan"]
	default:
		return f.colors["white"]
	}
}
