// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
)

// PrintUsage writes the full CLI help text to stdout.
func PrintUsage(noColor bool) {
	if noColor {
		color.NoColor = true
	}
	title := color.New(color.FgWhite, color.Bold)
	subtitle := color.New(color.FgCyan, color.Bold)

	title.Println("clause-check — clause-by-clause contract comparison")
	fmt.Println()
	fmt.Println("Compares an etalon (reference) contract document against one or more")
	fmt.Println("counterparty variants and reports, per numbered clause, whether the")
	fmt.Println("required wording was incorporated.")
	fmt.Println()

	subtitle.Println("Usage:")
	fmt.Println("  clause-check -etalon <file> [options] <candidate> [<candidate>...]")
	fmt.Println()

	subtitle.Println("Options:")
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	for _, row := range [][2]string{
		{"-etalon <file>", "Reference document (required)"},
		{"-config <file>", "Configuration file (YAML)"},
		{"-profile <name>", "Named profile from the configuration file"},
		{"-format <name>", "Output format: text, json, csv, yaml (default text)"},
		{"-output <file>", "Write the report to a file instead of stdout"},
		{"-threshold <f>", "Similarity threshold in (0,1] (default 0.985)"},
		{"-critical <refs>", "Comma-separated critical clause references"},
		{"-critical-min-similarity <f>", "Floor for changed critical clauses (default 0.95)"},
		{"-ignore <patterns>", "Comma-separated regex patterns stripped before comparison"},
		{"-ignore-file <file>", "File with one ignore pattern per line"},
		{"-min-chars <n>", "Minimum extracted characters per candidate (default 200)"},
		{"-workers <n>", "Parallel comparison workers (default: CPU count)"},
		{"-show-bodies", "Include clause body excerpts in text output"},
		{"-verbose", "Per-discrepancy detail in text output"},
		{"-debug", "JSON operation log on stderr"},
		{"-no-color", "Disable colored output"},
		{"-version", "Print version and exit"},
	} {
		fmt.Fprintf(w, "  %s\t%s\n", row[0], row[1])
	}
	w.Flush()
	fmt.Println()

	subtitle.Println("Supported document formats:")
	fmt.Println("  .txt .md .docx .pdf")
	fmt.Println()

	subtitle.Println("Exit codes:")
	fmt.Println("  0  all candidates OK")
	fmt.Println("  1  at least one candidate has diffs, is not applied, or needs review")
	fmt.Println("  2  usage error or unreadable etalon")
}
