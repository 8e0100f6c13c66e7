// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"clause-check/internal/compare"
	"clause-check/internal/config"
	"clause-check/internal/extract"
	"clause-check/internal/help"
	"clause-check/internal/normalize"
	"clause-check/internal/observability"
	"clause-check/internal/parallel"
	"clause-check/internal/status"
	"clause-check/internal/version"

	"clause-check/internal/formatters"
	_ "clause-check/internal/formatters/csv"
	_ "clause-check/internal/formatters/json"
	_ "clause-check/internal/formatters/text"
	_ "clause-check/internal/formatters/yaml"

	"golang.org/x/term"
)

// cliFlags holds command line flag values
type cliFlags struct {
	etalonPath            string
	configFile            string
	profileName           string
	outputFormat          string
	outputFile            string
	threshold             float64
	criticalRefs          string
	criticalMinSimilarity float64
	ignorePatterns        string
	ignoreFile            string
	minChars              int
	workers               int
	showBodies            bool
	verbose               bool
	debug                 bool
	noColor               bool
	showVersion           bool
	showHelp              bool
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	format                string
	threshold             float64
	criticalMinSimilarity float64
	minChars              int
	workers               int
	showBodies            bool
	verbose               bool
	debug                 bool
	noColor               bool
	ignorePatterns        []string
	criticalClauses       []string
}

func main() {
	flags := parseFlags()

	if flags.showVersion {
		fmt.Println(version.Info())
		os.Exit(0)
	}
	if flags.showHelp {
		help.PrintUsage(flags.noColor)
		os.Exit(0)
	}

	candidates := flag.Args()
	if flags.etalonPath == "" || len(candidates) == 0 {
		fmt.Fprintln(os.Stderr, "Error: an -etalon document and at least one candidate document are required")
		fmt.Fprintln(os.Stderr, "Run with -help for usage")
		os.Exit(2)
	}

	cfg := config.LoadConfigOrDefault(flags.configFile)
	var activeProfile *config.Profile
	if flags.profileName != "" {
		activeProfile = cfg.GetProfile(flags.profileName)
		if activeProfile == nil {
			fmt.Fprintf(os.Stderr, "Error: unknown profile %q (available: %s)\n",
				flags.profileName, strings.Join(cfg.ListProfiles(), ", "))
			os.Exit(2)
		}
	}

	final := resolveConfiguration(cfg, activeProfile, flags)

	// Auto-disable color when stdout is not a terminal or output goes to a file.
	if !isTerminal(os.Stdout) || flags.outputFile != "" {
		final.noColor = true
	}

	level := observability.ObservabilityMetrics
	if final.debug {
		level = observability.ObservabilityDebug
	}
	observer := observability.NewStandardObserver(level, os.Stderr)

	ignore, dropped := normalize.CompilePatterns(final.ignorePatterns)
	if dropped > 0 && final.verbose {
		fmt.Fprintf(os.Stderr, "Warning: %d invalid ignore pattern(s) skipped\n", dropped)
	}

	for _, path := range append([]string{flags.etalonPath}, candidates...) {
		if !extract.CanExtract(path) {
			fmt.Fprintf(os.Stderr, "Warning: unsupported document format: %s\n", path)
		}
	}

	comparer := compare.NewComparer(compare.Config{
		Threshold:             final.threshold,
		CriticalMinSimilarity: final.criticalMinSimilarity,
		MinChars:              final.minChars,
		IgnorePatterns:        ignore,
		Critical:              status.NewCriticalSet(final.criticalClauses),
		Observer:              observer,
	})

	etalon, err := comparer.LoadEtalon(flags.etalonPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	results := parallel.ProcessDocuments(comparer, etalon, candidates, final.workers, observer)

	output, err := formatters.Export(final.format, results, formatters.FormatterOptions{
		Verbose:    final.verbose,
		NoColor:    final.noColor,
		ShowBodies: final.showBodies,
		Etalon:     flags.etalonPath,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if flags.outputFile != "" {
		if err := os.WriteFile(flags.outputFile, []byte(output), 0600); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(2)
		}
	} else {
		fmt.Print(output)
	}

	for _, result := range results {
		if result.Status != status.OK {
			os.Exit(1)
		}
	}
}

func parseFlags() *cliFlags {
	flags := &cliFlags{}

	flag.StringVar(&flags.etalonPath, "etalon", "", "Reference (etalon) document")
	flag.StringVar(&flags.configFile, "config", "", "Configuration file")
	flag.StringVar(&flags.profileName, "profile", "", "Named profile from the configuration file")
	flag.StringVar(&flags.outputFormat, "format", "", "Output format (text, json, csv, yaml)")
	flag.StringVar(&flags.outputFile, "output", "", "Write report to file instead of stdout")
	flag.Float64Var(&flags.threshold, "threshold", 0, "Similarity threshold in (0,1]")
	flag.StringVar(&flags.criticalRefs, "critical", "", "Comma-separated critical clause references")
	flag.Float64Var(&flags.criticalMinSimilarity, "critical-min-similarity", 0, "Similarity floor for changed critical clauses")
	flag.StringVar(&flags.ignorePatterns, "ignore", "", "Comma-separated ignore regex patterns")
	flag.StringVar(&flags.ignoreFile, "ignore-file", "", "File with one ignore pattern per line")
	flag.IntVar(&flags.minChars, "min-chars", 0, "Minimum extracted characters per candidate")
	flag.IntVar(&flags.workers, "workers", 0, "Parallel comparison workers (0 = CPU count)")
	flag.BoolVar(&flags.showBodies, "show-bodies", false, "Include clause body excerpts in text output")
	flag.BoolVar(&flags.verbose, "verbose", false, "Per-discrepancy detail")
	flag.BoolVar(&flags.debug, "debug", false, "JSON operation log on stderr")
	flag.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&flags.showVersion, "version", false, "Print version and exit")
	flag.BoolVar(&flags.showHelp, "help", false, "Print usage and exit")

	flag.Usage = func() { help.PrintUsage(true) }
	flag.Parse()
	return flags
}

// resolveConfiguration resolves final values from config file, profile, and command line flags
func resolveConfiguration(cfg *config.Config, activeProfile *config.Profile, flags *cliFlags) *finalConfiguration {
	final := &finalConfiguration{}

	// Format
	final.format = "text"
	if cfg.Defaults.Format != "" {
		final.format = cfg.Defaults.Format
	}
	if activeProfile != nil && activeProfile.Format != "" {
		final.format = activeProfile.Format
	}
	if isFlagSet("format") && flags.outputFormat != "" {
		final.format = flags.outputFormat
	}

	// Similarity threshold
	final.threshold = cfg.Defaults.Threshold
	if activeProfile != nil && activeProfile.Threshold != 0 {
		final.threshold = activeProfile.Threshold
	}
	if isFlagSet("threshold") {
		final.threshold = flags.threshold
	}

	// Critical similarity floor
	final.criticalMinSimilarity = cfg.Defaults.CriticalMinSimilarity
	if activeProfile != nil && activeProfile.CriticalMinSimilarity != 0 {
		final.criticalMinSimilarity = activeProfile.CriticalMinSimilarity
	}
	if isFlagSet("critical-min-similarity") {
		final.criticalMinSimilarity = flags.criticalMinSimilarity
	}

	// Minimum content policy
	final.minChars = cfg.Defaults.MinChars
	if activeProfile != nil && activeProfile.MinChars != 0 {
		final.minChars = activeProfile.MinChars
	}
	if isFlagSet("min-chars") {
		final.minChars = flags.minChars
	}

	// Workers
	final.workers = cfg.Defaults.Workers
	if activeProfile != nil && activeProfile.Workers != 0 {
		final.workers = activeProfile.Workers
	}
	if isFlagSet("workers") {
		final.workers = flags.workers
	}

	// Booleans: flags win when set, otherwise profile, otherwise defaults
	final.showBodies = cfg.Defaults.ShowBodies
	final.verbose = cfg.Defaults.Verbose
	final.debug = cfg.Defaults.Debug
	final.noColor = cfg.Defaults.NoColor
	if activeProfile != nil {
		final.showBodies = final.showBodies || activeProfile.ShowBodies
		final.verbose = final.verbose || activeProfile.Verbose
		final.debug = final.debug || activeProfile.Debug
		final.noColor = final.noColor || activeProfile.NoColor
	}
	if flags.showBodies {
		final.showBodies = true
	}
	if flags.verbose {
		final.verbose = true
	}
	if flags.debug {
		final.debug = true
	}
	if flags.noColor {
		final.noColor = true
	}

	// Ignore patterns: config, profile additions, then flag additions
	final.ignorePatterns = append(final.ignorePatterns, cfg.IgnorePatterns...)
	if activeProfile != nil {
		final.ignorePatterns = append(final.ignorePatterns, activeProfile.IgnorePatterns...)
	}
	if flags.ignorePatterns != "" {
		final.ignorePatterns = append(final.ignorePatterns, splitList(flags.ignorePatterns)...)
	}
	if flags.ignoreFile != "" {
		patterns, err := readPatternFile(flags.ignoreFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot read ignore file: %v\n", err)
		} else {
			final.ignorePatterns = append(final.ignorePatterns, patterns...)
		}
	}

	// Critical clauses: config, profile additions, then flag additions
	final.criticalClauses = append(final.criticalClauses, cfg.CriticalClauses...)
	if activeProfile != nil {
		final.criticalClauses = append(final.criticalClauses, activeProfile.CriticalClauses...)
	}
	if flags.criticalRefs != "" {
		final.criticalClauses = append(final.criticalClauses, splitList(flags.criticalRefs)...)
	}

	return final
}

// isFlagSet reports whether a flag was explicitly provided
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// readPatternFile reads one ignore pattern per line, skipping blanks and
// # comments.
func readPatternFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var patterns []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns, scanner.Err()
}

// isTerminal checks if the file descriptor is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
