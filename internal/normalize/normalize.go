// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package normalize prepares clause bodies for similarity comparison.
// Stored clause bodies are never normalized; this transform feeds the
// scorer only.
package normalize

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// CompilePatterns compiles operator-supplied ignore patterns into
// case-insensitive global-replace expressions. Malformed patterns are
// dropped so a bad line never aborts the run; the second return value
// reports how many were discarded.
func CompilePatterns(patterns []string) ([]*regexp.Regexp, int) {
	var compiled []*regexp.Regexp
	dropped := 0
	for _, p := range patterns {
		if strings.TrimSpace(p) == "" {
			continue
		}
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			dropped++
			continue
		}
		compiled = append(compiled, re)
	}
	return compiled, dropped
}

// Normalize strips each ignore pattern in list order (each pattern runs
// on the previous pattern's output), collapses whitespace runs including
// newlines to single spaces, trims, and lowercases.
func Normalize(text string, ignore []*regexp.Regexp) string {
	for _, re := range ignore {
		text = re.ReplaceAllString(text, "")
	}
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.ToLower(strings.TrimSpace(text))
}
