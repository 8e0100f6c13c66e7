// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package clause

import (
	"fmt"
	"regexp"
	"strings"
)

// HeadingMatcher decides whether a line opens a new clause. Implementations
// return the clause reference string, the remainder of the line after the
// heading, and whether the line matched at all.
type HeadingMatcher interface {
	Match(line string) (ref string, rest string, ok bool)
}

// regexHeadingMatcher is the default matcher. A heading line is an optional
// lead-in token (clause/item markers in English or Russian, full words or
// abbreviations), a dotted numeric sequence of 1..7 components, and a
// separator: one of ") . - – :" followed by whitespace, or plain
// whitespace, or end of line.
type regexHeadingMatcher struct {
	re *regexp.Regexp

	// checkSeparator enables the number/body separator validation. Custom
	// patterns encode their own separator, so only the default matcher
	// sets it.
	checkSeparator bool
}

var defaultHeadingRe = regexp.MustCompile(
	`^(?i)(?:(?:подпункт|пункт|статья|clause|item|section|пп|ст|п)\.?\s+)?(\d+(?:\.\d+){0,6})(.*)$`)

// DefaultHeadingMatcher returns the matcher used when none is supplied.
func DefaultHeadingMatcher() HeadingMatcher {
	return &regexHeadingMatcher{re: defaultHeadingRe, checkSeparator: true}
}

// NewRegexHeadingMatcher builds a matcher from a custom pattern. The
// pattern must expose the clause number as group 1 and the remainder of
// the line as group 2.
func NewRegexHeadingMatcher(pattern string) (HeadingMatcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	if re.NumSubexp() < 2 {
		return nil, fmt.Errorf("heading pattern %q needs 2 capture groups (number, remainder)", pattern)
	}
	return &regexHeadingMatcher{re: re}, nil
}

func (m *regexHeadingMatcher) Match(line string) (string, string, bool) {
	groups := m.re.FindStringSubmatch(line)
	if groups == nil {
		return "", "", false
	}
	ref, rest := groups[1], groups[2]
	if _, err := ParseRef(ref); err != nil {
		return "", "", false
	}
	if !m.checkSeparator {
		return ref, strings.TrimSpace(rest), true
	}

	// The number must be followed by a separator. Accept end of line,
	// plain whitespace, or a separator rune trailed by whitespace/EOL.
	if rest == "" {
		return ref, "", true
	}
	first, rest2 := rest[0], rest[1:]
	switch {
	case first == ' ' || first == '\t':
		return ref, strings.TrimSpace(rest2), true
	case first == ')' || first == '.' || first == '-' || first == ':':
		if rest2 == "" || rest2[0] == ' ' || rest2[0] == '\t' {
			return ref, strings.TrimSpace(rest2), true
		}
	case strings.HasPrefix(rest, "–"):
		tail := strings.TrimPrefix(rest, "–")
		if tail == "" || tail[0] == ' ' || tail[0] == '\t' {
			return ref, strings.TrimSpace(tail), true
		}
	}
	return "", "", false
}

// Segmenter splits raw document text into a clause Map. It is a line
// state machine: heading lines move the cursor to a clause, other lines
// accumulate under the current clause, preamble before the first heading
// is discarded. Blank lines are dropped.
type Segmenter struct {
	matcher HeadingMatcher
}

// NewSegmenter creates a segmenter with the default heading matcher.
func NewSegmenter() *Segmenter {
	return &Segmenter{matcher: DefaultHeadingMatcher()}
}

// WithMatcher replaces the heading matcher.
func (s *Segmenter) WithMatcher(m HeadingMatcher) *Segmenter {
	if m != nil {
		s.matcher = m
	}
	return s
}

// Segment builds the clause map for rawText. A document without heading
// lines yields an empty map; minimum-content policy is the caller's
// concern.
func (s *Segmenter) Segment(rawText string) *Map {
	rawText = strings.ReplaceAll(rawText, "\r\n", "\n")

	fragments := make(map[string][]string)
	var order []string
	current := ""

	for _, line := range strings.Split(rawText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if ref, rest, ok := s.matcher.Match(line); ok {
			current = ref
			if _, seen := fragments[ref]; !seen {
				fragments[ref] = nil
				order = append(order, ref)
			}
			if rest != "" {
				fragments[ref] = append(fragments[ref], rest)
			}
			continue
		}

		if current == "" {
			continue
		}
		fragments[current] = append(fragments[current], line)
	}

	m := newMap()
	for _, ref := range order {
		m.set(ref, strings.TrimSpace(strings.Join(fragments[ref], "\n")))
	}
	return m
}
