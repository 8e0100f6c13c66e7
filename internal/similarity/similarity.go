// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package similarity implements the Ratcliff/Obershelp matching ratio
// used to decide whether two clause bodies are the same. The ratio is
// 2*M/(len(a)+len(b)) where M is the total length of the common runs
// found by recursive longest-common-substring matching. It rewards large
// verbatim shared spans and tolerates reordering poorly, which suits
// legal clause text where small insertions and deletions dominate.
package similarity

import "unicode/utf8"

// DefaultMaxInput caps the compared length per string, in runes. The
// matcher is O(n*m) per step, so unbounded clause bodies would allow a
// quadratic blowup; longer inputs are truncated before scoring.
const DefaultMaxInput = 10000

// Scorer computes similarity ratios. The zero value is not usable; use
// NewScorer.
type Scorer struct {
	maxInput int
}

// NewScorer creates a scorer with the default input cap.
func NewScorer() *Scorer {
	return &Scorer{maxInput: DefaultMaxInput}
}

// WithMaxInput sets the per-string rune cap. Values < 1 are ignored.
func (s *Scorer) WithMaxInput(n int) *Scorer {
	if n >= 1 {
		s.maxInput = n
	}
	return s
}

// Ratio computes the similarity of a and b in [0,1]. Two empty strings
// are identical (1.0). The result is symmetric in a and b.
func (s *Scorer) Ratio(a, b string) float64 {
	ra := truncateRunes(a, s.maxInput)
	rb := truncateRunes(b, s.maxInput)

	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}

	matched := matchTotal(ra, rb)
	return 2.0 * float64(matched) / float64(total)
}

// Ratio is the package-level convenience using the default scorer.
func Ratio(a, b string) float64 {
	return NewScorer().Ratio(a, b)
}

func truncateRunes(s string, max int) []rune {
	if utf8.RuneCountInString(s) <= max {
		return []rune(s)
	}
	return []rune(s)[:max]
}

type span struct {
	alo, ahi, blo, bhi int
}

// matchTotal sums the lengths of all common runs. It walks the
// Ratcliff/Obershelp recursion with an explicit stack so the depth is
// bounded regardless of input shape.
func matchTotal(a, b []rune) int {
	total := 0
	stack := []span{{0, len(a), 0, len(b)}}

	for len(stack) > 0 {
		sp := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if sp.ahi <= sp.alo || sp.bhi <= sp.blo {
			continue
		}

		i, j, size := longestMatch(a, b, sp)
		if size == 0 {
			continue
		}
		total += size

		stack = append(stack,
			span{sp.alo, i, sp.blo, j},
			span{i + size, sp.ahi, j + size, sp.bhi},
		)
	}
	return total
}

// longestMatch finds the longest contiguous run common to a[sp.alo:sp.ahi]
// and b[sp.blo:sp.bhi]. Ties break toward the earliest start in a, then
// the earliest start in b.
func longestMatch(a, b []rune, sp span) (besti, bestj, bestsize int) {
	besti, bestj = sp.alo, sp.blo

	// j2len[j] = length of the common run ending at a[i], b[j].
	j2len := make(map[int]int)
	for i := sp.alo; i < sp.ahi; i++ {
		next := make(map[int]int)
		for j := sp.blo; j < sp.bhi; j++ {
			if a[i] != b[j] {
				continue
			}
			k := j2len[j-1] + 1
			next[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = next
	}
	return besti, bestj, bestsize
}
