// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package diff compares a reference clause map against a candidate and
// produces the classified, ordered discrepancy list.
package diff

import (
	"regexp"
	"sort"
	"strings"

	"clause-check/internal/clause"
	"clause-check/internal/normalize"
	"clause-check/internal/similarity"
)

// Type classifies a single discrepancy.
type Type string

const (
	// Changed means the clause is present in both documents but its body
	// similarity is below the threshold.
	Changed Type = "CHANGED"
	// Extra means the clause is present only in the candidate.
	Extra Type = "EXTRA"
	// Missing means the clause is present only in the reference.
	Missing Type = "MISSING"
)

// DefaultThreshold treats only cosmetic-level drift as "same".
const DefaultThreshold = 0.985

// Discrepancy is one clause-level difference. Similarity carries the
// computed ratio for CHANGED and 0.0 for MISSING/EXTRA. The bodies are
// the original stored clause texts (not normalized); excerpting for
// display is the formatter's job.
type Discrepancy struct {
	Ref           string  `json:"clause_ref" yaml:"clause_ref"`
	Type          Type    `json:"diff_type" yaml:"diff_type"`
	Similarity    float64 `json:"similarity" yaml:"similarity"`
	EtalonBody    string  `json:"etalon_body,omitempty" yaml:"etalon_body,omitempty"`
	CandidateBody string  `json:"candidate_body,omitempty" yaml:"candidate_body,omitempty"`
}

// Engine computes discrepancy lists. Construct with NewEngine; the zero
// value has no scorer.
type Engine struct {
	scorer    *similarity.Scorer
	threshold float64
}

// NewEngine creates an engine with the default scorer and threshold.
func NewEngine() *Engine {
	return &Engine{
		scorer:    similarity.NewScorer(),
		threshold: DefaultThreshold,
	}
}

// WithThreshold overrides the similarity threshold. Values outside (0,1]
// are ignored.
func (e *Engine) WithThreshold(t float64) *Engine {
	if t > 0 && t <= 1 {
		e.threshold = t
	}
	return e
}

// WithScorer replaces the similarity scorer.
func (e *Engine) WithScorer(s *similarity.Scorer) *Engine {
	if s != nil {
		e.scorer = s
	}
	return e
}

// Threshold returns the active similarity threshold.
func (e *Engine) Threshold() float64 { return e.threshold }

// Compare produces the sorted discrepancy list between the reference
// (etalon) and candidate maps. Each clause yields at most one
// discrepancy. Bodies are normalized with the ignore patterns before
// scoring; stored bodies stay untouched.
func (e *Engine) Compare(reference, candidate *clause.Map, ignore []*regexp.Regexp) []Discrepancy {
	var diffs []Discrepancy

	for _, ref := range reference.Refs() {
		refBody, _ := reference.Get(ref)
		candBody, ok := candidate.Get(ref)
		if !ok {
			diffs = append(diffs, Discrepancy{
				Ref:        ref,
				Type:       Missing,
				EtalonBody: refBody,
			})
			continue
		}

		score := e.scorer.Ratio(
			normalize.Normalize(refBody, ignore),
			normalize.Normalize(candBody, ignore),
		)
		if score < e.threshold {
			diffs = append(diffs, Discrepancy{
				Ref:           ref,
				Type:          Changed,
				Similarity:    score,
				EtalonBody:    refBody,
				CandidateBody: candBody,
			})
		}
	}

	for _, ref := range candidate.Refs() {
		if !reference.Has(ref) {
			candBody, _ := candidate.Get(ref)
			diffs = append(diffs, Discrepancy{
				Ref:           ref,
				Type:          Extra,
				CandidateBody: candBody,
			})
		}
	}

	sortDiscrepancies(diffs)
	return diffs
}

// sortDiscrepancies orders by clause reference, then by diff type name
// (CHANGED < EXTRA < MISSING).
func sortDiscrepancies(diffs []Discrepancy) {
	sort.SliceStable(diffs, func(i, j int) bool {
		if c := clause.CompareStrings(diffs[i].Ref, diffs[j].Ref); c != 0 {
			return c < 0
		}
		return strings.Compare(string(diffs[i].Type), string(diffs[j].Type)) < 0
	})
}
