// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package compare wires the per-document pipeline: extract text, segment
// into clauses, apply the minimum-content policy, diff against the
// etalon, classify. One candidate's failure never aborts the batch; it
// is reported as NEEDS_REVIEW alongside the other results.
package compare

import (
	"fmt"
	"path/filepath"
	"regexp"

	"clause-check/internal/clause"
	"clause-check/internal/diff"
	"clause-check/internal/extract"
	"clause-check/internal/observability"
	"clause-check/internal/status"
)

// DefaultMinChars is the minimum extracted text length for a candidate
// to be considered readable at all.
const DefaultMinChars = 200

// Config bundles the read-only comparison settings shared by every
// candidate in a run.
type Config struct {
	Threshold             float64
	CriticalMinSimilarity float64
	MinChars              int
	IgnorePatterns        []*regexp.Regexp
	Critical              status.CriticalSet
	Matcher               clause.HeadingMatcher
	Observer              *observability.StandardObserver
}

// Result is the outcome for one candidate document.
type Result struct {
	Name   string             `json:"name" yaml:"name"`
	Source string             `json:"source" yaml:"source"`
	Status status.Status      `json:"status" yaml:"status"`
	Diffs  []diff.Discrepancy `json:"diffs" yaml:"diffs"`
	Reason string             `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Comparer runs comparisons against one etalon clause map. It holds no
// mutable state between calls and is safe for concurrent use.
type Comparer struct {
	cfg       Config
	segmenter *clause.Segmenter
	engine    *diff.Engine
}

// NewComparer builds a comparer, filling unset config fields with
// defaults.
func NewComparer(cfg Config) *Comparer {
	if cfg.Threshold == 0 {
		cfg.Threshold = diff.DefaultThreshold
	}
	if cfg.CriticalMinSimilarity == 0 {
		cfg.CriticalMinSimilarity = status.DefaultCriticalMinSimilarity
	}
	if cfg.MinChars == 0 {
		cfg.MinChars = DefaultMinChars
	}
	if cfg.Critical == nil {
		cfg.Critical = status.NewCriticalSet(nil)
	}

	segmenter := clause.NewSegmenter()
	if cfg.Matcher != nil {
		segmenter = segmenter.WithMatcher(cfg.Matcher)
	}

	return &Comparer{
		cfg:       cfg,
		segmenter: segmenter,
		engine:    diff.NewEngine().WithThreshold(cfg.Threshold),
	}
}

// LoadEtalon extracts and segments the reference document. Unlike a
// candidate, an unreadable or empty etalon is a hard error: nothing can
// be compared without it.
func (c *Comparer) LoadEtalon(path string) (*clause.Map, error) {
	text, err := extract.Text(path)
	if err != nil {
		return nil, err
	}
	m := c.segmenter.Segment(text)
	if m.Len() == 0 {
		return nil, fmt.Errorf("etalon %s: no numbered clauses found", path)
	}
	return m, nil
}

// CompareDocument runs the full pipeline for one candidate file.
func (c *Comparer) CompareDocument(etalon *clause.Map, path string) Result {
	result := Result{
		Name:   filepath.Base(path),
		Source: path,
	}

	var finish func(bool, map[string]interface{})
	if c.cfg.Observer != nil {
		finish = c.cfg.Observer.StartTiming("compare", "compare_document", path)
	}

	text, err := extract.Text(path)
	if err != nil {
		result.Status = status.NeedsReview
		result.Reason = err.Error()
		if finish != nil {
			finish(false, map[string]interface{}{"reason": result.Reason})
		}
		return result
	}

	candidate := c.segmenter.Segment(text)
	if len(text) < c.cfg.MinChars || candidate.Len() == 0 {
		result.Status = status.NeedsReview
		result.Reason = fmt.Sprintf("document yields too little content (%d chars, %d clauses)", len(text), candidate.Len())
		if finish != nil {
			finish(false, map[string]interface{}{"reason": result.Reason})
		}
		return result
	}

	result.Diffs, result.Status = c.CompareMaps(etalon, candidate)
	if finish != nil {
		finish(true, map[string]interface{}{
			"clause_count": candidate.Len(),
			"diff_count":   len(result.Diffs),
			"status":       string(result.Status),
		})
	}
	return result
}

// CompareMaps diffs two already-built clause maps and classifies the
// outcome. Both maps are read-only; this is a pure function of its
// inputs.
func (c *Comparer) CompareMaps(etalon, candidate *clause.Map) ([]diff.Discrepancy, status.Status) {
	diffs := c.engine.Compare(etalon, candidate, c.cfg.IgnorePatterns)
	return diffs, status.Classify(diffs, c.cfg.Critical, c.cfg.CriticalMinSimilarity)
}

// Segment exposes the comparer's segmenter for callers that already hold
// raw text.
func (c *Comparer) Segment(rawText string) *clause.Map {
	return c.segmenter.Segment(rawText)
}
