// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package status reduces a discrepancy list plus the operator's critical
// clause set into one overall per-document status.
package status

import "clause-check/internal/diff"

// Status is the overall verdict for one candidate document.
type Status string

const (
	// OK means no discrepancies at all.
	OK Status = "OK"
	// Diffs means discrepancies exist but none of the critical failure
	// conditions hold.
	Diffs Status = "DIFFS"
	// NotApplied means a critical clause is missing or changed beyond
	// the critical similarity floor.
	NotApplied Status = "NOT_APPLIED"
	// NeedsReview is assigned upstream of the classifier, for documents
	// that never produced a usable clause map (parse failure or too
	// little content). Classify never returns it.
	NeedsReview Status = "NEEDS_REVIEW"
)

// DefaultCriticalMinSimilarity is the floor below which a changed
// critical clause escalates to NOT_APPLIED.
const DefaultCriticalMinSimilarity = 0.95

// CriticalSet holds the clause references with escalated failure
// semantics.
type CriticalSet map[string]struct{}

// NewCriticalSet builds a set from raw reference strings, skipping
// empties.
func NewCriticalSet(refs []string) CriticalSet {
	set := make(CriticalSet, len(refs))
	for _, r := range refs {
		if r != "" {
			set[r] = struct{}{}
		}
	}
	return set
}

// Contains reports whether ref is critical.
func (s CriticalSet) Contains(ref string) bool {
	_, ok := s[ref]
	return ok
}

// Classify reduces diffs to a status. Empty diffs means OK. A critical
// clause that is MISSING, or CHANGED with similarity below
// criticalMinSimilarity, forces NOT_APPLIED; any other non-empty diff
// list yields DIFFS. The scan short-circuits; the result is independent
// of order since the critical condition is a disjunction.
func Classify(diffs []diff.Discrepancy, critical CriticalSet, criticalMinSimilarity float64) Status {
	if len(diffs) == 0 {
		return OK
	}
	for _, d := range diffs {
		if !critical.Contains(d.Ref) {
			continue
		}
		if d.Type == diff.Missing {
			return NotApplied
		}
		if d.Type == diff.Changed && d.Similarity < criticalMinSimilarity {
			return NotApplied
		}
	}
	return Diffs
}
