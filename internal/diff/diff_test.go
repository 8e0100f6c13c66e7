// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clause-check/internal/clause"
	"clause-check/internal/normalize"
)

func segment(t *testing.T, text string) *clause.Map {
	t.Helper()
	m := clause.NewSegmenter().Segment(text)
	require.NotZero(t, m.Len(), "segmentation produced no clauses")
	return m
}

func TestCompare_Identical(t *testing.T) {
	text := "1. Pay within 10 days.\n2. Keep the terms confidential."
	reference := segment(t, text)
	candidate := segment(t, text)

	diffs := NewEngine().Compare(reference, candidate, nil)
	assert.Empty(t, diffs)
}

func TestCompare_ChangedMissingExtra(t *testing.T) {
	reference := segment(t, "1. Pay within 10 days.\n2. Confidential.")
	candidate := segment(t, "1. Pay within 30 days.\n3. New clause.")

	diffs := NewEngine().Compare(reference, candidate, nil)
	require.Len(t, diffs, 3)

	assert.Equal(t, "1", diffs[0].Ref)
	assert.Equal(t, Changed, diffs[0].Type)
	assert.InDelta(t, 36.0/38.0, diffs[0].Similarity, 1e-12)
	assert.Equal(t, "Pay within 10 days.", diffs[0].EtalonBody)
	assert.Equal(t, "Pay within 30 days.", diffs[0].CandidateBody)

	assert.Equal(t, "2", diffs[1].Ref)
	assert.Equal(t, Missing, diffs[1].Type)
	assert.Equal(t, 0.0, diffs[1].Similarity)
	assert.Equal(t, "Confidential.", diffs[1].EtalonBody)
	assert.Empty(t, diffs[1].CandidateBody)

	assert.Equal(t, "3", diffs[2].Ref)
	assert.Equal(t, Extra, diffs[2].Type)
	assert.Equal(t, 0.0, diffs[2].Similarity)
	assert.Equal(t, "New clause.", diffs[2].CandidateBody)
	assert.Empty(t, diffs[2].EtalonBody)
}

func TestCompare_ThresholdBoundary(t *testing.T) {
	reference := segment(t, "1. Pay within 10 days.")
	candidate := segment(t, "1. Pay within 30 days.")

	// The pair scores 36/38; a threshold at or below that is a pass
	diffs := NewEngine().WithThreshold(0.9).Compare(reference, candidate, nil)
	assert.Empty(t, diffs)

	diffs = NewEngine().WithThreshold(0.99).Compare(reference, candidate, nil)
	require.Len(t, diffs, 1)
	assert.Equal(t, Changed, diffs[0].Type)
}

func TestCompare_ExactScoreIsNotChanged(t *testing.T) {
	reference := segment(t, "1. abcd")
	candidate := segment(t, "1. bcde")

	// score == threshold must not be reported
	diffs := NewEngine().WithThreshold(0.75).Compare(reference, candidate, nil)
	assert.Empty(t, diffs)
}

func TestCompare_IgnorePatternsMaskDrift(t *testing.T) {
	reference := segment(t, "1. Contract No. 42-A dated 01.02.2026: pay on time.")
	candidate := segment(t, "1. Contract No. 99-B dated 31.12.2026: pay on time.")

	diffs := NewEngine().Compare(reference, candidate, nil)
	require.Len(t, diffs, 1)

	ignore, _ := normalize.CompilePatterns([]string{
		`no\.\s*[\w-]+`,
		`\d{2}\.\d{2}\.\d{4}`,
	})
	diffs = NewEngine().Compare(reference, candidate, ignore)
	assert.Empty(t, diffs)
}

func TestCompare_CaseAndWhitespaceInsensitive(t *testing.T) {
	reference := segment(t, "1. The Supplier SHALL pay.")
	candidate := segment(t, "1. the   supplier\nshall pay.")

	diffs := NewEngine().Compare(reference, candidate, nil)
	assert.Empty(t, diffs)
}

func TestCompare_SortedByRefThenType(t *testing.T) {
	reference := segment(t, "10. Ten.\n2. Two is gone.\n2.1 Sub two.")
	candidate := segment(t, "10. Ten changed a lot elsewhere.\n2.1 Sub two.\n3. Extra three.")

	diffs := NewEngine().Compare(reference, candidate, nil)
	require.Len(t, diffs, 3)
	assert.Equal(t, []string{"2", "3", "10"}, []string{diffs[0].Ref, diffs[1].Ref, diffs[2].Ref})
	assert.Equal(t, Missing, diffs[0].Type)
	assert.Equal(t, Extra, diffs[1].Type)
	assert.Equal(t, Changed, diffs[2].Type)
}

func TestWithThreshold_RejectsOutOfRange(t *testing.T) {
	e := NewEngine().WithThreshold(0).WithThreshold(1.5).WithThreshold(-1)
	assert.Equal(t, DefaultThreshold, e.Threshold())
}
