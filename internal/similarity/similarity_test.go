// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio_Identical(t *testing.T) {
	assert.Equal(t, 1.0, Ratio("the supplier shall pay", "the supplier shall pay"))
}

func TestRatio_BothEmpty(t *testing.T) {
	assert.Equal(t, 1.0, Ratio("", ""))
}

func TestRatio_OneEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Ratio("clause body", ""))
	assert.Equal(t, 0.0, Ratio("", "clause body"))
}

func TestRatio_Disjoint(t *testing.T) {
	assert.Equal(t, 0.0, Ratio("abc", "xyz"))
}

func TestRatio_KnownValues(t *testing.T) {
	// One common run "bcd": 2*3/8
	assert.InDelta(t, 0.75, Ratio("abcd", "bcde"), 1e-12)

	// Runs "pay within " (11) and "0 days." (7): 2*18/38
	assert.InDelta(t, 36.0/38.0, Ratio("pay within 10 days.", "pay within 30 days."), 1e-12)
}

func TestRatio_Symmetric(t *testing.T) {
	a := "the goods shall be delivered within thirty days"
	b := "the goods shall be delivered within sixty days"
	assert.Equal(t, Ratio(a, b), Ratio(b, a))
}

func TestRatio_Unicode(t *testing.T) {
	// Rune-based, not byte-based
	assert.Equal(t, 1.0, Ratio("оплата в течение 10 дней", "оплата в течение 10 дней"))
	got := Ratio("оплата в течение 10 дней", "оплата в течение 30 дней")
	assert.Greater(t, got, 0.8)
	assert.Less(t, got, 1.0)
}

func TestRatio_Bounds(t *testing.T) {
	pairs := [][2]string{
		{"a", "a"},
		{"short", "a much longer different string"},
		{"", "x"},
		{"overlap here", "here overlap"},
	}
	for _, p := range pairs {
		got := Ratio(p[0], p[1])
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
	}
}

func TestScorer_MaxInputTruncates(t *testing.T) {
	s := NewScorer().WithMaxInput(4)
	// Only the first 4 runes of each side are compared
	assert.Equal(t, 1.0, s.Ratio("abcdXXXX", "abcdYYYY"))
}

func TestScorer_WithMaxInputIgnoresInvalid(t *testing.T) {
	s := NewScorer().WithMaxInput(0)
	assert.InDelta(t, 0.75, s.Ratio("abcd", "bcde"), 1e-12)
}
