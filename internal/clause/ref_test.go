// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package clause

import (
	"reflect"
	"testing"
)

func TestParseRef_Valid(t *testing.T) {
	ref, err := ParseRef("2.4.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.String() != "2.4.1" {
		t.Errorf("expected raw string preserved, got %q", ref.String())
	}
	if !reflect.DeepEqual(ref.Parts(), []int{2, 4, 1}) {
		t.Errorf("expected parts [2 4 1], got %v", ref.Parts())
	}
}

func TestParseRef_Invalid(t *testing.T) {
	for _, input := range []string{"", "a", "1.a", "1..2", "1.2.3.4.5.6.7.8", "-1", "1.-2"} {
		if _, err := ParseRef(input); err == nil {
			t.Errorf("expected error for %q", input)
		}
	}
}

func TestParseRef_LeadingZerosKeepIdentity(t *testing.T) {
	a, err := ParseRef("2.01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := ParseRef("2.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.String() == b.String() {
		t.Error("expected distinct raw strings for 2.01 and 2.1")
	}
	// Numerically equal, so ordering falls back to the raw string
	if Compare(a, b) == 0 {
		t.Error("expected a total order over distinct spellings")
	}
}

func TestSortRefStrings(t *testing.T) {
	refs := []string{"2", "2.1", "10", "2.2"}
	SortRefStrings(refs)
	expected := []string{"2", "2.1", "2.2", "10"}
	if !reflect.DeepEqual(refs, expected) {
		t.Errorf("expected %v, got %v", expected, refs)
	}
}

func TestCompare_PrefixSortsFirst(t *testing.T) {
	a, _ := ParseRef("2")
	b, _ := ParseRef("2.1")
	if Compare(a, b) >= 0 {
		t.Error(`expected "2" to sort before "2.1"`)
	}
	if Compare(b, a) <= 0 {
		t.Error("expected comparison to be antisymmetric")
	}
}

func TestCompareStrings_InvalidSortsLast(t *testing.T) {
	if CompareStrings("3", "not-a-ref") >= 0 {
		t.Error("expected valid refs to sort before invalid ones")
	}
	if CompareStrings("not-a-ref", "3") <= 0 {
		t.Error("expected invalid refs to sort after valid ones")
	}
}
