// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package clause

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// MaxRefComponents is the maximum number of dotted components a clause
// reference may carry ("1.2.3.4.5.6.7").
const MaxRefComponents = 7

// Ref is a clause reference: the original dotted numeric string plus its
// parsed integer components. Identity is the raw string ("2.01" and "2.1"
// are different clauses); the components only drive ordering.
type Ref struct {
	raw   string
	parts []int
}

// ParseRef parses a dotted numeric clause reference such as "2.4.1".
func ParseRef(s string) (Ref, error) {
	if s == "" {
		return Ref{}, fmt.Errorf("empty clause reference")
	}
	fields := strings.Split(s, ".")
	if len(fields) > MaxRefComponents {
		return Ref{}, fmt.Errorf("clause reference %q has %d components, max is %d", s, len(fields), MaxRefComponents)
	}
	parts := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return Ref{}, fmt.Errorf("invalid clause reference component %q in %q", f, s)
		}
		parts = append(parts, n)
	}
	return Ref{raw: s, parts: parts}, nil
}

// String returns the original reference string.
func (r Ref) String() string { return r.raw }

// Parts returns the parsed integer components.
func (r Ref) Parts() []int { return r.parts }

// Compare orders two refs component-wise. A ref that is a prefix of a
// longer one sorts first ("2" before "2.1"); numerically equal refs with
// different spellings fall back to raw string comparison so the order
// stays total.
func Compare(a, b Ref) int {
	n := len(a.parts)
	if len(b.parts) < n {
		n = len(b.parts)
	}
	for i := 0; i < n; i++ {
		if a.parts[i] != b.parts[i] {
			if a.parts[i] < b.parts[i] {
				return -1
			}
			return 1
		}
	}
	if len(a.parts) != len(b.parts) {
		if len(a.parts) < len(b.parts) {
			return -1
		}
		return 1
	}
	return strings.Compare(a.raw, b.raw)
}

// CompareStrings orders two raw reference strings using Compare. Strings
// that do not parse sort after valid refs, by plain string comparison.
func CompareStrings(a, b string) int {
	ra, errA := ParseRef(a)
	rb, errB := ParseRef(b)
	switch {
	case errA == nil && errB == nil:
		return Compare(ra, rb)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// SortRefStrings sorts raw reference strings in clause order.
func SortRefStrings(refs []string) {
	sort.SliceStable(refs, func(i, j int) bool {
		return CompareStrings(refs[i], refs[j]) < 0
	})
}
