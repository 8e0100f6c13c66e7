// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package clause

// Map is an ordered mapping from clause reference to clause body. It is
// built once per document by the Segmenter and not mutated afterwards.
// Insertion order reflects document order; SortedRefs is authoritative
// for presentation.
type Map struct {
	bodies map[string]string
	order  []string
}

func newMap() *Map {
	return &Map{bodies: make(map[string]string)}
}

func (m *Map) set(ref, body string) {
	if _, seen := m.bodies[ref]; !seen {
		m.order = append(m.order, ref)
	}
	m.bodies[ref] = body
}

// Get returns the body stored for ref.
func (m *Map) Get(ref string) (string, bool) {
	body, ok := m.bodies[ref]
	return body, ok
}

// Has reports whether ref is present.
func (m *Map) Has(ref string) bool {
	_, ok := m.bodies[ref]
	return ok
}

// Len returns the number of clauses.
func (m *Map) Len() int { return len(m.bodies) }

// Refs returns references in document (insertion) order.
func (m *Map) Refs() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// SortedRefs returns references in clause order.
func (m *Map) SortedRefs() []string {
	out := m.Refs()
	SortRefStrings(out)
	return out
}
