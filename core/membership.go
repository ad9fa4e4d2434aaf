// SPDX-License-Identifier: MIT
//
// File: membership.go
// Role: Per-run tree membership flags.
// Concurrency:
//   - IsMember may be called from many goroutines at once.
//   - Mark is owner-only and must not overlap with any IsMember caller.

package core

// Membership records which nodes currently belong to a growing tree.
//
// The zero value is an empty set over zero nodes; use (*Graph).NewMembership
// or NewMembership to size it.
type Membership struct {
	in   []bool
	size int
}

// NewMembership returns an empty membership set over n nodes.
// Panics if n < 0.
func NewMembership(n int) *Membership {
	if n < 0 {
		panic("core: NewMembership(n<0)")
	}
	return &Membership{in: make([]bool, n)}
}

// NewMembership returns an empty membership set sized to g.
func (g *Graph) NewMembership() *Membership {
	return NewMembership(g.NodeCount())
}

// IsMember reports whether id has been marked. Unknown ids are never members.
func (m *Membership) IsMember(id int) bool {
	return id >= 0 && id < len(m.in) && m.in[id]
}

// Mark adds id to the set and reports whether it was newly added.
// Unknown ids are ignored and report false.
//
// Not safe for concurrent use.
func (m *Membership) Mark(id int) bool {
	if id < 0 || id >= len(m.in) || m.in[id] {
		return false
	}
	m.in[id] = true
	m.size++

	return true
}

// Size returns the number of marked nodes.
func (m *Membership) Size() int { return m.size }

// Len returns the number of nodes the set was sized for.
func (m *Membership) Len() int { return len(m.in) }

// Complete reports whether every node is marked.
func (m *Membership) Complete() bool { return m.size == len(m.in) }

// Members returns the marked node IDs in ascending order.
//
// Complexity: O(N).
func (m *Membership) Members() []int {
	out := make([]int, 0, m.size)
	for id, in := range m.in {
		if in {
			out = append(out, id)
		}
	}

	return out
}
