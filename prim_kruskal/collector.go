// SPDX-License-Identifier: MIT

package prim_kruskal

import "sync"

// CandidateCollector is the shared sink finder workers report into.
//
// Reset and Snapshot are only called by the orchestrator while no workers are
// active; Append is called concurrently by workers and must not lose or tear
// entries.
type CandidateCollector interface {
	Reset()
	Append(c Candidate)
	Snapshot() []Candidate
	Len() int
}

// Collector is a mutex-guarded CandidateCollector. The zero value is ready to use.
type Collector struct {
	mu    sync.Mutex
	items []Candidate
}

// NewCollector returns a Collector pre-sized for capacity candidates per round
// (one per tree node is the most a round can produce).
func NewCollector(capacity int) *Collector {
	if capacity < 0 {
		capacity = 0
	}
	return &Collector{items: make([]Candidate, 0, capacity)}
}

// Reset drops the previous round's candidates, keeping the backing storage.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.items = c.items[:0]
	c.mu.Unlock()
}

// Append records one candidate.
func (c *Collector) Append(cand Candidate) {
	c.mu.Lock()
	c.items = append(c.items, cand)
	c.mu.Unlock()
}

// Snapshot returns a copy of the candidates appended since the last Reset,
// in arrival order.
func (c *Collector) Snapshot() []Candidate {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Candidate, len(c.items))
	copy(out, c.items)

	return out
}

// Len returns the number of candidates appended since the last Reset.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}
