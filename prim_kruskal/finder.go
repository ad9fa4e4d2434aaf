// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"context"

	"github.com/katalvlaran/parprim/core"
)

// MemberSet is the read-only view of tree membership a finder needs.
// *core.Membership implements it.
type MemberSet interface {
	IsMember(id int) bool
}

// FindCandidate scans every arc of node and returns the lightest one leading
// outside the tree.
//
// Tie-break: among equal weights the first arc in adjacency order wins, so the
// result for a node depends only on the graph and the tree, never on how
// other workers are scheduled.
// Returns NoCandidate when every neighbour is already a member.
//
// Only destination flags are read; FindCandidate never writes membership.
//
// Complexity: O(deg(node)).
func FindCandidate(g *core.Graph, tree MemberSet, node int) Candidate {
	best := NoCandidate
	for arc := range g.Neighbors(node) {
		if tree.IsMember(arc.To) {
			continue
		}
		// Strict < keeps the first of several equal-weight arcs.
		if !best.Valid() || arc.Weight < best.Weight {
			best = Candidate{Src: node, Dest: arc.To, Weight: arc.Weight}
		}
	}

	return best
}

// searchNode is the body of one finder worker: at most one Append per call.
func searchNode(ctx context.Context, g *core.Graph, tree MemberSet, node int, sink CandidateCollector) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c := FindCandidate(g, tree, node); c.Valid() {
		sink.Append(c)
	}

	return nil
}

// Reduce returns the minimum candidate under the (Weight, Src, Dest) order,
// skipping NoCandidate entries. ok is false when there is nothing to choose.
//
// Complexity: O(len(candidates)).
func Reduce(candidates []Candidate) (best Candidate, ok bool) {
	best = NoCandidate
	for _, c := range candidates {
		if !c.Valid() {
			continue
		}
		if !ok || c.less(best) {
			best, ok = c, true
		}
	}

	return best, ok
}
