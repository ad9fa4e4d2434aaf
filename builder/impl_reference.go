// SPDX-License-Identifier: MIT
// Package: parprim/builder
//
// impl_reference.go - the fixed 5-node demonstration graph.
//
//	0-1 w=5   0-2 w=9   1-2 w=10   1-3 w=4
//	2-3 w=7   2-4 w=8   3-4 w=9
//
// Its MST from node 0 is (0,1,5) (1,3,4) (3,2,7) (2,4,8), total weight 24.

package builder

// ReferenceNodes is the node count of Reference.
const ReferenceNodes = 5

// ReferenceMSTWeight is the MST weight of Reference.
const ReferenceMSTWeight int64 = 24

// referenceEdges are emitted in this order; adjacency order (and therefore
// tie-breaking) follows it.
var referenceEdges = [...][3]int64{
	{0, 1, 5},
	{0, 2, 9},
	{1, 2, 10},
	{1, 3, 4},
	{2, 3, 7},
	{2, 4, 8},
	{3, 4, 9},
}

// Reference returns a Constructor that emits the demonstration graph with
// its fixed weights; the configured WeightFn is ignored.
func Reference() Constructor {
	return func(el *edgeList, _ builderConfig) error {
		el.grow(ReferenceNodes)
		for _, e := range referenceEdges {
			el.add(int(e[0]), int(e[1]), e[2])
		}

		return nil
	}
}
