package core_test

import (
	"fmt"

	"github.com/katalvlaran/parprim/core"
)

// ExampleNewGraph builds a triangle and walks one node's adjacency.
func ExampleNewGraph() {
	g, err := core.NewGraph(3, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
		{From: 0, To: 2, Weight: 4},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("nodes=%d edges=%d\n", g.NodeCount(), g.EdgeCount())
	for a := range g.Neighbors(0) {
		fmt.Printf("0 -> %d(w=%d)\n", a.To, a.Weight)
	}
	// Output:
	// nodes=3 edges=3
	// 0 -> 1(w=1)
	// 0 -> 2(w=4)
}

// ExampleMembership shows per-run membership tracking.
func ExampleMembership() {
	g, _ := core.NewGraph(3, []core.Edge{{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 1}})

	tree := g.NewMembership()
	tree.Mark(0)
	tree.Mark(1)
	fmt.Println(tree.Members(), tree.Size(), tree.Complete())
	// Output: [0 1] 2 false
}
