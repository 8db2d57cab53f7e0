package mst_test

import (
	"fmt"

	"github.com/alinairsymova/spantree/core"
	"github.com/alinairsymova/spantree/mst"
)

// ExampleKruskal_triangle demonstrates Kruskal's algorithm on the triangle
// A—B (1), B—C (2), A—C (4). The MST is {A—B, B—C} with total cost 3.
func ExampleKruskal_triangle() {
	// 1. Build the weighted, undirected triangle.
	g, err := core.NewBuilder().
		AddEdge("A", "B", 1).
		AddEdge("B", "C", 2).
		AddEdge("A", "C", 4).
		Build()
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	// 2. Run Kruskal with the default stable sort.
	res, err := mst.NewKruskal().ComputeMST(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3. Print the total cost and the tree edges in selection order.
	fmt.Printf("Total: %g, Edges:", res.TotalCost())
	for _, e := range res.Edges() {
		fmt.Printf(" %s", e.ID())
	}
	// Output: Total: 3, Edges: A-B B-C
}

// ExamplePrim_pentagon demonstrates Prim's algorithm on a five-vertex ring
// A—B (1), B—C (2), C—D (3), D—E (5), A—E (12). Growth starts at A and never
// takes the expensive closing edge: total cost 11.
func ExamplePrim_pentagon() {
	g, err := core.NewBuilder().
		AddEdge("A", "B", 1).
		AddEdge("B", "C", 2).
		AddEdge("C", "D", 3).
		AddEdge("D", "E", 5).
		AddEdge("A", "E", 12).
		Build()
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	res, err := mst.NewPrim().ComputeMST(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %g, Edges:", res.TotalCost())
	for _, e := range res.Edges() {
		fmt.Printf(" %s", e.ID())
	}
	// Output: Total: 11, Edges: A-B B-C C-D D-E
}

// ExampleKruskal_envelope demonstrates the deterministic tie-break on a
// four-vertex "envelope": two edges share weight 4, and the canonical edge
// ID decides their order, so every sort strategy yields the same tree.
func ExampleKruskal_envelope() {
	g, err := core.NewBuilder().
		AddEdge("A", "B", 4).
		AddEdge("A", "C", 1).
		AddEdge("B", "C", 2).
		AddEdge("B", "D", 3).
		AddEdge("C", "D", 5).
		AddEdge("A", "D", 4).
		Build()
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	res, err := mst.NewKruskal(mst.WithSortStrategy(mst.SortHeap)).ComputeMST(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %g, Edges:", res.TotalCost())
	for _, e := range res.Edges() {
		fmt.Printf(" %s", e.ID())
	}
	// Output: Total: 6, Edges: A-C B-C B-D
}

// ExampleComputeBatch demonstrates concurrent batch computation over several
// graphs; results come back in input order.
func ExampleComputeBatch() {
	chains := []int{2, 3, 4} // chain lengths in vertices
	graphs := make([]*core.Graph, len(chains))
	for i, n := range chains {
		b := core.NewBuilder()
		for j := 1; j < n; j++ {
			b.AddEdge(fmt.Sprintf("V%d", j-1), fmt.Sprintf("V%d", j), float64(j))
		}
		g, err := b.Build()
		if err != nil {
			fmt.Println("build:", err)
			return
		}
		graphs[i] = g
	}

	results, err := mst.ComputeBatch(mst.NewPrim(), graphs)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, res := range results {
		fmt.Printf("%d edges, cost %g\n", res.EdgeCount(), res.TotalCost())
	}
	// Output:
	// 1 edges, cost 1
	// 2 edges, cost 3
	// 3 edges, cost 6
}
