package core_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alinairsymova/spantree/core"
)

// buildTriangle constructs the undirected weighted triangle
//
//	A—B (weight 1), B—C (weight 2), A—C (weight 3).
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewBuilder().
		AddEdge("A", "B", 1).
		AddEdge("B", "C", 2).
		AddEdge("A", "C", 3).
		Build()
	require.NoError(t, err)

	return g
}

// TestBuilder_Basics verifies vertex/edge accounting and the adjacency
// symmetry of a freshly built graph.
func TestBuilder_Basics(t *testing.T) {
	g := buildTriangle(t)

	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []string{"A", "B", "C"}, g.VertexIDs()) // sorted

	// Every vertex of the triangle has degree 2.
	for _, id := range g.VertexIDs() {
		d, err := g.Degree(id)
		assert.NoError(t, err)
		assert.Equal(t, 2, d)
	}

	// Edge lookup works in either endpoint order.
	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))
	assert.False(t, g.HasEdge("A", "D"))

	e, err := g.EdgeBetween("C", "B")
	assert.NoError(t, err)
	assert.Equal(t, 2.0, e.Weight)

	_, err = g.EdgeBetween("A", "D")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

// TestBuilder_FirstErrorWins verifies that a chained builder surfaces the
// first validation failure from Build, not the last.
func TestBuilder_FirstErrorWins(t *testing.T) {
	_, err := core.NewBuilder().
		AddEdge("A", "A", 1).  // self-loop: first error
		AddEdge("B", "C", -1). // negative weight: recorded after, ignored
		Build()
	assert.ErrorIs(t, err, core.ErrSelfLoop)

	_, err = core.NewBuilder().AddVertex("").Build()
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

// TestBuilder_DuplicateEdge verifies that two edges sharing a canonical ID
// are rejected regardless of endpoint order.
func TestBuilder_DuplicateEdge(t *testing.T) {
	_, err := core.NewBuilder().
		AddEdge("A", "B", 1).
		AddEdge("B", "A", 7). // same canonical ID A-B
		Build()
	assert.ErrorIs(t, err, core.ErrDuplicateEdge)
}

// TestBuilder_EmptyGraph verifies that a builder with no additions yields a
// valid empty graph.
func TestBuilder_EmptyGraph(t *testing.T) {
	g, err := core.NewBuilder().Build()
	require.NoError(t, err)

	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	assert.True(t, g.IsConnected()) // vacuously
	assert.True(t, g.IsValid())
	assert.Zero(t, g.Density())
}

// TestNewGraphFromEdges verifies vertex inference from an edge list.
func TestNewGraphFromEdges(t *testing.T) {
	ab, _ := core.NewEdge("A", "B", 1)
	bc, _ := core.NewEdge("B", "C", 2)

	g, err := core.NewGraphFromEdges([]*core.Edge{ab, bc})
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())

	_, err = core.NewGraphFromEdges([]*core.Edge{ab, nil})
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

// TestGraph_Adjacency verifies sorted adjacency queries and the unknown
// vertex failure.
func TestGraph_Adjacency(t *testing.T) {
	g := buildTriangle(t)

	edges, err := g.AdjacentEdges("A")
	assert.NoError(t, err)
	assert.Len(t, edges, 2)
	// Sorted by canonical ID: A-B before A-C.
	assert.Equal(t, "A-B", edges[0].ID())
	assert.Equal(t, "A-C", edges[1].ID())

	neighbors, err := g.NeighborIDs("B")
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, neighbors)

	_, err = g.AdjacentEdges("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborIDs("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestGraph_DensityAndType walks the classification thresholds: below 0.3 is
// SPARSE, above 0.7 is DENSE, the band between is UNCLASSIFIED.
func TestGraph_DensityAndType(t *testing.T) {
	// Triangle: 3 edges of 3 possible → density 1.0 → DENSE.
	dense := buildTriangle(t)
	assert.Equal(t, 1.0, dense.Density())
	assert.Equal(t, core.Dense, dense.Type())

	// Path on 5 vertices: 4 edges of 10 possible → density 0.4 → UNCLASSIFIED.
	path, err := core.NewBuilder().
		AddEdge("A", "B", 1).
		AddEdge("B", "C", 1).
		AddEdge("C", "D", 1).
		AddEdge("D", "E", 1).
		Build()
	require.NoError(t, err)
	assert.InDelta(t, 0.4, path.Density(), 1e-12)
	assert.Equal(t, core.Unclassified, path.Type())

	// Star on 8 vertices: 7 edges of 28 possible → density 0.25 → SPARSE.
	b := core.NewBuilder()
	for i := 1; i < 8; i++ {
		b.AddEdge("HUB", fmt.Sprintf("V%d", i), float64(i))
	}
	star, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, core.Sparse, star.Type())

	// A single vertex has density 0 by definition.
	single, err := core.NewBuilder().AddVertex("X").Build()
	require.NoError(t, err)
	assert.Zero(t, single.Density())
}

// TestGraph_Connectivity covers connected, disconnected, and isolated-vertex
// topologies.
func TestGraph_Connectivity(t *testing.T) {
	assert.True(t, buildTriangle(t).IsConnected())

	// Two disjoint segments: A—B and C—D.
	split, err := core.NewBuilder().
		AddEdge("A", "B", 1).
		AddEdge("C", "D", 1).
		Build()
	require.NoError(t, err)
	assert.False(t, split.IsConnected())

	// An isolated vertex also breaks connectivity.
	island, err := core.NewBuilder().
		AddEdge("A", "B", 1).
		AddVertex("C").
		Build()
	require.NoError(t, err)
	assert.False(t, island.IsConnected())
}

// TestGraph_ConnectedComponents verifies component extraction order and
// content.
func TestGraph_ConnectedComponents(t *testing.T) {
	g, err := core.NewBuilder().
		AddEdge("C", "D", 1). // second component by smallest ID
		AddEdge("A", "B", 1). // first component
		AddVertex("E").       // isolated third component
		Build()
	require.NoError(t, err)

	comps := g.ConnectedComponents()
	require.Len(t, comps, 3)
	// Ordered by smallest member ID: {A,B}, {C,D}, {E}.
	assert.Equal(t, []string{"A", "B"}, comps[0].VertexIDs())
	assert.Equal(t, []string{"C", "D"}, comps[1].VertexIDs())
	assert.Equal(t, []string{"E"}, comps[2].VertexIDs())
	assert.Equal(t, 1, comps[0].EdgeCount())
	assert.Zero(t, comps[2].EdgeCount())

	// A connected graph is its own single component.
	tri := buildTriangle(t)
	assert.Len(t, tri.ConnectedComponents(), 1)
}

// TestGraph_Subgraph verifies induced subgraph extraction, including edges
// dropped for missing endpoints and kept isolated vertices.
func TestGraph_Subgraph(t *testing.T) {
	g := buildTriangle(t)

	sub := g.Subgraph(map[string]bool{"A": true, "B": true})
	assert.Equal(t, []string{"A", "B"}, sub.VertexIDs())
	assert.Equal(t, 1, sub.EdgeCount()) // only A-B survives
	assert.True(t, sub.HasEdge("A", "B"))

	// Keeping non-adjacent vertices yields isolated vertices, no edges.
	iso := g.Subgraph(map[string]bool{"A": true})
	assert.Equal(t, 1, iso.VertexCount())
	assert.Zero(t, iso.EdgeCount())

	// Unknown IDs in the keep set are ignored; the receiver is untouched.
	same := g.Subgraph(map[string]bool{"A": true, "B": true, "C": true, "Z": true})
	assert.Equal(t, 3, same.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
}

// TestGraph_TreeMarks exercises the in-MST annotation surface: TreeEdges,
// TreeCost, and ResetTreeMarks.
func TestGraph_TreeMarks(t *testing.T) {
	g := buildTriangle(t)
	assert.Empty(t, g.TreeEdges())
	assert.Zero(t, g.TreeCost())

	ab, err := g.EdgeBetween("A", "B")
	require.NoError(t, err)
	bc, err := g.EdgeBetween("B", "C")
	require.NoError(t, err)
	ab.SetInMST(true)
	bc.SetInMST(true)

	assert.Len(t, g.TreeEdges(), 2)
	assert.Equal(t, 3.0, g.TreeCost()) // 1 + 2

	g.ResetTreeMarks()
	assert.Empty(t, g.TreeEdges())
	assert.Zero(t, g.TreeCost())
}

// TestGraph_Stats verifies the one-pass statistics snapshot.
func TestGraph_Stats(t *testing.T) {
	g, err := core.NewBuilder().
		AddEdge("HUB", "A", 1).
		AddEdge("HUB", "B", 2).
		AddEdge("HUB", "C", 3).
		Build()
	require.NoError(t, err)

	s := g.Stats()
	assert.Equal(t, 4, s.VertexCount)
	assert.Equal(t, 3, s.EdgeCount)
	assert.True(t, s.Connected)
	assert.Equal(t, 1, s.MinDegree) // the leaves
	assert.Equal(t, 3, s.MaxDegree) // the hub
	assert.InDelta(t, 1.5, s.AverageDegree, 1e-12)
	assert.InDelta(t, 0.5, s.Density, 1e-12) // 3 of 6 possible edges
	assert.Equal(t, core.Unclassified, s.Type)

	empty, err := core.NewBuilder().Build()
	require.NoError(t, err)
	es := empty.Stats()
	assert.Zero(t, es.VertexCount)
	assert.Zero(t, es.MaxDegree)
	assert.True(t, es.Connected)
}

// TestGraph_IsValid verifies the structural invariant check on a built graph.
func TestGraph_IsValid(t *testing.T) {
	assert.True(t, buildTriangle(t).IsValid())
}
