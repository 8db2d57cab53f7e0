// Package core: adjacency and degree queries.
package core

import (
	"fmt"
	"sort"
)

// AdjacentEdges returns every edge incident to id, sorted by canonical edge
// ID for deterministic iteration. Returns ErrVertexNotFound for unknown
// vertices; a known vertex with no edges yields an empty slice.
//
// Complexity: O(deg log deg).
func (g *Graph) AdjacentEdges(id string) ([]*Edge, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	adj := g.adjacency[id]
	out := make([]*Edge, len(adj))
	copy(out, adj)
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })

	return out, nil
}

// NeighborIDs returns the IDs of vertices adjacent to id, sorted ascending.
//
// Complexity: O(deg log deg).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	adj := g.adjacency[id]
	out := make([]string, 0, len(adj))
	for _, e := range adj {
		other, err := e.OtherVertex(id)
		if err != nil {
			// Adjacency invariant guarantees id is an endpoint; surface the
			// inconsistency instead of hiding it.
			return nil, err
		}
		out = append(out, other)
	}
	sort.Strings(out)

	return out, nil
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id string) (int, error) {
	v, err := g.Vertex(id)
	if err != nil {
		return 0, err
	}

	return v.degree, nil
}

// TreeEdges returns the edges currently carrying the in-MST annotation, in
// declaration order.
func (g *Graph) TreeEdges() []*Edge {
	out := make([]*Edge, 0, len(g.vertices))
	for _, e := range g.edges {
		if e.inMST {
			out = append(out, e)
		}
	}

	return out
}

// TreeCost sums the weights of edges carrying the in-MST annotation.
func (g *Graph) TreeCost() float64 {
	var total float64
	for _, e := range g.edges {
		if e.inMST {
			total += e.Weight
		}
	}

	return total
}

// ResetTreeMarks clears the in-MST and visited annotations on every edge.
// Spanning-tree algorithms call this before rewriting the annotation; two
// runs over the same Graph must not execute concurrently.
func (g *Graph) ResetTreeMarks() {
	for _, e := range g.edges {
		e.inMST = false
		e.ResetTraversal()
	}
}
