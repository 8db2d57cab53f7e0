// Package core: derived statistics and density classification.
package core

import "fmt"

// GraphStats is a read-only snapshot of derived graph statistics.
type GraphStats struct {
	VertexCount   int
	EdgeCount     int
	Density       float64
	Type          GraphType
	Connected     bool
	MinDegree     int
	MaxDegree     int
	AverageDegree float64
}

// Density returns |E| / (|V|·(|V|-1)/2), the fraction of possible undirected
// edges that exist. Graphs with at most one vertex have density 0.
func (g *Graph) Density() float64 {
	v := len(g.vertices)
	if v <= 1 {
		return 0
	}
	maxEdges := v * (v - 1) / 2

	return float64(len(g.edges)) / float64(maxEdges)
}

// Type classifies the graph by density: Sparse below 0.3, Dense above 0.7,
// Unclassified otherwise.
func (g *Graph) Type() GraphType {
	d := g.Density()
	switch {
	case d < sparseBelow:
		return Sparse
	case d > denseAbove:
		return Dense
	default:
		return Unclassified
	}
}

// Stats computes a full statistics snapshot in one pass over the vertices
// plus a connectivity traversal.
//
// Complexity: O(V + E).
func (g *Graph) Stats() *GraphStats {
	s := &GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
		Density:     g.Density(),
		Type:        g.Type(),
		Connected:   g.IsConnected(),
	}
	if s.VertexCount == 0 {
		return s
	}

	first := true
	var sum int
	for _, v := range g.vertices {
		d := v.degree
		sum += d
		if first {
			s.MinDegree, s.MaxDegree = d, d
			first = false
			continue
		}
		if d < s.MinDegree {
			s.MinDegree = d
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}
	s.AverageDegree = float64(sum) / float64(s.VertexCount)

	return s
}

// String renders the graph summary for diagnostics.
func (g *Graph) String() string {
	return fmt.Sprintf("Graph{vertices=%d, edges=%d, type=%s, density=%.3f}",
		len(g.vertices), len(g.edges), g.Type(), g.Density())
}
