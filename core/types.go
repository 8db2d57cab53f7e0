// Package core defines the central Graph, Vertex, and Edge types for
// undirected weighted graphs, together with fallible builders and
// deterministic read-only queries.
//
// A Graph is built once (via Builder or NewGraphFromEdges) and is immutable
// afterwards, with one documented exception: the per-edge in-MST and visited
// annotations, which spanning-tree algorithms reset and rewrite between runs.
//
// This file declares Vertex, Edge, GraphType, the sentinel errors, and the
// Edge constructor.
//
// Errors:
//
//	ErrEmptyVertexID   - an endpoint or vertex ID is the empty string.
//	ErrSelfLoop        - edge endpoints are equal.
//	ErrNegativeWeight  - edge weight is negative.
//	ErrVertexNotFound  - requested vertex does not exist in the graph.
//	ErrEdgeNotFound    - requested edge does not exist in the graph.
//	ErrDuplicateEdge   - two edges share the same canonical ID.
//	ErrVertexNotOnEdge - OtherVertex was given a vertex not on the edge.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates an empty vertex identifier.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("core: self-loops are not allowed")

	// ErrNegativeWeight indicates an edge with a negative weight.
	ErrNegativeWeight = errors.New("core: edge weight must be non-negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateEdge indicates two edges with the same canonical ID.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrVertexNotOnEdge indicates a vertex that is not an endpoint of the edge.
	ErrVertexNotOnEdge = errors.New("core: vertex does not belong to edge")
)

// GraphType is a coarse density classification of a graph.
type GraphType int

const (
	// Unclassified covers densities in [0.3, 0.7].
	Unclassified GraphType = iota

	// Sparse marks graphs with density below 0.3.
	Sparse

	// Dense marks graphs with density above 0.7.
	Dense
)

// Density thresholds for GraphType classification.
const (
	sparseBelow = 0.3
	denseAbove  = 0.7
)

// String returns the canonical name of the graph type.
func (t GraphType) String() string {
	switch t {
	case Sparse:
		return "SPARSE"
	case Dense:
		return "DENSE"
	default:
		return "UNCLASSIFIED"
	}
}

// Vertex represents a node in the graph.
//
// ID uniquely identifies the Vertex within its Graph. Degree is derived at
// construction time from the edge list; a Vertex has no lifecycle of its own
// outside the owning Graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// degree counts incident edges; fixed once the Graph is built.
	degree int
}

// Degree returns the number of edges incident to the vertex.
func (v *Vertex) Degree() int { return v.degree }

// String renders the vertex for diagnostics.
func (v *Vertex) String() string {
	return fmt.Sprintf("Vertex{id=%q, degree=%d}", v.ID, v.degree)
}

// Edge represents an undirected connection between two distinct vertices.
//
// From, To and Weight are immutable after construction. The canonical ID is
// order-independent (min(from,to)-max(from,to)) and is used for duplicate
// detection. The in-MST and visited annotations are the only mutable state;
// they are owned by whichever algorithm ran last and are overwritten by the
// next run (see Graph.ResetTreeMarks).
type Edge struct {
	// From is one endpoint's vertex ID.
	From string

	// To is the other endpoint's vertex ID.
	To string

	// Weight is the non-negative cost of the edge.
	Weight float64

	id             string
	inMST          bool
	visited        bool
	traversalCount int
}

// NewEdge validates and constructs an undirected edge.
//
// Rejections (before any Edge value exists):
//   - ErrEmptyVertexID if either endpoint is "".
//   - ErrSelfLoop if from == to.
//   - ErrNegativeWeight if weight < 0.
//
// Complexity: O(len(from)+len(to)) for the canonical ID.
func NewEdge(from, to string, weight float64) (*Edge, error) {
	if from == "" || to == "" {
		return nil, ErrEmptyVertexID
	}
	if from == to {
		return nil, fmt.Errorf("%w: %q", ErrSelfLoop, from)
	}
	if weight < 0 {
		return nil, fmt.Errorf("%w: %g", ErrNegativeWeight, weight)
	}

	return &Edge{
		From:   from,
		To:     to,
		Weight: weight,
		id:     canonicalEdgeID(from, to),
	}, nil
}

// canonicalEdgeID builds the order-independent identifier for an edge.
func canonicalEdgeID(from, to string) string {
	if from < to {
		return from + "-" + to
	}

	return to + "-" + from
}

// ID returns the canonical, declaration-order-independent edge identifier.
func (e *Edge) ID() string { return e.id }

// OtherVertex returns the endpoint opposite to v.
// Returns ErrVertexNotOnEdge naming the offending vertex when v is neither
// endpoint.
func (e *Edge) OtherVertex(v string) (string, error) {
	switch v {
	case e.From:
		return e.To, nil
	case e.To:
		return e.From, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrVertexNotOnEdge, v)
	}
}

// Contains reports whether v is an endpoint of the edge.
func (e *Edge) Contains(v string) bool { return v == e.From || v == e.To }

// Connects reports whether the edge joins a and b in either order.
func (e *Edge) Connects(a, b string) bool {
	return (e.From == a && e.To == b) || (e.From == b && e.To == a)
}

// InMST reports whether the edge belongs to the most recently computed
// spanning tree.
func (e *Edge) InMST() bool { return e.inMST }

// SetInMST writes the in-MST annotation. Intended for spanning-tree
// algorithm implementations; callers reading results should prefer
// Graph.TreeEdges.
func (e *Edge) SetInMST(in bool) { e.inMST = in }

// Visited reports the transient traversal mark.
func (e *Edge) Visited() bool { return e.visited }

// TraversalCount returns how many times MarkTraversed has been called since
// the last reset.
func (e *Edge) TraversalCount() int { return e.traversalCount }

// MarkTraversed sets the visited mark and increments the traversal counter.
func (e *Edge) MarkTraversed() {
	e.visited = true
	e.traversalCount++
}

// ResetTraversal clears the visited mark and the traversal counter.
func (e *Edge) ResetTraversal() {
	e.visited = false
	e.traversalCount = 0
}

// NormalizedWeight scales the weight into [0,1] relative to max.
// Returns 0 when max is not positive.
func (e *Edge) NormalizedWeight(max float64) float64 {
	if max <= 0 {
		return 0
	}
	if e.Weight >= max {
		return 1
	}

	return e.Weight / max
}

// String renders the edge for diagnostics.
func (e *Edge) String() string {
	return fmt.Sprintf("Edge{%s, weight=%.2f, inMST=%t}", e.id, e.Weight, e.inMST)
}
