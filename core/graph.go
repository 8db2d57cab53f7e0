// Package core: Graph construction.
//
// A Graph is assembled either from a bare edge list (vertices inferred from
// endpoints) or through a Builder that can also declare isolated vertices.
// Both paths validate input before a Graph value exists; once Build returns,
// the topology never changes.
package core

import (
	"fmt"
	"sort"
)

// Graph is an immutable undirected weighted graph.
//
// The adjacency index is symmetric: every edge appears under both endpoints'
// lists. Density, degrees, and connectivity are derived from the stored
// topology on demand; nothing is cached that could desynchronize.
type Graph struct {
	vertices  map[string]*Vertex
	edges     []*Edge          // declaration order
	edgeByID  map[string]*Edge // canonical ID -> edge
	adjacency map[string][]*Edge
}

// Builder accumulates vertices and edges for a Graph, validating each edge as
// it is added. The first error encountered is retained and returned by Build,
// so call sites can chain additions without per-call checks.
type Builder struct {
	order    []string // vertex declaration order
	seen     map[string]struct{}
	edges    []*Edge
	firstErr error
}

// NewBuilder returns an empty graph builder.
func NewBuilder() *Builder {
	return &Builder{seen: make(map[string]struct{})}
}

// AddVertex declares a vertex. Duplicates are ignored; an empty ID is
// recorded as ErrEmptyVertexID and surfaces from Build.
func (b *Builder) AddVertex(id string) *Builder {
	if id == "" {
		if b.firstErr == nil {
			b.firstErr = ErrEmptyVertexID
		}

		return b
	}
	if _, ok := b.seen[id]; !ok {
		b.seen[id] = struct{}{}
		b.order = append(b.order, id)
	}

	return b
}

// AddEdge declares an undirected edge, implicitly declaring both endpoints.
// Validation failures (self-loop, empty endpoint, negative weight) are
// recorded and surface from Build.
func (b *Builder) AddEdge(from, to string, weight float64) *Builder {
	e, err := NewEdge(from, to, weight)
	if err != nil {
		if b.firstErr == nil {
			b.firstErr = err
		}

		return b
	}
	b.AddVertex(from)
	b.AddVertex(to)
	b.edges = append(b.edges, e)

	return b
}

// Build assembles the Graph. Returns the first validation error recorded
// during AddVertex/AddEdge, or ErrDuplicateEdge if two edges share a
// canonical ID. A builder with no vertices yields a valid empty graph.
//
// Complexity: O(V + E).
func (b *Builder) Build() (*Graph, error) {
	if b.firstErr != nil {
		return nil, b.firstErr
	}

	g := &Graph{
		vertices:  make(map[string]*Vertex, len(b.order)),
		edges:     make([]*Edge, 0, len(b.edges)),
		edgeByID:  make(map[string]*Edge, len(b.edges)),
		adjacency: make(map[string][]*Edge, len(b.order)),
	}
	for _, id := range b.order {
		g.vertices[id] = &Vertex{ID: id}
	}
	for _, e := range b.edges {
		if _, dup := g.edgeByID[e.id]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEdge, e.id)
		}
		g.edges = append(g.edges, e)
		g.edgeByID[e.id] = e
		// Symmetric adjacency: the edge is indexed under both endpoints.
		g.adjacency[e.From] = append(g.adjacency[e.From], e)
		g.adjacency[e.To] = append(g.adjacency[e.To], e)
		g.vertices[e.From].degree++
		g.vertices[e.To].degree++
	}

	return g, nil
}

// NewGraphFromEdges constructs a Graph from an edge list, inferring the
// vertex set from edge endpoints. Each (from, to, weight) triple is validated
// exactly as Builder.AddEdge does.
//
// Complexity: O(V + E).
func NewGraphFromEdges(edges []*Edge) (*Graph, error) {
	b := NewBuilder()
	for _, e := range edges {
		if e == nil {
			return nil, ErrEdgeNotFound
		}
		b.AddEdge(e.From, e.To, e.Weight)
	}

	return b.Build()
}

// HasVertex reports whether id exists in the vertex set.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]

	return ok
}

// Vertex looks up a vertex by ID.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return v, nil
}

// VertexIDs returns all vertex IDs in ascending order. Sorted output keeps
// algorithm runs deterministic regardless of map iteration.
//
// Complexity: O(V log V).
func (g *Graph) VertexIDs() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns the edge list in declaration order. The slice is a fresh
// copy; the *Edge values are the graph's own (annotations are shared).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// HasEdge reports whether an edge joins from and to (in either order).
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.edgeByID[canonicalEdgeID(from, to)]

	return ok
}

// EdgeBetween returns the edge joining from and to.
func (g *Graph) EdgeBetween(from, to string) (*Edge, error) {
	e, ok := g.edgeByID[canonicalEdgeID(from, to)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEdgeNotFound, canonicalEdgeID(from, to))
	}

	return e, nil
}
