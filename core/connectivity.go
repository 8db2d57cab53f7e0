// Package core: connectivity, component extraction, subgraphs, validity.
package core

import "sort"

// IsConnected reports whether every vertex is reachable from an arbitrary
// start vertex by an undirected depth-first traversal. The empty graph is
// vacuously connected.
//
// Complexity: O(V + E).
func (g *Graph) IsConnected() bool {
	if len(g.vertices) == 0 {
		return true
	}
	var start string
	for id := range g.vertices {
		start = id
		break
	}

	return len(g.reach(start, nil)) == len(g.vertices)
}

// ConnectedComponents partitions the graph into its connected components and
// returns each as an induced subgraph. Components are ordered by their
// smallest vertex ID so the result is deterministic.
//
// Complexity: O(V log V + E).
func (g *Graph) ConnectedComponents() []*Graph {
	visited := make(map[string]bool, len(g.vertices))
	var components []*Graph
	for _, id := range g.VertexIDs() {
		if visited[id] {
			continue
		}
		member := g.reach(id, visited)
		components = append(components, g.Subgraph(member))
	}

	return components
}

// Subgraph returns the subgraph induced by the vertex subset keep: every
// vertex v with keep[v] == true that exists in g, and every edge whose
// endpoints are both kept. Isolated kept vertices are retained. The receiver
// is not mutated.
//
// Complexity: O(V + E).
func (g *Graph) Subgraph(keep map[string]bool) *Graph {
	b := NewBuilder()
	// Declare kept vertices in sorted order so the subgraph is deterministic.
	ids := make([]string, 0, len(keep))
	for id, ok := range keep {
		if ok && g.HasVertex(id) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	for _, id := range ids {
		b.AddVertex(id)
	}
	for _, e := range g.edges {
		if keep[e.From] && keep[e.To] {
			b.AddEdge(e.From, e.To, e.Weight)
		}
	}
	// Input edges already passed validation once; Build cannot fail here.
	sub, _ := b.Build()

	return sub
}

// IsValid checks the structural invariants: no duplicate canonical edge IDs
// and every edge endpoint present in the vertex set. A freshly built Graph
// always satisfies both; the check exists for corrupted or hand-assembled
// states.
func (g *Graph) IsValid() bool {
	seen := make(map[string]struct{}, len(g.edges))
	for _, e := range g.edges {
		if _, dup := seen[e.id]; dup {
			return false
		}
		seen[e.id] = struct{}{}
		if !g.HasVertex(e.From) || !g.HasVertex(e.To) {
			return false
		}
	}

	return true
}

// reach runs an iterative depth-first traversal from start and returns the
// set of reached vertices. When shared is non-nil, it is used as the visited
// set so successive calls skip already-covered vertices.
func (g *Graph) reach(start string, shared map[string]bool) map[string]bool {
	visited := shared
	if visited == nil {
		visited = make(map[string]bool, len(g.vertices))
	}
	member := make(map[string]bool)

	stack := []string{start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[v] {
			continue
		}
		visited[v] = true
		member[v] = true
		for _, e := range g.adjacency[v] {
			next := e.To
			if next == v {
				next = e.From
			}
			if !visited[next] {
				stack = append(stack, next)
			}
		}
	}

	return member
}
