// Kruskal's algorithm: sort all edges once, then merge components through a
// disjoint-set structure, keeping every edge that joins two components.
package mst

import (
	"math"
	"time"

	"github.com/alinairsymova/spantree/core"
)

// Kruskal computes minimum spanning trees by global edge sorting plus
// union-find. Sorting strategy and union-find optimizations are fixed at
// construction. Zero value is not usable — construct via NewKruskal.
//
// A Kruskal instance is not safe for concurrent ComputeMST calls; use Clone
// for parallel work.
type Kruskal struct {
	sorting          SortStrategy
	pathCompression  bool
	unionByRank      bool
	earlyTermination bool
	last             Metrics
}

// KruskalOption configures a Kruskal instance at construction time.
type KruskalOption func(*Kruskal)

// WithSortStrategy selects the edge sorting strategy.
func WithSortStrategy(s SortStrategy) KruskalOption {
	return func(k *Kruskal) { k.sorting = s }
}

// WithPathCompression toggles path compression in the union-find.
func WithPathCompression(enabled bool) KruskalOption {
	return func(k *Kruskal) { k.pathCompression = enabled }
}

// WithUnionByRank toggles union by rank in the union-find.
func WithUnionByRank(enabled bool) KruskalOption {
	return func(k *Kruskal) { k.unionByRank = enabled }
}

// WithEarlyTermination toggles stopping the edge scan once |V|-1 edges have
// been collected.
func WithEarlyTermination(enabled bool) KruskalOption {
	return func(k *Kruskal) { k.earlyTermination = enabled }
}

// NewKruskal constructs a Kruskal instance. Defaults: stable sort, path
// compression, union by rank, and early termination all enabled.
func NewKruskal(opts ...KruskalOption) *Kruskal {
	k := &Kruskal{
		sorting:          SortStable,
		pathCompression:  true,
		unionByRank:      true,
		earlyTermination: true,
	}
	for _, opt := range opts {
		opt(k)
	}

	return k
}

// ComputeMST computes the MST of g.
//
// Steps:
//  1. Reject nil graph (ErrNilGraph) and zero-vertex graph (ErrEmptyGraph).
//  2. Reset g's in-MST marks and sort the edge list ascending by weight with
//     the configured strategy (ties broken by canonical edge ID, so every
//     strategy yields the same tree).
//  3. Initialize union-find over all vertices with the configured toggles.
//  4. Scan sorted edges; each edge whose endpoints are in different
//     components is unioned, marked in-MST, and collected. With early
//     termination the scan stops at |V|-1 edges.
//  5. If the collected count differs from |V|-1, the graph was disconnected:
//     fail with a wrapped ErrDisconnected naming expected vs. actual counts.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V); memory O(V + E).
func (k *Kruskal) ComputeMST(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	t := &tally{}
	start := time.Now()

	g.ResetTreeMarks()
	edges := g.Edges()
	sortEdges(edges, k.sorting, t)

	var ufOpts []UnionFindOption
	if !k.pathCompression {
		ufOpts = append(ufOpts, WithoutPathCompression())
	}
	if !k.unionByRank {
		ufOpts = append(ufOpts, WithoutUnionByRank())
	}
	uf := NewUnionFind(g.VertexIDs(), ufOpts...)
	uf.t = t

	tree := make([]*core.Edge, 0, n-1)
	for _, e := range edges {
		if k.earlyTermination && len(tree) == n-1 {
			break
		}
		t.ops++
		if uf.Union(e.From, e.To) {
			e.SetInMST(true)
			tree = append(tree, e)
		}
	}

	if len(tree) != n-1 {
		return nil, disconnectedError(n-1, len(tree))
	}

	k.last = t.snapshot(time.Since(start))

	return newResult(k.Name(), g, tree, k.last, k.Parameters())
}

// Name returns "Kruskal".
func (k *Kruskal) Name() string { return "Kruskal" }

// TimeComplexity describes the dominant sorting bound.
func (k *Kruskal) TimeComplexity() string { return "O(E log E)" }

// SpaceComplexity describes the memory bound.
func (k *Kruskal) SpaceComplexity() string { return "O(V + E)" }

// AnalyzeSuitability reports how well Kruskal fits g. Kruskal favors sparse
// graphs, where one global sort beats repeated queue maintenance.
func (k *Kruskal) AnalyzeSuitability(g *core.Graph) map[string]interface{} {
	if g == nil {
		return map[string]interface{}{"suitable": false}
	}
	v := g.VertexCount()
	e := g.EdgeCount()
	density := g.Density()

	return map[string]interface{}{
		"vertexCount":             v,
		"edgeCount":               e,
		"density":                 density,
		"suitable":                density < kruskalSuitabilityCut,
		"expectedOperations":      estimateKruskalOperations(v, e),
		"recommendedSortStrategy": recommendSortStrategy(e).String(),
	}
}

// kruskalSuitabilityCut marks the density above which the global edge sort
// starts losing to Prim's expansion.
const kruskalSuitabilityCut = 0.5

// Edge-count thresholds for sort-strategy recommendations.
const (
	stableSortEdgeLimit = 1000
	heapSortEdgeLimit   = 10000
)

func estimateKruskalOperations(v, e int) int64 {
	sorting := int64(float64(e) * math.Log2(float64(e)+1))
	unionFind := int64(float64(e) * math.Log2(float64(v)+1))

	return sorting + unionFind
}

func recommendSortStrategy(edgeCount int) SortStrategy {
	switch {
	case edgeCount < stableSortEdgeLimit:
		return SortStable
	case edgeCount < heapSortEdgeLimit:
		return SortHeap
	default:
		return SortBucket
	}
}

// Metrics returns the snapshot of the last completed run.
func (k *Kruskal) Metrics() Metrics { return k.last }

// Parameters returns the construction-time configuration.
func (k *Kruskal) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"sortStrategy":     k.sorting.String(),
		"pathCompression":  k.pathCompression,
		"unionByRank":      k.unionByRank,
		"earlyTermination": k.earlyTermination,
	}
}

// Reset zeroes the stored instrumentation snapshot. The configured
// strategies are untouched.
func (k *Kruskal) Reset() { k.last = Metrics{} }

// Clone returns an independent instance with the same configuration.
func (k *Kruskal) Clone() Algorithm {
	return &Kruskal{
		sorting:          k.sorting,
		pathCompression:  k.pathCompression,
		unionByRank:      k.unionByRank,
		earlyTermination: k.earlyTermination,
	}
}
