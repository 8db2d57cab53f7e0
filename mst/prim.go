// Prim's algorithm: grow a single tree from a start vertex, always attaching
// the cheapest edge that reaches a vertex still outside the tree.
package mst

import (
	"fmt"
	"math"
	"time"

	"github.com/alinairsymova/spantree/core"
)

// defaultHeapArity is the branching factor used by QueueDaryHeap unless
// overridden with WithHeapArity.
const defaultHeapArity = 4

// Prim computes minimum spanning trees by tree expansion. The priority-queue
// strategy is fixed at construction; see QueueStrategy. Zero value is not
// usable — construct via NewPrim.
//
// A Prim instance is not safe for concurrent ComputeMST calls; use Clone for
// parallel work.
type Prim struct {
	strategy QueueStrategy
	arity    int
	last     Metrics
}

// PrimOption configures a Prim instance at construction time.
type PrimOption func(*Prim)

// WithQueueStrategy selects the priority-queue strategy.
func WithQueueStrategy(s QueueStrategy) PrimOption {
	return func(p *Prim) { p.strategy = s }
}

// WithHeapArity sets the branching factor for QueueDaryHeap.
// Panics for arity < 2: that is a programming error, not a data error.
func WithHeapArity(arity int) PrimOption {
	return func(p *Prim) {
		if arity < 2 {
			panic("mst: heap arity must be at least 2")
		}
		p.arity = arity
	}
}

// NewPrim constructs a Prim instance. Defaults: indexed binary heap.
func NewPrim(opts ...PrimOption) *Prim {
	p := &Prim{strategy: QueueBinaryHeap, arity: defaultHeapArity}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// ComputeMST computes the MST of g.
//
// Steps:
//  1. Reject nil graph (ErrNilGraph) and zero-vertex graph (ErrEmptyGraph).
//  2. Reset g's in-MST marks; pick the first vertex in sorted order as the
//     deterministic "arbitrary" start and set its key to 0.
//  3. Seed the configured queue strategy with every vertex.
//  4. Extract the minimum-key vertex; if it carries a recorded best edge
//     (every vertex except the start), mark that edge in-MST and collect it.
//     For each neighbor still queued, a strictly lighter connecting edge
//     updates its key/best edge via decrease-key.
//  5. Stop when the queue empties or |V|-1 edges are collected.
//  6. If the collected count differs from |V|-1, the graph was disconnected:
//     fail with a wrapped ErrDisconnected naming expected vs. actual counts.
//
// Complexity: O(E log V) for heap strategies, O(V²) for linear scan.
func (p *Prim) ComputeMST(g *core.Graph) (*Result, error) {
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
	vertices := g.VertexIDs()

	// Per-vertex state: best known connecting weight, the edge achieving it,
	// and queue membership.
	key := make(map[string]float64, n)
	minEdge := make(map[string]*core.Edge, n)
	for _, id := range vertices {
		key[id] = math.Inf(1)
		t.ops++
	}
	key[vertices[0]] = 0

	q := newVertexQueue(p.strategy, p.arity, n, t)
	for _, id := range vertices {
		q.Insert(id, key[id])
	}

	tree := make([]*core.Edge, 0, n-1)
	for q.Len() > 0 && len(tree) < n-1 {
		u, ok := q.ExtractMin()
		if !ok {
			break
		}
		t.ops++

		if e := minEdge[u]; e != nil {
			e.SetInMST(true)
			tree = append(tree, e)
			t.ops++
		}

		adjacent, err := g.AdjacentEdges(u)
		if err != nil {
			return nil, fmt.Errorf("mst: adjacency of %q: %w", u, err)
		}
		for _, e := range adjacent {
			v, err := e.OtherVertex(u)
			if err != nil {
				return nil, err
			}
			t.comparisons++
			if q.Contains(v) && e.Weight < key[v] {
				key[v] = e.Weight
				minEdge[v] = e
				q.DecreaseKey(v, e.Weight)
				t.ops++
			}
		}
	}

	if len(tree) != n-1 {
		return nil, disconnectedError(n-1, len(tree))
	}

	p.last = t.snapshot(time.Since(start))

	return newResult(p.Name(), g, tree, p.last, p.Parameters())
}

// Name returns "Prim".
func (p *Prim) Name() string { return "Prim" }

// TimeComplexity describes the bound for the configured strategy.
func (p *Prim) TimeComplexity() string {
	if p.strategy == QueueLinearScan {
		return "O(V^2)"
	}

	return "O(E log V)"
}

// SpaceComplexity describes the memory bound.
func (p *Prim) SpaceComplexity() string { return "O(V + E)" }

// AnalyzeSuitability reports how well Prim fits g. Prim favors dense graphs
// and small vertex counts, where tree expansion beats a global edge sort.
func (p *Prim) AnalyzeSuitability(g *core.Graph) map[string]interface{} {
	if g == nil {
		return map[string]interface{}{"suitable": false}
	}
	v := g.VertexCount()
	e := g.EdgeCount()
	density := g.Density()

	return map[string]interface{}{
		"vertexCount":              v,
		"edgeCount":                e,
		"density":                  density,
		"suitable":                 density > sparseSuitabilityCut || v < smallGraphVertices,
		"expectedOperations":       estimatePrimOperations(p.strategy, v, e),
		"recommendedQueueStrategy": recommendQueueStrategy(v, density).String(),
	}
}

// Suitability thresholds, carried over from the behavior this package
// instruments: linear scan wins on small or very dense graphs, d-ary heaps
// on very large ones.
const (
	sparseSuitabilityCut = 0.3
	denseRecommendCut    = 0.7
	smallGraphVertices   = 1000
	tinyGraphVertices    = 500
	largeGraphVertices   = 5000
)

func estimatePrimOperations(s QueueStrategy, v, e int) int64 {
	if s == QueueLinearScan {
		return int64(v) * int64(v)
	}

	return int64(float64(e) * math.Log2(float64(v)+1))
}

func recommendQueueStrategy(v int, density float64) QueueStrategy {
	switch {
	case v < tinyGraphVertices || density > denseRecommendCut:
		return QueueLinearScan
	case v < largeGraphVertices:
		return QueueBinaryHeap
	default:
		return QueueDaryHeap
	}
}

// Metrics returns the snapshot of the last completed run.
func (p *Prim) Metrics() Metrics { return p.last }

// Parameters returns the construction-time configuration.
func (p *Prim) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"queueStrategy": p.strategy.String(),
		"heapArity":     p.arity,
	}
}

// Reset zeroes the stored instrumentation snapshot. The configured strategy
// is untouched.
func (p *Prim) Reset() { p.last = Metrics{} }

// Clone returns an independent instance with the same configuration.
func (p *Prim) Clone() Algorithm {
	return &Prim{strategy: p.strategy, arity: p.arity}
}
