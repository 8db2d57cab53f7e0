package mst

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/alinairsymova/spantree/core"
)

// costTolerance bounds float drift when comparing summed edge weights.
const costTolerance = 1e-9

// Result is an immutable record of one MST computation: the tree edges, the
// total cost, the instrumentation snapshot, and the parameters the algorithm
// ran with. Accessors return copies, so a Result can be shared freely.
type Result struct {
	algorithm string
	graph     *core.Graph
	edges     []core.Edge
	totalCost float64
	metrics   Metrics
	params    map[string]interface{}
	created   time.Time
}

// newResult seals a finished computation into a Result. Edge values are
// copied so later mutation of the source graph's edges cannot corrupt the
// record.
func newResult(name string, g *core.Graph, edges []*core.Edge, m Metrics, params map[string]interface{}) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	copied := make([]core.Edge, len(edges))
	var cost float64
	for i, e := range edges {
		copied[i] = *e
		cost += e.Weight
	}

	p := make(map[string]interface{}, len(params))
	for k, v := range params {
		p[k] = v
	}

	return &Result{
		algorithm: name,
		graph:     g,
		edges:     copied,
		totalCost: cost,
		metrics:   m,
		params:    p,
		created:   time.Now(),
	}, nil
}

// Algorithm returns the name of the algorithm that produced this result.
func (r *Result) Algorithm() string { return r.algorithm }

// Graph returns the graph the tree was computed over.
func (r *Result) Graph() *core.Graph { return r.graph }

// Edges returns a copy of the tree edges in the order they were selected.
func (r *Result) Edges() []core.Edge {
	out := make([]core.Edge, len(r.edges))
	copy(out, r.edges)

	return out
}

// EdgeCount returns the number of tree edges.
func (r *Result) EdgeCount() int { return len(r.edges) }

// TotalCost returns the sum of the tree edge weights.
func (r *Result) TotalCost() float64 { return r.totalCost }

// Metrics returns the instrumentation snapshot of the computation.
func (r *Result) Metrics() Metrics { return r.metrics }

// Parameters returns a copy of the algorithm configuration.
func (r *Result) Parameters() map[string]interface{} {
	out := make(map[string]interface{}, len(r.params))
	for k, v := range r.params {
		out[k] = v
	}

	return out
}

// CreatedAt returns when the result was sealed.
func (r *Result) CreatedAt() time.Time { return r.created }

// IsValidMST verifies the structural MST invariants against the source
// graph:
//
//  1. Edge count equals |V|-1 (zero for the empty and single-vertex graphs).
//  2. The stored total cost matches the recomputed edge-weight sum within
//     costTolerance.
//  3. The tree edges alone reach every graph vertex (spanning, and with
//     |V|-1 edges therefore acyclic).
//
// Minimality is not re-proven here; it is the algorithm's contract.
func (r *Result) IsValidMST() bool {
	n := r.graph.VertexCount()
	want := n - 1
	if n == 0 {
		want = 0
	}
	if len(r.edges) != want {
		return false
	}

	var sum float64
	for i := range r.edges {
		sum += r.edges[i].Weight
	}
	if math.Abs(sum-r.totalCost) > costTolerance {
		return false
	}

	if n == 0 {
		return true
	}

	// Spanning check over the tree edges only.
	adj := make(map[string][]string, n)
	for i := range r.edges {
		e := &r.edges[i]
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}
	ids := r.graph.VertexIDs()
	seen := map[string]bool{ids[0]: true}
	stack := []string{ids[0]}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range adj[u] {
			if !seen[v] {
				seen[v] = true
				stack = append(stack, v)
			}
		}
	}

	return len(seen) == n
}

// EdgesSortedByWeight returns the tree edges ascending by weight, ties
// broken by canonical edge ID.
func (r *Result) EdgesSortedByWeight() []core.Edge {
	out := r.Edges()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight < out[j].Weight
		}

		return out[i].ID() < out[j].ID()
	})

	return out
}

// CostDifference returns r.TotalCost() - other.TotalCost().
func (r *Result) CostDifference(other *Result) float64 {
	return r.totalCost - other.totalCost
}

// Equivalent reports whether two results describe trees of the same size and
// cost (within costTolerance). Edge sets may differ: graphs with tied
// weights admit multiple minimum spanning trees.
func (r *Result) Equivalent(other *Result) bool {
	if other == nil {
		return false
	}

	return len(r.edges) == len(other.edges) &&
		math.Abs(r.totalCost-other.totalCost) <= costTolerance
}

// DetailedAnalysis returns a report of the result: tree shape, cost
// statistics, and the instrumentation counters.
func (r *Result) DetailedAnalysis() map[string]interface{} {
	var minW, maxW, avgW float64
	if len(r.edges) > 0 {
		minW = math.Inf(1)
		maxW = math.Inf(-1)
		for i := range r.edges {
			w := r.edges[i].Weight
			minW = math.Min(minW, w)
			maxW = math.Max(maxW, w)
		}
		avgW = r.totalCost / float64(len(r.edges))
	}

	return map[string]interface{}{
		"algorithm":           r.algorithm,
		"valid":               r.IsValidMST(),
		"vertexCount":         r.graph.VertexCount(),
		"edgeCount":           len(r.edges),
		"totalCost":           r.totalCost,
		"minEdgeWeight":       minW,
		"maxEdgeWeight":       maxW,
		"averageEdgeWeight":   avgW,
		"duration":            r.metrics.Duration.String(),
		"operations":          r.metrics.Operations,
		"comparisons":         r.metrics.Comparisons,
		"operationsPerSecond": r.metrics.OperationsPerSecond(),
		"parameters":          r.Parameters(),
	}
}

// ComparisonReport compares two results computed over the same graph,
// reporting cost agreement and the relative instrumentation counters.
func ComparisonReport(a, b *Result) map[string]interface{} {
	report := map[string]interface{}{
		"algorithms":     fmt.Sprintf("%s vs %s", a.algorithm, b.algorithm),
		"costA":          a.totalCost,
		"costB":          b.totalCost,
		"costDifference": a.CostDifference(b),
		"sameCost":       math.Abs(a.CostDifference(b)) <= costTolerance,
		"bothValid":      a.IsValidMST() && b.IsValidMST(),
		"operationsA":    a.metrics.Operations,
		"operationsB":    b.metrics.Operations,
		"durationA":      a.metrics.Duration.String(),
		"durationB":      b.metrics.Duration.String(),
	}
	if a.metrics.Duration > 0 && b.metrics.Duration > 0 {
		report["speedupBoverA"] = float64(a.metrics.Duration) / float64(b.metrics.Duration)
	}

	return report
}
