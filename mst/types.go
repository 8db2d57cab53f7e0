// Sentinel errors, the Algorithm capability, and per-run instrumentation.
package mst

import (
	"errors"
	"fmt"
	"time"

	"github.com/alinairsymova/spantree/core"
)

// Sentinel errors returned by the MST algorithms.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to ComputeMST.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrEmptyGraph indicates the graph has zero vertices, so no spanning
	// tree exists even vacuously for the algorithms' contract.
	ErrEmptyGraph = errors.New("mst: graph has no vertices")

	// ErrDisconnected indicates the graph is not fully connected: fewer than
	// |V|-1 edges could be collected. Always wrapped with expected vs.
	// actual edge counts.
	ErrDisconnected = errors.New("mst: graph is disconnected")

	// ErrNilAlgorithm indicates a nil Algorithm was passed to ComputeBatch.
	ErrNilAlgorithm = errors.New("mst: algorithm is nil")
)

// Algorithm is the shared capability implemented by Prim and Kruskal.
//
// ComputeMST runs to completion synchronously; it either returns a validated
// Result or an error, never a partial tree. Metrics returns the counters of
// the last completed run on this instance. A single instance is not safe for
// concurrent ComputeMST calls — concurrent callers must use Clone.
type Algorithm interface {
	// ComputeMST computes the minimum spanning tree of g.
	// Fails with ErrNilGraph, ErrEmptyGraph, or a wrapped ErrDisconnected.
	ComputeMST(g *core.Graph) (*Result, error)

	// Name returns the algorithm name ("Prim" or "Kruskal").
	Name() string

	// TimeComplexity returns the Big-O time bound for the configured
	// strategy, as a descriptive string.
	TimeComplexity() string

	// SpaceComplexity returns the Big-O space bound as a descriptive string.
	SpaceComplexity() string

	// AnalyzeSuitability reports how well this algorithm fits g, based on
	// size and density, including a recommended strategy.
	AnalyzeSuitability(g *core.Graph) map[string]interface{}

	// Metrics returns the instrumentation snapshot of the last completed run.
	Metrics() Metrics

	// Parameters returns the construction-time configuration.
	Parameters() map[string]interface{}

	// Reset zeroes the stored instrumentation snapshot without altering the
	// configured strategy.
	Reset()

	// Clone returns a fresh instance with the same configuration and zeroed
	// instrumentation, safe to run concurrently with the receiver.
	Clone() Algorithm
}

// Metrics is the per-run instrumentation snapshot. Counters are explicit
// operation counts; Duration is wall-clock and approximate.
type Metrics struct {
	// Duration is the wall-clock time of the run. Environment-dependent;
	// informational only.
	Duration time.Duration

	// Operations counts every accounted unit of algorithmic work.
	Operations int64

	// Comparisons counts key/weight comparisons.
	Comparisons int64

	// QueueOperations counts priority-queue inserts and extracts (Prim).
	QueueOperations int64

	// DecreaseKeyOperations counts effective decrease-key calls (Prim).
	DecreaseKeyOperations int64

	// UnionOperations counts merges performed by union-find (Kruskal).
	UnionOperations int64

	// FindOperations counts root lookups in union-find (Kruskal).
	FindOperations int64
}

// OperationsPerSecond derives throughput from Operations and Duration.
// Returns 0 for a zero duration.
func (m Metrics) OperationsPerSecond() float64 {
	if m.Duration <= 0 {
		return 0
	}

	return float64(m.Operations) / m.Duration.Seconds()
}

// tally accumulates counters for exactly one ComputeMST call. Keeping the
// mutable counters per call (rather than on the instance) means a run in
// flight never races another instance's accessors.
type tally struct {
	ops         int64
	comparisons int64
	queueOps    int64
	decreaseOps int64
	unionOps    int64
	findOps     int64
}

// snapshot freezes the tally into an immutable Metrics value.
func (t *tally) snapshot(d time.Duration) Metrics {
	return Metrics{
		Duration:              d,
		Operations:            t.ops,
		Comparisons:           t.comparisons,
		QueueOperations:       t.queueOps,
		DecreaseKeyOperations: t.decreaseOps,
		UnionOperations:       t.unionOps,
		FindOperations:        t.findOps,
	}
}

// disconnectedError wraps ErrDisconnected with the expected and actual MST
// edge counts, so the failure names exactly what was missing.
func disconnectedError(expected, actual int) error {
	return fmt.Errorf("%w: expected %d edges, got %d", ErrDisconnected, expected, actual)
}

// IsValidMST reports whether result is a valid minimum spanning tree outcome
// for graph: the edge count equals |V|-1 and the result's own validity check
// (cost consistency plus single spanning tree) passes.
func IsValidMST(graph *core.Graph, result *Result) bool {
	if graph == nil || result == nil {
		return false
	}
	expected := graph.VertexCount() - 1
	if graph.VertexCount() == 0 {
		expected = 0
	}

	return len(result.edges) == expected && result.IsValidMST()
}
