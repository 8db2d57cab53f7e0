// Package mst provides two instrumented algorithms for computing the Minimum
// Spanning Tree (MST) of an undirected, weighted *core.Graph: Prim's
// algorithm and Kruskal's algorithm, each with interchangeable internal
// data-structure strategies.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a
//     subset T ⊆ E that connects every vertex in V with minimum total weight
//     and no cycles.
//
//   - Why two algorithms?
//     Prim grows a single tree outward from a start vertex and shines when a
//     decrease-key-capable priority queue fits the graph shape. Kruskal sorts
//     the whole edge list once and merges components through a disjoint-set
//     (union-find) structure. Their total costs always agree on the same
//     connected graph; the specific edge sets may differ under weight ties.
//
// Algorithms Provided
//
//   - NewPrim(opts...).ComputeMST(g)
//
//   - Strategy: every vertex starts with key +∞ (start vertex 0); the queue
//     strategy extracts the minimum-key vertex, its recorded best edge joins
//     the tree, and each neighbor still queued is decrease-keyed when a
//     lighter connecting edge is found.
//
//   - Queue strategies (construction-time choice): indexed binary heap,
//     indexed d-ary heap, linear array scan. See QueueStrategy.
//
//   - Complexity: O(E log V) with a heap strategy, O(V²) with linear scan.
//
//   - NewKruskal(opts...).ComputeMST(g)
//
//   - Strategy: sort all edges ascending by weight (stable, heap, or bucket
//     sort — see SortStrategy), then union endpoints component by component,
//     keeping each edge that merges two components, stopping at |V|-1 edges.
//
//   - Union-find optimizations (path compression, union by rank) are
//     independently toggleable; disabling them degrades amortized complexity
//     but never correctness.
//
//   - Complexity: O(E log E + α(V)·E) ≈ O(E log V).
//
// Both implement the Algorithm capability: ComputeMST, Name, TimeComplexity,
// SpaceComplexity, AnalyzeSuitability, Metrics, Parameters, Reset, Clone.
//
// Instrumentation
//
// Every ComputeMST call owns a fresh set of counters (operations,
// comparisons, queue/decrease-key or union/find counts) gathered into a
// Metrics value embedded in the Result and retrievable from the instance via
// Metrics() until the next run or Reset(). Wall-clock duration is recorded
// as approximate, environment-dependent data — never a correctness signal.
// A single instance must not serve concurrent ComputeMST calls; ComputeBatch
// clones the configured instance per graph for exactly this reason.
//
// Error Conditions
//
//	- ErrNilGraph      - graph pointer is nil.
//	- ErrEmptyGraph    - graph has zero vertices.
//	- ErrDisconnected  - fewer than |V|-1 edges could be collected; the
//	  wrapped message names expected vs. actual counts. A partial tree is
//	  never returned.
//
// Determinism
//
//   - Vertex and edge orderings come from core.Graph's sorted accessors.
//   - All Kruskal sort strategies break weight ties lexicographically by
//     canonical edge ID, so the returned tree is identical across sort
//     strategies.
//   - Prim resolves ties by whichever minimum its queue strategy surfaces
//     first; the total cost is strategy-independent.
//
// For usage, see example_test.go in this package.
package mst
