// Edge sorting strategies for Kruskal's algorithm.
//
// Every strategy produces the same total order: ascending weight, ties
// broken lexicographically by canonical edge ID. The choice only affects
// performance, never the returned tree.
package mst

import (
	"container/heap"
	"sort"

	"github.com/alinairsymova/spantree/core"
)

// SortStrategy selects how Kruskal orders the edge list.
type SortStrategy int

const (
	// SortStable uses the standard library's stable comparison sort.
	SortStable SortStrategy = iota

	// SortHeap builds a min-heap over the edges and drains it.
	SortHeap

	// SortBucket distributes edges into weight-range buckets and sorts each
	// bucket; effective when weights spread evenly over their range.
	SortBucket
)

// String returns the canonical strategy name.
func (s SortStrategy) String() string {
	switch s {
	case SortHeap:
		return "HEAP_SORT"
	case SortBucket:
		return "BUCKET_SORT"
	default:
		return "STABLE_SORT"
	}
}

// bucketCountLimit caps the number of buckets used by SortBucket.
const bucketCountLimit = 64

// edgeLess is the single ordering all strategies share: weight ascending,
// canonical edge ID as the explicit tie-break.
func edgeLess(a, b *core.Edge, t *tally) bool {
	t.comparisons++
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}

	return a.ID() < b.ID()
}

// sortEdges orders edges in place with the configured strategy.
func sortEdges(edges []*core.Edge, strategy SortStrategy, t *tally) {
	t.ops += int64(len(edges))
	switch strategy {
	case SortHeap:
		heapSortEdges(edges, t)
	case SortBucket:
		bucketSortEdges(edges, t)
	default:
		sort.SliceStable(edges, func(i, j int) bool {
			return edgeLess(edges[i], edges[j], t)
		})
	}
}

// edgeHeap adapts an edge slice to container/heap with counted comparisons.
type edgeHeap struct {
	edges []*core.Edge
	t     *tally
}

func (h *edgeHeap) Len() int           { return len(h.edges) }
func (h *edgeHeap) Less(i, j int) bool { return edgeLess(h.edges[i], h.edges[j], h.t) }
func (h *edgeHeap) Swap(i, j int)      { h.edges[i], h.edges[j] = h.edges[j], h.edges[i] }
func (h *edgeHeap) Push(x interface{}) { h.edges = append(h.edges, x.(*core.Edge)) }
func (h *edgeHeap) Pop() interface{} {
	old := h.edges
	n := len(old)
	e := old[n-1]
	h.edges = old[:n-1]

	return e
}

// heapSortEdges heapifies the slice and drains it back in ascending order.
func heapSortEdges(edges []*core.Edge, t *tally) {
	h := &edgeHeap{edges: append([]*core.Edge(nil), edges...), t: t}
	heap.Init(h)
	for i := range edges {
		edges[i] = heap.Pop(h).(*core.Edge)
		t.ops++
	}
}

// bucketSortEdges distributes edges by normalized weight into at most
// bucketCountLimit buckets, sorts each bucket with the shared ordering, and
// concatenates. Equal weights land in the same bucket, so the tie-break
// still applies.
func bucketSortEdges(edges []*core.Edge, t *tally) {
	if len(edges) < 2 {
		return
	}
	var maxWeight float64
	for _, e := range edges {
		if e.Weight > maxWeight {
			maxWeight = e.Weight
		}
	}
	if maxWeight == 0 {
		// All weights equal; a single stable sort applies the tie-break.
		sort.SliceStable(edges, func(i, j int) bool { return edgeLess(edges[i], edges[j], t) })

		return
	}

	n := len(edges)
	if n > bucketCountLimit {
		n = bucketCountLimit
	}
	buckets := make([][]*core.Edge, n)
	for _, e := range edges {
		idx := int(e.Weight / maxWeight * float64(n-1))
		buckets[idx] = append(buckets[idx], e)
		t.ops++
	}

	i := 0
	for _, bucket := range buckets {
		sort.SliceStable(bucket, func(a, b int) bool { return edgeLess(bucket[a], bucket[b], t) })
		for _, e := range bucket {
			edges[i] = e
			i++
		}
	}
}
