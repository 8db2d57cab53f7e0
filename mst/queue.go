// Priority-queue strategies backing Prim's algorithm.
//
// All strategies share one capability: Insert, ExtractMin, DecreaseKey (a
// no-op when the new key is not smaller), Contains, Len. The strategy is a
// construction-time choice on Prim, never a per-call decision.
package mst

// QueueStrategy selects the priority-queue implementation used by Prim.
type QueueStrategy int

const (
	// QueueBinaryHeap is an array-backed binary min-heap with a
	// vertex→index map, giving O(log n) decrease-key without linear search.
	QueueBinaryHeap QueueStrategy = iota

	// QueueDaryHeap generalizes the binary heap to a configurable arity
	// (see WithHeapArity). Shallower trees trade cheaper decrease-key for
	// costlier extract-min.
	QueueDaryHeap

	// QueueLinearScan keeps an unsorted array: O(1) decrease-key, O(n)
	// extract-min. Preferred when |V| is small or the graph is dense enough
	// that heap overhead is not amortized.
	QueueLinearScan
)

// String returns the canonical strategy name.
func (s QueueStrategy) String() string {
	switch s {
	case QueueDaryHeap:
		return "DARY_HEAP"
	case QueueLinearScan:
		return "LINEAR_SCAN"
	default:
		return "BINARY_HEAP"
	}
}

// vertexQueue is the common capability all queue strategies implement.
type vertexQueue interface {
	// Insert adds a vertex with the given key.
	Insert(id string, key float64)

	// ExtractMin removes and returns the minimum-key vertex.
	// The second return is false when the queue is empty.
	ExtractMin() (string, bool)

	// DecreaseKey lowers the key of a queued vertex. No-op when newKey is
	// not strictly smaller than the current key, or the vertex is absent.
	DecreaseKey(id string, newKey float64)

	// Contains reports whether the vertex is still queued.
	Contains(id string) bool

	// Len returns the number of queued vertices.
	Len() int
}

// newVertexQueue constructs the configured strategy. arity is only consulted
// for QueueDaryHeap; QueueBinaryHeap always uses arity 2.
func newVertexQueue(s QueueStrategy, arity, capacity int, t *tally) vertexQueue {
	switch s {
	case QueueLinearScan:
		return &scanQueue{
			items: make([]queueEntry, 0, capacity),
			index: make(map[string]int, capacity),
			t:     t,
		}
	case QueueDaryHeap:
		return newIndexedHeap(arity, capacity, t)
	default:
		return newIndexedHeap(2, capacity, t)
	}
}

// queueEntry pairs a vertex with its current key.
type queueEntry struct {
	id  string
	key float64
}

// indexedHeap is an array-backed d-ary min-heap plus a vertex→index map.
// Every swap updates the heap slice and the index map atomically, so
// DecreaseKey can sift up from the mapped position instead of searching.
type indexedHeap struct {
	arity int
	items []queueEntry
	index map[string]int
	t     *tally
}

func newIndexedHeap(arity, capacity int, t *tally) *indexedHeap {
	return &indexedHeap{
		arity: arity,
		items: make([]queueEntry, 0, capacity),
		index: make(map[string]int, capacity),
		t:     t,
	}
}

// Insert appends the vertex and sifts it up. O(log_d n).
func (h *indexedHeap) Insert(id string, key float64) {
	h.items = append(h.items, queueEntry{id: id, key: key})
	h.index[id] = len(h.items) - 1
	h.siftUp(len(h.items) - 1)
	h.t.queueOps++
}

// ExtractMin swaps the root with the last element, shrinks, and sifts down.
// O(d log_d n).
func (h *indexedHeap) ExtractMin() (string, bool) {
	if len(h.items) == 0 {
		return "", false
	}
	min := h.items[0]
	last := len(h.items) - 1
	h.swap(0, last)
	h.items = h.items[:last]
	delete(h.index, min.id)
	if last > 0 {
		h.siftDown(0)
	}
	h.t.queueOps++

	return min.id, true
}

// DecreaseKey lowers the key and restores heap order by sifting up.
// No-op when newKey ≥ the current key. O(log_d n).
func (h *indexedHeap) DecreaseKey(id string, newKey float64) {
	i, ok := h.index[id]
	if !ok {
		return
	}
	h.t.comparisons++
	if newKey >= h.items[i].key {
		return
	}
	h.items[i].key = newKey
	h.siftUp(i)
	h.t.decreaseOps++
}

// Contains reports queue membership via the index map. O(1).
func (h *indexedHeap) Contains(id string) bool {
	_, ok := h.index[id]

	return ok
}

// Len returns the heap size. O(1).
func (h *indexedHeap) Len() int { return len(h.items) }

func (h *indexedHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / h.arity
		h.t.comparisons++
		if h.items[i].key >= h.items[parent].key {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *indexedHeap) siftDown(i int) {
	n := len(h.items)
	for {
		smallest := i
		first := h.arity*i + 1
		for c := first; c < first+h.arity && c < n; c++ {
			h.t.comparisons++
			if h.items[c].key < h.items[smallest].key {
				smallest = c
			}
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// swap keeps the heap slice and the index map in lockstep.
func (h *indexedHeap) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.index[h.items[i].id] = i
	h.index[h.items[j].id] = j
	h.t.ops++
}

// scanQueue is the linear-array strategy: an unsorted slice with a
// membership index. ExtractMin scans the whole slice; DecreaseKey is a
// constant-time key overwrite.
type scanQueue struct {
	items []queueEntry
	index map[string]int
	t     *tally
}

// Insert appends without ordering. O(1).
func (q *scanQueue) Insert(id string, key float64) {
	q.items = append(q.items, queueEntry{id: id, key: key})
	q.index[id] = len(q.items) - 1
	q.t.queueOps++
}

// ExtractMin scans for the minimum key, then removes it by swapping with the
// last element. The first minimum encountered wins ties. O(n).
func (q *scanQueue) ExtractMin() (string, bool) {
	if len(q.items) == 0 {
		return "", false
	}
	minIdx := 0
	for i := 1; i < len(q.items); i++ {
		q.t.comparisons++
		if q.items[i].key < q.items[minIdx].key {
			minIdx = i
		}
	}
	min := q.items[minIdx]
	last := len(q.items) - 1
	q.items[minIdx] = q.items[last]
	q.index[q.items[minIdx].id] = minIdx
	q.items = q.items[:last]
	delete(q.index, min.id)
	q.t.queueOps++

	return min.id, true
}

// DecreaseKey overwrites the stored key. O(1); ordering happens at extract.
func (q *scanQueue) DecreaseKey(id string, newKey float64) {
	i, ok := q.index[id]
	if !ok {
		return
	}
	q.t.comparisons++
	if newKey >= q.items[i].key {
		return
	}
	q.items[i].key = newKey
	q.t.decreaseOps++
}

// Contains reports queue membership. O(1).
func (q *scanQueue) Contains(id string) bool {
	_, ok := q.index[id]

	return ok
}

// Len returns the queue size. O(1).
func (q *scanQueue) Len() int { return len(q.items) }
