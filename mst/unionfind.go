// Disjoint-set (union-find) structure backing Kruskal's algorithm.
package mst

// UnionFind tracks a partition of vertex IDs into connected groups,
// supporting fast merge and same-group queries. Path compression and union
// by rank are independently toggleable; disabling either degrades amortized
// complexity but never correctness.
//
// The zero value is not usable — construct via NewUnionFind.
type UnionFind struct {
	parent map[string]string
	rank   map[string]int
	sets   int

	pathCompression bool
	unionByRank     bool

	// t receives operation counters when the structure runs inside an
	// instrumented algorithm invocation; nil outside one.
	t *tally
}

// UnionFindOption configures a UnionFind at construction time.
type UnionFindOption func(*UnionFind)

// WithoutPathCompression disables path compression on Find.
func WithoutPathCompression() UnionFindOption {
	return func(u *UnionFind) { u.pathCompression = false }
}

// WithoutUnionByRank disables rank-guided unions; the first root is always
// attached under the second.
func WithoutUnionByRank() UnionFindOption {
	return func(u *UnionFind) { u.unionByRank = false }
}

// NewUnionFind builds a partition where every id is its own singleton set.
// Both optimizations are enabled by default.
//
// Complexity: O(len(ids)).
func NewUnionFind(ids []string, opts ...UnionFindOption) *UnionFind {
	u := &UnionFind{
		parent:          make(map[string]string, len(ids)),
		rank:            make(map[string]int, len(ids)),
		sets:            len(ids),
		pathCompression: true,
		unionByRank:     true,
	}
	for _, opt := range opts {
		opt(u)
	}
	for _, id := range ids {
		u.parent[id] = id
		u.rank[id] = 0
	}

	return u
}

// Find returns the representative root of v's set. With path compression
// enabled, traversed vertices are re-pointed at their grandparents (path
// halving), flattening the tree for later lookups. An unknown vertex is its
// own root.
//
// Complexity: near O(α(n)) amortized with compression, O(n) worst case
// without.
func (u *UnionFind) Find(v string) string {
	if u.t != nil {
		u.t.findOps++
	}
	p, ok := u.parent[v]
	if !ok {
		return v
	}
	if u.pathCompression {
		for p != v {
			u.parent[v] = u.parent[p]
			v = u.parent[v]
			p = u.parent[v]
		}

		return v
	}
	for p != v {
		v = p
		p = u.parent[v]
	}

	return v
}

// Union merges the sets containing a and b. Returns true if a merge
// happened, false if they were already in the same set. With union by rank,
// the smaller-rank root is attached under the larger; equal ranks attach b's
// root under a's and increment its rank.
func (u *UnionFind) Union(a, b string) bool {
	rootA := u.Find(a)
	rootB := u.Find(b)
	if rootA == rootB {
		return false
	}
	if u.t != nil {
		u.t.unionOps++
	}

	if u.unionByRank {
		switch {
		case u.rank[rootA] < u.rank[rootB]:
			u.parent[rootA] = rootB
		case u.rank[rootA] > u.rank[rootB]:
			u.parent[rootB] = rootA
		default:
			u.parent[rootB] = rootA
			u.rank[rootA]++
		}
	} else {
		u.parent[rootA] = rootB
	}
	u.sets--

	return true
}

// Connected reports whether a and b share a set.
func (u *UnionFind) Connected(a, b string) bool {
	return u.Find(a) == u.Find(b)
}

// SetCount returns the current number of disjoint sets.
func (u *UnionFind) SetCount() int { return u.sets }
