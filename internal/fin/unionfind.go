package fin

// UnionFind implements a disjoint-set structure over the integers [0, n)
// with path compression and union by rank. The coequalizer uses it to
// partition codomain indices into equivalence classes.
type UnionFind struct {
	parent []int
	rank   []int
}

// NewUnionFind creates n singleton sets, one per integer in [0, n).
func NewUnionFind(n int) *UnionFind {
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &UnionFind{parent: parent, rank: rank}
}

// Find returns the representative (root) of the set containing x.
// Path compression is applied so subsequent queries are nearly O(1).
func (uf *UnionFind) Find(x int) int {
	if uf.parent[x] != x {
		uf.parent[x] = uf.Find(uf.parent[x]) // path compression
	}
	return uf.parent[x]
}

// Union merges the sets containing x and y. Union by rank keeps the
// tree balanced.
func (uf *UnionFind) Union(x, y int) {
	rx := uf.Find(x)
	ry := uf.Find(y)
	if rx == ry {
		return
	}
	// Attach the shorter tree under the taller one.
	switch {
	case uf.rank[rx] < uf.rank[ry]:
		uf.parent[rx] = ry
	case uf.rank[rx] > uf.rank[ry]:
		uf.parent[ry] = rx
	default:
		uf.parent[ry] = rx
		uf.rank[rx]++
	}
}

// Connected reports whether x and y belong to the same set.
func (uf *UnionFind) Connected(x, y int) bool {
	return uf.Find(x) == uf.Find(y)
}
