// Package disjointset provides an index based union-find structure with
// union by rank and path compression.
//
// Elements are the integers [0, n). Indices are not bounds checked; passing
// an index outside that range panics like any slice access.
package disjointset

// DisjointSet partitions the elements [0, n) into disjoint sets.
type DisjointSet struct {
	parent []int
	rank   []int
	sets   int
}

// New creates n singleton sets, each element its own root with rank 0.
func New(n int) *DisjointSet {
	ds := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		sets:   n,
	}
	for i := range ds.parent {
		ds.parent[i] = i
	}
	return ds
}

// Find returns the representative of the set containing x.
// Every node on the walked path is relinked directly to the root.
func (ds *DisjointSet) Find(x int) int {
	root := x
	for ds.parent[root] != root {
		root = ds.parent[root]
	}

	// second pass: compress
	for ds.parent[x] != root {
		next := ds.parent[x]
		ds.parent[x] = root
		x = next
	}
	return root
}

// Union merges the sets containing x and y and reports whether a merge
// happened. It returns false when x and y were already in the same set.
func (ds *DisjointSet) Union(x, y int) bool {
	rx, ry := ds.Find(x), ds.Find(y)
	if rx == ry {
		return false
	}

	switch {
	case ds.rank[rx] < ds.rank[ry]:
		ds.parent[rx] = ry
	case ds.rank[rx] > ds.rank[ry]:
		ds.parent[ry] = rx
	default:
		ds.parent[ry] = rx
		ds.rank[rx]++
	}
	ds.sets--
	return true
}

// Connected reports whether x and y belong to the same set.
func (ds *DisjointSet) Connected(x, y int) bool {
	return ds.Find(x) == ds.Find(y)
}

// Len returns the number of elements.
func (ds *DisjointSet) Len() int {
	return len(ds.parent)
}

// Sets returns the current number of disjoint sets.
func (ds *DisjointSet) Sets() int {
	return ds.sets
}
