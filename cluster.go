package mpstart

import "sort"

// Registry is the cluster partition, C7: a permutation Clust of root
// indices and a boundary array Punt such that cluster k owns the indices
// Clust[Punt[k]:Punt[k+1]]. The invariants from SPEC_FULL.md §3 hold for
// any Registry returned by NewRegistry or Rebuild: Punt[0] == 0,
// Punt[len(Punt)-1] == n, Punt is strictly increasing, and every index in
// [0,n) appears in exactly one cluster.
type Registry struct {
	Clust []int
	Punt  []int
}

// NewRegistry builds the trivial registry: n singleton clusters, each root
// its own cluster, indices in natural order. This is the registry a fresh
// Placer call starts from.
func NewRegistry(n int) *Registry {
	clust := make([]int, n)
	punt := make([]int, n+1)
	for i := 0; i < n; i++ {
		clust[i] = i
		punt[i] = i
	}
	punt[n] = n
	return &Registry{Clust: clust, Punt: punt}
}

// NumClusters returns the number of clusters currently in the partition.
func (r *Registry) NumClusters() int {
	return len(r.Punt) - 1
}

// ClusterSize returns the size of cluster k: Punt[k+1]-Punt[k].
func (r *Registry) ClusterSize(k int) int {
	return r.Punt[k+1] - r.Punt[k]
}

// MembersOf returns the root indices belonging to cluster k, as a slice
// into the registry's own backing array (do not retain across a mutating
// call).
func (r *Registry) MembersOf(k int) []int {
	return r.Clust[r.Punt[k]:r.Punt[k+1]]
}

// N returns the number of roots the registry partitions.
func (r *Registry) N() int {
	return len(r.Clust)
}

// Rebuild is a reference cluster-analysis collaborator (SPEC_FULL.md §6):
// given a symmetric "are these two roots close enough to be the same
// cluster" predicate, it computes a fresh partition via union-find and
// replaces the registry's contents in place. A real Aberth polisher
// ordinarily supplies its own, geometry- and iteration-history-aware
// version of this; this one exists so Restart is exercisable standalone.
func (r *Registry) Rebuild(n int, close func(i, j int) bool) {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if close(i, j) {
				union(i, j)
			}
		}
	}

	groups := make(map[int][]int)
	roots := make([]int, 0)
	for i := 0; i < n; i++ {
		root := find(i)
		if _, ok := groups[root]; !ok {
			roots = append(roots, root)
		}
		groups[root] = append(groups[root], i)
	}
	sort.Ints(roots)

	clust := make([]int, 0, n)
	punt := make([]int, 0, len(roots)+1)
	punt = append(punt, 0)
	for _, root := range roots {
		members := groups[root]
		sort.Ints(members)
		clust = append(clust, members...)
		punt = append(punt, len(clust))
	}

	r.Clust = clust
	r.Punt = punt
}
