// Package dsu provides a disjoint-set (union-find) structure over any
// comparable key, with path compression and union by rank.
//
// Used by Kruskal's algorithm and by maze carving to reject edges whose
// endpoints already share a set.
//
// Complexity: Find and Union run in amortized O(α(n)).
package dsu

// Set partitions keys into disjoint sets. The zero value is not usable; use New.
type Set[K comparable] struct {
	parent map[K]K
	rank   map[K]int
	count  int
}

// New returns an empty Set with room for n keys.
func New[K comparable](n int) *Set[K] {
	return &Set[K]{
		parent: make(map[K]K, n),
		rank:   make(map[K]int, n),
	}
}

// Add inserts x as a singleton. Adding an existing key is a no-op.
func (s *Set[K]) Add(x K) {
	if _, ok := s.parent[x]; ok {
		return
	}
	s.parent[x] = x
	s.rank[x] = 0
	s.count++
}

// Has reports whether x was added.
func (s *Set[K]) Has(x K) bool {
	_, ok := s.parent[x]
	return ok
}

// Find returns the representative of x's set, adding x first if unknown.
// It compresses the path it walks.
func (s *Set[K]) Find(x K) K {
	if !s.Has(x) {
		s.Add(x)
		return x
	}
	root := x
	for s.parent[root] != root {
		root = s.parent[root]
	}
	// point every node on the path straight at the root
	for x != root {
		next := s.parent[x]
		s.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets of x and y and reports whether they were disjoint.
// The lower-rank root is attached under the higher-rank one.
func (s *Set[K]) Union(x, y K) bool {
	rx, ry := s.Find(x), s.Find(y)
	if rx == ry {
		return false
	}
	switch {
	case s.rank[rx] < s.rank[ry]:
		s.parent[rx] = ry
	case s.rank[rx] > s.rank[ry]:
		s.parent[ry] = rx
	default:
		s.parent[ry] = rx
		s.rank[rx]++
	}
	s.count--

	return true
}

// Connected reports whether x and y share a set.
func (s *Set[K]) Connected(x, y K) bool { return s.Find(x) == s.Find(y) }

// Count returns the number of disjoint sets.
func (s *Set[K]) Count() int { return s.count }

// Len returns the number of keys.
func (s *Set[K]) Len() int { return len(s.parent) }
