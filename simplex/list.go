// SPDX-License-Identifier: MIT

package simplex

// Simplex is an ordered sequence of k+1 distinct vertex IDs, k = Dim().
// The order is the order of discovery; identity for comparison purposes is
// the Set of its vertices.
type Simplex []string

// Dim returns the dimension of the simplex.
func (s Simplex) Dim() int { return len(s) - 1 }

// Set returns the vertex set of s.
func (s Simplex) Set() Set { return NewSet(s...) }

// List is a dimension-indexed simplex list: List[d] holds the d-simplices.
//
// Invariants maintained by the nerve builder:
//   - List[0] exists (possibly empty) and holds one singleton per cluster.
//   - List[d] for d ≥ 1 exists only when non-empty.
type List [][]Simplex

// Dim returns the highest dimension present, or -1 for a nil List.
func (l List) Dim() int { return len(l) - 1 }

// At returns the simplices of dimension d, or nil if d is absent.
func (l List) At(d int) []Simplex {
	if d < 0 || d >= len(l) {
		return nil
	}

	return l[d]
}

// Count returns the number of d-simplices.
func (l List) Count(d int) int { return len(l.At(d)) }

// Total returns the number of simplices over all dimensions.
func (l List) Total() int {
	n := 0
	for _, dim := range l {
		n += len(dim)
	}

	return n
}

// Skeleton returns the k-skeleton: dimensions 0..k. The outer slice is new;
// the simplices are shared with l.
func (l List) Skeleton(k int) List {
	if k < 0 {
		return List{}
	}
	if k+1 < len(l) {
		return append(List{}, l[:k+1]...)
	}

	return append(List{}, l...)
}

// Vertices returns the vertex IDs of dimension 0 in order.
func (l List) Vertices() []string {
	dim0 := l.At(0)
	out := make([]string, 0, len(dim0))
	for _, s := range dim0 {
		if len(s) > 0 {
			out = append(out, s[0])
		}
	}

	return out
}

// Edges returns the 1-simplices as [2]string pairs in order.
func (l List) Edges() [][2]string {
	dim1 := l.At(1)
	out := make([][2]string, 0, len(dim1))
	for _, s := range dim1 {
		if len(s) == 2 {
			out = append(out, [2]string{s[0], s[1]})
		}
	}

	return out
}

// Links returns the link dictionary of the 1-skeleton: for every edge
// (u, v) in discovery order, v is appended to Links()[u]. Vertices that
// never appear first in an edge have no entry.
func (l List) Links() map[string][]string {
	links := make(map[string][]string)
	for _, e := range l.Edges() {
		links[e[0]] = append(links[e[0]], e[1])
	}

	return links
}

// Sets converts every simplex into its vertex Set, keeping the dimension
// layout.
func (l List) Sets() [][]Set {
	out := make([][]Set, len(l))
	for d, dim := range l {
		out[d] = make([]Set, len(dim))
		for i, s := range dim {
			out[d][i] = s.Set()
		}
	}

	return out
}
