// SPDX-License-Identifier: MIT

package hypergraph

import (
	"sort"

	"github.com/katalvlaran/kmapper/simplex"
)

// Hypergraph is a simple hypergraph: an ordered set of hyperedges, none a
// strict subset of another. It is immutable once returned by Reduce.
type Hypergraph struct {
	edges []simplex.Set
	index map[string]int // Set.Key() → position in edges
}

// workingSet is the mutable per-dimension arena used by Reduce: insertion
// order plus an alive flag keyed by Set.Key().
type workingSet struct {
	order []simplex.Set
	alive map[string]bool
}

func newWorkingSet(n int) *workingSet {
	return &workingSet{order: make([]simplex.Set, 0, n), alive: make(map[string]bool, n)}
}

// add inserts s once; later duplicates are ignored.
func (w *workingSet) add(s simplex.Set) {
	k := s.Key()
	if _, ok := w.alive[k]; ok {
		return
	}
	w.alive[k] = true
	w.order = append(w.order, s)
}

// discard removes s if present. Idempotent.
func (w *workingSet) discard(s simplex.Set) {
	k := s.Key()
	if w.alive[k] {
		w.alive[k] = false
	}
}

// Reduce returns the face-minimal hypergraph of list: every simplex that
// is not a face of another simplex of list, once. Hyperedges are ordered by
// descending dimension, then by their first appearance in list.
//
// Isolated vertices survive as singleton hyperedges. An empty list yields
// an empty hypergraph.
func Reduce(list simplex.List) *Hypergraph {
	// Stage 1: arena of working sets, indexed by the vertex-set dimension.
	// The dimension is recomputed from the set so that malformed entries
	// (repeated vertices) land where their vertex count says.
	var arena []*workingSet
	for _, dim := range list {
		for _, s := range dim {
			set := s.Set()
			d := set.Dim()
			if d < 0 {
				continue
			}
			for len(arena) <= d {
				arena = append(arena, newWorkingSet(len(dim)))
			}
			arena[d].add(set)
		}
	}

	h := &Hypergraph{index: make(map[string]int)}

	// Stage 2: top-down acceptance with face purging.
	for d := len(arena) - 1; d >= 0; d-- {
		ws := arena[d]
		for _, s := range ws.order {
			if !ws.alive[s.Key()] {
				continue
			}
			h.add(s)
			for _, f := range s.Faces() {
				arena[f.Dim()].discard(f)
			}
		}
	}

	return h
}

func (h *Hypergraph) add(s simplex.Set) {
	h.index[s.Key()] = len(h.edges)
	h.edges = append(h.edges, s)
}

// Len returns the number of hyperedges.
func (h *Hypergraph) Len() int { return len(h.edges) }

// Edges returns the hyperedges in order. The slice is a copy.
func (h *Hypergraph) Edges() []simplex.Set {
	out := make([]simplex.Set, len(h.edges))
	copy(out, h.edges)

	return out
}

// Contains reports whether s is a hyperedge.
func (h *Hypergraph) Contains(s simplex.Set) bool {
	_, ok := h.index[s.Key()]
	return ok
}

// Vertices returns every vertex covered by a hyperedge, sorted ascending.
func (h *Hypergraph) Vertices() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, e := range h.edges {
		for _, v := range e.IDs() {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)

	return out
}

// Incident returns the hyperedges containing vertex v, in order.
func (h *Hypergraph) Incident(v string) []simplex.Set {
	var out []simplex.Set
	for _, e := range h.edges {
		if e.Contains(v) {
			out = append(out, e)
		}
	}

	return out
}

// Rank returns the size of the largest hyperedge (0 when empty).
func (h *Hypergraph) Rank() int {
	r := 0
	for _, e := range h.edges {
		if e.Len() > r {
			r = e.Len()
		}
	}

	return r
}

// IsSimple reports whether no hyperedge is a strict subset of another.
// Reduce always returns a simple hypergraph; the check is O(E²).
func (h *Hypergraph) IsSimple() bool {
	for i, a := range h.edges {
		for j, b := range h.edges {
			if i != j && a.IsProperSubsetOf(b) {
				return false
			}
		}
	}

	return true
}
