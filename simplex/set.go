// SPDX-License-Identifier: MIT

package simplex

import (
	"sort"
	"strconv"
	"strings"
)

// Set is an immutable set of vertex IDs, stored sorted and without
// duplicates. Two Sets are equal iff they hold the same IDs, regardless of
// the order the IDs were supplied in.
type Set struct {
	ids []string
}

// NewSet builds a Set from ids. Duplicates are dropped.
func NewSet(ids ...string) Set {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)

	out := sorted[:0]
	for i, id := range sorted {
		if i > 0 && id == sorted[i-1] {
			continue
		}
		out = append(out, id)
	}

	return Set{ids: out}
}

// Len returns the number of vertices.
func (s Set) Len() int { return len(s.ids) }

// Dim returns the simplex dimension, Len()-1. The empty set has dimension -1.
func (s Set) Dim() int { return len(s.ids) - 1 }

// IDs returns the vertex IDs in ascending order. The slice is a copy.
func (s Set) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)

	return out
}

// Key returns a string that is equal for two Sets iff the Sets are equal.
// Use it as a map key. Every ID is length-prefixed ("<len>:<id>"), so IDs
// may contain any byte without two different Sets sharing a key.
func (s Set) Key() string {
	var b strings.Builder
	for _, id := range s.ids {
		b.WriteString(strconv.Itoa(len(id)))
		b.WriteByte(':')
		b.WriteString(id)
	}

	return b.String()
}

// Equal reports structural equality.
func (s Set) Equal(o Set) bool {
	if len(s.ids) != len(o.ids) {
		return false
	}
	for i := range s.ids {
		if s.ids[i] != o.ids[i] {
			return false
		}
	}

	return true
}

// Contains reports whether id is a vertex of s.
func (s Set) Contains(id string) bool {
	i := sort.SearchStrings(s.ids, id)
	return i < len(s.ids) && s.ids[i] == id
}

// IsSubsetOf reports whether every vertex of s is a vertex of o.
func (s Set) IsSubsetOf(o Set) bool {
	if len(s.ids) > len(o.ids) {
		return false
	}
	// both sides sorted: single merge pass
	j := 0
	for _, id := range s.ids {
		for j < len(o.ids) && o.ids[j] < id {
			j++
		}
		if j == len(o.ids) || o.ids[j] != id {
			return false
		}
		j++
	}

	return true
}

// IsProperSubsetOf reports whether s ⊂ o and s ≠ o.
func (s Set) IsProperSubsetOf(o Set) bool {
	return len(s.ids) < len(o.ids) && s.IsSubsetOf(o)
}

// Faces returns every non-empty proper subset of s, grouped by ascending
// size and in lexicographic order within a size.
func (s Set) Faces() []Set {
	n := len(s.ids)
	if n < 2 {
		return nil
	}
	var faces []Set
	for k := 1; k < n; k++ {
		Combinations(n, k, func(idx []int) bool {
			ids := make([]string, k)
			for i, j := range idx {
				ids[i] = s.ids[j]
			}
			faces = append(faces, Set{ids: ids})
			return true
		})
	}

	return faces
}

// String renders the set as {a,b,c}.
func (s Set) String() string { return "{" + strings.Join(s.ids, ",") + "}" }
