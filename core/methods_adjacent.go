// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighborhood and connectivity queries.
// Determinism:
//   - NeighborIDs() returns unique IDs sorted lex asc.
//   - ConnectedComponents() sorts members within a component and components
//     by their smallest member.

package core

import "sort"

// NeighborIDs returns the IDs adjacent to id, unique and sorted.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]string, 0, len(g.adjacencyList[id]))
	for nbr, bucket := range g.adjacencyList[id] {
		if len(bucket) > 0 {
			out = append(out, nbr)
		}
	}
	sort.Strings(out)

	return out, nil
}

// ConnectedComponents partitions the vertices into connected components.
// In a Mapper graph each component is a separate "shape" of the data;
// isolated clusters come back as singleton components.
//
// Implementation:
//   - Stage 1: Snapshot vertices and adjacency under read locks.
//   - Stage 2: BFS from every unseen vertex in ascending ID order.
//   - Stage 3: Sort each component's members.
//
// Complexity: O((V+E) log V) due to sorting; O(V) extra space.
func (g *Graph) ConnectedComponents() [][]string {
	ids := g.Vertices()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	seen := make(map[string]bool, len(ids))
	var comps [][]string
	for _, start := range ids {
		if seen[start] {
			continue
		}
		queue := []string{start}
		seen[start] = true
		var comp []string

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for v, bucket := range g.adjacencyList[u] {
				if len(bucket) == 0 || seen[v] {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	return comps
}
