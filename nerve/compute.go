// SPDX-License-Identifier: MIT

package nerve

import (
	"github.com/katalvlaran/kmapper/cluster"
	"github.com/katalvlaran/kmapper/simplex"
)

// compute runs the enumeration for already validated options.
//
// Steps:
//  1. Emit every cluster as a 0-simplex, in input order.
//  2. Stop if MaxDim == 0.
//  3. For d = 1.. while d is within the cap and d+1 ≤ n: test every
//     (d+1)-combination of clusters; keep those whose common members reach
//     MinIntersection.
//  4. Stop at the first empty dimension; it is not appended.
func compute(clusters *cluster.Map, o Options) simplex.List {
	ids := clusters.IDs()

	dim0 := make([]simplex.Simplex, len(ids))
	for i, id := range ids {
		dim0[i] = simplex.Simplex{id}
	}
	list := simplex.List{dim0}

	if o.MaxDim == 0 {
		return list
	}

	sets := make([]map[int]struct{}, len(ids))
	for i, id := range ids {
		sets[i] = clusters.MemberSet(id)
	}

	for d := 1; o.bounded(d) && d < len(ids); d++ {
		var found []simplex.Simplex
		simplex.Combinations(len(ids), d+1, func(idx []int) bool {
			if overlaps(sets, idx, o.MinIntersection) {
				s := make(simplex.Simplex, len(idx))
				for i, j := range idx {
					s[i] = ids[j]
				}
				found = append(found, s)
			}
			return true
		})
		if len(found) == 0 {
			// monotone stopping rule
			break
		}
		list = append(list, found)
	}

	return list
}

// overlaps reports whether the clusters at idx share at least threshold members.
// It scans the smallest set and returns as soon as threshold is reached.
func overlaps(sets []map[int]struct{}, idx []int, threshold int) bool {
	smallest := idx[0]
	for _, j := range idx[1:] {
		if len(sets[j]) < len(sets[smallest]) {
			smallest = j
		}
	}
	if len(sets[smallest]) < threshold {
		return false
	}

	count := 0
next:
	for s := range sets[smallest] {
		for _, j := range idx {
			if j == smallest {
				continue
			}
			if _, ok := sets[j][s]; !ok {
				continue next
			}
		}
		count++
		if count >= threshold {
			return true
		}
	}

	return false
}
