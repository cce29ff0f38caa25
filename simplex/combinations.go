// SPDX-License-Identifier: MIT

package simplex

// Combinations calls fn with every k-element subset of {0, …, n-1}, as an
// ascending index slice, in lexicographic order: (0,1), (0,2), …, (1,2), …
//
// The idx slice is reused between calls; copy it if it must outlive fn.
// Returning false from fn stops the enumeration. Combinations reports
// whether the enumeration ran to completion.
//
// k ≤ 0 or k > n yields nothing (and reports true).
//
// Complexity: O(C(n,k)·k) time, O(k) extra space.
func Combinations(n, k int, fn func(idx []int) bool) bool {
	if k <= 0 || k > n {
		return true
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		if !fn(idx) {
			return false
		}
		// Find the rightmost slot that can still move right.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return true
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
