package coloring

import "iter"

// Combinations lazily yields every k-element subset of {0,…,n-1} in
// lexicographic order of ascending index tuples, e.g. for n=4, k=2:
// [0 1] [0 2] [0 3] [1 2] [1 3] [2 3].
//
// Only O(k) memory is held regardless of C(n,k). The yielded slice is reused
// between steps: copy it to retain it. Each range over the returned
// sequence starts afresh. k=0 yields the empty set once; k<0 or k>n yields
// nothing.
func Combinations(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if n < 0 || k < 0 || k > n {
			return
		}
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		for {
			if !yield(idx) {
				return
			}
			// Rightmost position that can still move up.
			i := k - 1
			for i >= 0 && idx[i] == n-k+i {
				i--
			}
			if i < 0 {
				return
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}
