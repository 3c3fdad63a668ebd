package coloring

import "github.com/katalvlaran/lvcolor/core"

// IsIndependentSet reports whether no two distinct members of subset are
// adjacent in g. The empty set and singletons are always independent.
// Indices outside [0,N) have no neighbors; the check never fails.
//
// Complexity: O(|S|·d) with d the average degree of members.
func IsIndependentSet(g *core.Graph, subset []int) bool {
	if g == nil || len(subset) < 2 {
		return true
	}

	members := make(map[int]struct{}, len(subset))
	for _, v := range subset {
		members[v] = struct{}{}
	}
	for _, v := range subset {
		nbrs, err := g.Neighbors(v)
		if err != nil {
			continue
		}
		for _, nb := range nbrs {
			if _, ok := members[nb]; ok {
				return false
			}
		}
	}

	return true
}

// independent is the allocation-free variant used inside the search.
// mark must have len(adj) entries, all false; it is restored before return.
func independent(adj [][]int, subset []int, mark []bool) bool {
	for _, v := range subset {
		mark[v] = true
	}
	ok := true
scan:
	for _, v := range subset {
		for _, nb := range adj[v] {
			if mark[nb] {
				ok = false
				break scan
			}
		}
	}
	for _, v := range subset {
		mark[v] = false
	}

	return ok
}
