package tree

import (
	"cmp"
	"slices"
)

// AssignDepths stacks arcs vertically so that no two arcs whose spans
// partially overlap share a level. Arcs are placed smallest span first, each
// at the lowest depth where it crosses nothing already assigned there.
// Containment, disjointness and shared endpoints are all compatible at one
// depth; only a strict partial overlap forces a deeper level.
//
// The greedy smallest-width-first policy is a heuristic, not an optimal
// crossing minimizer. Ties break on textual order so the result is
// deterministic and idempotent.
func AssignDepths(arcs []Arc) {
	order := make([]*Arc, len(arcs))
	for i := range arcs {
		order[i] = &arcs[i]
	}
	slices.SortStableFunc(order, func(a, b *Arc) int {
		if c := cmp.Compare(a.Width(), b.Width()); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Lo, b.Lo); c != 0 {
			return c
		}
		return cmp.Compare(a.Dep, b.Dep)
	})

	var levels [][]*Arc
	for _, arc := range order {
		depth := 0
		for depth < len(levels) && crossesAny(arc, levels[depth]) {
			depth++
		}
		if depth == len(levels) {
			levels = append(levels, nil)
		}
		arc.Depth = depth
		levels[depth] = append(levels[depth], arc)
	}
}

func crossesAny(a *Arc, level []*Arc) bool {
	for _, b := range level {
		if crosses(a, b) {
			return true
		}
	}
	return false
}

// crosses reports a strict partial overlap: the spans intersect but neither
// contains the other. Shared endpoints do not count as crossings.
func crosses(a, b *Arc) bool {
	return (a.Lo < b.Lo && b.Lo < a.Hi && a.Hi < b.Hi) ||
		(b.Lo < a.Lo && a.Lo < b.Hi && b.Hi < a.Hi)
}

// DepthCount returns the number of stacking levels in use.
func DepthCount(arcs []Arc) int {
	count := 0
	for _, a := range arcs {
		if a.Depth+1 > count {
			count = a.Depth + 1
		}
	}
	return count
}
