package intset

import "sort"

// Plan reduces an n-ary intersection of MatchSets.
//
// Dense intervals are folded first into a single interval. The remaining
// sets are sorted ascending by the size estimator and reduced
// left-to-right, so intermediate results stay as small as possible. The
// folded interval joins last: intersecting an interval with any sorted
// set costs only the sorted set's length.
//
// The caller's slice order carries no meaning (clause order is encoded
// in the shifts, not in the reduction order), so reordering here is
// safe.
func Plan(sets []Set) Set {
	if len(sets) == 0 {
		return Empty()
	}

	var dense Set
	denseFound := false
	others := make([]Set, 0, len(sets))

	for _, s := range sets {
		if s.kind == KindDense {
			if denseFound {
				dense = Intersect(dense, s)
			} else {
				dense = s
				denseFound = true
			}
			continue
		}
		others = append(others, s)
	}

	if len(others) == 0 {
		return dense
	}

	sort.SliceStable(others, func(i, j int) bool {
		return others[i].Size() < others[j].Size()
	})

	out := others[0]
	for _, s := range others[1:] {
		out = Intersect(out, s)
	}
	if denseFound {
		out = Intersect(out, dense)
	}
	return out
}
