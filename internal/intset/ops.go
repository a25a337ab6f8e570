package intset

// probeRatio is the crossover between the linear merge and the binary
// probe. When one side is at least probeRatio times larger, probing the
// larger side for each element of the smaller wins over a joint scan.
// Inherited from the in-memory working-set sizes typical of a token
// corpus; tune per machine if profiling says otherwise.
const probeRatio = 10

// Intersect computes the logical intersection of two MatchSets,
// honoring the complement bits:
//
//	 a ∩  b  ->  a ∩ b
//	 a ∩ ¬b  ->  a − b
//	¬a ∩  b  ->  b − a
//	¬a ∩ ¬b  ->  ¬(a ∩ b)
//
// The last row keeps the complement symbolic; the evaluator resolves it
// against the universe before results are surfaced.
func Intersect(a, b Set) Set {
	switch {
	case a.Complement && b.Complement:
		out := intersect(a, b)
		out.Complement = true
		return out
	case a.Complement:
		return difference(b, a)
	case b.Complement:
		return difference(a, b)
	default:
		return intersect(a, b)
	}
}

// intersect dispatches on the representation pair. Results are
// materialized except for dense ∩ dense.
func intersect(a, b Set) Set {
	switch {
	case a.kind == KindDense && b.kind == KindDense:
		return intersectDenseDense(a, b)
	case a.kind == KindDense:
		return NewExplicit(selectInRange(b.seq(), a.first, a.last))
	case b.kind == KindDense:
		return NewExplicit(selectInRange(a.seq(), b.first, b.last))
	default:
		return NewExplicit(intersectSorted(a.seq(), b.seq()))
	}
}

// difference dispatches a − b on the representation pair.
func difference(a, b Set) Set {
	switch {
	case a.kind == KindDense && b.kind == KindDense:
		return diffDenseDense(a, b)
	case a.kind == KindDense:
		return NewExplicit(diffDenseSorted(a.first, a.last, b.seq()))
	case b.kind == KindDense:
		return NewExplicit(diffSortedDense(a.seq(), b.first, b.last))
	default:
		return NewExplicit(diffSorted(a.seq(), b.seq()))
	}
}

func intersectDenseDense(a, b Set) Set {
	return NewDense(max(a.first, b.first), min(a.last, b.last))
}

// diffDenseDense handles all four overlap cases; the strict-subset case
// has a two-interval result and must materialize.
func diffDenseDense(a, b Set) Set {
	if a.last < a.first {
		return a
	}
	if b.last < b.first || b.last < a.first || b.first > a.last {
		return a
	}
	if b.first <= a.first && b.last >= a.last {
		return Empty()
	}
	if b.first <= a.first {
		return NewDense(b.last+1, a.last)
	}
	if b.last >= a.last {
		return NewDense(a.first, b.first-1)
	}
	out := make([]int, 0, (b.first-a.first)+(a.last-b.last))
	for x := a.first; x < b.first; x++ {
		out = append(out, x)
	}
	for x := b.last + 1; x <= a.last; x++ {
		out = append(out, x)
	}
	return NewExplicit(out)
}

// selectInRange keeps the elements of x that fall inside [first, last].
func selectInRange(x seq, first, last int) []int {
	var out []int
	for i := 0; i < x.len(); i++ {
		v := x.at(i)
		if v < first {
			continue
		}
		if v > last {
			break
		}
		out = append(out, v)
	}
	return out
}

// diffDenseSorted walks [first, last] and x jointly, emitting the
// integers of the interval absent from x.
func diffDenseSorted(first, last int, x seq) []int {
	var out []int
	p, q := first, 0
	for p <= last && q < x.len() {
		switch v := x.at(q); {
		case p < v:
			out = append(out, p)
			p++
		case p > v:
			q++
		default:
			p++
			q++
		}
	}
	for ; p <= last; p++ {
		out = append(out, p)
	}
	return out
}

// diffSortedDense emits the elements of x outside [first, last].
func diffSortedDense(x seq, first, last int) []int {
	var out []int
	for i := 0; i < x.len(); i++ {
		if v := x.at(i); v < first || v > last {
			out = append(out, v)
		}
	}
	return out
}

// intersectSorted picks merge or probe by the size ratio. The probe
// drives from the smaller side; intersection is symmetric so the
// operands may swap freely.
func intersectSorted(a, b seq) []int {
	switch {
	case a.len()*probeRatio <= b.len():
		return probeIntersect(a, b)
	case b.len()*probeRatio <= a.len():
		return probeIntersect(b, a)
	default:
		return mergeIntersect(a, b)
	}
}

// diffSorted computes a − b. Difference is directional, so the probe is
// only used when b is the much larger side.
func diffSorted(a, b seq) []int {
	if a.len()*probeRatio <= b.len() {
		return probeDiff(a, b)
	}
	return mergeDiff(a, b)
}

func mergeIntersect(a, b seq) []int {
	var out []int
	p, q := 0, 0
	for p < a.len() && q < b.len() {
		av, bv := a.at(p), b.at(q)
		switch {
		case av < bv:
			p++
		case bv < av:
			q++
		default:
			out = append(out, av)
			p++
			q++
		}
	}
	return out
}

func mergeDiff(a, b seq) []int {
	var out []int
	p, q := 0, 0
	for p < a.len() && q < b.len() {
		av, bv := a.at(p), b.at(q)
		switch {
		case av < bv:
			out = append(out, av)
			p++
		case bv < av:
			q++
		default:
			p++
			q++
		}
	}
	for ; p < a.len(); p++ {
		out = append(out, a.at(p))
	}
	return out
}

func probeIntersect(small, large seq) []int {
	var out []int
	for i := 0; i < small.len(); i++ {
		if v := small.at(i); large.contains(v) {
			out = append(out, v)
		}
	}
	return out
}

func probeDiff(a, b seq) []int {
	var out []int
	for i := 0; i < a.len(); i++ {
		if v := a.at(i); !b.contains(v) {
			out = append(out, v)
		}
	}
	return out
}
