// Package intset implements the position-set algebra behind query
// evaluation: three physical representations of sorted integer sets
// unified under a tagged container with a complement bit, pairwise
// intersection and difference across every representation pair, and a
// planner that orders n-ary intersections by estimated size.
//
// The representation set is closed (dense interval, index view,
// materialized vector), so dispatch is a flat switch on the
// representation pair rather than an interface hierarchy.
package intset

// Kind identifies the physical representation of a Set.
type Kind uint8

const (
	// KindDense is a contiguous interval [First, Last].
	KindDense Kind = iota
	// KindView is a borrowed window into an attribute index, sorted
	// ascending, carrying an integer shift.
	KindView
	// KindExplicit is an owned, sorted slice of positions.
	KindExplicit
)

// Set is a tagged set of token positions.
//
// A View element x stands for the logical position x - shift; Dense and
// Explicit sets are always in logical coordinates already. All accessors
// yield logical positions, so shifted values can never leak to callers.
//
// When Complement is set, the logical value of the set is the universe
// minus the stored elements. Complements stay symbolic until the
// evaluator intersects against the universe at the top level.
type Set struct {
	kind  Kind
	first int
	last  int
	elems []int
	shift int

	Complement bool
}

// NewDense returns the dense interval [first, last]. The interval is
// empty when last < first.
func NewDense(first, last int) Set {
	return Set{kind: KindDense, first: first, last: last}
}

// NewView wraps a window of an attribute index. The window is borrowed,
// not copied; it must not outlive the index it points into. Elements
// must be sorted ascending.
func NewView(elems []int, shift int) Set {
	return Set{kind: KindView, elems: elems, shift: shift}
}

// NewExplicit wraps an owned slice of positions, sorted ascending.
func NewExplicit(elems []int) Set {
	return Set{kind: KindExplicit, elems: elems}
}

// Empty returns an empty set.
func Empty() Set {
	return Set{kind: KindDense, first: 0, last: -1}
}

// Kind returns the physical representation of the set.
func (s Set) Kind() Kind { return s.kind }

// Size returns the element count of the stored representation. This is
// the planner's size estimator; for a complemented set it is the size of
// the under-set, not of the logical value.
func (s Set) Size() int {
	switch s.kind {
	case KindDense:
		if s.last < s.first {
			return 0
		}
		return s.last - s.first + 1
	case KindView, KindExplicit:
		return len(s.elems)
	default:
		panic("intset: unknown set representation")
	}
}

// Each calls yield for every logical element in ascending order,
// stopping early if yield returns false.
func (s Set) Each(yield func(int) bool) {
	switch s.kind {
	case KindDense:
		for x := s.first; x <= s.last; x++ {
			if !yield(x) {
				return
			}
		}
	case KindView, KindExplicit:
		for _, x := range s.elems {
			if !yield(x - s.shift) {
				return
			}
		}
	default:
		panic("intset: unknown set representation")
	}
}

// Elems materializes the logical elements into a fresh slice.
func (s Set) Elems() []int {
	out := make([]int, 0, s.Size())
	s.Each(func(x int) bool {
		out = append(out, x)
		return true
	})
	return out
}

// seq is a uniform sorted-sequence accessor over View and Explicit
// payloads. at(i) yields logical coordinates.
type seq struct {
	elems []int
	shift int
}

func (s Set) seq() seq {
	return seq{elems: s.elems, shift: s.shift}
}

func (q seq) len() int     { return len(q.elems) }
func (q seq) at(i int) int { return q.elems[i] - q.shift }

func (q seq) contains(x int) bool {
	lo, hi := 0, len(q.elems)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if q.at(mid) < x {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo < len(q.elems) && q.at(lo) == x
}
