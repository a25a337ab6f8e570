package lexgo

import (
	"context"
	"time"

	"github.com/hupe1980/lexgo/internal/intset"
	"github.com/hupe1980/lexgo/query"
)

// Evaluate runs a compiled query and returns its matches ordered by
// ascending start position. An empty query yields no matches. For a
// fixed corpus and query the result is deterministic.
func (lx *Lexgo) Evaluate(ctx context.Context, q query.Query, evalOptFns ...EvalOption) ([]Match, error) {
	start := time.Now()

	matches, err := lx.evaluate(ctx, q, applyEvalOptions(evalOptFns))
	duration := time.Since(start)

	lx.opts.logger.LogEvaluate(ctx, len(q), len(matches), duration, err)
	lx.opts.metricsCollector.RecordEvaluate(len(matches), duration, err)
	return matches, err
}

func (lx *Lexgo) evaluate(ctx context.Context, q query.Query, eo evalOptions) ([]Match, error) {
	if len(q) == 0 || lx.corpus.Len() == 0 {
		return nil, nil
	}

	set, err := lx.querySet(ctx, q)
	if err != nil {
		return nil, err
	}

	return lx.emit(set, len(q), eo), nil
}

// literalSet is the posting list of one literal, stamped with the
// clause shift; the complement bit carries the literal's polarity.
func (lx *Lexgo) literalSet(lit query.Literal, shift int) intset.Set {
	var window []int
	if !lit.Absent {
		window = lx.corpus.Lookup(lit.Attr, lit.Value)
	}
	s := intset.NewView(window, shift)
	s.Complement = !lit.Equal
	return s
}

// clauseSet reduces one clause at the given shift. An empty clause
// matches every token, so it contributes the whole corpus as a dense
// interval.
func (lx *Lexgo) clauseSet(cl query.Clause, shift int) intset.Set {
	if len(cl) == 0 {
		return intset.NewDense(0, lx.corpus.Len()-1)
	}

	sets := make([]intset.Set, len(cl))
	for i, lit := range cl {
		sets[i] = lx.literalSet(lit, shift)
	}
	return intset.Plan(sets)
}

// querySet reduces the per-clause sets, each at its own positional
// shift, into the final set of match starts. A surviving complement is
// materialized against the universe so callers never see one.
func (lx *Lexgo) querySet(ctx context.Context, q query.Query) (intset.Set, error) {
	sets := make([]intset.Set, len(q))
	for j, cl := range q {
		if err := ctx.Err(); err != nil {
			return intset.Set{}, err
		}
		sets[j] = lx.clauseSet(cl, j)
	}

	set := intset.Plan(sets)
	if set.Complement {
		universe := intset.NewDense(0, lx.corpus.Len()-1)
		set = intset.Intersect(universe, set)
	}
	return set, nil
}

// emit materializes Match records from the final set. Candidates that
// would run past the corpus end or cross a sentence boundary are
// discarded; start positions are already in corpus coordinates because
// set enumeration applies the view shifts.
func (lx *Lexgo) emit(set intset.Set, length int, eo evalOptions) []Match {
	var matches []Match

	set.Each(func(p int) bool {
		if p < 0 || p+length > lx.corpus.Len() {
			return true
		}
		k := lx.corpus.SentenceOf(p)
		if _, end := lx.corpus.SentenceSpan(k); p+length > end {
			return true
		}
		if eo.sentences != nil && !eo.sentences.Contains(uint32(k)) {
			return true
		}
		matches = append(matches, Match{Sentence: k, Start: p, Length: length})
		return true
	})

	return matches
}
