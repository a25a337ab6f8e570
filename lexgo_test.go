package lexgo

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/lexgo/blobstore"
	"github.com/hupe1980/lexgo/corpus"
	"github.com/hupe1980/lexgo/query"
)

// Three sentences, positions 0..9:
//
//	s0 [0..3]: the poop and scoop
//	s1 [4..6]: the house stood
//	s2 [7..9]: they house it
const testCorpus = `word c5 lemma pos
the DT the DET
poop NN poop NOUN
and CC and CONJ
scoop NN scoop NOUN

the DT the DET
house NN house NOUN
stood VBD stand VERB

they PRP they PRON
house VB house VERB
it PRP it PRON
`

func testEngine(t *testing.T, optFns ...Option) *Lexgo {
	t.Helper()
	c, err := corpus.Read(strings.NewReader(testCorpus))
	require.NoError(t, err)
	return New(c, optFns...)
}

func TestQuery_Scenarios(t *testing.T) {
	lx := testEngine(t)
	ctx := context.Background()

	tests := []struct {
		query string
		want  []Match
	}{
		{`[lemma="house" pos!="VERB"]`, []Match{{1, 5, 1}}},
		{`[word="the"] [] []`, []Match{{0, 0, 3}, {1, 4, 3}}},
		{`[lemma="poop"] [lemma="scoop"]`, nil},
		{`[lemma="and"]`, []Match{{0, 2, 1}}},
		{`[word="the"] [word="house"]`, []Match{{1, 4, 2}}},
		{`[c5="NN"]`, []Match{{0, 1, 1}, {0, 3, 1}, {1, 5, 1}}},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			got, err := lx.Query(ctx, tc.query)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestQuery_EmptyClauseMatchesEveryToken(t *testing.T) {
	lx := testEngine(t)

	got, err := lx.Query(context.Background(), `[]`)
	require.NoError(t, err)
	require.Len(t, got, lx.Corpus().Len())

	for p, m := range got {
		assert.Equal(t, Match{lx.Corpus().SentenceOf(p), p, 1}, m)
	}
}

func TestQuery_WithinSentences(t *testing.T) {
	lx := testEngine(t)

	got, err := lx.Query(context.Background(), `[pos!="NOUN"]`, WithinSentences(1))
	require.NoError(t, err)
	assert.Equal(t, []Match{{1, 4, 1}, {1, 6, 1}}, got)
}

func TestQuery_CrossSentenceMatchesDiscarded(t *testing.T) {
	lx := testEngine(t)

	// "scoop the" spans positions 3..4, which straddle s0 and s1.
	got, err := lx.Query(context.Background(), `[word="scoop"] [word="the"]`)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestQuery_LongerThanAnySentence(t *testing.T) {
	lx := testEngine(t)

	got, err := lx.Query(context.Background(), `[] [] [] [] []`)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestQuery_AllEmptyClauses(t *testing.T) {
	lx := testEngine(t)

	got, err := lx.Query(context.Background(), `[] []`)
	require.NoError(t, err)

	// Every start whose pair stays inside one sentence.
	want := []Match{
		{0, 0, 2}, {0, 1, 2}, {0, 2, 2},
		{1, 4, 2}, {1, 5, 2},
		{2, 7, 2}, {2, 8, 2},
	}
	assert.Equal(t, want, got)
}

func TestEvaluate_EmptyQuery(t *testing.T) {
	lx := testEngine(t)

	got, err := lx.Evaluate(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestQuery_ComplementLaw(t *testing.T) {
	lx := testEngine(t)
	ctx := context.Background()

	pos, err := lx.Query(ctx, `[pos="NOUN"]`)
	require.NoError(t, err)
	neg, err := lx.Query(ctx, `[pos!="NOUN"]`)
	require.NoError(t, err)

	starts := map[int]bool{}
	for _, m := range pos {
		starts[m.Start] = true
	}
	for _, m := range neg {
		require.False(t, starts[m.Start], "start %d in both halves", m.Start)
		starts[m.Start] = true
	}
	assert.Len(t, starts, lx.Corpus().Len())
}

func TestQuery_Deterministic(t *testing.T) {
	lx := testEngine(t)
	ctx := context.Background()

	first, err := lx.Query(ctx, `[word="the"] [] []`)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := lx.Query(ctx, `[word="the"] [] []`)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestQuery_OrderedByStart(t *testing.T) {
	lx := testEngine(t)

	got, err := lx.Query(context.Background(), `[]`)
	require.NoError(t, err)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].Start, got[i].Start)
	}
}

func TestCompile_UnknownValueStrict(t *testing.T) {
	lx := testEngine(t)

	_, err := lx.Compile(`[word="zebra"]`)
	require.ErrorIs(t, err, ErrUnknownValue)
}

func TestCompile_ParseError(t *testing.T) {
	lx := testEngine(t)

	_, err := lx.Compile(`[word=zebra]`)
	require.ErrorIs(t, err, ErrParse)
}

func TestQuery_LenientUnknownValue(t *testing.T) {
	lx := testEngine(t, WithLenientLookup())
	ctx := context.Background()

	got, err := lx.Query(ctx, `[word="zebra"]`)
	require.NoError(t, err)
	assert.Empty(t, got)

	// The inequality reading: everything but nothing is everything.
	got, err = lx.Query(ctx, `[word!="zebra"]`)
	require.NoError(t, err)
	assert.Len(t, got, lx.Corpus().Len())
}

func TestEvaluate_Cancellation(t *testing.T) {
	lx := testEngine(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := lx.Evaluate(ctx, mustCompile(t, lx, `[word="the"] []`))
	require.ErrorIs(t, err, context.Canceled)
}

func mustCompile(t *testing.T, lx *Lexgo, text string) query.Query {
	t.Helper()
	q, err := lx.Compile(text)
	require.NoError(t, err)
	return q
}

func TestOpen_MemoryStoreGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(testCorpus))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	store := blobstore.NewMemory()
	store.Put("bnc.csv.gz", buf.Bytes())

	lx, err := Open(context.Background(), store, "bnc.csv.gz")
	require.NoError(t, err)
	assert.Equal(t, 10, lx.Corpus().Len())

	got, err := lx.Query(context.Background(), `[lemma="house" pos!="VERB"]`)
	require.NoError(t, err)
	assert.Equal(t, []Match{{1, 5, 1}}, got)
}

func TestOpen_MissingBlob(t *testing.T) {
	_, err := Open(context.Background(), blobstore.NewMemory(), "nope.csv")
	require.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestMetricsCollector_Records(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	lx := testEngine(t, WithMetricsCollector(metrics))
	ctx := context.Background()

	_, err := lx.Query(ctx, `[word="the"]`)
	require.NoError(t, err)
	_, _ = lx.Query(ctx, `[word="zebra"]`)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.CompileCount)
	assert.Equal(t, int64(1), stats.CompileErrors)
	assert.Equal(t, int64(1), stats.EvaluateCount)
	assert.Equal(t, int64(2), stats.EvaluateMatches)
}
