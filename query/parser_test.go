package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/lexgo/corpus"
)

func testDict() *corpus.Dictionary {
	d := corpus.NewDictionary()
	for _, s := range []string{"the", "house", "DT", "NN", "VERB", "NOUN"} {
		d.Intern(s)
	}
	return d
}

func TestParse_SingleLiteral(t *testing.T) {
	d := testDict()

	q, err := Parse(`[word="the"]`, d)
	require.NoError(t, err)
	require.Len(t, q, 1)
	require.Len(t, q[0], 1)

	lit := q[0][0]
	assert.Equal(t, corpus.AttrWord, lit.Attr)
	assert.True(t, lit.Equal)
	assert.False(t, lit.Absent)
	assert.Equal(t, "the", d.Reveal(lit.Value))
}

func TestParse_InequalityAndConjunction(t *testing.T) {
	d := testDict()

	q, err := Parse(`[lemma="house" pos!="VERB"]`, d)
	require.NoError(t, err)
	require.Len(t, q, 1)
	require.Len(t, q[0], 2)

	assert.Equal(t, corpus.AttrLemma, q[0][0].Attr)
	assert.True(t, q[0][0].Equal)
	assert.Equal(t, corpus.AttrPOS, q[0][1].Attr)
	assert.False(t, q[0][1].Equal)
}

func TestParse_EmptyClauses(t *testing.T) {
	d := testDict()

	q, err := Parse(`[word="the"] [] []`, d)
	require.NoError(t, err)
	require.Len(t, q, 3)
	assert.Len(t, q[0], 1)
	assert.Empty(t, q[1])
	assert.Empty(t, q[2])
}

func TestParse_SyntaxErrors(t *testing.T) {
	d := testDict()

	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"no brackets", `word="the"`},
		{"nested bracket", `[[word="the"]]`},
		{"unopened bracket", `word="the"]`},
		{"unclosed bracket", `[word="the"`},
		{"missing operator", `[word"the"]`},
		{"unquoted value", `[word=the]`},
		{"half-quoted value", `[word="the]`},
		{"empty quoted value", `[word=""]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input, d)
			var se *SyntaxError
			require.ErrorAs(t, err, &se, "input %q", tc.input)
		})
	}
}

func TestParse_UnknownAttribute(t *testing.T) {
	d := testDict()

	_, err := Parse(`[stem="the"]`, d)
	var ua *UnknownAttributeError
	require.ErrorAs(t, err, &ua)
	assert.Equal(t, "stem", ua.Name)
}

func TestParse_UnknownValueStrict(t *testing.T) {
	d := testDict()

	_, err := Parse(`[word="zebra"]`, d)
	var uv *UnknownValueError
	require.ErrorAs(t, err, &uv)
	assert.Equal(t, "zebra", uv.Value)
}

func TestParseLenient_UnknownValue(t *testing.T) {
	d := testDict()

	q, err := ParseLenient(`[word="zebra"] [pos!="zebra"]`, d)
	require.NoError(t, err)
	require.Len(t, q, 2)

	assert.True(t, q[0][0].Absent)
	assert.True(t, q[0][0].Equal)
	assert.True(t, q[1][0].Absent)
	assert.False(t, q[1][0].Equal)
}

func TestParseLenient_StillRejectsSyntaxErrors(t *testing.T) {
	d := testDict()

	_, err := ParseLenient(`[word=zebra]`, d)
	var se *SyntaxError
	require.ErrorAs(t, err, &se)
}

func TestQuery_String(t *testing.T) {
	d := testDict()

	for _, text := range []string{
		`[word="the"] [] []`,
		`[lemma="house" pos!="VERB"]`,
	} {
		q, err := Parse(text, d)
		require.NoError(t, err)
		assert.Equal(t, text, q.String(d))
	}
}
